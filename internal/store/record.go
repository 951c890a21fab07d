package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/eventfold/sponsorpipe/internal/adapter"
	"github.com/eventfold/sponsorpipe/internal/domain"
	"github.com/eventfold/sponsorpipe/internal/store/schema"
)

// listPerPage is the page size used when draining a full list
const listPerPage = 200

// Config holds record store client configuration
type Config struct {
	// BaseURL is the root URL of the hosted record store
	BaseURL string
	// AuthToken is the service credential sent on every request
	AuthToken string
}

// recordStore implements Store against a hosted collection/record HTTP API
type recordStore struct {
	baseURL   string
	authToken string
	http      adapter.HTTPClient
	json      adapter.JSON
}

// NewRecordStore creates a Store backed by the hosted record store
func NewRecordStore(cfg Config, httpClient adapter.HTTPClient, jsonAdapter adapter.JSON) Store {
	return &recordStore{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		authToken: cfg.AuthToken,
		http:      httpClient,
		json:      jsonAdapter,
	}
}

// listResponse is the paged envelope the record store wraps list results in
type listResponse[T any] struct {
	Page       int `json:"page"`
	PerPage    int `json:"perPage"`
	TotalItems int `json:"totalItems"`
	Items      []T `json:"items"`
}

// listQuery holds the query options for list requests
type listQuery struct {
	Filter Filter
	Sort   string
	Expand []string
}

func (s *recordStore) headers() map[string]string {
	h := map[string]string{
		"Content-Type": "application/json",
	}
	if s.authToken != "" {
		h["Authorization"] = s.authToken
	}
	return h
}

func (s *recordStore) recordURL(collection, id string, query url.Values) string {
	u := fmt.Sprintf("%s/api/collections/%s/records", s.baseURL, collection)
	if id != "" {
		u += "/" + url.PathEscape(id)
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// notFound maps a 404 status error onto a domain sentinel, leaving all
// other errors untouched
func notFound(err, sentinel error) error {
	var statusErr *adapter.StatusError
	if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
		return sentinel
	}
	return err
}

// getOne fetches a single record by id
func getOne[T any](ctx context.Context, s *recordStore, collection, id string, expand []string, sentinel error) (*T, error) {
	query := url.Values{}
	if len(expand) > 0 {
		query.Set("expand", strings.Join(expand, ","))
	}

	var record T
	if err := s.http.Get(ctx, s.recordURL(collection, id, query), s.headers(), &record); err != nil {
		return nil, notFound(err, sentinel)
	}
	return &record, nil
}

// getFullList drains every page of a filtered list
func getFullList[T any](ctx context.Context, s *recordStore, collection string, q listQuery) ([]T, error) {
	var items []T
	for page := 1; ; page++ {
		query := url.Values{}
		query.Set("page", strconv.Itoa(page))
		query.Set("perPage", strconv.Itoa(listPerPage))
		if !q.Filter.IsZero() {
			query.Set("filter", q.Filter.String())
		}
		if q.Sort != "" {
			query.Set("sort", q.Sort)
		}
		if len(q.Expand) > 0 {
			query.Set("expand", strings.Join(q.Expand, ","))
		}

		var resp listResponse[T]
		if err := s.http.Get(ctx, s.recordURL(collection, "", query), s.headers(), &resp); err != nil {
			return nil, err
		}

		items = append(items, resp.Items...)
		if len(resp.Items) < listPerPage {
			return items, nil
		}
	}
}

// create posts a new record and decodes the stored result
func create[T any](ctx context.Context, s *recordStore, collection string, fields interface{}) (*T, error) {
	payload, err := s.json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal fields: %w", err)
	}

	body, err := s.http.Post(ctx, s.recordURL(collection, "", nil), s.headers(), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	var record T
	if err := s.json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("failed to decode created record: %w", err)
	}
	return &record, nil
}

// update patches an existing record and decodes the stored result
func update[T any](ctx context.Context, s *recordStore, collection, id string, fields interface{}, sentinel error) (*T, error) {
	payload, err := s.json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal fields: %w", err)
	}

	body, err := s.http.Patch(ctx, s.recordURL(collection, id, nil), s.headers(), bytes.NewReader(payload))
	if err != nil {
		return nil, notFound(err, sentinel)
	}

	var record T
	if err := s.json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("failed to decode updated record: %w", err)
	}
	return &record, nil
}

func (s *recordStore) GetSponsorship(ctx context.Context, id string, expand ...string) (*schema.Sponsorship, error) {
	return getOne[schema.Sponsorship](ctx, s, schema.Sponsorship{}.CollectionName(), id, expand, domain.ErrSponsorshipNotFound)
}

func (s *recordStore) ListSponsorships(ctx context.Context, editionID string, expand ...string) ([]schema.Sponsorship, error) {
	return getFullList[schema.Sponsorship](ctx, s, schema.Sponsorship{}.CollectionName(), listQuery{
		Filter: Eq("edition", editionID),
		Sort:   "-created",
		Expand: expand,
	})
}

func (s *recordStore) ListSponsorshipsByStatus(ctx context.Context, editionID string, status domain.SponsorStatus, expand ...string) ([]schema.Sponsorship, error) {
	return getFullList[schema.Sponsorship](ctx, s, schema.Sponsorship{}.CollectionName(), listQuery{
		Filter: And(Eq("edition", editionID), Eq("status", status)),
		Sort:   "-created",
		Expand: expand,
	})
}

func (s *recordStore) UpdateSponsorship(ctx context.Context, id string, fields schema.SponsorshipFields) (*schema.Sponsorship, error) {
	return update[schema.Sponsorship](ctx, s, schema.Sponsorship{}.CollectionName(), id, fields, domain.ErrSponsorshipNotFound)
}

func (s *recordStore) GetPackage(ctx context.Context, id string) (*schema.Package, error) {
	return getOne[schema.Package](ctx, s, schema.Package{}.CollectionName(), id, nil, domain.ErrPackageNotFound)
}

func (s *recordStore) ListPackages(ctx context.Context, editionID string) ([]schema.Package, error) {
	return getFullList[schema.Package](ctx, s, schema.Package{}.CollectionName(), listQuery{
		Filter: Eq("edition", editionID),
		Sort:   "tier",
	})
}

func (s *recordStore) GetDeliverable(ctx context.Context, id string, expand ...string) (*schema.Deliverable, error) {
	return getOne[schema.Deliverable](ctx, s, schema.Deliverable{}.CollectionName(), id, expand, domain.ErrDeliverableNotFound)
}

func (s *recordStore) ListDeliverables(ctx context.Context, sponsorshipID string) ([]schema.Deliverable, error) {
	return getFullList[schema.Deliverable](ctx, s, schema.Deliverable{}.CollectionName(), listQuery{
		Filter: Eq("sponsorship", sponsorshipID),
		Sort:   "created",
	})
}

func (s *recordStore) CreateDeliverable(ctx context.Context, fields schema.DeliverableFields) (*schema.Deliverable, error) {
	return create[schema.Deliverable](ctx, s, schema.Deliverable{}.CollectionName(), fields)
}

func (s *recordStore) UpdateDeliverable(ctx context.Context, id string, fields schema.DeliverableFields) (*schema.Deliverable, error) {
	return update[schema.Deliverable](ctx, s, schema.Deliverable{}.CollectionName(), id, fields, domain.ErrDeliverableNotFound)
}

func (s *recordStore) FindTokenByValue(ctx context.Context, token string) (*schema.PortalToken, error) {
	tokens, err := getFullList[schema.PortalToken](ctx, s, schema.PortalToken{}.CollectionName(), listQuery{
		Filter: Eq("token", token),
	})
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, domain.ErrTokenNotFound
	}
	return &tokens[0], nil
}

func (s *recordStore) ListTokensBySponsorship(ctx context.Context, sponsorshipID string) ([]schema.PortalToken, error) {
	return getFullList[schema.PortalToken](ctx, s, schema.PortalToken{}.CollectionName(), listQuery{
		Filter: Eq("sponsorship", sponsorshipID),
		Sort:   "-created",
	})
}

func (s *recordStore) CreateToken(ctx context.Context, fields schema.PortalTokenFields) (*schema.PortalToken, error) {
	return create[schema.PortalToken](ctx, s, schema.PortalToken{}.CollectionName(), fields)
}

func (s *recordStore) UpdateToken(ctx context.Context, id string, fields schema.PortalTokenFields) (*schema.PortalToken, error) {
	return update[schema.PortalToken](ctx, s, schema.PortalToken{}.CollectionName(), id, fields, domain.ErrTokenNotFound)
}

func (s *recordStore) DeleteToken(ctx context.Context, id string) error {
	return notFound(s.http.Delete(ctx, s.recordURL(schema.PortalToken{}.CollectionName(), id, nil), s.headers()), domain.ErrTokenNotFound)
}
