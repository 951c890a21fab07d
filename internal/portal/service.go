// Package portal issues and validates the time-bounded access tokens that
// gate the sponsor self-service portal. A sponsorship has at most one
// current token by convention: refresh deletes prior tokens before issuing
// a new one.
package portal

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/eventfold/sponsorpipe/internal/adapter"
	"github.com/eventfold/sponsorpipe/internal/domain"
	"github.com/eventfold/sponsorpipe/internal/events"
	"github.com/eventfold/sponsorpipe/internal/logger"
	"github.com/eventfold/sponsorpipe/internal/store"
	"github.com/eventfold/sponsorpipe/internal/store/schema"
)

// Validation reason strings, rendered directly on the portal error page
const (
	ReasonTokenNotFound   = "Token not found"
	ReasonTokenExpired    = "Token has expired"
	ReasonSponsorNotFound = "Sponsor not found"
)

// ValidationResult is the discriminated outcome of a token validation:
// either a resolved sponsorship or a human-readable reason
type ValidationResult struct {
	Valid       bool                `json:"valid"`
	Reason      string              `json:"reason,omitempty"`
	Sponsorship *schema.Sponsorship `json:"sponsorship,omitempty"`
}

// Config holds portal token service configuration
type Config struct {
	// DefaultExpiryDays is the token lifetime applied when none is given
	DefaultExpiryDays int
}

// Service defines the portal token operations
//
//go:generate mockgen -source=service.go -destination=../mocks/portal_service.go -package=mocks -mock_names=Service=MockPortalService
type Service interface {
	// GetOrCreate returns a currently valid token for the sponsorship,
	// issuing a new one with the default expiry if none exists
	GetOrCreate(ctx context.Context, sponsorshipID string) (*schema.PortalToken, error)

	// GeneratePortalLink wraps GetOrCreate and formats the portal URL
	GeneratePortalLink(ctx context.Context, sponsorshipID, editionSlug, baseURL string) (string, error)

	// Validate resolves a raw token string to its sponsorship, stamping
	// lastUsedAt on success. Invalid tokens yield a reason, not an error.
	Validate(ctx context.Context, token string) (*ValidationResult, error)

	// Refresh deletes every token for the sponsorship and issues a fresh
	// one, invalidating a potentially leaked link
	Refresh(ctx context.Context, sponsorshipID string, expiryDays int) (*schema.PortalToken, error)

	// Revoke deletes every token for the sponsorship with no replacement
	Revoke(ctx context.Context, sponsorshipID string) error
}

type service struct {
	config    Config
	store     store.Store
	clock     adapter.Clock
	publisher events.Publisher
}

// NewService creates a new portal token service
func NewService(cfg Config, st store.Store, clock adapter.Clock, publisher events.Publisher) Service {
	if cfg.DefaultExpiryDays <= 0 {
		cfg.DefaultExpiryDays = domain.DEFAULT_TOKEN_EXPIRY_DAYS
	}
	return &service{
		config:    cfg,
		store:     st,
		clock:     clock,
		publisher: publisher,
	}
}

// newTokenValue generates the opaque token credential: 32 bytes from the
// system CSPRNG, hex encoded. Collisions are treated as negligible.
func newTokenValue() (string, error) {
	buf := make([]byte, domain.TOKEN_BYTE_LENGTH)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// isExpired reports whether a token is expired at the given time. A token
// without an expiry never expires; one with an expiry is valid up to and
// including the expiry instant.
func isExpired(t *schema.PortalToken, now time.Time) bool {
	return t.ExpiresAt.IsSet() && now.After(t.ExpiresAt.Time)
}

func (s *service) GetOrCreate(ctx context.Context, sponsorshipID string) (*schema.PortalToken, error) {
	tokens, err := s.store.ListTokensBySponsorship(ctx, sponsorshipID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	for i := range tokens {
		if !isExpired(&tokens[i], now) {
			return &tokens[i], nil
		}
	}

	return s.issue(ctx, sponsorshipID, s.config.DefaultExpiryDays)
}

func (s *service) GeneratePortalLink(ctx context.Context, sponsorshipID, editionSlug, baseURL string) (string, error) {
	token, err := s.GetOrCreate(ctx, sponsorshipID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/sponsor/%s/portal?token=%s", baseURL, editionSlug, token.Token), nil
}

func (s *service) Validate(ctx context.Context, token string) (*ValidationResult, error) {
	record, err := s.store.FindTokenByValue(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrTokenNotFound) {
			return &ValidationResult{Valid: false, Reason: ReasonTokenNotFound}, nil
		}
		return nil, err
	}

	if isExpired(record, s.clock.Now()) {
		return &ValidationResult{Valid: false, Reason: ReasonTokenExpired}, nil
	}

	sp, err := s.store.GetSponsorship(ctx, record.SponsorshipID, store.ExpandSponsor, store.ExpandPackage)
	if err != nil {
		if errors.Is(err, domain.ErrSponsorshipNotFound) {
			return &ValidationResult{Valid: false, Reason: ReasonSponsorNotFound}, nil
		}
		return nil, err
	}

	// Advisory telemetry: last-writer-wins under concurrent validations
	// is acceptable, and a failed stamp never fails the validation.
	lastUsed := schema.NewDateTime(s.clock.Now())
	if _, err := s.store.UpdateToken(ctx, record.ID, schema.PortalTokenFields{LastUsedAt: &lastUsed}); err != nil {
		logger.WarnCtx(ctx, "Failed to stamp token last_used_at",
			zap.Error(err),
			zap.String("token_id", record.ID),
		)
	}

	return &ValidationResult{Valid: true, Sponsorship: sp}, nil
}

func (s *service) Refresh(ctx context.Context, sponsorshipID string, expiryDays int) (*schema.PortalToken, error) {
	if err := s.deleteAll(ctx, sponsorshipID); err != nil {
		return nil, err
	}

	if expiryDays <= 0 {
		expiryDays = s.config.DefaultExpiryDays
	}

	token, err := s.issue(ctx, sponsorshipID, expiryDays)
	if err != nil {
		return nil, err
	}

	s.publishRefresh(ctx, sponsorshipID)

	return token, nil
}

func (s *service) Revoke(ctx context.Context, sponsorshipID string) error {
	return s.deleteAll(ctx, sponsorshipID)
}

func (s *service) issue(ctx context.Context, sponsorshipID string, expiryDays int) (*schema.PortalToken, error) {
	value, err := newTokenValue()
	if err != nil {
		return nil, err
	}

	expiresAt := schema.NewDateTime(s.clock.Now().AddDate(0, 0, expiryDays))
	return s.store.CreateToken(ctx, schema.PortalTokenFields{
		SponsorshipID: &sponsorshipID,
		Token:         &value,
		ExpiresAt:     &expiresAt,
	})
}

func (s *service) deleteAll(ctx context.Context, sponsorshipID string) error {
	tokens, err := s.store.ListTokensBySponsorship(ctx, sponsorshipID)
	if err != nil {
		return err
	}
	for _, t := range tokens {
		if err := s.store.DeleteToken(ctx, t.ID); err != nil {
			return fmt.Errorf("failed to delete token %s: %w", t.ID, err)
		}
	}
	return nil
}

func (s *service) publishRefresh(ctx context.Context, sponsorshipID string) {
	if s.publisher == nil {
		return
	}
	event := &domain.Event{
		EventID:       ulid.MustNewDefault(s.clock.Now()).String(),
		EventType:     domain.EventTypeTokenRefreshed,
		SponsorshipID: sponsorshipID,
		Timestamp:     s.clock.Now(),
	}
	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish domain event",
			zap.Error(err),
			zap.String("event_type", string(event.EventType)),
		)
	}
}
