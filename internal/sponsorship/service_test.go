package sponsorship_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventfold/sponsorpipe/internal/domain"
	"github.com/eventfold/sponsorpipe/internal/logger"
	"github.com/eventfold/sponsorpipe/internal/mocks"
	"github.com/eventfold/sponsorpipe/internal/sponsorship"
	"github.com/eventfold/sponsorpipe/internal/store/schema"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testServiceMocks contains all the mocks needed for testing the service
type testServiceMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	clock     *mocks.MockClock
	publisher *mocks.MockPublisher
	service   sponsorship.Service
}

// setupTestService creates all the mocks and service for testing
func setupTestService(t *testing.T) *testServiceMocks {
	ctrl := gomock.NewController(t)

	tm := &testServiceMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		clock:     mocks.NewMockClock(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
	}

	tm.service = sponsorship.NewService(tm.store, tm.clock, tm.publisher)

	return tm
}

// tearDownTestService cleans up the test mocks
func tearDownTestService(tm *testServiceMocks) {
	tm.ctrl.Finish()
}

func TestService_Transition_Success(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	current := &schema.Sponsorship{
		ID:        "sp1",
		EditionID: "ed1",
		Status:    domain.StatusProspect,
	}
	updated := &schema.Sponsorship{
		ID:        "sp1",
		EditionID: "ed1",
		Status:    domain.StatusContacted,
	}

	tm.store.EXPECT().GetSponsorship(ctx, "sp1").Return(current, nil)
	tm.store.EXPECT().
		UpdateSponsorship(ctx, "sp1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fields schema.SponsorshipFields) (*schema.Sponsorship, error) {
			require.NotNil(t, fields.Status)
			assert.Equal(t, domain.StatusContacted, *fields.Status)
			assert.Nil(t, fields.ConfirmedAt)
			return updated, nil
		})
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.publisher.EXPECT().
		PublishEvent(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.Event) error {
			assert.Equal(t, domain.EventTypeStatusChanged, event.EventType)
			assert.Equal(t, "ed1", event.EditionID)
			assert.Equal(t, "sp1", event.SponsorshipID)
			assert.Equal(t, string(domain.StatusProspect), event.FromStatus)
			assert.Equal(t, string(domain.StatusContacted), event.ToStatus)
			assert.NotEmpty(t, event.EventID)
			return nil
		})

	result, err := tm.service.Transition(ctx, "sp1", domain.StatusContacted)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusContacted, result.Status)
}

func TestService_Transition_StampsConfirmedAt(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	current := &schema.Sponsorship{
		ID:        "sp1",
		EditionID: "ed1",
		Status:    domain.StatusNegotiating,
	}

	tm.store.EXPECT().GetSponsorship(ctx, "sp1").Return(current, nil)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.store.EXPECT().
		UpdateSponsorship(ctx, "sp1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fields schema.SponsorshipFields) (*schema.Sponsorship, error) {
			require.NotNil(t, fields.ConfirmedAt)
			assert.Equal(t, now, fields.ConfirmedAt.Time)
			return &schema.Sponsorship{ID: "sp1", Status: domain.StatusConfirmed}, nil
		})
	tm.publisher.EXPECT().PublishEvent(ctx, gomock.Any()).Return(nil)

	_, err := tm.service.Transition(ctx, "sp1", domain.StatusConfirmed)
	require.NoError(t, err)
}

func TestService_Transition_PreservesExistingConfirmedAt(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	confirmed := schema.NewDateTime(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	// A sponsorship re-confirmed after a cancellation keeps its original
	// confirmation timestamp
	current := &schema.Sponsorship{
		ID:          "sp1",
		Status:      domain.StatusNegotiating,
		ConfirmedAt: confirmed,
	}

	tm.store.EXPECT().GetSponsorship(ctx, "sp1").Return(current, nil)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.store.EXPECT().
		UpdateSponsorship(ctx, "sp1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fields schema.SponsorshipFields) (*schema.Sponsorship, error) {
			assert.Nil(t, fields.ConfirmedAt)
			return &schema.Sponsorship{ID: "sp1", Status: domain.StatusConfirmed}, nil
		})
	tm.publisher.EXPECT().PublishEvent(ctx, gomock.Any()).Return(nil)

	_, err := tm.service.Transition(ctx, "sp1", domain.StatusConfirmed)
	require.NoError(t, err)
}

func TestService_Transition_Invalid(t *testing.T) {
	tests := []struct {
		name string
		from domain.SponsorStatus
		to   domain.SponsorStatus
	}{
		{
			name: "prospect cannot jump to confirmed",
			from: domain.StatusProspect,
			to:   domain.StatusConfirmed,
		},
		{
			name: "refunded is terminal",
			from: domain.StatusRefunded,
			to:   domain.StatusProspect,
		},
		{
			name: "declined cannot go back to prospect",
			from: domain.StatusDeclined,
			to:   domain.StatusProspect,
		},
		{
			name: "self transition is rejected",
			from: domain.StatusContacted,
			to:   domain.StatusContacted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestService(t)
			defer tearDownTestService(tm)

			ctx := context.Background()
			tm.store.EXPECT().
				GetSponsorship(ctx, "sp1").
				Return(&schema.Sponsorship{ID: "sp1", Status: tt.from}, nil)

			_, err := tm.service.Transition(ctx, "sp1", tt.to)
			assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		})
	}
}

func TestService_Transition_UnknownStatus(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	_, err := tm.service.Transition(context.Background(), "sp1", domain.SponsorStatus("bogus"))
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestService_Transition_NotFound(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	tm.store.EXPECT().
		GetSponsorship(ctx, "missing").
		Return(nil, domain.ErrSponsorshipNotFound)

	_, err := tm.service.Transition(ctx, "missing", domain.StatusContacted)
	assert.ErrorIs(t, err, domain.ErrSponsorshipNotFound)
}

func TestService_Transition_PublishFailureDoesNotFailWrite(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tm.store.EXPECT().
		GetSponsorship(ctx, "sp1").
		Return(&schema.Sponsorship{ID: "sp1", Status: domain.StatusProspect}, nil)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.store.EXPECT().
		UpdateSponsorship(ctx, "sp1", gomock.Any()).
		Return(&schema.Sponsorship{ID: "sp1", Status: domain.StatusContacted}, nil)
	tm.publisher.EXPECT().
		PublishEvent(ctx, gomock.Any()).
		Return(errors.New("broker down"))

	_, err := tm.service.Transition(ctx, "sp1", domain.StatusContacted)
	assert.NoError(t, err)
}

func TestService_MarkPaid_Success(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	current := &schema.Sponsorship{
		ID:     "sp1",
		Status: domain.StatusConfirmed,
		Amount: 1500000,
	}

	tm.store.EXPECT().GetSponsorship(ctx, "sp1").Return(current, nil)
	tm.clock.EXPECT().Now().Return(now)
	tm.store.EXPECT().
		UpdateSponsorship(ctx, "sp1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fields schema.SponsorshipFields) (*schema.Sponsorship, error) {
			require.NotNil(t, fields.PaidAt)
			assert.Equal(t, now, fields.PaidAt.Time)
			require.NotNil(t, fields.PaymentReference)
			assert.Equal(t, "WIRE-2026-001", *fields.PaymentReference)
			return current, nil
		})

	_, err := tm.service.MarkPaid(ctx, "sp1", "WIRE-2026-001")
	require.NoError(t, err)
}

func TestService_MarkPaid_OmitsEmptyReference(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	current := &schema.Sponsorship{ID: "sp1", Status: domain.StatusConfirmed}

	tm.store.EXPECT().GetSponsorship(ctx, "sp1").Return(current, nil)
	tm.clock.EXPECT().Now().Return(now)
	tm.store.EXPECT().
		UpdateSponsorship(ctx, "sp1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fields schema.SponsorshipFields) (*schema.Sponsorship, error) {
			assert.Nil(t, fields.PaymentReference)
			return current, nil
		})

	_, err := tm.service.MarkPaid(ctx, "sp1", "")
	require.NoError(t, err)
}

func TestService_MarkPaid_NotConfirmed(t *testing.T) {
	for _, status := range []domain.SponsorStatus{
		domain.StatusProspect,
		domain.StatusContacted,
		domain.StatusNegotiating,
		domain.StatusDeclined,
		domain.StatusCancelled,
		domain.StatusRefunded,
	} {
		t.Run(string(status), func(t *testing.T) {
			tm := setupTestService(t)
			defer tearDownTestService(tm)

			ctx := context.Background()
			tm.store.EXPECT().
				GetSponsorship(ctx, "sp1").
				Return(&schema.Sponsorship{ID: "sp1", Status: status}, nil)

			_, err := tm.service.MarkPaid(ctx, "sp1", "")
			assert.ErrorIs(t, err, domain.ErrNotConfirmed)
		})
	}
}

func TestService_MarkPaid_AlreadyPaid(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	current := &schema.Sponsorship{
		ID:     "sp1",
		Status: domain.StatusConfirmed,
		PaidAt: schema.NewDateTime(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)),
	}

	tm.store.EXPECT().GetSponsorship(ctx, "sp1").Return(current, nil)

	_, err := tm.service.MarkPaid(ctx, "sp1", "")
	assert.ErrorIs(t, err, domain.ErrAlreadyPaid)
}
