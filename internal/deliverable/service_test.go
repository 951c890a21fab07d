package deliverable_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventfold/sponsorpipe/internal/deliverable"
	"github.com/eventfold/sponsorpipe/internal/domain"
	"github.com/eventfold/sponsorpipe/internal/logger"
	"github.com/eventfold/sponsorpipe/internal/mailer"
	"github.com/eventfold/sponsorpipe/internal/mocks"
	"github.com/eventfold/sponsorpipe/internal/store"
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
	mailer    *mocks.MockMailer
	publisher *mocks.MockPublisher
	service   deliverable.Service
}

// setupTestService creates all the mocks and service for testing
func setupTestService(t *testing.T) *testServiceMocks {
	ctrl := gomock.NewController(t)

	tm := &testServiceMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		clock:     mocks.NewMockClock(ctrl),
		mailer:    mocks.NewMockMailer(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
	}

	tm.service = deliverable.NewService(deliverable.Config{DueSoonDays: 7}, tm.store, tm.clock, tm.mailer, tm.publisher)

	return tm
}

// setupTestServiceNoMailer builds the service without a configured mailer
func setupTestServiceNoMailer(t *testing.T) *testServiceMocks {
	ctrl := gomock.NewController(t)

	tm := &testServiceMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		clock:     mocks.NewMockClock(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
	}

	tm.service = deliverable.NewService(deliverable.Config{}, tm.store, tm.clock, nil, tm.publisher)

	return tm
}

// tearDownTestService cleans up the test mocks
func tearDownTestService(tm *testServiceMocks) {
	tm.ctrl.Finish()
}

func confirmedSponsorship(id string, benefits []domain.Benefit) *schema.Sponsorship {
	return &schema.Sponsorship{
		ID:        id,
		EditionID: "ed1",
		PackageID: "pkg1",
		Status:    domain.StatusConfirmed,
		Expand: schema.SponsorshipExpand{
			Package: &schema.Package{
				ID:       "pkg1",
				Benefits: benefits,
			},
		},
	}
}

func TestService_GenerateForSponsorship(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()

	benefits := []domain.Benefit{
		{Name: "Logo on website", Included: true},
		{Name: "Booth space", Included: true},
		{Name: "Keynote slot", Included: false},
	}
	existing := []schema.Deliverable{
		{ID: "d0", SponsorshipID: "sp1", BenefitName: "Logo on website"},
	}

	tm.store.EXPECT().
		GetSponsorship(ctx, "sp1", store.ExpandPackage).
		Return(confirmedSponsorship("sp1", benefits), nil)
	tm.store.EXPECT().ListDeliverables(ctx, "sp1").Return(existing, nil)
	tm.store.EXPECT().
		CreateDeliverable(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, fields schema.DeliverableFields) (*schema.Deliverable, error) {
			require.NotNil(t, fields.BenefitName)
			assert.Equal(t, "Booth space", *fields.BenefitName)
			return &schema.Deliverable{
				ID:            "d1",
				SponsorshipID: "sp1",
				BenefitName:   "Booth space",
				Status:        domain.DeliverablePending,
			}, nil
		})
	tm.publisher.EXPECT().
		PublishEvent(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.Event) error {
			assert.Equal(t, domain.EventTypeDeliverableCreated, event.EventType)
			assert.Equal(t, "d1", event.DeliverableID)
			return nil
		})

	outcome, err := tm.service.GenerateForSponsorship(ctx, "sp1", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Created)
	assert.Equal(t, 1, outcome.Skipped)
	require.Len(t, outcome.Deliverables, 1)
	assert.Equal(t, "d1", outcome.Deliverables[0].ID)
}

func TestService_GenerateForSponsorship_NoPackage(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	tm.store.EXPECT().
		GetSponsorship(ctx, "sp1", store.ExpandPackage).
		Return(&schema.Sponsorship{ID: "sp1", Status: domain.StatusConfirmed}, nil)

	outcome, err := tm.service.GenerateForSponsorship(ctx, "sp1", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, outcome.Created)
	assert.Equal(t, 0, outcome.Skipped)
	assert.Empty(t, outcome.Deliverables)
}

func TestService_GenerateForSponsorship_PackageFallback(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()

	// Expansion missing, but the package reference is set
	sp := &schema.Sponsorship{
		ID:        "sp1",
		EditionID: "ed1",
		PackageID: "pkg1",
		Status:    domain.StatusConfirmed,
	}
	pkg := &schema.Package{
		ID: "pkg1",
		Benefits: []domain.Benefit{
			{Name: "Booth space", Included: true},
		},
	}

	tm.store.EXPECT().GetSponsorship(ctx, "sp1", store.ExpandPackage).Return(sp, nil)
	tm.store.EXPECT().GetPackage(ctx, "pkg1").Return(pkg, nil)
	tm.store.EXPECT().ListDeliverables(ctx, "sp1").Return(nil, nil)
	tm.store.EXPECT().
		CreateDeliverable(ctx, gomock.Any()).
		Return(&schema.Deliverable{ID: "d1", SponsorshipID: "sp1", BenefitName: "Booth space"}, nil)
	tm.publisher.EXPECT().PublishEvent(ctx, gomock.Any()).Return(nil)

	outcome, err := tm.service.GenerateForSponsorship(ctx, "sp1", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Created)
}

func TestService_GenerateForEdition_BestEffort(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()

	benefits := []domain.Benefit{
		{Name: "Booth space", Included: true},
	}

	tm.store.EXPECT().
		ListSponsorshipsByStatus(ctx, "ed1", domain.StatusConfirmed).
		Return([]schema.Sponsorship{{ID: "sp1"}, {ID: "sp2"}, {ID: "sp3"}}, nil)

	// sp1 succeeds
	tm.store.EXPECT().
		GetSponsorship(ctx, "sp1", store.ExpandPackage).
		Return(confirmedSponsorship("sp1", benefits), nil)
	tm.store.EXPECT().ListDeliverables(ctx, "sp1").Return(nil, nil)
	tm.store.EXPECT().
		CreateDeliverable(ctx, gomock.Any()).
		Return(&schema.Deliverable{ID: "d1", SponsorshipID: "sp1"}, nil)

	// sp2 fails
	tm.store.EXPECT().
		GetSponsorship(ctx, "sp2", store.ExpandPackage).
		Return(nil, errors.New("store unavailable"))

	// sp3 is already covered
	tm.store.EXPECT().
		GetSponsorship(ctx, "sp3", store.ExpandPackage).
		Return(confirmedSponsorship("sp3", benefits), nil)
	tm.store.EXPECT().ListDeliverables(ctx, "sp3").Return([]schema.Deliverable{
		{ID: "d2", SponsorshipID: "sp3", BenefitName: "Booth space"},
	}, nil)

	tm.publisher.EXPECT().PublishEvent(ctx, gomock.Any()).Return(nil).AnyTimes()

	batch, err := tm.service.GenerateForEdition(ctx, "ed1", nil)
	require.NoError(t, err)

	assert.NotEmpty(t, batch.BatchID)
	assert.Equal(t, "ed1", batch.EditionID)
	assert.Equal(t, 1, batch.TotalCreated)
	assert.Equal(t, 1, batch.TotalSkipped)
	require.Len(t, batch.Outcomes, 3)

	assert.Equal(t, "sp1", batch.Outcomes[0].SponsorshipID)
	assert.Equal(t, 1, batch.Outcomes[0].Created)
	assert.Empty(t, batch.Outcomes[0].Error)

	assert.Equal(t, "sp2", batch.Outcomes[1].SponsorshipID)
	assert.Contains(t, batch.Outcomes[1].Error, "store unavailable")

	assert.Equal(t, "sp3", batch.Outcomes[2].SponsorshipID)
	assert.Equal(t, 1, batch.Outcomes[2].Skipped)
}

func TestService_UpdateStatus_InvalidTransition(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	tm.store.EXPECT().
		GetDeliverable(ctx, "d1").
		Return(&schema.Deliverable{ID: "d1", Status: domain.DeliverablePending}, nil)

	_, err := tm.service.UpdateStatus(ctx, "d1", domain.DeliverablePending, "")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestService_UpdateStatus_NonDeliveredDoesNotNotify(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	tm.store.EXPECT().
		GetDeliverable(ctx, "d1").
		Return(&schema.Deliverable{ID: "d1", Status: domain.DeliverablePending}, nil)
	tm.store.EXPECT().
		UpdateDeliverable(ctx, "d1", gomock.Any()).
		Return(&schema.Deliverable{ID: "d1", SponsorshipID: "sp1", Status: domain.DeliverableInProgress}, nil)

	// No publisher or mailer expectations: moving to in_progress is silent
	updated, err := tm.service.UpdateStatus(ctx, "d1", domain.DeliverableInProgress, "GopherConf")
	require.NoError(t, err)
	assert.Equal(t, domain.DeliverableInProgress, updated.Status)
}

func TestService_UpdateStatus_DeliveredNotifies(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()

	expanded := &schema.Deliverable{
		ID:            "d1",
		SponsorshipID: "sp1",
		BenefitName:   "Booth space",
		Status:        domain.DeliverableDelivered,
		Expand: schema.DeliverableExpand{
			Sponsorship: &schema.Sponsorship{
				ID: "sp1",
				Expand: schema.SponsorshipExpand{
					Sponsor: &schema.Sponsor{
						Name:         "Acme Corp",
						ContactName:  "Dana",
						ContactEmail: "dana@acme.example",
					},
				},
			},
		},
	}

	tm.store.EXPECT().
		GetDeliverable(ctx, "d1").
		Return(&schema.Deliverable{ID: "d1", Status: domain.DeliverableInProgress}, nil)
	tm.store.EXPECT().
		UpdateDeliverable(ctx, "d1", gomock.Any()).
		Return(&schema.Deliverable{ID: "d1", SponsorshipID: "sp1", Status: domain.DeliverableDelivered}, nil)
	tm.publisher.EXPECT().
		PublishEvent(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.Event) error {
			assert.Equal(t, domain.EventTypeDelivered, event.EventType)
			return nil
		})
	tm.store.EXPECT().
		GetDeliverable(ctx, "d1", store.ExpandSponsorshipSponsor).
		Return(expanded, nil)
	tm.mailer.EXPECT().
		Send(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msg mailer.Message) mailer.Result {
			assert.Equal(t, "dana@acme.example", msg.To)
			assert.Contains(t, msg.Subject, "Booth space")
			return mailer.Result{Success: true}
		})

	_, err := tm.service.UpdateStatus(ctx, "d1", domain.DeliverableDelivered, "GopherConf")
	require.NoError(t, err)
}

func TestService_MarkAsDelivered(t *testing.T) {
	tm := setupTestServiceNoMailer(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()

	tm.store.EXPECT().
		GetDeliverable(ctx, "d1").
		Return(&schema.Deliverable{ID: "d1", Status: domain.DeliverablePending}, nil)
	tm.store.EXPECT().
		UpdateDeliverable(ctx, "d1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fields schema.DeliverableFields) (*schema.Deliverable, error) {
			require.NotNil(t, fields.Status)
			assert.Equal(t, domain.DeliverableDelivered, *fields.Status)
			require.NotNil(t, fields.DeliveredAt)
			assert.Equal(t, now, fields.DeliveredAt.Time)
			require.NotNil(t, fields.Notes)
			assert.Equal(t, "shipped with tracking", *fields.Notes)
			return &schema.Deliverable{ID: "d1", SponsorshipID: "sp1", Status: domain.DeliverableDelivered}, nil
		})
	tm.publisher.EXPECT().PublishEvent(ctx, gomock.Any()).Return(nil)

	updated, err := tm.service.MarkAsDelivered(ctx, "d1", "GopherConf", "shipped with tracking")
	require.NoError(t, err)
	assert.Equal(t, domain.DeliverableDelivered, updated.Status)
}

func TestService_MarkAsDelivered_AlreadyDelivered(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	tm.store.EXPECT().
		GetDeliverable(ctx, "d1").
		Return(&schema.Deliverable{ID: "d1", Status: domain.DeliverableDelivered}, nil)

	_, err := tm.service.MarkAsDelivered(ctx, "d1", "GopherConf", "")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestService_NotifyDelivery_MailerNotConfigured(t *testing.T) {
	tm := setupTestServiceNoMailer(t)
	defer tearDownTestService(tm)

	result := tm.service.NotifyDelivery(context.Background(), &schema.Deliverable{}, "GopherConf")
	assert.False(t, result.Success)
	assert.Equal(t, "Email service not configured", result.Error)
}

func TestService_NotifyDelivery_NoContactEmail(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	d := &schema.Deliverable{
		ID: "d1",
		Expand: schema.DeliverableExpand{
			Sponsorship: &schema.Sponsorship{
				Expand: schema.SponsorshipExpand{
					Sponsor: &schema.Sponsor{Name: "Acme Corp"},
				},
			},
		},
	}

	result := tm.service.NotifyDelivery(context.Background(), d, "GopherConf")
	assert.False(t, result.Success)
	assert.Equal(t, "No contact email for sponsor", result.Error)
}

func TestService_NotifyDelivery_MissingExpansion(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	result := tm.service.NotifyDelivery(context.Background(), &schema.Deliverable{ID: "d1"}, "GopherConf")
	assert.False(t, result.Success)
	assert.Equal(t, "No contact email for sponsor", result.Error)
}

func TestService_Summarize(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now)

	past := schema.NewDateTime(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	soon := schema.NewDateTime(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))

	benefits := []domain.Benefit{
		{Name: "Logo on website", Included: true},
		{Name: "Booth space", Included: true},
	}
	deliverables := []schema.Deliverable{
		{ID: "d1", BenefitName: "Logo on website", Status: domain.DeliverableDelivered, DueDate: past},
		{ID: "d2", BenefitName: "Booth space", Status: domain.DeliverablePending, DueDate: past},
		{ID: "d3", BenefitName: "Keynote slot", Status: domain.DeliverableInProgress, DueDate: soon},
	}

	tm.store.EXPECT().
		GetSponsorship(ctx, "sp1", store.ExpandPackage).
		Return(confirmedSponsorship("sp1", benefits), nil)
	tm.store.EXPECT().ListDeliverables(ctx, "sp1").Return(deliverables, nil)

	summary, err := tm.service.Summarize(ctx, "sp1")
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, map[string]int{
		"pending":     1,
		"in_progress": 1,
		"delivered":   1,
	}, summary.ByStatus)
	// d2 is past due and not delivered; d1 is past due but delivered
	assert.Equal(t, 1, summary.Overdue)
	// d3 is due within the seven-day window
	assert.Equal(t, 1, summary.DueSoon)
	assert.Equal(t, []string{"Keynote slot"}, summary.StaleBenefits)
	assert.Equal(t, 33, summary.CompletionPercent)
}

func TestService_Summarize_Empty(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	ctx := context.Background()
	tm.clock.EXPECT().Now().Return(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))

	tm.store.EXPECT().
		GetSponsorship(ctx, "sp1", store.ExpandPackage).
		Return(&schema.Sponsorship{ID: "sp1"}, nil)
	tm.store.EXPECT().ListDeliverables(ctx, "sp1").Return(nil, nil)

	summary, err := tm.service.Summarize(ctx, "sp1")
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, 0, summary.CompletionPercent)
	assert.Equal(t, map[string]int{
		"pending":     0,
		"in_progress": 0,
		"delivered":   0,
	}, summary.ByStatus)
}
