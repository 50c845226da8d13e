package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusreach_backend/internals/apperr"
	"campusreach_backend/internals/constants"
	"campusreach_backend/internals/features/reports/activity/dto"
	"campusreach_backend/internals/features/reports/activity/model"
	"campusreach_backend/internals/features/reports/workflow"
)

type mockRepository struct {
	createFunc              func(ctx context.Context, report *model.ActivityReportModel) error
	findByIDFunc            func(ctx context.Context, id uuid.UUID) (*model.ActivityReportModel, error)
	findByScopeAndMonthFunc func(ctx context.Context, fellowshipID uuid.UUID, month time.Time) (*model.ActivityReportModel, error)
	saveFunc                func(ctx context.Context, report *model.ActivityReportModel) error
	deleteFunc              func(ctx context.Context, id uuid.UUID) error
	listFunc                func(ctx context.Context, params ListParams) ([]model.ActivityReportModel, int64, error)
}

func (m *mockRepository) Create(ctx context.Context, report *model.ActivityReportModel) error {
	return m.createFunc(ctx, report)
}

func (m *mockRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ActivityReportModel, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockRepository) FindByScopeAndMonth(ctx context.Context, fellowshipID uuid.UUID, month time.Time) (*model.ActivityReportModel, error) {
	return m.findByScopeAndMonthFunc(ctx, fellowshipID, month)
}

func (m *mockRepository) Save(ctx context.Context, report *model.ActivityReportModel) error {
	return m.saveFunc(ctx, report)
}

func (m *mockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFunc(ctx, id)
}

func (m *mockRepository) List(ctx context.Context, params ListParams) ([]model.ActivityReportModel, int64, error) {
	return m.listFunc(ctx, params)
}

type mockDirectory struct {
	zoneOfFellowshipFunc    func(ctx context.Context, fellowshipID uuid.UUID) (uuid.UUID, error)
	fellowshipIDsInZoneFunc func(ctx context.Context, zoneID uuid.UUID) ([]uuid.UUID, error)
}

func (m *mockDirectory) ZoneIDOfFellowship(ctx context.Context, fellowshipID uuid.UUID) (uuid.UUID, error) {
	return m.zoneOfFellowshipFunc(ctx, fellowshipID)
}

func (m *mockDirectory) FellowshipIDsInZone(ctx context.Context, zoneID uuid.UUID) ([]uuid.UUID, error) {
	return m.fellowshipIDsInZoneFunc(ctx, zoneID)
}

var (
	zoneA        = uuid.New()
	fellowshipA1 = uuid.New()
)

func anyZone(ctx context.Context, fellowshipID uuid.UUID) (uuid.UUID, error) {
	return zoneA, nil
}

func noExisting(ctx context.Context, fellowshipID uuid.UUID, month time.Time) (*model.ActivityReportModel, error) {
	return nil, apperr.NotFound("Activity report not found")
}

func president(fellowshipID uuid.UUID) workflow.Actor {
	return workflow.Actor{ID: uuid.New(), Role: constants.RoleFellowshipPresident, FellowshipID: &fellowshipID}
}

func intPtr(v int) *int { return &v }

func TestSubmit_CreatesPendingWithPeriod(t *testing.T) {
	var created *model.ActivityReportModel
	repo := &mockRepository{
		findByScopeAndMonthFunc: noExisting,
		createFunc: func(ctx context.Context, report *model.ActivityReportModel) error {
			created = report
			return nil
		},
	}
	svc := NewActivityReportService(repo, &mockDirectory{zoneOfFellowshipFunc: anyZone})

	resp, err := svc.Submit(context.Background(), president(fellowshipA1), dto.SubmitActivityReportRequest{
		Month:           3,
		Year:            2025,
		ServicesHeld:    4,
		TotalAttendance: 180,
		FirstTimers:     12,
		NewConverts:     5,
		FollowUpsMade:   9,
		PrayerMeetings:  8,
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, workflow.StatusPending, resp.Status)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), resp.Month)
	assert.Equal(t, 180, resp.TotalAttendance)

	// activity periods share the financial bounds: 3rd Sunday of the
	// previous month through the 2nd Sunday of the month
	assert.Equal(t, time.Date(2025, time.February, 16, 0, 0, 0, 0, time.UTC), resp.Period.Start)
	assert.Equal(t, 9, resp.Period.End.Day())
}

func TestSubmit_DuplicateMonthConflicts(t *testing.T) {
	repo := &mockRepository{
		findByScopeAndMonthFunc: func(ctx context.Context, fellowshipID uuid.UUID, month time.Time) (*model.ActivityReportModel, error) {
			return &model.ActivityReportModel{}, nil
		},
	}
	svc := NewActivityReportService(repo, &mockDirectory{zoneOfFellowshipFunc: anyZone})

	_, err := svc.Submit(context.Background(), president(fellowshipA1), dto.SubmitActivityReportRequest{
		Month: 3,
		Year:  2025,
	})
	assert.True(t, apperr.IsConflict(err))
}

func TestSubmit_NegativeCountRejected(t *testing.T) {
	svc := NewActivityReportService(&mockRepository{}, &mockDirectory{})

	_, err := svc.Submit(context.Background(), president(fellowshipA1), dto.SubmitActivityReportRequest{
		Month:        3,
		Year:         2025,
		ServicesHeld: -1,
	})
	assert.True(t, apperr.IsValidation(err))
}

func TestUpdate_PatchesOnlyProvidedFields(t *testing.T) {
	actor := president(fellowshipA1)
	report := &model.ActivityReportModel{
		ActivityReportID:              uuid.New(),
		ActivityReportFellowshipID:    fellowshipA1,
		ActivityReportMonth:           time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		ActivityReportSubmittedBy:     actor.ID,
		ActivityReportStatus:          workflow.StatusPending,
		ActivityReportServicesHeld:    4,
		ActivityReportTotalAttendance: 180,
	}
	repo := &mockRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.ActivityReportModel, error) { return report, nil },
		saveFunc:     func(ctx context.Context, r *model.ActivityReportModel) error { return nil },
	}
	svc := NewActivityReportService(repo, &mockDirectory{})

	resp, err := svc.Update(context.Background(), actor, report.ActivityReportID, dto.UpdateActivityReportRequest{
		TotalAttendance: intPtr(205),
	})
	require.NoError(t, err)
	assert.Equal(t, 205, resp.TotalAttendance)
	assert.Equal(t, 4, resp.ServicesHeld)
}

func TestUpdate_DecidedReportRefusedForSubmitter(t *testing.T) {
	actor := president(fellowshipA1)
	report := &model.ActivityReportModel{
		ActivityReportID:           uuid.New(),
		ActivityReportFellowshipID: fellowshipA1,
		ActivityReportSubmittedBy:  actor.ID,
		ActivityReportStatus:       workflow.StatusRejected,
	}
	repo := &mockRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.ActivityReportModel, error) { return report, nil },
	}
	svc := NewActivityReportService(repo, &mockDirectory{})

	_, err := svc.Update(context.Background(), actor, report.ActivityReportID, dto.UpdateActivityReportRequest{})
	assert.True(t, apperr.IsConflict(err))
}

func TestDecide_RejectStoresReason(t *testing.T) {
	report := &model.ActivityReportModel{
		ActivityReportID:           uuid.New(),
		ActivityReportFellowshipID: fellowshipA1,
		ActivityReportMonth:        time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		ActivityReportSubmittedBy:  uuid.New(),
		ActivityReportStatus:       workflow.StatusPending,
	}
	repo := &mockRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.ActivityReportModel, error) { return report, nil },
		saveFunc:     func(ctx context.Context, r *model.ActivityReportModel) error { return nil },
	}
	svc := NewActivityReportService(repo, &mockDirectory{zoneOfFellowshipFunc: anyZone})

	reason := "attendance figures do not match the service records"
	actor := workflow.Actor{ID: uuid.New(), Role: constants.RoleZoneCoordinator, ZoneID: &zoneA}
	resp, err := svc.Decide(context.Background(), actor, report.ActivityReportID, dto.DecisionRequest{
		Decision:        workflow.StatusRejected,
		RejectionReason: &reason,
	})
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusRejected, resp.Status)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, reason, *resp.RejectionReason)
}
