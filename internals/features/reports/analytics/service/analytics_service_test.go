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
	"campusreach_backend/internals/features/reports/workflow"
)

type mockRepository struct {
	monthlySummaryFunc    func(ctx context.Context, scope workflow.ScopeFilter, month time.Time) (MonthlySummary, error)
	nationalDashboardFunc func(ctx context.Context, month time.Time) (NationalDashboard, error)
}

func (m *mockRepository) MonthlySummary(ctx context.Context, scope workflow.ScopeFilter, month time.Time) (MonthlySummary, error) {
	return m.monthlySummaryFunc(ctx, scope, month)
}

func (m *mockRepository) NationalDashboard(ctx context.Context, month time.Time) (NationalDashboard, error) {
	return m.nationalDashboardFunc(ctx, month)
}

type mockDirectory struct {
	fellowshipIDsInZoneFunc func(ctx context.Context, zoneID uuid.UUID) ([]uuid.UUID, error)
}

func (m *mockDirectory) ZoneIDOfFellowship(ctx context.Context, fellowshipID uuid.UUID) (uuid.UUID, error) {
	return uuid.Nil, apperr.NotFound("Fellowship not found")
}

func (m *mockDirectory) FellowshipIDsInZone(ctx context.Context, zoneID uuid.UUID) ([]uuid.UUID, error) {
	return m.fellowshipIDsInZoneFunc(ctx, zoneID)
}

func TestMonthlySummary_ScopesToCoordinatorZone(t *testing.T) {
	zoneID := uuid.New()
	fellowships := []uuid.UUID{uuid.New(), uuid.New()}

	repo := &mockRepository{
		monthlySummaryFunc: func(ctx context.Context, scope workflow.ScopeFilter, month time.Time) (MonthlySummary, error) {
			assert.False(t, scope.All)
			assert.Equal(t, fellowships, scope.FellowshipIDs)
			assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), month)
			return MonthlySummary{Month: month}, nil
		},
	}
	dir := &mockDirectory{
		fellowshipIDsInZoneFunc: func(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
			assert.Equal(t, zoneID, id)
			return fellowships, nil
		},
	}
	svc := NewAnalyticsService(repo, dir)

	actor := workflow.Actor{ID: uuid.New(), Role: constants.RoleZoneCoordinator, ZoneID: &zoneID}
	_, err := svc.MonthlySummary(context.Background(), actor, 2025, 3)
	require.NoError(t, err)
}

func TestMonthlySummary_InvalidMonthRejected(t *testing.T) {
	svc := NewAnalyticsService(&mockRepository{}, &mockDirectory{})
	actor := workflow.Actor{ID: uuid.New(), Role: constants.RoleAdmin}

	_, err := svc.MonthlySummary(context.Background(), actor, 2025, 0)
	assert.True(t, apperr.IsValidation(err))
}

func TestNationalDashboard_AdminOnly(t *testing.T) {
	repo := &mockRepository{
		nationalDashboardFunc: func(ctx context.Context, month time.Time) (NationalDashboard, error) {
			return NationalDashboard{Month: month}, nil
		},
	}
	svc := NewAnalyticsService(repo, &mockDirectory{})

	t.Run("admin allowed", func(t *testing.T) {
		actor := workflow.Actor{ID: uuid.New(), Role: constants.RoleAdmin}
		dashboard, err := svc.NationalDashboard(context.Background(), actor, 2025, 3)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), dashboard.Month)
	})

	t.Run("coordinator refused", func(t *testing.T) {
		zoneID := uuid.New()
		actor := workflow.Actor{ID: uuid.New(), Role: constants.RoleZoneCoordinator, ZoneID: &zoneID}
		_, err := svc.NationalDashboard(context.Background(), actor, 2025, 3)
		assert.True(t, apperr.IsAuthorization(err))
	})
}
