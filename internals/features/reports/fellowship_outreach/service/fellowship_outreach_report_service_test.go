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
	"campusreach_backend/internals/features/reports/fellowship_outreach/dto"
	"campusreach_backend/internals/features/reports/fellowship_outreach/model"
	"campusreach_backend/internals/features/reports/workflow"
)

type mockRepository struct {
	createFunc              func(ctx context.Context, report *model.FellowshipOutreachReportModel) error
	findByIDFunc            func(ctx context.Context, id uuid.UUID) (*model.FellowshipOutreachReportModel, error)
	findByScopeAndMonthFunc func(ctx context.Context, fellowshipID uuid.UUID, month time.Time) (*model.FellowshipOutreachReportModel, error)
	saveFunc                func(ctx context.Context, report *model.FellowshipOutreachReportModel) error
	deleteFunc              func(ctx context.Context, id uuid.UUID) error
	listFunc                func(ctx context.Context, params ListParams) ([]model.FellowshipOutreachReportModel, int64, error)
}

func (m *mockRepository) Create(ctx context.Context, report *model.FellowshipOutreachReportModel) error {
	return m.createFunc(ctx, report)
}

func (m *mockRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.FellowshipOutreachReportModel, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockRepository) FindByScopeAndMonth(ctx context.Context, fellowshipID uuid.UUID, month time.Time) (*model.FellowshipOutreachReportModel, error) {
	return m.findByScopeAndMonthFunc(ctx, fellowshipID, month)
}

func (m *mockRepository) Save(ctx context.Context, report *model.FellowshipOutreachReportModel) error {
	return m.saveFunc(ctx, report)
}

func (m *mockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFunc(ctx, id)
}

func (m *mockRepository) List(ctx context.Context, params ListParams) ([]model.FellowshipOutreachReportModel, int64, error) {
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

/* =======================================================
   ORGANIZATION FIXTURE: two zones, two fellowships each
   ======================================================= */

var (
	zoneA = uuid.New()
	zoneB = uuid.New()

	fellowshipA1 = uuid.New()
	fellowshipA2 = uuid.New()
	fellowshipB1 = uuid.New()
	fellowshipB2 = uuid.New()

	zoneOf = map[uuid.UUID]uuid.UUID{
		fellowshipA1: zoneA,
		fellowshipA2: zoneA,
		fellowshipB1: zoneB,
		fellowshipB2: zoneB,
	}
	fellowshipsOf = map[uuid.UUID][]uuid.UUID{
		zoneA: {fellowshipA1, fellowshipA2},
		zoneB: {fellowshipB1, fellowshipB2},
	}
)

func fixtureDirectory() *mockDirectory {
	return &mockDirectory{
		zoneOfFellowshipFunc: func(ctx context.Context, fellowshipID uuid.UUID) (uuid.UUID, error) {
			zone, ok := zoneOf[fellowshipID]
			if !ok {
				return uuid.Nil, apperr.NotFound("Fellowship not found")
			}
			return zone, nil
		},
		fellowshipIDsInZoneFunc: func(ctx context.Context, zoneID uuid.UUID) ([]uuid.UUID, error) {
			return fellowshipsOf[zoneID], nil
		},
	}
}

func noExisting(ctx context.Context, fellowshipID uuid.UUID, month time.Time) (*model.FellowshipOutreachReportModel, error) {
	return nil, apperr.NotFound("Fellowship outreach report not found")
}

func president(fellowshipID uuid.UUID) workflow.Actor {
	return workflow.Actor{ID: uuid.New(), Role: constants.RoleFellowshipPresident, FellowshipID: &fellowshipID}
}

func coordinator(zoneID uuid.UUID) workflow.Actor {
	return workflow.Actor{ID: uuid.New(), Role: constants.RoleZoneCoordinator, ZoneID: &zoneID}
}

/* =======================================================
   SUBMIT
   ======================================================= */

func TestSubmit_DerivesTotalsAndRuleBPeriod(t *testing.T) {
	repo := &mockRepository{
		findByScopeAndMonthFunc: noExisting,
		createFunc:              func(ctx context.Context, report *model.FellowshipOutreachReportModel) error { return nil },
	}
	svc := NewFellowshipOutreachReportService(repo, fixtureDirectory())

	resp, err := svc.Submit(context.Background(), president(fellowshipA1), dto.SubmitFellowshipOutreachReportRequest{
		Month: 3,
		Year:  2025,
		Visits: []dto.VisitItem{
			{Location: "Unilag hostel block C", VisitDate: time.Date(2025, time.February, 15, 10, 0, 0, 0, time.UTC), StudentsReached: 40, SoulsWon: 6},
			{Location: "Yaba tech campus gate", VisitDate: time.Date(2025, time.March, 8, 16, 0, 0, 0, time.UTC), StudentsReached: 25, SoulsWon: 3},
		},
		AreasCovered: []string{"Akoka", "Yaba"},
	})
	require.NoError(t, err)

	assert.Equal(t, 65, resp.TotalStudentsReached)
	assert.Equal(t, 9, resp.TotalSoulsWon)
	assert.Equal(t, []string{"Akoka", "Yaba"}, resp.AreasCovered)

	// March 2025 under the fellowship outreach rule runs from the Monday
	// after the 2nd Sunday of February through the 3rd Sunday of March
	assert.Equal(t, time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC), resp.Period.Start)
	assert.Equal(t, 16, resp.Period.End.Day())
	assert.Equal(t, time.March, resp.Period.End.Month())
}

func TestSubmit_VisitOutsidePeriodRejected(t *testing.T) {
	repo := &mockRepository{findByScopeAndMonthFunc: noExisting}
	svc := NewFellowshipOutreachReportService(repo, fixtureDirectory())

	_, err := svc.Submit(context.Background(), president(fellowshipA1), dto.SubmitFellowshipOutreachReportRequest{
		Month: 3,
		Year:  2025,
		Visits: []dto.VisitItem{
			// before the Feb 10 period start
			{Location: "Unilag hostel block C", VisitDate: time.Date(2025, time.February, 2, 10, 0, 0, 0, time.UTC), StudentsReached: 10},
		},
	})
	assert.True(t, apperr.IsValidation(err))
}

func TestSubmit_UnknownFellowshipRefused(t *testing.T) {
	svc := NewFellowshipOutreachReportService(&mockRepository{}, fixtureDirectory())
	unknown := uuid.New()
	actor := workflow.Actor{ID: uuid.New(), Role: constants.RoleAdmin}

	_, err := svc.Submit(context.Background(), actor, dto.SubmitFellowshipOutreachReportRequest{
		FellowshipID: &unknown,
		Month:        3,
		Year:         2025,
	})
	assert.True(t, apperr.IsNotFound(err))
}

/* =======================================================
   UPDATE
   ======================================================= */

func TestUpdate_RecomputesTotalsFromNewVisits(t *testing.T) {
	actor := president(fellowshipA1)
	report := &model.FellowshipOutreachReportModel{
		FellowshipOutreachReportID:           uuid.New(),
		FellowshipOutreachReportFellowshipID: fellowshipA1,
		FellowshipOutreachReportMonth:        time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		FellowshipOutreachReportSubmittedBy:  actor.ID,
		FellowshipOutreachReportStatus:       workflow.StatusPending,
	}
	repo := &mockRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.FellowshipOutreachReportModel, error) { return report, nil },
		saveFunc:     func(ctx context.Context, r *model.FellowshipOutreachReportModel) error { return nil },
	}
	svc := NewFellowshipOutreachReportService(repo, fixtureDirectory())

	resp, err := svc.Update(context.Background(), actor, report.FellowshipOutreachReportID, dto.UpdateFellowshipOutreachReportRequest{
		Visits: []dto.VisitItem{
			{Location: "Covenant campus chapel", VisitDate: time.Date(2025, time.March, 12, 9, 0, 0, 0, time.UTC), StudentsReached: 80, SoulsWon: 11},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 80, resp.TotalStudentsReached)
	assert.Equal(t, 11, resp.TotalSoulsWon)
	assert.Equal(t, 80, report.FellowshipOutreachReportTotalStudentsReached)
}

/* =======================================================
   ZONE VISIBILITY
   ======================================================= */

func TestList_CoordinatorSeesOnlyOwnZoneFellowships(t *testing.T) {
	repo := &mockRepository{
		listFunc: func(ctx context.Context, params ListParams) ([]model.FellowshipOutreachReportModel, int64, error) {
			assert.False(t, params.Scope.All)
			assert.ElementsMatch(t, []uuid.UUID{fellowshipA1, fellowshipA2}, params.Scope.FellowshipIDs)
			assert.NotContains(t, params.Scope.FellowshipIDs, fellowshipB1)
			assert.NotContains(t, params.Scope.FellowshipIDs, fellowshipB2)
			return nil, 0, nil
		},
	}
	svc := NewFellowshipOutreachReportService(repo, fixtureDirectory())

	_, _, err := svc.List(context.Background(), coordinator(zoneA), workflow.Filters{}, 20, 0)
	require.NoError(t, err)
}

func TestGetByID_CoordinatorBlockedOutsideZone(t *testing.T) {
	report := &model.FellowshipOutreachReportModel{
		FellowshipOutreachReportID:           uuid.New(),
		FellowshipOutreachReportFellowshipID: fellowshipB1,
		FellowshipOutreachReportMonth:        time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		FellowshipOutreachReportSubmittedBy:  uuid.New(),
		FellowshipOutreachReportStatus:       workflow.StatusPending,
	}
	repo := &mockRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.FellowshipOutreachReportModel, error) { return report, nil },
	}
	svc := NewFellowshipOutreachReportService(repo, fixtureDirectory())

	t.Run("own zone sees the report", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), coordinator(zoneB), report.FellowshipOutreachReportID)
		assert.NoError(t, err)
	})

	t.Run("other zone reads it as absent", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), coordinator(zoneA), report.FellowshipOutreachReportID)
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestDecide_CoordinatorBoundToOwnZone(t *testing.T) {
	report := &model.FellowshipOutreachReportModel{
		FellowshipOutreachReportID:           uuid.New(),
		FellowshipOutreachReportFellowshipID: fellowshipA2,
		FellowshipOutreachReportMonth:        time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		FellowshipOutreachReportSubmittedBy:  uuid.New(),
		FellowshipOutreachReportStatus:       workflow.StatusPending,
	}
	repo := &mockRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.FellowshipOutreachReportModel, error) { return report, nil },
		saveFunc:     func(ctx context.Context, r *model.FellowshipOutreachReportModel) error { return nil },
	}
	svc := NewFellowshipOutreachReportService(repo, fixtureDirectory())

	t.Run("outside zone refused", func(t *testing.T) {
		_, err := svc.Decide(context.Background(), coordinator(zoneB), report.FellowshipOutreachReportID, dto.DecisionRequest{
			Decision: workflow.StatusApproved,
		})
		assert.True(t, apperr.IsAuthorization(err))
	})

	t.Run("inside zone approves", func(t *testing.T) {
		resp, err := svc.Decide(context.Background(), coordinator(zoneA), report.FellowshipOutreachReportID, dto.DecisionRequest{
			Decision: workflow.StatusApproved,
		})
		require.NoError(t, err)
		assert.Equal(t, workflow.StatusApproved, resp.Status)
	})
}
