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
	"campusreach_backend/internals/features/reports/outreach/dto"
	"campusreach_backend/internals/features/reports/outreach/model"
	"campusreach_backend/internals/features/reports/workflow"
)

type mockRepository struct {
	createFunc              func(ctx context.Context, report *model.OutreachReportModel) error
	findByIDFunc            func(ctx context.Context, id uuid.UUID) (*model.OutreachReportModel, error)
	findByScopeAndMonthFunc func(ctx context.Context, userID uuid.UUID, month time.Time) (*model.OutreachReportModel, error)
	saveFunc                func(ctx context.Context, report *model.OutreachReportModel) error
	deleteFunc              func(ctx context.Context, id uuid.UUID) error
	listFunc                func(ctx context.Context, params ListParams) ([]model.OutreachReportModel, int64, error)
}

func (m *mockRepository) Create(ctx context.Context, report *model.OutreachReportModel) error {
	return m.createFunc(ctx, report)
}

func (m *mockRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.OutreachReportModel, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockRepository) FindByScopeAndMonth(ctx context.Context, userID uuid.UUID, month time.Time) (*model.OutreachReportModel, error) {
	return m.findByScopeAndMonthFunc(ctx, userID, month)
}

func (m *mockRepository) Save(ctx context.Context, report *model.OutreachReportModel) error {
	return m.saveFunc(ctx, report)
}

func (m *mockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFunc(ctx, id)
}

func (m *mockRepository) List(ctx context.Context, params ListParams) ([]model.OutreachReportModel, int64, error) {
	return m.listFunc(ctx, params)
}

type mockUserLookup struct {
	fellowshipIDOfUserFunc func(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error)
}

func (m *mockUserLookup) FellowshipIDOfUser(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error) {
	return m.fellowshipIDOfUserFunc(ctx, userID)
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

func member(fellowshipID uuid.UUID) workflow.Actor {
	return workflow.Actor{ID: uuid.New(), Role: constants.RoleMember, FellowshipID: &fellowshipID}
}

func noExisting(ctx context.Context, userID uuid.UUID, month time.Time) (*model.OutreachReportModel, error) {
	return nil, apperr.NotFound("Outreach report not found")
}

func memberLookup(fellowshipID uuid.UUID) *mockUserLookup {
	return &mockUserLookup{
		fellowshipIDOfUserFunc: func(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error) {
			return &fellowshipID, nil
		},
	}
}

func TestSubmit_SnapshotsFellowshipAndDerivesTotals(t *testing.T) {
	actor := member(fellowshipA1)
	var created *model.OutreachReportModel
	repo := &mockRepository{
		findByScopeAndMonthFunc: noExisting,
		createFunc: func(ctx context.Context, report *model.OutreachReportModel) error {
			created = report
			return nil
		},
	}
	svc := NewOutreachReportService(repo, memberLookup(fellowshipA1), &mockDirectory{})

	resp, err := svc.Submit(context.Background(), actor, dto.SubmitOutreachReportRequest{
		Month: 3,
		Year:  2025,
		Entries: []dto.WitnessingItem{
			{Location: "Faculty of science car park", ContactCount: 12, SoulsWon: 2, FollowUpPlanned: true},
			{Location: "Moremi hall", ContactCount: 7, SoulsWon: 1},
		},
		AreasCovered: []string{"Akoka"},
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, actor.ID, resp.UserID)
	require.NotNil(t, resp.FellowshipID)
	assert.Equal(t, fellowshipA1, *resp.FellowshipID)
	assert.Equal(t, 19, resp.TotalContacts)
	assert.Equal(t, 3, resp.TotalSoulsWon)

	// March 2025 under the basic outreach rule: 3rd Sunday of February
	// through the 2nd Sunday of March
	assert.Equal(t, time.Date(2025, time.February, 16, 0, 0, 0, 0, time.UTC), resp.Period.Start)
	assert.Equal(t, 9, resp.Period.End.Day())
}

func TestSubmit_MemberCannotFileForAnotherUser(t *testing.T) {
	svc := NewOutreachReportService(&mockRepository{}, memberLookup(fellowshipA1), &mockDirectory{})
	other := uuid.New()

	_, err := svc.Submit(context.Background(), member(fellowshipA1), dto.SubmitOutreachReportRequest{
		UserID: &other,
		Month:  3,
		Year:   2025,
	})
	assert.True(t, apperr.IsAuthorization(err))
}

func TestSubmit_AdminFilesOnBehalfOfMember(t *testing.T) {
	owner := uuid.New()
	var created *model.OutreachReportModel
	repo := &mockRepository{
		findByScopeAndMonthFunc: noExisting,
		createFunc: func(ctx context.Context, report *model.OutreachReportModel) error {
			created = report
			return nil
		},
	}
	svc := NewOutreachReportService(repo, memberLookup(fellowshipA1), &mockDirectory{})
	actor := workflow.Actor{ID: uuid.New(), Role: constants.RoleAdmin}

	resp, err := svc.Submit(context.Background(), actor, dto.SubmitOutreachReportRequest{
		UserID: &owner,
		Month:  3,
		Year:   2025,
	})
	require.NoError(t, err)
	assert.Equal(t, owner, resp.UserID)
	assert.Equal(t, actor.ID, created.OutreachReportSubmittedBy)
}

func TestSubmit_DuplicateMonthConflicts(t *testing.T) {
	repo := &mockRepository{
		findByScopeAndMonthFunc: func(ctx context.Context, userID uuid.UUID, month time.Time) (*model.OutreachReportModel, error) {
			return &model.OutreachReportModel{}, nil
		},
	}
	svc := NewOutreachReportService(repo, memberLookup(fellowshipA1), &mockDirectory{})

	_, err := svc.Submit(context.Background(), member(fellowshipA1), dto.SubmitOutreachReportRequest{
		Month: 3,
		Year:  2025,
	})
	assert.True(t, apperr.IsConflict(err))
}

func TestDecide_CoordinatorUsesFellowshipSnapshot(t *testing.T) {
	report := &model.OutreachReportModel{
		OutreachReportID:           uuid.New(),
		OutreachReportUserID:       uuid.New(),
		OutreachReportFellowshipID: &fellowshipA1,
		OutreachReportMonth:        time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		OutreachReportSubmittedBy:  uuid.New(),
		OutreachReportStatus:       workflow.StatusPending,
	}
	repo := &mockRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.OutreachReportModel, error) { return report, nil },
		saveFunc:     func(ctx context.Context, r *model.OutreachReportModel) error { return nil },
	}
	dir := &mockDirectory{
		zoneOfFellowshipFunc: func(ctx context.Context, fellowshipID uuid.UUID) (uuid.UUID, error) {
			return zoneA, nil
		},
	}
	svc := NewOutreachReportService(repo, memberLookup(fellowshipA1), dir)

	actor := workflow.Actor{ID: uuid.New(), Role: constants.RoleZoneCoordinator, ZoneID: &zoneA}
	resp, err := svc.Decide(context.Background(), actor, report.OutreachReportID, dto.DecisionRequest{
		Decision: workflow.StatusApproved,
	})
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusApproved, resp.Status)
}

func TestDecide_SnapshotlessReportIsAdminOnly(t *testing.T) {
	report := &model.OutreachReportModel{
		OutreachReportID:          uuid.New(),
		OutreachReportUserID:      uuid.New(),
		OutreachReportMonth:       time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		OutreachReportSubmittedBy: uuid.New(),
		OutreachReportStatus:      workflow.StatusPending,
	}
	repo := &mockRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.OutreachReportModel, error) { return report, nil },
		saveFunc:     func(ctx context.Context, r *model.OutreachReportModel) error { return nil },
	}
	svc := NewOutreachReportService(repo, memberLookup(fellowshipA1), &mockDirectory{})

	t.Run("coordinator refused", func(t *testing.T) {
		actor := workflow.Actor{ID: uuid.New(), Role: constants.RoleZoneCoordinator, ZoneID: &zoneA}
		_, err := svc.Decide(context.Background(), actor, report.OutreachReportID, dto.DecisionRequest{
			Decision: workflow.StatusApproved,
		})
		assert.True(t, apperr.IsAuthorization(err))
	})

	t.Run("admin approves", func(t *testing.T) {
		actor := workflow.Actor{ID: uuid.New(), Role: constants.RoleAdmin}
		resp, err := svc.Decide(context.Background(), actor, report.OutreachReportID, dto.DecisionRequest{
			Decision: workflow.StatusApproved,
		})
		require.NoError(t, err)
		assert.Equal(t, workflow.StatusApproved, resp.Status)
	})
}

func TestUpdate_OwnerEditsWhilePending(t *testing.T) {
	actor := member(fellowshipA1)
	report := &model.OutreachReportModel{
		OutreachReportID:           uuid.New(),
		OutreachReportUserID:       actor.ID,
		OutreachReportFellowshipID: &fellowshipA1,
		OutreachReportMonth:        time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		OutreachReportSubmittedBy:  actor.ID,
		OutreachReportStatus:       workflow.StatusPending,
	}
	repo := &mockRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.OutreachReportModel, error) { return report, nil },
		saveFunc:     func(ctx context.Context, r *model.OutreachReportModel) error { return nil },
	}
	svc := NewOutreachReportService(repo, memberLookup(fellowshipA1), &mockDirectory{})

	resp, err := svc.Update(context.Background(), actor, report.OutreachReportID, dto.UpdateOutreachReportRequest{
		Entries: []dto.WitnessingItem{
			{Location: "Mariere hall", ContactCount: 20, SoulsWon: 4},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 20, resp.TotalContacts)
	assert.Equal(t, 4, resp.TotalSoulsWon)
}
