package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusreach_backend/internals/apperr"
	"campusreach_backend/internals/constants"
	"campusreach_backend/internals/features/reports/financial/dto"
	"campusreach_backend/internals/features/reports/financial/model"
	"campusreach_backend/internals/features/reports/workflow"
)

/* =======================================================
   MOCKS
   ======================================================= */

type mockRepository struct {
	createFunc                      func(ctx context.Context, report *model.FinancialReportModel) error
	findByIDFunc                    func(ctx context.Context, id uuid.UUID) (*model.FinancialReportModel, error)
	findByScopeAndMonthFunc         func(ctx context.Context, fellowshipID uuid.UUID, month time.Time) (*model.FinancialReportModel, error)
	findApprovedByScopeAndMonthFunc func(ctx context.Context, fellowshipID uuid.UUID, month time.Time) (*model.FinancialReportModel, error)
	saveFunc                        func(ctx context.Context, report *model.FinancialReportModel) error
	deleteFunc                      func(ctx context.Context, id uuid.UUID) error
	listFunc                        func(ctx context.Context, params ListParams) ([]model.FinancialReportModel, int64, error)
}

func (m *mockRepository) Create(ctx context.Context, report *model.FinancialReportModel) error {
	return m.createFunc(ctx, report)
}

func (m *mockRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.FinancialReportModel, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockRepository) FindByScopeAndMonth(ctx context.Context, fellowshipID uuid.UUID, month time.Time) (*model.FinancialReportModel, error) {
	return m.findByScopeAndMonthFunc(ctx, fellowshipID, month)
}

func (m *mockRepository) FindApprovedByScopeAndMonth(ctx context.Context, fellowshipID uuid.UUID, month time.Time) (*model.FinancialReportModel, error) {
	return m.findApprovedByScopeAndMonthFunc(ctx, fellowshipID, month)
}

func (m *mockRepository) Save(ctx context.Context, report *model.FinancialReportModel) error {
	return m.saveFunc(ctx, report)
}

func (m *mockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFunc(ctx, id)
}

func (m *mockRepository) List(ctx context.Context, params ListParams) ([]model.FinancialReportModel, int64, error) {
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
   FIXTURES
   ======================================================= */

var (
	zoneA        = uuid.New()
	fellowshipA1 = uuid.New()
)

func anyZone(ctx context.Context, fellowshipID uuid.UUID) (uuid.UUID, error) {
	return zoneA, nil
}

func noExisting(ctx context.Context, fellowshipID uuid.UUID, month time.Time) (*model.FinancialReportModel, error) {
	return nil, apperr.NotFound("Financial report not found")
}

func president(fellowshipID uuid.UUID) workflow.Actor {
	return workflow.Actor{ID: uuid.New(), Role: constants.RoleFellowshipPresident, FellowshipID: &fellowshipID}
}

func coordinator(zoneID uuid.UUID) workflow.Actor {
	return workflow.Actor{ID: uuid.New(), Role: constants.RoleZoneCoordinator, ZoneID: &zoneID}
}

func admin() workflow.Actor {
	return workflow.Actor{ID: uuid.New(), Role: constants.RoleAdmin}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func submitRequest() dto.SubmitFinancialReportRequest {
	return dto.SubmitFinancialReportRequest{
		Month:        3,
		Year:         2025,
		Offerings:    dec("1500.00"),
		Tithes:       dec("800.50"),
		SpecialSeeds: dec("200.00"),
		Expenses: []dto.ExpenseItem{
			{Description: "Hall rental", Amount: dec("300.00")},
			{Description: "Transport for visitation", Amount: dec("120.25")},
		},
	}
}

/* =======================================================
   SUBMIT
   ======================================================= */

func TestSubmit_DerivedFigures(t *testing.T) {
	var created *model.FinancialReportModel
	repo := &mockRepository{
		findByScopeAndMonthFunc:         noExisting,
		findApprovedByScopeAndMonthFunc: noExisting,
		createFunc: func(ctx context.Context, report *model.FinancialReportModel) error {
			created = report
			return nil
		},
	}
	svc := NewFinancialReportService(repo, &mockDirectory{zoneOfFellowshipFunc: anyZone})

	resp, err := svc.Submit(context.Background(), president(fellowshipA1), submitRequest())
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, workflow.StatusPending, resp.Status)
	assert.Equal(t, fellowshipA1, resp.FellowshipID)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), resp.Month)

	// no prior approved report, so balance b/d defaults to zero
	assert.True(t, resp.BalanceBroughtDown.IsZero())
	assert.True(t, resp.TotalExpenses.Equal(dec("420.25")))
	assert.True(t, resp.TotalIncome.Equal(dec("2500.50")))
	assert.True(t, resp.BalanceCarriedForward.Equal(dec("2080.25")))

	// the display period for March 2025 under the financial rule
	assert.Equal(t, time.Date(2025, time.February, 16, 0, 0, 0, 0, time.UTC), resp.Period.Start)
	assert.Equal(t, 9, resp.Period.End.Day())
	assert.Equal(t, time.March, resp.Period.End.Month())
}

func TestSubmit_CarriesForwardPreviousApprovedBalance(t *testing.T) {
	prev := &model.FinancialReportModel{
		FinancialReportStatus:                workflow.StatusApproved,
		FinancialReportBalanceCarriedForward: dec("510.75"),
	}
	repo := &mockRepository{
		findByScopeAndMonthFunc: noExisting,
		findApprovedByScopeAndMonthFunc: func(ctx context.Context, fellowshipID uuid.UUID, month time.Time) (*model.FinancialReportModel, error) {
			assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), month)
			return prev, nil
		},
		createFunc: func(ctx context.Context, report *model.FinancialReportModel) error { return nil },
	}
	svc := NewFinancialReportService(repo, &mockDirectory{zoneOfFellowshipFunc: anyZone})

	resp, err := svc.Submit(context.Background(), president(fellowshipA1), submitRequest())
	require.NoError(t, err)
	assert.True(t, resp.BalanceBroughtDown.Equal(dec("510.75")))
	assert.True(t, resp.TotalIncome.Equal(dec("3011.25")))
	assert.True(t, resp.BalanceCarriedForward.Equal(dec("2591.00")))
}

func TestSubmit_DuplicateMonthConflicts(t *testing.T) {
	repo := &mockRepository{
		findByScopeAndMonthFunc: func(ctx context.Context, fellowshipID uuid.UUID, month time.Time) (*model.FinancialReportModel, error) {
			return &model.FinancialReportModel{}, nil
		},
	}
	svc := NewFinancialReportService(repo, &mockDirectory{zoneOfFellowshipFunc: anyZone})

	_, err := svc.Submit(context.Background(), president(fellowshipA1), submitRequest())
	assert.True(t, apperr.IsConflict(err))
}

func TestSubmit_AdminRequiresExplicitFellowship(t *testing.T) {
	svc := NewFinancialReportService(&mockRepository{}, &mockDirectory{})

	_, err := svc.Submit(context.Background(), admin(), submitRequest())
	assert.True(t, apperr.IsValidation(err))
}

func TestSubmit_MemberRefused(t *testing.T) {
	svc := NewFinancialReportService(&mockRepository{}, &mockDirectory{})
	actor := workflow.Actor{ID: uuid.New(), Role: constants.RoleMember, FellowshipID: &fellowshipA1}

	_, err := svc.Submit(context.Background(), actor, submitRequest())
	assert.True(t, apperr.IsAuthorization(err))
}

func TestSubmit_InvalidMonthRejected(t *testing.T) {
	svc := NewFinancialReportService(&mockRepository{}, &mockDirectory{})
	req := submitRequest()
	req.Month = 13

	_, err := svc.Submit(context.Background(), president(fellowshipA1), req)
	assert.True(t, apperr.IsValidation(err))
}

/* =======================================================
   UPDATE
   ======================================================= */

func pendingReport(fellowshipID, submittedBy uuid.UUID) *model.FinancialReportModel {
	report := &model.FinancialReportModel{
		FinancialReportID:           uuid.New(),
		FinancialReportFellowshipID: fellowshipID,
		FinancialReportMonth:        time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		FinancialReportSubmittedBy:  submittedBy,
		FinancialReportStatus:       workflow.StatusPending,
		FinancialReportOfferings:    dec("1000.00"),
	}
	_ = applyFigures(report, []dto.ExpenseItem{{Description: "Hall rental", Amount: dec("250.00")}})
	return report
}

func TestUpdate_RecomputesTotals(t *testing.T) {
	actor := president(fellowshipA1)
	report := pendingReport(fellowshipA1, actor.ID)

	repo := &mockRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.FinancialReportModel, error) { return report, nil },
		saveFunc:     func(ctx context.Context, r *model.FinancialReportModel) error { return nil },
	}
	svc := NewFinancialReportService(repo, &mockDirectory{})

	resp, err := svc.Update(context.Background(), actor, report.FinancialReportID, dto.UpdateFinancialReportRequest{
		Offerings: func() *decimal.Decimal { d := dec("2000.00"); return &d }(),
		Expenses: []dto.ExpenseItem{
			{Description: "Hall rental", Amount: dec("250.00")},
			{Description: "Refreshments", Amount: dec("100.00")},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.TotalExpenses.Equal(dec("350.00")))
	assert.True(t, resp.TotalIncome.Equal(dec("2000.00")))
	assert.True(t, resp.BalanceCarriedForward.Equal(dec("1650.00")))
}

func TestUpdate_DecidedReportIsImmutableForSubmitter(t *testing.T) {
	actor := president(fellowshipA1)
	report := pendingReport(fellowshipA1, actor.ID)
	report.FinancialReportStatus = workflow.StatusApproved

	repo := &mockRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.FinancialReportModel, error) { return report, nil },
	}
	svc := NewFinancialReportService(repo, &mockDirectory{})

	_, err := svc.Update(context.Background(), actor, report.FinancialReportID, dto.UpdateFinancialReportRequest{})
	assert.True(t, apperr.IsConflict(err))
}

func TestUpdate_StrangerRefused(t *testing.T) {
	report := pendingReport(fellowshipA1, uuid.New())
	repo := &mockRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.FinancialReportModel, error) { return report, nil },
	}
	svc := NewFinancialReportService(repo, &mockDirectory{})

	_, err := svc.Update(context.Background(), president(fellowshipA1), report.FinancialReportID, dto.UpdateFinancialReportRequest{})
	assert.True(t, apperr.IsAuthorization(err))
}

/* =======================================================
   DECIDE
   ======================================================= */

func TestDecide_CoordinatorApprovesInOwnZone(t *testing.T) {
	report := pendingReport(fellowshipA1, uuid.New())
	var saved *model.FinancialReportModel
	repo := &mockRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.FinancialReportModel, error) { return report, nil },
		saveFunc: func(ctx context.Context, r *model.FinancialReportModel) error {
			saved = r
			return nil
		},
	}
	svc := NewFinancialReportService(repo, &mockDirectory{zoneOfFellowshipFunc: anyZone})

	resp, err := svc.Decide(context.Background(), coordinator(zoneA), report.FinancialReportID, dto.DecisionRequest{
		Decision: workflow.StatusApproved,
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, workflow.StatusApproved, resp.Status)
	assert.NotNil(t, resp.ApprovedBy)
	assert.NotNil(t, resp.ApprovalDate)
	assert.Nil(t, resp.RejectionReason)
}

func TestDecide_CoordinatorOutsideZoneRefused(t *testing.T) {
	report := pendingReport(fellowshipA1, uuid.New())
	repo := &mockRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.FinancialReportModel, error) { return report, nil },
	}
	svc := NewFinancialReportService(repo, &mockDirectory{zoneOfFellowshipFunc: anyZone})

	_, err := svc.Decide(context.Background(), coordinator(uuid.New()), report.FinancialReportID, dto.DecisionRequest{
		Decision: workflow.StatusApproved,
	})
	assert.True(t, apperr.IsAuthorization(err))
}

func TestDecide_RejectionRequiresReason(t *testing.T) {
	report := pendingReport(fellowshipA1, uuid.New())
	repo := &mockRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.FinancialReportModel, error) { return report, nil },
	}
	svc := NewFinancialReportService(repo, &mockDirectory{zoneOfFellowshipFunc: anyZone})

	_, err := svc.Decide(context.Background(), admin(), report.FinancialReportID, dto.DecisionRequest{
		Decision: workflow.StatusRejected,
	})
	assert.True(t, apperr.IsValidation(err))
}

func TestDecide_AlreadyDecidedConflicts(t *testing.T) {
	report := pendingReport(fellowshipA1, uuid.New())
	report.FinancialReportStatus = workflow.StatusRejected
	repo := &mockRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.FinancialReportModel, error) { return report, nil },
	}
	svc := NewFinancialReportService(repo, &mockDirectory{zoneOfFellowshipFunc: anyZone})

	_, err := svc.Decide(context.Background(), admin(), report.FinancialReportID, dto.DecisionRequest{
		Decision: workflow.StatusApproved,
	})
	assert.True(t, apperr.IsConflict(err))
}

/* =======================================================
   VISIBILITY
   ======================================================= */

func TestGetByID_HiddenReportReadsAsNotFound(t *testing.T) {
	report := pendingReport(fellowshipA1, uuid.New())
	repo := &mockRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.FinancialReportModel, error) { return report, nil },
	}
	svc := NewFinancialReportService(repo, &mockDirectory{})

	// a president who did not submit this report cannot see it
	_, err := svc.GetByID(context.Background(), president(fellowshipA1), report.FinancialReportID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestList_ScopesByActor(t *testing.T) {
	t.Run("coordinator lists own zone's fellowships", func(t *testing.T) {
		fellowships := []uuid.UUID{fellowshipA1, uuid.New()}
		repo := &mockRepository{
			listFunc: func(ctx context.Context, params ListParams) ([]model.FinancialReportModel, int64, error) {
				assert.False(t, params.Scope.All)
				assert.Equal(t, fellowships, params.Scope.FellowshipIDs)
				return nil, 0, nil
			},
		}
		dir := &mockDirectory{
			fellowshipIDsInZoneFunc: func(ctx context.Context, zoneID uuid.UUID) ([]uuid.UUID, error) {
				return fellowships, nil
			},
		}
		svc := NewFinancialReportService(repo, dir)

		_, _, err := svc.List(context.Background(), coordinator(zoneA), workflow.Filters{}, 20, 0)
		require.NoError(t, err)
	})

	t.Run("admin lists everything", func(t *testing.T) {
		repo := &mockRepository{
			listFunc: func(ctx context.Context, params ListParams) ([]model.FinancialReportModel, int64, error) {
				assert.True(t, params.Scope.All)
				return nil, 0, nil
			},
		}
		svc := NewFinancialReportService(repo, &mockDirectory{})

		_, _, err := svc.List(context.Background(), admin(), workflow.Filters{}, 20, 0)
		require.NoError(t, err)
	})

	t.Run("month filter without year is refused", func(t *testing.T) {
		svc := NewFinancialReportService(&mockRepository{}, &mockDirectory{})

		_, _, err := svc.List(context.Background(), admin(), workflow.Filters{Month: 3}, 20, 0)
		assert.True(t, apperr.IsValidation(err))
	})
}

/* =======================================================
   DELETE
   ======================================================= */

func TestDelete_SubmitterWhilePending(t *testing.T) {
	actor := president(fellowshipA1)
	report := pendingReport(fellowshipA1, actor.ID)
	deleted := false
	repo := &mockRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.FinancialReportModel, error) { return report, nil },
		deleteFunc: func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	svc := NewFinancialReportService(repo, &mockDirectory{})

	require.NoError(t, svc.Delete(context.Background(), actor, report.FinancialReportID))
	assert.True(t, deleted)
}

func TestDelete_DecidedReportRefusedForSubmitter(t *testing.T) {
	actor := president(fellowshipA1)
	report := pendingReport(fellowshipA1, actor.ID)
	report.FinancialReportStatus = workflow.StatusApproved
	repo := &mockRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.FinancialReportModel, error) { return report, nil },
	}
	svc := NewFinancialReportService(repo, &mockDirectory{})

	err := svc.Delete(context.Background(), actor, report.FinancialReportID)
	assert.True(t, apperr.IsConflict(err))
}
