// internals/features/reports/financial/service/financial_report_service.go
package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"campusreach_backend/internals/apperr"
	"campusreach_backend/internals/constants"
	"campusreach_backend/internals/features/reports/financial/dto"
	"campusreach_backend/internals/features/reports/financial/model"
	"campusreach_backend/internals/features/reports/period"
	"campusreach_backend/internals/features/reports/workflow"
)

// Repository is the persistence contract the service depends on. The GORM
// implementation lives in the repository package; tests substitute a mock.
type Repository interface {
	Create(ctx context.Context, report *model.FinancialReportModel) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.FinancialReportModel, error)
	FindByScopeAndMonth(ctx context.Context, fellowshipID uuid.UUID, month time.Time) (*model.FinancialReportModel, error)
	FindApprovedByScopeAndMonth(ctx context.Context, fellowshipID uuid.UUID, month time.Time) (*model.FinancialReportModel, error)
	Save(ctx context.Context, report *model.FinancialReportModel) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params ListParams) ([]model.FinancialReportModel, int64, error)
}

type ListParams struct {
	Scope   workflow.ScopeFilter
	Filters workflow.Filters
	Limit   int
	Offset  int
}

type FinancialReportService struct {
	repo      Repository
	directory workflow.Directory
	validate  *validator.Validate
	now       func() time.Time
}

func NewFinancialReportService(repo Repository, directory workflow.Directory) *FinancialReportService {
	return &FinancialReportService{
		repo:      repo,
		directory: directory,
		validate:  validator.New(),
		now:       time.Now,
	}
}

/* =======================================================
   DERIVED FIGURES
   ======================================================= */

// applyFigures recomputes every derived column from the stored figures and
// the current expense line items. Pure arithmetic, shared by submit and
// update so the totals can never drift from the detail.
func applyFigures(report *model.FinancialReportModel, expenses []dto.ExpenseItem) error {
	raw, err := dto.MarshalExpenses(expenses)
	if err != nil {
		return err
	}
	report.FinancialReportExpenses = raw
	report.FinancialReportTotalExpenses = dto.SumExpenses(expenses)
	report.FinancialReportTotalIncome = report.FinancialReportOfferings.
		Add(report.FinancialReportTithes).
		Add(report.FinancialReportSpecialSeeds).
		Add(report.FinancialReportBalanceBroughtDown)
	report.FinancialReportBalanceCarriedForward = report.FinancialReportTotalIncome.
		Sub(report.FinancialReportTotalExpenses)
	return nil
}

// balanceBroughtDown looks up the previous calendar month's approved report
// and carries its closing balance forward; zero when none exists.
func (s *FinancialReportService) balanceBroughtDown(ctx context.Context, fellowshipID uuid.UUID, month time.Time) (decimal.Decimal, error) {
	prev := month.AddDate(0, -1, 0)
	report, err := s.repo.FindApprovedByScopeAndMonth(ctx, fellowshipID, prev)
	if apperr.IsNotFound(err) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}
	return report.FinancialReportBalanceCarriedForward, nil
}

func (s *FinancialReportService) respond(m *model.FinancialReportModel) (dto.FinancialReportResponse, error) {
	window, err := period.Resolve(m.FinancialReportMonth.Year(), m.FinancialReportMonth.Month(), period.FinancialRule)
	if err != nil {
		return dto.FinancialReportResponse{}, err
	}
	return dto.ToFinancialReportResponse(m, window)
}

/* =======================================================
   OPERATIONS
   ======================================================= */

func (s *FinancialReportService) Submit(ctx context.Context, actor workflow.Actor, req dto.SubmitFinancialReportRequest) (dto.FinancialReportResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.FinancialReportResponse{}, apperr.Validation(err.Error())
	}
	fellowshipID, err := workflow.ResolveFellowshipScope(actor, constants.FellowshipSubmitterRoles, req.FellowshipID)
	if err != nil {
		return dto.FinancialReportResponse{}, err
	}
	// the fellowship must exist; this also surfaces bad admin input early
	if _, err := s.directory.ZoneIDOfFellowship(ctx, fellowshipID); err != nil {
		return dto.FinancialReportResponse{}, err
	}
	month := workflow.NormalizeMonth(req.Year, time.Month(req.Month))
	// the period must resolve before anything is stored
	if _, err := period.Resolve(req.Year, time.Month(req.Month), period.FinancialRule); err != nil {
		return dto.FinancialReportResponse{}, err
	}

	if _, err := s.repo.FindByScopeAndMonth(ctx, fellowshipID, month); err == nil {
		return dto.FinancialReportResponse{}, apperr.Conflict("a financial report already exists for this fellowship and month")
	} else if !apperr.IsNotFound(err) {
		return dto.FinancialReportResponse{}, err
	}

	broughtDown, err := s.balanceBroughtDown(ctx, fellowshipID, month)
	if err != nil {
		return dto.FinancialReportResponse{}, err
	}

	report := model.FinancialReportModel{
		FinancialReportFellowshipID:       fellowshipID,
		FinancialReportMonth:              month,
		FinancialReportSubmittedBy:        actor.ID,
		FinancialReportStatus:             workflow.StatusPending,
		FinancialReportOfferings:          req.Offerings,
		FinancialReportTithes:             req.Tithes,
		FinancialReportSpecialSeeds:       req.SpecialSeeds,
		FinancialReportBalanceBroughtDown: broughtDown,
	}
	if err := applyFigures(&report, req.Expenses); err != nil {
		return dto.FinancialReportResponse{}, err
	}
	if err := s.repo.Create(ctx, &report); err != nil {
		return dto.FinancialReportResponse{}, err
	}
	return s.respond(&report)
}

func (s *FinancialReportService) Update(ctx context.Context, actor workflow.Actor, id uuid.UUID, req dto.UpdateFinancialReportRequest) (dto.FinancialReportResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.FinancialReportResponse{}, apperr.Validation(err.Error())
	}
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.FinancialReportResponse{}, err
	}
	if err := workflow.EnsureCanModify(actor, report.FinancialReportSubmittedBy, report.FinancialReportStatus); err != nil {
		return dto.FinancialReportResponse{}, err
	}

	if req.Offerings != nil {
		report.FinancialReportOfferings = *req.Offerings
	}
	if req.Tithes != nil {
		report.FinancialReportTithes = *req.Tithes
	}
	if req.SpecialSeeds != nil {
		report.FinancialReportSpecialSeeds = *req.SpecialSeeds
	}
	expenses, err := dto.UnmarshalExpenses(report.FinancialReportExpenses)
	if err != nil {
		return dto.FinancialReportResponse{}, err
	}
	if req.Expenses != nil {
		expenses = req.Expenses
	}
	if err := applyFigures(report, expenses); err != nil {
		return dto.FinancialReportResponse{}, err
	}
	if err := s.repo.Save(ctx, report); err != nil {
		return dto.FinancialReportResponse{}, err
	}
	return s.respond(report)
}

func (s *FinancialReportService) Decide(ctx context.Context, actor workflow.Actor, id uuid.UUID, req dto.DecisionRequest) (dto.FinancialReportResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.FinancialReportResponse{}, apperr.Validation(err.Error())
	}
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.FinancialReportResponse{}, err
	}
	if err := workflow.EnsureCanDecide(ctx, actor, s.directory, report.FinancialReportFellowshipID); err != nil {
		return dto.FinancialReportResponse{}, err
	}
	if err := workflow.ApplyDecision(report, req.Decision, req.RejectionReason, actor, s.now()); err != nil {
		return dto.FinancialReportResponse{}, err
	}
	if err := s.repo.Save(ctx, report); err != nil {
		return dto.FinancialReportResponse{}, err
	}
	return s.respond(report)
}

func (s *FinancialReportService) GetByID(ctx context.Context, actor workflow.Actor, id uuid.UUID) (dto.FinancialReportResponse, error) {
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.FinancialReportResponse{}, err
	}
	scope, err := workflow.ResolveVisibility(ctx, actor, s.directory)
	if err != nil {
		return dto.FinancialReportResponse{}, err
	}
	fellowshipID := report.FinancialReportFellowshipID
	if !scope.Allows(&fellowshipID, report.FinancialReportSubmittedBy) {
		// hidden reports read as absent, not forbidden
		return dto.FinancialReportResponse{}, apperr.NotFound("Financial report not found")
	}
	return s.respond(report)
}

func (s *FinancialReportService) List(ctx context.Context, actor workflow.Actor, filters workflow.Filters, limit, offset int) ([]dto.FinancialReportResponse, int64, error) {
	if err := filters.Validate(); err != nil {
		return nil, 0, err
	}
	scope, err := workflow.ResolveVisibility(ctx, actor, s.directory)
	if err != nil {
		return nil, 0, err
	}
	reports, total, err := s.repo.List(ctx, ListParams{
		Scope:   scope,
		Filters: filters,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.FinancialReportResponse, 0, len(reports))
	for i := range reports {
		resp, err := s.respond(&reports[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, resp)
	}
	return out, total, nil
}

func (s *FinancialReportService) Delete(ctx context.Context, actor workflow.Actor, id uuid.UUID) error {
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := workflow.EnsureCanDelete(actor, report.FinancialReportSubmittedBy, report.FinancialReportStatus); err != nil {
		return err
	}
	return s.repo.Delete(ctx, report.FinancialReportID)
}
