// internals/features/reports/fellowship_outreach/service/fellowship_outreach_report_service.go
package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"campusreach_backend/internals/apperr"
	"campusreach_backend/internals/constants"
	"campusreach_backend/internals/features/reports/fellowship_outreach/dto"
	"campusreach_backend/internals/features/reports/fellowship_outreach/model"
	"campusreach_backend/internals/features/reports/period"
	"campusreach_backend/internals/features/reports/workflow"
)

type Repository interface {
	Create(ctx context.Context, report *model.FellowshipOutreachReportModel) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.FellowshipOutreachReportModel, error)
	FindByScopeAndMonth(ctx context.Context, fellowshipID uuid.UUID, month time.Time) (*model.FellowshipOutreachReportModel, error)
	Save(ctx context.Context, report *model.FellowshipOutreachReportModel) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params ListParams) ([]model.FellowshipOutreachReportModel, int64, error)
}

type ListParams struct {
	Scope   workflow.ScopeFilter
	Filters workflow.Filters
	Limit   int
	Offset  int
}

type FellowshipOutreachReportService struct {
	repo      Repository
	directory workflow.Directory
	validate  *validator.Validate
	now       func() time.Time
}

func NewFellowshipOutreachReportService(repo Repository, directory workflow.Directory) *FellowshipOutreachReportService {
	return &FellowshipOutreachReportService{
		repo:      repo,
		directory: directory,
		validate:  validator.New(),
		now:       time.Now,
	}
}

// applyVisits stores the line items and recomputes both derived totals.
func applyVisits(report *model.FellowshipOutreachReportModel, visits []dto.VisitItem) error {
	raw, err := dto.MarshalVisits(visits)
	if err != nil {
		return err
	}
	report.FellowshipOutreachReportVisits = raw
	students, souls := dto.SumVisits(visits)
	report.FellowshipOutreachReportTotalStudentsReached = students
	report.FellowshipOutreachReportTotalSoulsWon = souls
	return nil
}

func (s *FellowshipOutreachReportService) respond(m *model.FellowshipOutreachReportModel) (dto.FellowshipOutreachReportResponse, error) {
	window, err := period.Resolve(m.FellowshipOutreachReportMonth.Year(), m.FellowshipOutreachReportMonth.Month(), period.FellowshipOutreachRule)
	if err != nil {
		return dto.FellowshipOutreachReportResponse{}, err
	}
	return dto.ToFellowshipOutreachReportResponse(m, window)
}

func (s *FellowshipOutreachReportService) Submit(ctx context.Context, actor workflow.Actor, req dto.SubmitFellowshipOutreachReportRequest) (dto.FellowshipOutreachReportResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.FellowshipOutreachReportResponse{}, apperr.Validation(err.Error())
	}
	fellowshipID, err := workflow.ResolveFellowshipScope(actor, constants.FellowshipSubmitterRoles, req.FellowshipID)
	if err != nil {
		return dto.FellowshipOutreachReportResponse{}, err
	}
	if _, err := s.directory.ZoneIDOfFellowship(ctx, fellowshipID); err != nil {
		return dto.FellowshipOutreachReportResponse{}, err
	}
	month := workflow.NormalizeMonth(req.Year, time.Month(req.Month))
	window, err := period.Resolve(req.Year, time.Month(req.Month), period.FellowshipOutreachRule)
	if err != nil {
		return dto.FellowshipOutreachReportResponse{}, err
	}
	for _, visit := range req.Visits {
		if !window.Contains(visit.VisitDate) {
			return dto.FellowshipOutreachReportResponse{}, apperr.Validationf(
				"visit on %s falls outside the reporting period %s to %s",
				visit.VisitDate.Format("2006-01-02"),
				window.Start.Format("2006-01-02"),
				window.End.Format("2006-01-02"),
			)
		}
	}

	if _, err := s.repo.FindByScopeAndMonth(ctx, fellowshipID, month); err == nil {
		return dto.FellowshipOutreachReportResponse{}, apperr.Conflict("a fellowship outreach report already exists for this fellowship and month")
	} else if !apperr.IsNotFound(err) {
		return dto.FellowshipOutreachReportResponse{}, err
	}

	report := model.FellowshipOutreachReportModel{
		FellowshipOutreachReportFellowshipID: fellowshipID,
		FellowshipOutreachReportMonth:        month,
		FellowshipOutreachReportSubmittedBy:  actor.ID,
		FellowshipOutreachReportStatus:       workflow.StatusPending,
		FellowshipOutreachReportAreasCovered: req.AreasCovered,
	}
	if err := applyVisits(&report, req.Visits); err != nil {
		return dto.FellowshipOutreachReportResponse{}, err
	}
	if err := s.repo.Create(ctx, &report); err != nil {
		return dto.FellowshipOutreachReportResponse{}, err
	}
	return s.respond(&report)
}

func (s *FellowshipOutreachReportService) Update(ctx context.Context, actor workflow.Actor, id uuid.UUID, req dto.UpdateFellowshipOutreachReportRequest) (dto.FellowshipOutreachReportResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.FellowshipOutreachReportResponse{}, apperr.Validation(err.Error())
	}
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.FellowshipOutreachReportResponse{}, err
	}
	if err := workflow.EnsureCanModify(actor, report.FellowshipOutreachReportSubmittedBy, report.FellowshipOutreachReportStatus); err != nil {
		return dto.FellowshipOutreachReportResponse{}, err
	}

	if req.Visits != nil {
		month := report.FellowshipOutreachReportMonth
		window, err := period.Resolve(month.Year(), month.Month(), period.FellowshipOutreachRule)
		if err != nil {
			return dto.FellowshipOutreachReportResponse{}, err
		}
		for _, visit := range req.Visits {
			if !window.Contains(visit.VisitDate) {
				return dto.FellowshipOutreachReportResponse{}, apperr.Validationf(
					"visit on %s falls outside the reporting period %s to %s",
					visit.VisitDate.Format("2006-01-02"),
					window.Start.Format("2006-01-02"),
					window.End.Format("2006-01-02"),
				)
			}
		}
		if err := applyVisits(report, req.Visits); err != nil {
			return dto.FellowshipOutreachReportResponse{}, err
		}
	}
	if req.AreasCovered != nil {
		report.FellowshipOutreachReportAreasCovered = req.AreasCovered
	}
	if err := s.repo.Save(ctx, report); err != nil {
		return dto.FellowshipOutreachReportResponse{}, err
	}
	return s.respond(report)
}

func (s *FellowshipOutreachReportService) Decide(ctx context.Context, actor workflow.Actor, id uuid.UUID, req dto.DecisionRequest) (dto.FellowshipOutreachReportResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.FellowshipOutreachReportResponse{}, apperr.Validation(err.Error())
	}
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.FellowshipOutreachReportResponse{}, err
	}
	if err := workflow.EnsureCanDecide(ctx, actor, s.directory, report.FellowshipOutreachReportFellowshipID); err != nil {
		return dto.FellowshipOutreachReportResponse{}, err
	}
	if err := workflow.ApplyDecision(report, req.Decision, req.RejectionReason, actor, s.now()); err != nil {
		return dto.FellowshipOutreachReportResponse{}, err
	}
	if err := s.repo.Save(ctx, report); err != nil {
		return dto.FellowshipOutreachReportResponse{}, err
	}
	return s.respond(report)
}

func (s *FellowshipOutreachReportService) GetByID(ctx context.Context, actor workflow.Actor, id uuid.UUID) (dto.FellowshipOutreachReportResponse, error) {
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.FellowshipOutreachReportResponse{}, err
	}
	scope, err := workflow.ResolveVisibility(ctx, actor, s.directory)
	if err != nil {
		return dto.FellowshipOutreachReportResponse{}, err
	}
	fellowshipID := report.FellowshipOutreachReportFellowshipID
	if !scope.Allows(&fellowshipID, report.FellowshipOutreachReportSubmittedBy) {
		return dto.FellowshipOutreachReportResponse{}, apperr.NotFound("Fellowship outreach report not found")
	}
	return s.respond(report)
}

func (s *FellowshipOutreachReportService) List(ctx context.Context, actor workflow.Actor, filters workflow.Filters, limit, offset int) ([]dto.FellowshipOutreachReportResponse, int64, error) {
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
	out := make([]dto.FellowshipOutreachReportResponse, 0, len(reports))
	for i := range reports {
		resp, err := s.respond(&reports[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, resp)
	}
	return out, total, nil
}

func (s *FellowshipOutreachReportService) Delete(ctx context.Context, actor workflow.Actor, id uuid.UUID) error {
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := workflow.EnsureCanDelete(actor, report.FellowshipOutreachReportSubmittedBy, report.FellowshipOutreachReportStatus); err != nil {
		return err
	}
	return s.repo.Delete(ctx, report.FellowshipOutreachReportID)
}
