// internals/features/reports/outreach/service/outreach_report_service.go
package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"campusreach_backend/internals/apperr"
	"campusreach_backend/internals/features/reports/outreach/dto"
	"campusreach_backend/internals/features/reports/outreach/model"
	"campusreach_backend/internals/features/reports/period"
	"campusreach_backend/internals/features/reports/workflow"
)

type Repository interface {
	Create(ctx context.Context, report *model.OutreachReportModel) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.OutreachReportModel, error)
	FindByScopeAndMonth(ctx context.Context, userID uuid.UUID, month time.Time) (*model.OutreachReportModel, error)
	Save(ctx context.Context, report *model.OutreachReportModel) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params ListParams) ([]model.OutreachReportModel, int64, error)
}

// UserLookup resolves the owner's fellowship assignment for the snapshot
// stored on the report. Backed by the users table.
type UserLookup interface {
	FellowshipIDOfUser(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error)
}

type ListParams struct {
	Scope   workflow.ScopeFilter
	Filters workflow.Filters
	Limit   int
	Offset  int
}

type OutreachReportService struct {
	repo      Repository
	users     UserLookup
	directory workflow.Directory
	validate  *validator.Validate
	now       func() time.Time
}

func NewOutreachReportService(repo Repository, users UserLookup, directory workflow.Directory) *OutreachReportService {
	return &OutreachReportService{
		repo:      repo,
		users:     users,
		directory: directory,
		validate:  validator.New(),
		now:       time.Now,
	}
}

func applyEntries(report *model.OutreachReportModel, entries []dto.WitnessingItem) error {
	raw, err := dto.MarshalEntries(entries)
	if err != nil {
		return err
	}
	report.OutreachReportEntries = raw
	contacts, souls := dto.SumWitnessing(entries)
	report.OutreachReportTotalContacts = contacts
	report.OutreachReportTotalSoulsWon = souls
	return nil
}

func (s *OutreachReportService) respond(m *model.OutreachReportModel) (dto.OutreachReportResponse, error) {
	window, err := period.Resolve(m.OutreachReportMonth.Year(), m.OutreachReportMonth.Month(), period.BasicOutreachRule)
	if err != nil {
		return dto.OutreachReportResponse{}, err
	}
	return dto.ToOutreachReportResponse(m, window)
}

func (s *OutreachReportService) Submit(ctx context.Context, actor workflow.Actor, req dto.SubmitOutreachReportRequest) (dto.OutreachReportResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.OutreachReportResponse{}, apperr.Validation(err.Error())
	}
	userID, err := workflow.ResolveMemberScope(actor, req.UserID)
	if err != nil {
		return dto.OutreachReportResponse{}, err
	}
	month := workflow.NormalizeMonth(req.Year, time.Month(req.Month))
	if _, err := period.Resolve(req.Year, time.Month(req.Month), period.BasicOutreachRule); err != nil {
		return dto.OutreachReportResponse{}, err
	}

	if _, err := s.repo.FindByScopeAndMonth(ctx, userID, month); err == nil {
		return dto.OutreachReportResponse{}, apperr.Conflict("an outreach report already exists for this member and month")
	} else if !apperr.IsNotFound(err) {
		return dto.OutreachReportResponse{}, err
	}

	fellowshipID, err := s.users.FellowshipIDOfUser(ctx, userID)
	if err != nil {
		return dto.OutreachReportResponse{}, err
	}

	report := model.OutreachReportModel{
		OutreachReportUserID:       userID,
		OutreachReportMonth:        month,
		OutreachReportFellowshipID: fellowshipID,
		OutreachReportSubmittedBy:  actor.ID,
		OutreachReportStatus:       workflow.StatusPending,
		OutreachReportAreasCovered: req.AreasCovered,
	}
	if err := applyEntries(&report, req.Entries); err != nil {
		return dto.OutreachReportResponse{}, err
	}
	if err := s.repo.Create(ctx, &report); err != nil {
		return dto.OutreachReportResponse{}, err
	}
	return s.respond(&report)
}

func (s *OutreachReportService) Update(ctx context.Context, actor workflow.Actor, id uuid.UUID, req dto.UpdateOutreachReportRequest) (dto.OutreachReportResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.OutreachReportResponse{}, apperr.Validation(err.Error())
	}
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.OutreachReportResponse{}, err
	}
	// the owner (not only the literal submitter) may edit while pending
	if err := workflow.EnsureCanModify(actor, report.OutreachReportUserID, report.OutreachReportStatus); err != nil {
		return dto.OutreachReportResponse{}, err
	}

	if req.Entries != nil {
		if err := applyEntries(report, req.Entries); err != nil {
			return dto.OutreachReportResponse{}, err
		}
	}
	if req.AreasCovered != nil {
		report.OutreachReportAreasCovered = req.AreasCovered
	}
	if err := s.repo.Save(ctx, report); err != nil {
		return dto.OutreachReportResponse{}, err
	}
	return s.respond(report)
}

func (s *OutreachReportService) Decide(ctx context.Context, actor workflow.Actor, id uuid.UUID, req dto.DecisionRequest) (dto.OutreachReportResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.OutreachReportResponse{}, apperr.Validation(err.Error())
	}
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.OutreachReportResponse{}, err
	}
	if err := s.ensureCanDecide(ctx, actor, report); err != nil {
		return dto.OutreachReportResponse{}, err
	}
	if err := workflow.ApplyDecision(report, req.Decision, req.RejectionReason, actor, s.now()); err != nil {
		return dto.OutreachReportResponse{}, err
	}
	if err := s.repo.Save(ctx, report); err != nil {
		return dto.OutreachReportResponse{}, err
	}
	return s.respond(report)
}

// ensureCanDecide mirrors the fellowship families, but a personal report
// without a fellowship snapshot can only be decided by an admin since no
// zone can claim it.
func (s *OutreachReportService) ensureCanDecide(ctx context.Context, actor workflow.Actor, report *model.OutreachReportModel) error {
	if actor.IsAdmin() {
		return nil
	}
	if report.OutreachReportFellowshipID == nil {
		return apperr.Authorization("")
	}
	return workflow.EnsureCanDecide(ctx, actor, s.directory, *report.OutreachReportFellowshipID)
}

func (s *OutreachReportService) GetByID(ctx context.Context, actor workflow.Actor, id uuid.UUID) (dto.OutreachReportResponse, error) {
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.OutreachReportResponse{}, err
	}
	scope, err := workflow.ResolveVisibility(ctx, actor, s.directory)
	if err != nil {
		return dto.OutreachReportResponse{}, err
	}
	if !scope.Allows(report.OutreachReportFellowshipID, report.OutreachReportUserID) {
		return dto.OutreachReportResponse{}, apperr.NotFound("Outreach report not found")
	}
	return s.respond(report)
}

func (s *OutreachReportService) List(ctx context.Context, actor workflow.Actor, filters workflow.Filters, limit, offset int) ([]dto.OutreachReportResponse, int64, error) {
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
	out := make([]dto.OutreachReportResponse, 0, len(reports))
	for i := range reports {
		resp, err := s.respond(&reports[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, resp)
	}
	return out, total, nil
}

func (s *OutreachReportService) Delete(ctx context.Context, actor workflow.Actor, id uuid.UUID) error {
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := workflow.EnsureCanDelete(actor, report.OutreachReportUserID, report.OutreachReportStatus); err != nil {
		return err
	}
	return s.repo.Delete(ctx, report.OutreachReportID)
}
