// internals/features/reports/activity/service/activity_report_service.go
package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"campusreach_backend/internals/apperr"
	"campusreach_backend/internals/constants"
	"campusreach_backend/internals/features/reports/activity/dto"
	"campusreach_backend/internals/features/reports/activity/model"
	"campusreach_backend/internals/features/reports/period"
	"campusreach_backend/internals/features/reports/workflow"
)

type Repository interface {
	Create(ctx context.Context, report *model.ActivityReportModel) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ActivityReportModel, error)
	FindByScopeAndMonth(ctx context.Context, fellowshipID uuid.UUID, month time.Time) (*model.ActivityReportModel, error)
	Save(ctx context.Context, report *model.ActivityReportModel) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params ListParams) ([]model.ActivityReportModel, int64, error)
}

type ListParams struct {
	Scope   workflow.ScopeFilter
	Filters workflow.Filters
	Limit   int
	Offset  int
}

type ActivityReportService struct {
	repo      Repository
	directory workflow.Directory
	validate  *validator.Validate
	now       func() time.Time
}

func NewActivityReportService(repo Repository, directory workflow.Directory) *ActivityReportService {
	return &ActivityReportService{
		repo:      repo,
		directory: directory,
		validate:  validator.New(),
		now:       time.Now,
	}
}

func (s *ActivityReportService) respond(m *model.ActivityReportModel) (dto.ActivityReportResponse, error) {
	window, err := period.Resolve(m.ActivityReportMonth.Year(), m.ActivityReportMonth.Month(), period.ActivityRule)
	if err != nil {
		return dto.ActivityReportResponse{}, err
	}
	return dto.ToActivityReportResponse(m, window), nil
}

func (s *ActivityReportService) Submit(ctx context.Context, actor workflow.Actor, req dto.SubmitActivityReportRequest) (dto.ActivityReportResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.ActivityReportResponse{}, apperr.Validation(err.Error())
	}
	fellowshipID, err := workflow.ResolveFellowshipScope(actor, constants.FellowshipSubmitterRoles, req.FellowshipID)
	if err != nil {
		return dto.ActivityReportResponse{}, err
	}
	if _, err := s.directory.ZoneIDOfFellowship(ctx, fellowshipID); err != nil {
		return dto.ActivityReportResponse{}, err
	}
	month := workflow.NormalizeMonth(req.Year, time.Month(req.Month))
	if _, err := period.Resolve(req.Year, time.Month(req.Month), period.ActivityRule); err != nil {
		return dto.ActivityReportResponse{}, err
	}

	if _, err := s.repo.FindByScopeAndMonth(ctx, fellowshipID, month); err == nil {
		return dto.ActivityReportResponse{}, apperr.Conflict("an activity report already exists for this fellowship and month")
	} else if !apperr.IsNotFound(err) {
		return dto.ActivityReportResponse{}, err
	}

	report := model.ActivityReportModel{
		ActivityReportFellowshipID:    fellowshipID,
		ActivityReportMonth:           month,
		ActivityReportSubmittedBy:     actor.ID,
		ActivityReportStatus:          workflow.StatusPending,
		ActivityReportServicesHeld:    req.ServicesHeld,
		ActivityReportTotalAttendance: req.TotalAttendance,
		ActivityReportFirstTimers:     req.FirstTimers,
		ActivityReportNewConverts:     req.NewConverts,
		ActivityReportFollowUpsMade:   req.FollowUpsMade,
		ActivityReportPrayerMeetings:  req.PrayerMeetings,
	}
	if err := s.repo.Create(ctx, &report); err != nil {
		return dto.ActivityReportResponse{}, err
	}
	return s.respond(&report)
}

func (s *ActivityReportService) Update(ctx context.Context, actor workflow.Actor, id uuid.UUID, req dto.UpdateActivityReportRequest) (dto.ActivityReportResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.ActivityReportResponse{}, apperr.Validation(err.Error())
	}
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.ActivityReportResponse{}, err
	}
	if err := workflow.EnsureCanModify(actor, report.ActivityReportSubmittedBy, report.ActivityReportStatus); err != nil {
		return dto.ActivityReportResponse{}, err
	}
	req.Apply(report)
	if err := s.repo.Save(ctx, report); err != nil {
		return dto.ActivityReportResponse{}, err
	}
	return s.respond(report)
}

func (s *ActivityReportService) Decide(ctx context.Context, actor workflow.Actor, id uuid.UUID, req dto.DecisionRequest) (dto.ActivityReportResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.ActivityReportResponse{}, apperr.Validation(err.Error())
	}
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.ActivityReportResponse{}, err
	}
	if err := workflow.EnsureCanDecide(ctx, actor, s.directory, report.ActivityReportFellowshipID); err != nil {
		return dto.ActivityReportResponse{}, err
	}
	if err := workflow.ApplyDecision(report, req.Decision, req.RejectionReason, actor, s.now()); err != nil {
		return dto.ActivityReportResponse{}, err
	}
	if err := s.repo.Save(ctx, report); err != nil {
		return dto.ActivityReportResponse{}, err
	}
	return s.respond(report)
}

func (s *ActivityReportService) GetByID(ctx context.Context, actor workflow.Actor, id uuid.UUID) (dto.ActivityReportResponse, error) {
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.ActivityReportResponse{}, err
	}
	scope, err := workflow.ResolveVisibility(ctx, actor, s.directory)
	if err != nil {
		return dto.ActivityReportResponse{}, err
	}
	fellowshipID := report.ActivityReportFellowshipID
	if !scope.Allows(&fellowshipID, report.ActivityReportSubmittedBy) {
		return dto.ActivityReportResponse{}, apperr.NotFound("Activity report not found")
	}
	return s.respond(report)
}

func (s *ActivityReportService) List(ctx context.Context, actor workflow.Actor, filters workflow.Filters, limit, offset int) ([]dto.ActivityReportResponse, int64, error) {
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
	out := make([]dto.ActivityReportResponse, 0, len(reports))
	for i := range reports {
		resp, err := s.respond(&reports[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, resp)
	}
	return out, total, nil
}

func (s *ActivityReportService) Delete(ctx context.Context, actor workflow.Actor, id uuid.UUID) error {
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := workflow.EnsureCanDelete(actor, report.ActivityReportSubmittedBy, report.ActivityReportStatus); err != nil {
		return err
	}
	return s.repo.Delete(ctx, report.ActivityReportID)
}
