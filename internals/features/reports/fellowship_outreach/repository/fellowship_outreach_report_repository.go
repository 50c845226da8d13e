// internals/features/reports/fellowship_outreach/repository/fellowship_outreach_report_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusreach_backend/internals/apperr"
	"campusreach_backend/internals/features/reports/fellowship_outreach/model"
	"campusreach_backend/internals/features/reports/fellowship_outreach/service"
	"campusreach_backend/internals/features/reports/workflow"
)

type FellowshipOutreachReportRepository struct {
	DB *gorm.DB
}

func NewFellowshipOutreachReportRepository(db *gorm.DB) *FellowshipOutreachReportRepository {
	return &FellowshipOutreachReportRepository{DB: db}
}

var _ service.Repository = (*FellowshipOutreachReportRepository)(nil)

func (r *FellowshipOutreachReportRepository) Create(ctx context.Context, report *model.FellowshipOutreachReportModel) error {
	err := r.DB.WithContext(ctx).Create(report).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflict("a fellowship outreach report already exists for this fellowship and month")
	}
	return err
}

func (r *FellowshipOutreachReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.FellowshipOutreachReportModel, error) {
	var report model.FellowshipOutreachReportModel
	err := r.DB.WithContext(ctx).First(&report, "fellowship_outreach_report_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Fellowship outreach report not found")
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *FellowshipOutreachReportRepository) FindByScopeAndMonth(ctx context.Context, fellowshipID uuid.UUID, month time.Time) (*model.FellowshipOutreachReportModel, error) {
	var report model.FellowshipOutreachReportModel
	err := r.DB.WithContext(ctx).
		Where("fellowship_outreach_report_fellowship_id = ? AND fellowship_outreach_report_month = ?", fellowshipID, month).
		First(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Fellowship outreach report not found")
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *FellowshipOutreachReportRepository) Save(ctx context.Context, report *model.FellowshipOutreachReportModel) error {
	return r.DB.WithContext(ctx).Save(report).Error
}

func (r *FellowshipOutreachReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Delete(&model.FellowshipOutreachReportModel{}, "fellowship_outreach_report_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Fellowship outreach report not found")
	}
	return nil
}

func (r *FellowshipOutreachReportRepository) List(ctx context.Context, params service.ListParams) ([]model.FellowshipOutreachReportModel, int64, error) {
	q := r.DB.WithContext(ctx).Model(&model.FellowshipOutreachReportModel{})
	q = applyScope(q, params.Scope)
	q = applyFilters(q, params.Filters)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []model.FellowshipOutreachReportModel
	if err := q.Order("fellowship_outreach_report_month DESC").
		Limit(params.Limit).Offset(params.Offset).
		Find(&reports).Error; err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

func applyScope(q *gorm.DB, scope workflow.ScopeFilter) *gorm.DB {
	if scope.All {
		return q
	}
	if scope.SubmittedBy != nil {
		return q.Where("fellowship_outreach_report_submitted_by = ?", *scope.SubmittedBy)
	}
	if len(scope.FellowshipIDs) == 0 {
		return q.Where("1 = 0")
	}
	return q.Where("fellowship_outreach_report_fellowship_id IN ?", scope.FellowshipIDs)
}

func applyFilters(q *gorm.DB, f workflow.Filters) *gorm.DB {
	if f.Month != 0 {
		q = q.Where("fellowship_outreach_report_month = ?", workflow.NormalizeMonth(f.Year, time.Month(f.Month)))
	} else if f.Year != 0 {
		q = q.Where("EXTRACT(YEAR FROM fellowship_outreach_report_month) = ?", f.Year)
	}
	if f.Status != "" {
		q = q.Where("fellowship_outreach_report_status = ?", f.Status)
	}
	if f.ScopeID != nil {
		q = q.Where("fellowship_outreach_report_fellowship_id = ?", *f.ScopeID)
	}
	return q
}
