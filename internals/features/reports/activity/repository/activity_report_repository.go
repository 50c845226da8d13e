// internals/features/reports/activity/repository/activity_report_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusreach_backend/internals/apperr"
	"campusreach_backend/internals/features/reports/activity/model"
	"campusreach_backend/internals/features/reports/activity/service"
	"campusreach_backend/internals/features/reports/workflow"
)

type ActivityReportRepository struct {
	DB *gorm.DB
}

func NewActivityReportRepository(db *gorm.DB) *ActivityReportRepository {
	return &ActivityReportRepository{DB: db}
}

var _ service.Repository = (*ActivityReportRepository)(nil)

func (r *ActivityReportRepository) Create(ctx context.Context, report *model.ActivityReportModel) error {
	err := r.DB.WithContext(ctx).Create(report).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflict("an activity report already exists for this fellowship and month")
	}
	return err
}

func (r *ActivityReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ActivityReportModel, error) {
	var report model.ActivityReportModel
	err := r.DB.WithContext(ctx).First(&report, "activity_report_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Activity report not found")
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *ActivityReportRepository) FindByScopeAndMonth(ctx context.Context, fellowshipID uuid.UUID, month time.Time) (*model.ActivityReportModel, error) {
	var report model.ActivityReportModel
	err := r.DB.WithContext(ctx).
		Where("activity_report_fellowship_id = ? AND activity_report_month = ?", fellowshipID, month).
		First(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Activity report not found")
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *ActivityReportRepository) Save(ctx context.Context, report *model.ActivityReportModel) error {
	return r.DB.WithContext(ctx).Save(report).Error
}

func (r *ActivityReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Delete(&model.ActivityReportModel{}, "activity_report_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Activity report not found")
	}
	return nil
}

func (r *ActivityReportRepository) List(ctx context.Context, params service.ListParams) ([]model.ActivityReportModel, int64, error) {
	q := r.DB.WithContext(ctx).Model(&model.ActivityReportModel{})
	q = applyScope(q, params.Scope)
	q = applyFilters(q, params.Filters)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []model.ActivityReportModel
	if err := q.Order("activity_report_month DESC").
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
		return q.Where("activity_report_submitted_by = ?", *scope.SubmittedBy)
	}
	if len(scope.FellowshipIDs) == 0 {
		return q.Where("1 = 0")
	}
	return q.Where("activity_report_fellowship_id IN ?", scope.FellowshipIDs)
}

func applyFilters(q *gorm.DB, f workflow.Filters) *gorm.DB {
	if f.Month != 0 {
		q = q.Where("activity_report_month = ?", workflow.NormalizeMonth(f.Year, time.Month(f.Month)))
	} else if f.Year != 0 {
		q = q.Where("EXTRACT(YEAR FROM activity_report_month) = ?", f.Year)
	}
	if f.Status != "" {
		q = q.Where("activity_report_status = ?", f.Status)
	}
	if f.ScopeID != nil {
		q = q.Where("activity_report_fellowship_id = ?", *f.ScopeID)
	}
	return q
}
