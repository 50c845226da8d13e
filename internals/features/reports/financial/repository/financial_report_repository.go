// internals/features/reports/financial/repository/financial_report_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusreach_backend/internals/apperr"
	"campusreach_backend/internals/features/reports/financial/model"
	"campusreach_backend/internals/features/reports/financial/service"
	"campusreach_backend/internals/features/reports/workflow"
)

// FinancialReportRepository is the GORM implementation of the service's
// repository contract.
type FinancialReportRepository struct {
	DB *gorm.DB
}

func NewFinancialReportRepository(db *gorm.DB) *FinancialReportRepository {
	return &FinancialReportRepository{DB: db}
}

var _ service.Repository = (*FinancialReportRepository)(nil)

func (r *FinancialReportRepository) Create(ctx context.Context, report *model.FinancialReportModel) error {
	err := r.DB.WithContext(ctx).Create(report).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// the unique index caught a duplicate the pre-check missed
		return apperr.Conflict("a financial report already exists for this fellowship and month")
	}
	return err
}

func (r *FinancialReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.FinancialReportModel, error) {
	var report model.FinancialReportModel
	err := r.DB.WithContext(ctx).First(&report, "financial_report_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Financial report not found")
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *FinancialReportRepository) FindByScopeAndMonth(ctx context.Context, fellowshipID uuid.UUID, month time.Time) (*model.FinancialReportModel, error) {
	var report model.FinancialReportModel
	err := r.DB.WithContext(ctx).
		Where("financial_report_fellowship_id = ? AND financial_report_month = ?", fellowshipID, month).
		First(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Financial report not found")
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *FinancialReportRepository) FindApprovedByScopeAndMonth(ctx context.Context, fellowshipID uuid.UUID, month time.Time) (*model.FinancialReportModel, error) {
	var report model.FinancialReportModel
	err := r.DB.WithContext(ctx).
		Where("financial_report_fellowship_id = ? AND financial_report_month = ? AND financial_report_status = ?",
			fellowshipID, month, workflow.StatusApproved).
		First(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Financial report not found")
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *FinancialReportRepository) Save(ctx context.Context, report *model.FinancialReportModel) error {
	return r.DB.WithContext(ctx).Save(report).Error
}

func (r *FinancialReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Delete(&model.FinancialReportModel{}, "financial_report_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Financial report not found")
	}
	return nil
}

func (r *FinancialReportRepository) List(ctx context.Context, params service.ListParams) ([]model.FinancialReportModel, int64, error) {
	q := r.DB.WithContext(ctx).Model(&model.FinancialReportModel{})
	q = applyScope(q, params.Scope)
	q = applyFilters(q, params.Filters)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []model.FinancialReportModel
	if err := q.Order("financial_report_month DESC").
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
		return q.Where("financial_report_submitted_by = ?", *scope.SubmittedBy)
	}
	// empty fellowship list must match nothing, not everything
	if len(scope.FellowshipIDs) == 0 {
		return q.Where("1 = 0")
	}
	return q.Where("financial_report_fellowship_id IN ?", scope.FellowshipIDs)
}

func applyFilters(q *gorm.DB, f workflow.Filters) *gorm.DB {
	if f.Month != 0 {
		q = q.Where("financial_report_month = ?", workflow.NormalizeMonth(f.Year, time.Month(f.Month)))
	} else if f.Year != 0 {
		q = q.Where("EXTRACT(YEAR FROM financial_report_month) = ?", f.Year)
	}
	if f.Status != "" {
		q = q.Where("financial_report_status = ?", f.Status)
	}
	if f.ScopeID != nil {
		q = q.Where("financial_report_fellowship_id = ?", *f.ScopeID)
	}
	return q
}
