// internals/features/reports/outreach/repository/outreach_report_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusreach_backend/internals/apperr"
	"campusreach_backend/internals/features/reports/outreach/model"
	"campusreach_backend/internals/features/reports/outreach/service"
	"campusreach_backend/internals/features/reports/workflow"
	userModel "campusreach_backend/internals/features/users/user/model"
)

type OutreachReportRepository struct {
	DB *gorm.DB
}

func NewOutreachReportRepository(db *gorm.DB) *OutreachReportRepository {
	return &OutreachReportRepository{DB: db}
}

var _ service.Repository = (*OutreachReportRepository)(nil)

func (r *OutreachReportRepository) Create(ctx context.Context, report *model.OutreachReportModel) error {
	err := r.DB.WithContext(ctx).Create(report).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflict("an outreach report already exists for this member and month")
	}
	return err
}

func (r *OutreachReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.OutreachReportModel, error) {
	var report model.OutreachReportModel
	err := r.DB.WithContext(ctx).First(&report, "outreach_report_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Outreach report not found")
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *OutreachReportRepository) FindByScopeAndMonth(ctx context.Context, userID uuid.UUID, month time.Time) (*model.OutreachReportModel, error) {
	var report model.OutreachReportModel
	err := r.DB.WithContext(ctx).
		Where("outreach_report_user_id = ? AND outreach_report_month = ?", userID, month).
		First(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Outreach report not found")
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *OutreachReportRepository) Save(ctx context.Context, report *model.OutreachReportModel) error {
	return r.DB.WithContext(ctx).Save(report).Error
}

func (r *OutreachReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Delete(&model.OutreachReportModel{}, "outreach_report_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Outreach report not found")
	}
	return nil
}

func (r *OutreachReportRepository) List(ctx context.Context, params service.ListParams) ([]model.OutreachReportModel, int64, error) {
	q := r.DB.WithContext(ctx).Model(&model.OutreachReportModel{})
	q = applyScope(q, params.Scope)
	q = applyFilters(q, params.Filters)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []model.OutreachReportModel
	if err := q.Order("outreach_report_month DESC").
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
	// personal reports: members see their own, coordinators see every
	// member report snapshotted to a fellowship in their zone
	if scope.SubmittedBy != nil {
		return q.Where("outreach_report_user_id = ?", *scope.SubmittedBy)
	}
	if len(scope.FellowshipIDs) == 0 {
		return q.Where("1 = 0")
	}
	return q.Where("outreach_report_fellowship_id IN ?", scope.FellowshipIDs)
}

func applyFilters(q *gorm.DB, f workflow.Filters) *gorm.DB {
	if f.Month != 0 {
		q = q.Where("outreach_report_month = ?", workflow.NormalizeMonth(f.Year, time.Month(f.Month)))
	} else if f.Year != 0 {
		q = q.Where("EXTRACT(YEAR FROM outreach_report_month) = ?", f.Year)
	}
	if f.Status != "" {
		q = q.Where("outreach_report_status = ?", f.Status)
	}
	if f.ScopeID != nil {
		q = q.Where("outreach_report_fellowship_id = ?", *f.ScopeID)
	}
	return q
}

/* =======================================================
   USER LOOKUP
   ======================================================= */

type UserLookupRepository struct {
	DB *gorm.DB
}

func NewUserLookupRepository(db *gorm.DB) *UserLookupRepository {
	return &UserLookupRepository{DB: db}
}

var _ service.UserLookup = (*UserLookupRepository)(nil)

func (r *UserLookupRepository) FellowshipIDOfUser(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error) {
	var user userModel.UserModel
	err := r.DB.WithContext(ctx).
		Select("fellowship_id").
		First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("User not found")
	}
	if err != nil {
		return nil, err
	}
	return user.FellowshipID, nil
}
