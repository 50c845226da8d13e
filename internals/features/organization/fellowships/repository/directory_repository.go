// internals/features/organization/fellowships/repository/directory_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusreach_backend/internals/apperr"
	fModel "campusreach_backend/internals/features/organization/fellowships/model"
)

// DirectoryRepository is the GORM-backed implementation of
// workflow.Directory: the org lookups every report service needs.
type DirectoryRepository struct {
	DB *gorm.DB
}

func NewDirectoryRepository(db *gorm.DB) *DirectoryRepository {
	return &DirectoryRepository{DB: db}
}

func (r *DirectoryRepository) ZoneIDOfFellowship(ctx context.Context, fellowshipID uuid.UUID) (uuid.UUID, error) {
	var f fModel.FellowshipModel
	err := r.DB.WithContext(ctx).
		Select("fellowship_zone_id").
		First(&f, "fellowship_id = ?", fellowshipID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, apperr.NotFound("Fellowship not found")
		}
		return uuid.Nil, err
	}
	return f.FellowshipZoneID, nil
}

func (r *DirectoryRepository) FellowshipIDsInZone(ctx context.Context, zoneID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.DB.WithContext(ctx).
		Model(&fModel.FellowshipModel{}).
		Where("fellowship_zone_id = ?", zoneID).
		Pluck("fellowship_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
