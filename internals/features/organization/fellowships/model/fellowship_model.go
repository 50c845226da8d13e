package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type FellowshipModel struct {
	FellowshipID     uuid.UUID `gorm:"column:fellowship_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fellowship_id"`
	FellowshipName   string    `gorm:"column:fellowship_name;size:100;not null" json:"fellowship_name"`
	FellowshipZoneID uuid.UUID `gorm:"column:fellowship_zone_id;type:uuid;not null;index" json:"fellowship_zone_id"`
	FellowshipCampus string    `gorm:"column:fellowship_campus;size:150;not null" json:"fellowship_campus"`
	FellowshipAddress *string  `gorm:"column:fellowship_address;type:text" json:"fellowship_address,omitempty"`

	// weekday names, e.g. {"Sunday","Wednesday"}
	FellowshipMeetingDays pq.StringArray `gorm:"column:fellowship_meeting_days;type:text[]" json:"fellowship_meeting_days"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (FellowshipModel) TableName() string {
	return "fellowships"
}
