package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ZoneModel struct {
	ZoneID          uuid.UUID `gorm:"column:zone_id;type:uuid;default:gen_random_uuid();primaryKey" json:"zone_id"`
	ZoneName        string    `gorm:"column:zone_name;size:100;not null" json:"zone_name"`
	ZoneCode        string    `gorm:"column:zone_code;size:20;uniqueIndex;not null" json:"zone_code"`
	ZoneDescription *string   `gorm:"column:zone_description;type:text" json:"zone_description,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (ZoneModel) TableName() string {
	return "zones"
}
