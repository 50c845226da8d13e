package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel represents the users table. A user carries exactly one role and
// at most one of a zone or fellowship assignment, which together determine
// every authorization decision in the report workflow.
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName string    `gorm:"size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	FullName string    `gorm:"size:100;not null" json:"full_name" validate:"required,min=3,max=100"`
	Email    string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password string    `gorm:"not null" json:"-" validate:"required,min=8"`
	GoogleID *string   `gorm:"size:255;unique" json:"google_id,omitempty"`
	Role     string    `gorm:"type:varchar(30);not null;default:'member'" json:"role"`

	// org assignment, at most one of the two is set
	FellowshipID *uuid.UUID `gorm:"type:uuid;index" json:"fellowship_id,omitempty"`
	ZoneID       *uuid.UUID `gorm:"type:uuid;index" json:"zone_id,omitempty"`

	PhoneNumber *string `gorm:"size:30" json:"phone_number,omitempty"`
	IsActive    bool    `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = "member"
	}
}
