package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshTokenModel holds the sha256 hash of issued refresh tokens; the raw
// token never touches the database. Rotated on every refresh.
type RefreshTokenModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Token     string     `gorm:"type:text;not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	UserAgent *string    `gorm:"size:255" json:"user_agent,omitempty"`
	IP        *string    `gorm:"size:64" json:"ip,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
