package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenBlacklistModel stores access tokens invalidated by logout until they
// would have expired anyway; the cleanup scheduler prunes the rest.
type TokenBlacklistModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Token     string    `gorm:"type:text;not null;index" json:"token"`
	ExpiredAt time.Time `gorm:"not null" json:"expired_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TokenBlacklistModel) TableName() string {
	return "token_blacklists"
}
