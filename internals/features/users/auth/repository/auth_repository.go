package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "campusreach_backend/internals/features/users/auth/model"
	userModel "campusreach_backend/internals/features/users/user/model"
)

func FindUserByEmail(db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, id uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByGoogleID(db *gorm.DB, googleID string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("google_id = ?", googleID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}

func UpdateUserPassword(db *gorm.DB, id uuid.UUID, hashed string) error {
	return db.Model(&userModel.UserModel{}).
		Where("id = ?", id).
		Update("password", hashed).Error
}

func BlacklistToken(db *gorm.DB, token string, expiredAt time.Time) error {
	return db.Create(&authModel.TokenBlacklistModel{
		Token:     token,
		ExpiredAt: expiredAt,
	}).Error
}

func CreateRefreshToken(db *gorm.DB, rt *authModel.RefreshTokenModel) error {
	return db.Create(rt).Error
}

func FindActiveRefreshTokenByHash(db *gorm.DB, hash string) (*authModel.RefreshTokenModel, error) {
	var rt authModel.RefreshTokenModel
	if err := db.
		Where("token = ? AND revoked_at IS NULL AND expires_at > NOW()", hash).
		First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func DeleteRefreshTokenByHash(db *gorm.DB, hash string) error {
	return db.Where("token = ?", hash).Delete(&authModel.RefreshTokenModel{}).Error
}

func DeleteRefreshTokensForUser(db *gorm.DB, userID uuid.UUID) error {
	return db.Where("user_id = ?", userID).Delete(&authModel.RefreshTokenModel{}).Error
}
