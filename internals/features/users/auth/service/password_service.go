package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authRepo "campusreach_backend/internals/features/users/auth/repository"
	helper "campusreach_backend/internals/helpers"
)

// ========================== CHANGE PASSWORD ==========================
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if len(input.NewPassword) < 8 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "New password must be at least 8 characters")
	}

	idStr, ok := c.Locals("user_id").(string)
	if !ok || idStr == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	if err := authRepo.UpdateUserPassword(db, user.ID, string(hashed)); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	// force re-login everywhere
	_ = authRepo.DeleteRefreshTokensForUser(db, user.ID)

	return helper.JsonUpdated(c, "Password changed successfully", nil)
}
