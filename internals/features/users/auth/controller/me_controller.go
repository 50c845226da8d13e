// 📁 controller/me_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authRepo "campusreach_backend/internals/features/users/auth/repository"
	userDTO "campusreach_backend/internals/features/users/user/dto"
	helper "campusreach_backend/internals/helpers"
)

type MeController struct {
	DB *gorm.DB
}

func NewMeController(db *gorm.DB) *MeController {
	return &MeController{DB: db}
}

// GET /api/u/me returns the authenticated profile with its org assignment
func (ctrl *MeController) Me(c *fiber.Ctx) error {
	idStr, ok := c.Locals("user_id").(string)
	if !ok || idStr == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	user, err := authRepo.FindUserByID(ctrl.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonOK(c, "OK", userDTO.ToUserResponse(user))
}
