// 📁 controller/user_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"campusreach_backend/internals/constants"
	"campusreach_backend/internals/features/users/user/dto"
	"campusreach_backend/internals/features/users/user/model"
	helper "campusreach_backend/internals/helpers"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// 🟢 CREATE USER (admin): any role, any assignment
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var body dto.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	body.Normalize()
	if body.Role == "" {
		body.Role = constants.RoleMember
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if body.FellowshipID != nil && body.ZoneID != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "A user may have a fellowship or a zone assignment, not both")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := body.ToModel()
	user.Password = string(hashed)

	if err := ctrl.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Email is already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "User created", dto.ToUserResponse(user))
}

// 🟢 LIST USERS (admin): optional role / zone / fellowship filters
func (ctrl *UserController) ListUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.UserModel{})
	if role := c.Query("role"); role != "" {
		if !constants.IsValidRole(role) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown role filter")
		}
		q = q.Where("role = ?", role)
	}
	if fid := c.Query("fellowship_id"); fid != "" {
		id, err := uuid.Parse(fid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fellowship_id")
		}
		q = q.Where("fellowship_id = ?", id)
	}
	if zid := c.Query("zone_id"); zid != "" {
		id, err := uuid.Parse(zid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid zone_id")
		}
		q = q.Where("zone_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var users []model.UserModel
	if err := q.Order("created_at DESC").Limit(paging.Limit).Offset(paging.Offset).Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list users")
	}

	return helper.JsonList(c, "OK", dto.ToUserResponses(users),
		helper.BuildPagination(total, paging.Page, paging.PerPage, len(users)))
}

// 🟢 GET USER BY ID (admin)
func (ctrl *UserController) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	return helper.JsonOK(c, "OK", dto.ToUserResponse(&user))
}

// 🟢 UPDATE USER (admin): role / assignment / activation changes land here
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var body dto.UpdateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	body.Normalize()
	if err := validate.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	if body.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*body.Password), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
		}
		h := string(hashed)
		body.Password = &h
		user.Password = h
	}

	body.Apply(&user)
	if user.FellowshipID != nil && user.ZoneID != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "A user may have a fellowship or a zone assignment, not both")
	}

	if err := ctrl.DB.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Email is already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}

	return helper.JsonUpdated(c, "User updated", dto.ToUserResponse(&user))
}

// 🟢 DELETE USER (admin, soft delete)
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	res := ctrl.DB.Delete(&model.UserModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonDeleted(c, "User deleted", fiber.Map{"id": id})
}
