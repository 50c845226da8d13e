// 📁 controller/fellowship_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusreach_backend/internals/features/organization/fellowships/dto"
	"campusreach_backend/internals/features/organization/fellowships/model"
	zModel "campusreach_backend/internals/features/organization/zones/model"
	helper "campusreach_backend/internals/helpers"
)

var validate = validator.New()

type FellowshipController struct {
	DB *gorm.DB
}

func NewFellowshipController(db *gorm.DB) *FellowshipController {
	return &FellowshipController{DB: db}
}

// 🟢 CREATE FELLOWSHIP (admin): zone must exist
func (ctrl *FellowshipController) CreateFellowship(c *fiber.Ctx) error {
	var body dto.CreateFellowshipRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	body.Normalize()
	if err := validate.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var zone zModel.ZoneModel
	if err := ctrl.DB.First(&zone, "zone_id = ?", body.FellowshipZoneID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Zone does not exist")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check zone")
	}

	fellowship := body.ToModel()
	if err := ctrl.DB.Create(fellowship).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create fellowship")
	}

	return helper.JsonCreated(c, "Fellowship created", fellowship)
}

// 🟢 LIST FELLOWSHIPS: optional ?zone_id= filter
func (ctrl *FellowshipController) ListFellowships(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.FellowshipModel{})
	if zid := c.Query("zone_id"); zid != "" {
		id, err := uuid.Parse(zid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid zone_id")
		}
		q = q.Where("fellowship_zone_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count fellowships")
	}

	var fellowships []model.FellowshipModel
	if err := q.Order("fellowship_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&fellowships).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list fellowships")
	}

	return helper.JsonList(c, "OK", fellowships,
		helper.BuildPagination(total, paging.Page, paging.PerPage, len(fellowships)))
}

// 🟢 GET FELLOWSHIP BY ID
func (ctrl *FellowshipController) GetFellowship(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fellowship id")
	}

	var fellowship model.FellowshipModel
	if err := ctrl.DB.First(&fellowship, "fellowship_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fellowship not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch fellowship")
	}

	return helper.JsonOK(c, "OK", fellowship)
}

// 🟢 UPDATE FELLOWSHIP (admin)
func (ctrl *FellowshipController) UpdateFellowship(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fellowship id")
	}

	var body dto.UpdateFellowshipRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	body.Normalize()
	if err := validate.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var fellowship model.FellowshipModel
	if err := ctrl.DB.First(&fellowship, "fellowship_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fellowship not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch fellowship")
	}

	if body.FellowshipZoneID != nil {
		var zone zModel.ZoneModel
		if err := ctrl.DB.First(&zone, "zone_id = ?", *body.FellowshipZoneID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Zone does not exist")
		}
	}

	body.Apply(&fellowship)
	if err := ctrl.DB.Save(&fellowship).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update fellowship")
	}

	return helper.JsonUpdated(c, "Fellowship updated", fellowship)
}

// 🟢 DELETE FELLOWSHIP (admin, soft delete)
func (ctrl *FellowshipController) DeleteFellowship(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fellowship id")
	}

	res := ctrl.DB.Delete(&model.FellowshipModel{}, "fellowship_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete fellowship")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Fellowship not found")
	}

	return helper.JsonDeleted(c, "Fellowship deleted", fiber.Map{"fellowship_id": id})
}
