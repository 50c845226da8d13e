// 📁 controller/zone_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusreach_backend/internals/features/organization/zones/dto"
	"campusreach_backend/internals/features/organization/zones/model"
	helper "campusreach_backend/internals/helpers"
)

var validate = validator.New()

type ZoneController struct {
	DB *gorm.DB
}

func NewZoneController(db *gorm.DB) *ZoneController {
	return &ZoneController{DB: db}
}

// 🟢 CREATE ZONE (admin)
func (ctrl *ZoneController) CreateZone(c *fiber.Ctx) error {
	var body dto.CreateZoneRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	body.Normalize()
	if err := validate.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	zone := body.ToModel()
	if err := ctrl.DB.Create(zone).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Zone code already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create zone")
	}

	return helper.JsonCreated(c, "Zone created", zone)
}

// 🟢 LIST ZONES (any authenticated role)
func (ctrl *ZoneController) ListZones(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.ZoneModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count zones")
	}

	var zones []model.ZoneModel
	if err := ctrl.DB.Order("zone_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&zones).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list zones")
	}

	return helper.JsonList(c, "OK", zones,
		helper.BuildPagination(total, paging.Page, paging.PerPage, len(zones)))
}

// 🟢 GET ZONE BY ID
func (ctrl *ZoneController) GetZone(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid zone id")
	}

	var zone model.ZoneModel
	if err := ctrl.DB.First(&zone, "zone_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Zone not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch zone")
	}

	return helper.JsonOK(c, "OK", zone)
}

// 🟢 UPDATE ZONE (admin)
func (ctrl *ZoneController) UpdateZone(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid zone id")
	}

	var body dto.UpdateZoneRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	body.Normalize()
	if err := validate.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var zone model.ZoneModel
	if err := ctrl.DB.First(&zone, "zone_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Zone not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch zone")
	}

	body.Apply(&zone)
	if err := ctrl.DB.Save(&zone).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Zone code already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update zone")
	}

	return helper.JsonUpdated(c, "Zone updated", zone)
}

// 🟢 DELETE ZONE (admin, soft delete)
func (ctrl *ZoneController) DeleteZone(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid zone id")
	}

	res := ctrl.DB.Delete(&model.ZoneModel{}, "zone_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete zone")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Zone not found")
	}

	return helper.JsonDeleted(c, "Zone deleted", fiber.Map{"zone_id": id})
}
