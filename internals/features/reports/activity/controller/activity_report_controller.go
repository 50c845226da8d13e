// 📁 controller/activity_report_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusreach_backend/internals/features/organization/fellowships/repository"
	activityRepo "campusreach_backend/internals/features/reports/activity/repository"
	"campusreach_backend/internals/features/reports/activity/dto"
	"campusreach_backend/internals/features/reports/activity/service"
	helper "campusreach_backend/internals/helpers"
	authHelper "campusreach_backend/internals/middlewares/auth"
)

type ActivityReportController struct {
	Service *service.ActivityReportService
}

func NewActivityReportController(db *gorm.DB) *ActivityReportController {
	return &ActivityReportController{
		Service: service.NewActivityReportService(
			activityRepo.NewActivityReportRepository(db),
			repository.NewDirectoryRepository(db),
		),
	}
}

// 🟢 SUBMIT ACTIVITY REPORT (fellowship president, admin)
func (ctrl *ActivityReportController) Submit(c *fiber.Ctx) error {
	actor, err := authHelper.ActorFromLocals(c)
	if err != nil {
		return err
	}
	var body dto.SubmitActivityReportRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	resp, err := ctrl.Service.Submit(c.Context(), actor, body)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Activity report submitted", resp)
}

// 🟢 LIST ACTIVITY REPORTS (visibility scoped by role)
func (ctrl *ActivityReportController) List(c *fiber.Ctx) error {
	actor, err := authHelper.ActorFromLocals(c)
	if err != nil {
		return err
	}
	filters, err := helper.ParseReportFilters(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	paging := helper.ResolvePaging(c, 20, 100)

	reports, total, err := ctrl.Service.List(c.Context(), actor, filters, paging.Limit, paging.Offset)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonList(c, "Activity reports fetched", reports,
		helper.BuildPagination(total, paging.Page, paging.PerPage, len(reports)))
}

// 🟢 GET ACTIVITY REPORT BY ID
func (ctrl *ActivityReportController) GetByID(c *fiber.Ctx) error {
	actor, err := authHelper.ActorFromLocals(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid report ID")
	}
	resp, err := ctrl.Service.GetByID(c.Context(), actor, id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Activity report fetched", resp)
}

// 🟢 UPDATE ACTIVITY REPORT (submitter while pending, admin any time)
func (ctrl *ActivityReportController) Update(c *fiber.Ctx) error {
	actor, err := authHelper.ActorFromLocals(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid report ID")
	}
	var body dto.UpdateActivityReportRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	resp, err := ctrl.Service.Update(c.Context(), actor, id, body)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "Activity report updated", resp)
}

// 🟢 DECIDE ACTIVITY REPORT (admin, zone coordinator in own zone)
func (ctrl *ActivityReportController) Decide(c *fiber.Ctx) error {
	actor, err := authHelper.ActorFromLocals(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid report ID")
	}
	var body dto.DecisionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	resp, err := ctrl.Service.Decide(c.Context(), actor, id, body)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "Activity report decision recorded", resp)
}

// 🟢 DELETE ACTIVITY REPORT (submitter while pending, admin any time)
func (ctrl *ActivityReportController) Delete(c *fiber.Ctx) error {
	actor, err := authHelper.ActorFromLocals(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid report ID")
	}
	if err := ctrl.Service.Delete(c.Context(), actor, id); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonDeleted(c, "Activity report deleted", fiber.Map{"activity_report_id": id})
}
