// 📁 controller/outreach_report_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusreach_backend/internals/features/organization/fellowships/repository"
	"campusreach_backend/internals/features/reports/outreach/dto"
	outreachRepo "campusreach_backend/internals/features/reports/outreach/repository"
	"campusreach_backend/internals/features/reports/outreach/service"
	helper "campusreach_backend/internals/helpers"
	authHelper "campusreach_backend/internals/middlewares/auth"
)

type OutreachReportController struct {
	Service *service.OutreachReportService
}

func NewOutreachReportController(db *gorm.DB) *OutreachReportController {
	return &OutreachReportController{
		Service: service.NewOutreachReportService(
			outreachRepo.NewOutreachReportRepository(db),
			outreachRepo.NewUserLookupRepository(db),
			repository.NewDirectoryRepository(db),
		),
	}
}

// 🟢 SUBMIT OUTREACH REPORT (any member; admin may file on behalf)
func (ctrl *OutreachReportController) Submit(c *fiber.Ctx) error {
	actor, err := authHelper.ActorFromLocals(c)
	if err != nil {
		return err
	}
	var body dto.SubmitOutreachReportRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	resp, err := ctrl.Service.Submit(c.Context(), actor, body)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Outreach report submitted", resp)
}

// 🟢 LIST OUTREACH REPORTS (visibility scoped by role)
func (ctrl *OutreachReportController) List(c *fiber.Ctx) error {
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
	return helper.JsonList(c, "Outreach reports fetched", reports,
		helper.BuildPagination(total, paging.Page, paging.PerPage, len(reports)))
}

// 🟢 GET OUTREACH REPORT BY ID
func (ctrl *OutreachReportController) GetByID(c *fiber.Ctx) error {
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
	return helper.JsonOK(c, "Outreach report fetched", resp)
}

// 🟢 UPDATE OUTREACH REPORT (owner while pending, admin any time)
func (ctrl *OutreachReportController) Update(c *fiber.Ctx) error {
	actor, err := authHelper.ActorFromLocals(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid report ID")
	}
	var body dto.UpdateOutreachReportRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	resp, err := ctrl.Service.Update(c.Context(), actor, id, body)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "Outreach report updated", resp)
}

// 🟢 DECIDE OUTREACH REPORT (admin, zone coordinator in own zone)
func (ctrl *OutreachReportController) Decide(c *fiber.Ctx) error {
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
	return helper.JsonUpdated(c, "Outreach report decision recorded", resp)
}

// 🟢 DELETE OUTREACH REPORT (owner while pending, admin any time)
func (ctrl *OutreachReportController) Delete(c *fiber.Ctx) error {
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
	return helper.JsonDeleted(c, "Outreach report deleted", fiber.Map{"outreach_report_id": id})
}
