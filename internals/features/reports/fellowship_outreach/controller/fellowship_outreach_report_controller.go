// 📁 controller/fellowship_outreach_report_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusreach_backend/internals/features/organization/fellowships/repository"
	"campusreach_backend/internals/features/reports/fellowship_outreach/dto"
	foRepo "campusreach_backend/internals/features/reports/fellowship_outreach/repository"
	"campusreach_backend/internals/features/reports/fellowship_outreach/service"
	helper "campusreach_backend/internals/helpers"
	authHelper "campusreach_backend/internals/middlewares/auth"
)

type FellowshipOutreachReportController struct {
	Service *service.FellowshipOutreachReportService
}

func NewFellowshipOutreachReportController(db *gorm.DB) *FellowshipOutreachReportController {
	return &FellowshipOutreachReportController{
		Service: service.NewFellowshipOutreachReportService(
			foRepo.NewFellowshipOutreachReportRepository(db),
			repository.NewDirectoryRepository(db),
		),
	}
}

// 🟢 SUBMIT FELLOWSHIP OUTREACH REPORT (fellowship president, admin)
func (ctrl *FellowshipOutreachReportController) Submit(c *fiber.Ctx) error {
	actor, err := authHelper.ActorFromLocals(c)
	if err != nil {
		return err
	}
	var body dto.SubmitFellowshipOutreachReportRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	resp, err := ctrl.Service.Submit(c.Context(), actor, body)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Fellowship outreach report submitted", resp)
}

// 🟢 LIST FELLOWSHIP OUTREACH REPORTS (visibility scoped by role)
func (ctrl *FellowshipOutreachReportController) List(c *fiber.Ctx) error {
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
	return helper.JsonList(c, "Fellowship outreach reports fetched", reports,
		helper.BuildPagination(total, paging.Page, paging.PerPage, len(reports)))
}

// 🟢 GET FELLOWSHIP OUTREACH REPORT BY ID
func (ctrl *FellowshipOutreachReportController) GetByID(c *fiber.Ctx) error {
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
	return helper.JsonOK(c, "Fellowship outreach report fetched", resp)
}

// 🟢 UPDATE FELLOWSHIP OUTREACH REPORT (submitter while pending, admin any time)
func (ctrl *FellowshipOutreachReportController) Update(c *fiber.Ctx) error {
	actor, err := authHelper.ActorFromLocals(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid report ID")
	}
	var body dto.UpdateFellowshipOutreachReportRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	resp, err := ctrl.Service.Update(c.Context(), actor, id, body)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "Fellowship outreach report updated", resp)
}

// 🟢 DECIDE FELLOWSHIP OUTREACH REPORT (admin, zone coordinator in own zone)
func (ctrl *FellowshipOutreachReportController) Decide(c *fiber.Ctx) error {
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
	return helper.JsonUpdated(c, "Fellowship outreach report decision recorded", resp)
}

// 🟢 DELETE FELLOWSHIP OUTREACH REPORT (submitter while pending, admin any time)
func (ctrl *FellowshipOutreachReportController) Delete(c *fiber.Ctx) error {
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
	return helper.JsonDeleted(c, "Fellowship outreach report deleted", fiber.Map{"fellowship_outreach_report_id": id})
}
