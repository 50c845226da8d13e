// 📁 controller/financial_report_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusreach_backend/internals/features/organization/fellowships/repository"
	"campusreach_backend/internals/features/reports/financial/dto"
	financialRepo "campusreach_backend/internals/features/reports/financial/repository"
	"campusreach_backend/internals/features/reports/financial/service"
	helper "campusreach_backend/internals/helpers"
	authHelper "campusreach_backend/internals/middlewares/auth"
)

type FinancialReportController struct {
	Service *service.FinancialReportService
}

func NewFinancialReportController(db *gorm.DB) *FinancialReportController {
	return &FinancialReportController{
		Service: service.NewFinancialReportService(
			financialRepo.NewFinancialReportRepository(db),
			repository.NewDirectoryRepository(db),
		),
	}
}

// 🟢 SUBMIT FINANCIAL REPORT (fellowship president, admin)
func (ctrl *FinancialReportController) Submit(c *fiber.Ctx) error {
	actor, err := authHelper.ActorFromLocals(c)
	if err != nil {
		return err
	}
	var body dto.SubmitFinancialReportRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	resp, err := ctrl.Service.Submit(c.Context(), actor, body)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Financial report submitted", resp)
}

// 🟢 LIST FINANCIAL REPORTS (visibility scoped by role)
func (ctrl *FinancialReportController) List(c *fiber.Ctx) error {
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
	return helper.JsonList(c, "Financial reports fetched", reports,
		helper.BuildPagination(total, paging.Page, paging.PerPage, len(reports)))
}

// 🟢 GET FINANCIAL REPORT BY ID
func (ctrl *FinancialReportController) GetByID(c *fiber.Ctx) error {
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
	return helper.JsonOK(c, "Financial report fetched", resp)
}

// 🟢 UPDATE FINANCIAL REPORT (submitter while pending, admin any time)
func (ctrl *FinancialReportController) Update(c *fiber.Ctx) error {
	actor, err := authHelper.ActorFromLocals(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid report ID")
	}
	var body dto.UpdateFinancialReportRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	resp, err := ctrl.Service.Update(c.Context(), actor, id, body)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "Financial report updated", resp)
}

// 🟢 DECIDE FINANCIAL REPORT (admin, zone coordinator in own zone)
func (ctrl *FinancialReportController) Decide(c *fiber.Ctx) error {
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
	return helper.JsonUpdated(c, "Financial report decision recorded", resp)
}

// 🟢 DELETE FINANCIAL REPORT (submitter while pending, admin any time)
func (ctrl *FinancialReportController) Delete(c *fiber.Ctx) error {
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
	return helper.JsonDeleted(c, "Financial report deleted", fiber.Map{"financial_report_id": id})
}
