// file: internals/helpers/report_filters.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"campusreach_backend/internals/apperr"
	"campusreach_backend/internals/features/reports/workflow"
)

// ParseReportFilters reads the list-query filters shared by every report
// family: ?month= & ?year= & ?status= & ?fellowship_id=.
func ParseReportFilters(c *fiber.Ctx) (workflow.Filters, error) {
	filters := workflow.Filters{
		Month:  c.QueryInt("month"),
		Year:   c.QueryInt("year"),
		Status: strings.TrimSpace(c.Query("status")),
	}
	if raw := strings.TrimSpace(c.Query("fellowship_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return workflow.Filters{}, apperr.Validation("fellowship_id must be a valid UUID")
		}
		filters.ScopeID = &id
	}
	return filters, nil
}
