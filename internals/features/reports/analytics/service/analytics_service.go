// internals/features/reports/analytics/service/analytics_service.go
package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"campusreach_backend/internals/apperr"
	"campusreach_backend/internals/features/reports/workflow"
)

/* =======================================================
   AGGREGATE SHAPES
   ======================================================= */

type StatusCounts struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

func (c StatusCounts) Total() int64 {
	return c.Pending + c.Approved + c.Rejected
}

// MonthlySummary aggregates one calendar month across every family the
// actor is allowed to see. Monetary and attendance totals only count
// approved reports; the status breakdown counts everything.
type MonthlySummary struct {
	Month time.Time `json:"month"`

	Financial          StatusCounts `json:"financial"`
	Activity           StatusCounts `json:"activity"`
	FellowshipOutreach StatusCounts `json:"fellowship_outreach"`
	Outreach           StatusCounts `json:"outreach"`

	TotalAttendance      int64 `json:"total_attendance"`
	TotalFirstTimers     int64 `json:"total_first_timers"`
	TotalNewConverts     int64 `json:"total_new_converts"`
	TotalStudentsReached int64 `json:"total_students_reached"`
	TotalSoulsWon        int64 `json:"total_souls_won"`

	TotalOfferings decimal.Decimal `json:"total_offerings"`
	TotalIncome    decimal.Decimal `json:"total_income"`
	TotalExpenses  decimal.Decimal `json:"total_expenses"`
}

// ZoneBreakdown is one row of the national dashboard.
type ZoneBreakdown struct {
	ZoneID   string `json:"zone_id"`
	ZoneName string `json:"zone_name"`
	ZoneCode string `json:"zone_code"`

	Fellowships      int64 `json:"fellowships"`
	ReportsSubmitted int64 `json:"reports_submitted"`
	ReportsApproved  int64 `json:"reports_approved"`
	ReportsPending   int64 `json:"reports_pending"`

	TotalAttendance int64 `json:"total_attendance"`
	TotalSoulsWon   int64 `json:"total_souls_won"`

	TotalIncome decimal.Decimal `json:"total_income"`
}

type NationalDashboard struct {
	Month time.Time       `json:"month"`
	Zones []ZoneBreakdown `json:"zones"`
}

/* =======================================================
   SERVICE
   ======================================================= */

// Repository runs the aggregation queries. The scope filter carries the
// actor's visibility exactly as in the family list queries.
type Repository interface {
	MonthlySummary(ctx context.Context, scope workflow.ScopeFilter, month time.Time) (MonthlySummary, error)
	NationalDashboard(ctx context.Context, month time.Time) (NationalDashboard, error)
}

type AnalyticsService struct {
	repo      Repository
	directory workflow.Directory
}

func NewAnalyticsService(repo Repository, directory workflow.Directory) *AnalyticsService {
	return &AnalyticsService{repo: repo, directory: directory}
}

func (s *AnalyticsService) MonthlySummary(ctx context.Context, actor workflow.Actor, year, month int) (MonthlySummary, error) {
	if month < 1 || month > 12 {
		return MonthlySummary{}, apperr.Validation("month must be between 1 and 12")
	}
	if year < 2000 || year > 2100 {
		return MonthlySummary{}, apperr.Validation("year must be between 2000 and 2100")
	}
	scope, err := workflow.ResolveVisibility(ctx, actor, s.directory)
	if err != nil {
		return MonthlySummary{}, err
	}
	return s.repo.MonthlySummary(ctx, scope, workflow.NormalizeMonth(year, time.Month(month)))
}

func (s *AnalyticsService) NationalDashboard(ctx context.Context, actor workflow.Actor, year, month int) (NationalDashboard, error) {
	if !actor.IsAdmin() {
		return NationalDashboard{}, apperr.Authorization("")
	}
	if month < 1 || month > 12 {
		return NationalDashboard{}, apperr.Validation("month must be between 1 and 12")
	}
	if year < 2000 || year > 2100 {
		return NationalDashboard{}, apperr.Validation("year must be between 2000 and 2100")
	}
	return s.repo.NationalDashboard(ctx, workflow.NormalizeMonth(year, time.Month(month)))
}
