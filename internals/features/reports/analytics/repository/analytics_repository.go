// internals/features/reports/analytics/repository/analytics_repository.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"campusreach_backend/internals/features/reports/analytics/service"
	"campusreach_backend/internals/features/reports/workflow"
)

// family describes one report table for the generic aggregation queries.
type family struct {
	table     string
	scopeCol  string // fellowship (or snapshot) column
	ownerCol  string // submitter/owner column matched against SubmittedBy scopes
	monthCol  string
	statusCol string
}

var (
	financialFamily = family{
		table:     "financial_reports",
		scopeCol:  "financial_report_fellowship_id",
		ownerCol:  "financial_report_submitted_by",
		monthCol:  "financial_report_month",
		statusCol: "financial_report_status",
	}
	activityFamily = family{
		table:     "activity_reports",
		scopeCol:  "activity_report_fellowship_id",
		ownerCol:  "activity_report_submitted_by",
		monthCol:  "activity_report_month",
		statusCol: "activity_report_status",
	}
	fellowshipOutreachFamily = family{
		table:     "fellowship_outreach_reports",
		scopeCol:  "fellowship_outreach_report_fellowship_id",
		ownerCol:  "fellowship_outreach_report_submitted_by",
		monthCol:  "fellowship_outreach_report_month",
		statusCol: "fellowship_outreach_report_status",
	}
	outreachFamily = family{
		table:     "outreach_reports",
		scopeCol:  "outreach_report_fellowship_id",
		ownerCol:  "outreach_report_user_id",
		monthCol:  "outreach_report_month",
		statusCol: "outreach_report_status",
	}
)

type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

var _ service.Repository = (*AnalyticsRepository)(nil)

func (r *AnalyticsRepository) base(ctx context.Context, fam family, scope workflow.ScopeFilter, month time.Time) *gorm.DB {
	q := r.DB.WithContext(ctx).Table(fam.table).
		Where(fam.monthCol+" = ?", month).
		Where("deleted_at IS NULL")
	if scope.All {
		return q
	}
	if scope.SubmittedBy != nil {
		return q.Where(fam.ownerCol+" = ?", *scope.SubmittedBy)
	}
	if len(scope.FellowshipIDs) == 0 {
		return q.Where("1 = 0")
	}
	return q.Where(fam.scopeCol+" IN ?", scope.FellowshipIDs)
}

func (r *AnalyticsRepository) statusCounts(ctx context.Context, fam family, scope workflow.ScopeFilter, month time.Time) (service.StatusCounts, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.base(ctx, fam, scope, month).
		Select(fam.statusCol + " AS status, COUNT(*) AS count").
		Group(fam.statusCol).
		Scan(&rows).Error
	if err != nil {
		return service.StatusCounts{}, err
	}
	var counts service.StatusCounts
	for _, row := range rows {
		switch row.Status {
		case workflow.StatusPending:
			counts.Pending = row.Count
		case workflow.StatusApproved:
			counts.Approved = row.Count
		case workflow.StatusRejected:
			counts.Rejected = row.Count
		}
	}
	return counts, nil
}

func (r *AnalyticsRepository) MonthlySummary(ctx context.Context, scope workflow.ScopeFilter, month time.Time) (service.MonthlySummary, error) {
	summary := service.MonthlySummary{
		Month:          month,
		TotalOfferings: decimal.Zero,
		TotalIncome:    decimal.Zero,
		TotalExpenses:  decimal.Zero,
	}

	var err error
	if summary.Financial, err = r.statusCounts(ctx, financialFamily, scope, month); err != nil {
		return service.MonthlySummary{}, err
	}
	if summary.Activity, err = r.statusCounts(ctx, activityFamily, scope, month); err != nil {
		return service.MonthlySummary{}, err
	}
	if summary.FellowshipOutreach, err = r.statusCounts(ctx, fellowshipOutreachFamily, scope, month); err != nil {
		return service.MonthlySummary{}, err
	}
	if summary.Outreach, err = r.statusCounts(ctx, outreachFamily, scope, month); err != nil {
		return service.MonthlySummary{}, err
	}

	// totals only count approved reports

	var activityTotals struct {
		Attendance  int64
		FirstTimers int64
		NewConverts int64
	}
	err = r.base(ctx, activityFamily, scope, month).
		Where(activityFamily.statusCol+" = ?", workflow.StatusApproved).
		Select(`COALESCE(SUM(activity_report_total_attendance), 0) AS attendance,
			COALESCE(SUM(activity_report_first_timers), 0) AS first_timers,
			COALESCE(SUM(activity_report_new_converts), 0) AS new_converts`).
		Scan(&activityTotals).Error
	if err != nil {
		return service.MonthlySummary{}, err
	}
	summary.TotalAttendance = activityTotals.Attendance
	summary.TotalFirstTimers = activityTotals.FirstTimers
	summary.TotalNewConverts = activityTotals.NewConverts

	var foTotals struct {
		Students int64
		Souls    int64
	}
	err = r.base(ctx, fellowshipOutreachFamily, scope, month).
		Where(fellowshipOutreachFamily.statusCol+" = ?", workflow.StatusApproved).
		Select(`COALESCE(SUM(fellowship_outreach_report_total_students_reached), 0) AS students,
			COALESCE(SUM(fellowship_outreach_report_total_souls_won), 0) AS souls`).
		Scan(&foTotals).Error
	if err != nil {
		return service.MonthlySummary{}, err
	}
	summary.TotalStudentsReached = foTotals.Students
	summary.TotalSoulsWon = foTotals.Souls

	var outreachSouls struct {
		Souls int64
	}
	err = r.base(ctx, outreachFamily, scope, month).
		Where(outreachFamily.statusCol+" = ?", workflow.StatusApproved).
		Select("COALESCE(SUM(outreach_report_total_souls_won), 0) AS souls").
		Scan(&outreachSouls).Error
	if err != nil {
		return service.MonthlySummary{}, err
	}
	summary.TotalSoulsWon += outreachSouls.Souls

	var financialTotals struct {
		Offerings decimal.Decimal
		Income    decimal.Decimal
		Expenses  decimal.Decimal
	}
	err = r.base(ctx, financialFamily, scope, month).
		Where(financialFamily.statusCol+" = ?", workflow.StatusApproved).
		Select(`COALESCE(SUM(financial_report_offerings), 0) AS offerings,
			COALESCE(SUM(financial_report_total_income), 0) AS income,
			COALESCE(SUM(financial_report_total_expenses), 0) AS expenses`).
		Scan(&financialTotals).Error
	if err != nil {
		return service.MonthlySummary{}, err
	}
	summary.TotalOfferings = financialTotals.Offerings
	summary.TotalIncome = financialTotals.Income
	summary.TotalExpenses = financialTotals.Expenses

	return summary, nil
}

func (r *AnalyticsRepository) NationalDashboard(ctx context.Context, month time.Time) (service.NationalDashboard, error) {
	type zoneRow struct {
		ZoneID      uuid.UUID
		ZoneName    string
		ZoneCode    string
		Fellowships int64
	}
	var zones []zoneRow
	err := r.DB.WithContext(ctx).
		Table("zones z").
		Select(`z.zone_id, z.zone_name, z.zone_code,
			COUNT(f.fellowship_id) AS fellowships`).
		Joins("LEFT JOIN fellowships f ON f.fellowship_zone_id = z.zone_id AND f.deleted_at IS NULL").
		Where("z.deleted_at IS NULL").
		Group("z.zone_id, z.zone_name, z.zone_code").
		Order("z.zone_name ASC").
		Scan(&zones).Error
	if err != nil {
		return service.NationalDashboard{}, err
	}

	dashboard := service.NationalDashboard{Month: month}
	index := make(map[uuid.UUID]int, len(zones))
	for _, z := range zones {
		index[z.ZoneID] = len(dashboard.Zones)
		dashboard.Zones = append(dashboard.Zones, service.ZoneBreakdown{
			ZoneID:      z.ZoneID.String(),
			ZoneName:    z.ZoneName,
			ZoneCode:    z.ZoneCode,
			Fellowships: z.Fellowships,
			TotalIncome: decimal.Zero,
		})
	}

	// status counts per zone, accumulated across all four families
	for _, fam := range []family{financialFamily, activityFamily, fellowshipOutreachFamily, outreachFamily} {
		var rows []struct {
			ZoneID uuid.UUID
			Status string
			Count  int64
		}
		err := r.DB.WithContext(ctx).
			Table(fam.table+" r").
			Select("f.fellowship_zone_id AS zone_id, r."+fam.statusCol+" AS status, COUNT(*) AS count").
			Joins("JOIN fellowships f ON f.fellowship_id = r."+fam.scopeCol).
			Where("r."+fam.monthCol+" = ? AND r.deleted_at IS NULL", month).
			Group("f.fellowship_zone_id, r." + fam.statusCol).
			Scan(&rows).Error
		if err != nil {
			return service.NationalDashboard{}, err
		}
		for _, row := range rows {
			i, ok := index[row.ZoneID]
			if !ok {
				continue
			}
			dashboard.Zones[i].ReportsSubmitted += row.Count
			switch row.Status {
			case workflow.StatusApproved:
				dashboard.Zones[i].ReportsApproved += row.Count
			case workflow.StatusPending:
				dashboard.Zones[i].ReportsPending += row.Count
			}
		}
	}

	var attendanceRows []struct {
		ZoneID     uuid.UUID
		Attendance int64
	}
	err = r.DB.WithContext(ctx).
		Table("activity_reports r").
		Select("f.fellowship_zone_id AS zone_id, COALESCE(SUM(r.activity_report_total_attendance), 0) AS attendance").
		Joins("JOIN fellowships f ON f.fellowship_id = r.activity_report_fellowship_id").
		Where("r.activity_report_month = ? AND r.activity_report_status = ? AND r.deleted_at IS NULL", month, workflow.StatusApproved).
		Group("f.fellowship_zone_id").
		Scan(&attendanceRows).Error
	if err != nil {
		return service.NationalDashboard{}, err
	}
	for _, row := range attendanceRows {
		if i, ok := index[row.ZoneID]; ok {
			dashboard.Zones[i].TotalAttendance = row.Attendance
		}
	}

	for _, fam := range []family{fellowshipOutreachFamily, outreachFamily} {
		soulsCol := "fellowship_outreach_report_total_souls_won"
		if fam.table == "outreach_reports" {
			soulsCol = "outreach_report_total_souls_won"
		}
		var soulRows []struct {
			ZoneID uuid.UUID
			Souls  int64
		}
		err := r.DB.WithContext(ctx).
			Table(fam.table+" r").
			Select("f.fellowship_zone_id AS zone_id, COALESCE(SUM(r."+soulsCol+"), 0) AS souls").
			Joins("JOIN fellowships f ON f.fellowship_id = r."+fam.scopeCol).
			Where("r."+fam.monthCol+" = ? AND r."+fam.statusCol+" = ? AND r.deleted_at IS NULL", month, workflow.StatusApproved).
			Group("f.fellowship_zone_id").
			Scan(&soulRows).Error
		if err != nil {
			return service.NationalDashboard{}, err
		}
		for _, row := range soulRows {
			if i, ok := index[row.ZoneID]; ok {
				dashboard.Zones[i].TotalSoulsWon += row.Souls
			}
		}
	}

	var incomeRows []struct {
		ZoneID uuid.UUID
		Income decimal.Decimal
	}
	err = r.DB.WithContext(ctx).
		Table("financial_reports r").
		Select("f.fellowship_zone_id AS zone_id, COALESCE(SUM(r.financial_report_total_income), 0) AS income").
		Joins("JOIN fellowships f ON f.fellowship_id = r.financial_report_fellowship_id").
		Where("r.financial_report_month = ? AND r.financial_report_status = ? AND r.deleted_at IS NULL", month, workflow.StatusApproved).
		Group("f.fellowship_zone_id").
		Scan(&incomeRows).Error
	if err != nil {
		return service.NationalDashboard{}, err
	}
	for _, row := range incomeRows {
		if i, ok := index[row.ZoneID]; ok {
			dashboard.Zones[i].TotalIncome = row.Income
		}
	}

	return dashboard, nil
}
