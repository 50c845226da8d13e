package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FinancialReportModel is one fellowship's monthly financial report. The
// month column is always the first day of the calendar month; together with
// the fellowship it forms the dedup key, enforced by the unique index as the
// authoritative guard behind the service-level pre-check.
type FinancialReportModel struct {
	FinancialReportID           uuid.UUID `gorm:"column:financial_report_id;type:uuid;default:gen_random_uuid();primaryKey" json:"financial_report_id"`
	FinancialReportFellowshipID uuid.UUID `gorm:"column:financial_report_fellowship_id;type:uuid;not null;uniqueIndex:uq_financial_reports_scope_month" json:"financial_report_fellowship_id"`
	FinancialReportMonth        time.Time `gorm:"column:financial_report_month;type:date;not null;uniqueIndex:uq_financial_reports_scope_month" json:"financial_report_month"`
	FinancialReportSubmittedBy  uuid.UUID `gorm:"column:financial_report_submitted_by;type:uuid;not null;index" json:"financial_report_submitted_by"`

	FinancialReportStatus          string     `gorm:"column:financial_report_status;type:varchar(20);not null;default:'pending';index" json:"financial_report_status"`
	FinancialReportApprovedBy      *uuid.UUID `gorm:"column:financial_report_approved_by;type:uuid" json:"financial_report_approved_by,omitempty"`
	FinancialReportApprovalDate    *time.Time `gorm:"column:financial_report_approval_date" json:"financial_report_approval_date,omitempty"`
	FinancialReportRejectionReason *string    `gorm:"column:financial_report_rejection_reason;type:text" json:"financial_report_rejection_reason,omitempty"`

	// income figures
	FinancialReportOfferings    decimal.Decimal `gorm:"column:financial_report_offerings;type:numeric(14,2);not null" json:"financial_report_offerings"`
	FinancialReportTithes       decimal.Decimal `gorm:"column:financial_report_tithes;type:numeric(14,2);not null" json:"financial_report_tithes"`
	FinancialReportSpecialSeeds decimal.Decimal `gorm:"column:financial_report_special_seeds;type:numeric(14,2);not null" json:"financial_report_special_seeds"`

	// expense line items + totals derived from them
	FinancialReportExpenses      datatypes.JSON  `gorm:"column:financial_report_expenses;type:jsonb" json:"financial_report_expenses"`
	FinancialReportTotalExpenses decimal.Decimal `gorm:"column:financial_report_total_expenses;type:numeric(14,2);not null" json:"financial_report_total_expenses"`

	// balance b/d is the previous month's approved closing balance, zero
	// when no approved report exists for that month
	FinancialReportBalanceBroughtDown    decimal.Decimal `gorm:"column:financial_report_balance_brought_down;type:numeric(14,2);not null" json:"financial_report_balance_brought_down"`
	FinancialReportTotalIncome           decimal.Decimal `gorm:"column:financial_report_total_income;type:numeric(14,2);not null" json:"financial_report_total_income"`
	FinancialReportBalanceCarriedForward decimal.Decimal `gorm:"column:financial_report_balance_carried_forward;type:numeric(14,2);not null" json:"financial_report_balance_carried_forward"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (FinancialReportModel) TableName() string {
	return "financial_reports"
}

// workflow.Decidable

func (m *FinancialReportModel) CurrentStatus() string {
	return m.FinancialReportStatus
}

func (m *FinancialReportModel) SetDecision(decision string, reason *string, decidedBy uuid.UUID, at time.Time) {
	m.FinancialReportStatus = decision
	m.FinancialReportRejectionReason = reason
	m.FinancialReportApprovedBy = &decidedBy
	m.FinancialReportApprovalDate = &at
}
