package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	fModel "campusreach_backend/internals/features/reports/financial/model"
	"campusreach_backend/internals/features/reports/period"
)

/* =======================================================
   LINE ITEMS
   ======================================================= */

type ExpenseItem struct {
	Description string          `json:"description" validate:"required,min=2,max=255"`
	Amount      decimal.Decimal `json:"amount"`
}

// SumExpenses is the pure derived-total computation: total_expenses always
// equals the sum over the current line items.
func SumExpenses(items []ExpenseItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount)
	}
	return total
}

func MarshalExpenses(items []ExpenseItem) (datatypes.JSON, error) {
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func UnmarshalExpenses(raw datatypes.JSON) ([]ExpenseItem, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var items []ExpenseItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type SubmitFinancialReportRequest struct {
	FellowshipID *uuid.UUID `json:"fellowship_id,omitempty"`
	Month        int        `json:"month" validate:"required,min=1,max=12"`
	Year         int        `json:"year" validate:"required,min=2000,max=2100"`

	Offerings    decimal.Decimal `json:"offerings"`
	Tithes       decimal.Decimal `json:"tithes"`
	SpecialSeeds decimal.Decimal `json:"special_seeds"`

	Expenses []ExpenseItem `json:"expenses" validate:"omitempty,dive"`
}

type UpdateFinancialReportRequest struct {
	Offerings    *decimal.Decimal `json:"offerings,omitempty"`
	Tithes       *decimal.Decimal `json:"tithes,omitempty"`
	SpecialSeeds *decimal.Decimal `json:"special_seeds,omitempty"`
	Expenses     []ExpenseItem    `json:"expenses,omitempty" validate:"omitempty,dive"`
}

type DecisionRequest struct {
	Decision        string  `json:"decision" validate:"required"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// FinancialReportResponse: the stored entity plus the resolved display
// period, which is computed per response and never persisted.
type FinancialReportResponse struct {
	FinancialReportID uuid.UUID  `json:"financial_report_id"`
	FellowshipID      uuid.UUID  `json:"fellowship_id"`
	Month             time.Time  `json:"month"`
	SubmittedBy       uuid.UUID  `json:"submitted_by"`
	Status            string     `json:"status"`
	ApprovedBy        *uuid.UUID `json:"approved_by,omitempty"`
	ApprovalDate      *time.Time `json:"approval_date,omitempty"`
	RejectionReason   *string    `json:"rejection_reason,omitempty"`

	Offerings    decimal.Decimal `json:"offerings"`
	Tithes       decimal.Decimal `json:"tithes"`
	SpecialSeeds decimal.Decimal `json:"special_seeds"`

	Expenses      []ExpenseItem   `json:"expenses"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`

	BalanceBroughtDown    decimal.Decimal `json:"balance_brought_down"`
	TotalIncome           decimal.Decimal `json:"total_income"`
	BalanceCarriedForward decimal.Decimal `json:"balance_carried_forward"`

	Period period.Window `json:"period"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToFinancialReportResponse(m *fModel.FinancialReportModel, window period.Window) (FinancialReportResponse, error) {
	items, err := UnmarshalExpenses(m.FinancialReportExpenses)
	if err != nil {
		return FinancialReportResponse{}, err
	}
	return FinancialReportResponse{
		FinancialReportID: m.FinancialReportID,
		FellowshipID:      m.FinancialReportFellowshipID,
		Month:             m.FinancialReportMonth,
		SubmittedBy:       m.FinancialReportSubmittedBy,
		Status:            m.FinancialReportStatus,
		ApprovedBy:        m.FinancialReportApprovedBy,
		ApprovalDate:      m.FinancialReportApprovalDate,
		RejectionReason:   m.FinancialReportRejectionReason,

		Offerings:    m.FinancialReportOfferings,
		Tithes:       m.FinancialReportTithes,
		SpecialSeeds: m.FinancialReportSpecialSeeds,

		Expenses:      items,
		TotalExpenses: m.FinancialReportTotalExpenses,

		BalanceBroughtDown:    m.FinancialReportBalanceBroughtDown,
		TotalIncome:           m.FinancialReportTotalIncome,
		BalanceCarriedForward: m.FinancialReportBalanceCarriedForward,

		Period: window,

		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}
