package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	oModel "campusreach_backend/internals/features/reports/outreach/model"
	"campusreach_backend/internals/features/reports/period"
)

/* =======================================================
   LINE ITEMS
   ======================================================= */

type WitnessingItem struct {
	Location        string `json:"location" validate:"required,min=2,max=255"`
	ContactCount    int    `json:"contact_count" validate:"min=0"`
	SoulsWon        int    `json:"souls_won" validate:"min=0"`
	FollowUpPlanned bool   `json:"follow_up_planned"`
}

func SumWitnessing(items []WitnessingItem) (contacts, soulsWon int) {
	for _, it := range items {
		contacts += it.ContactCount
		soulsWon += it.SoulsWon
	}
	return contacts, soulsWon
}

func MarshalEntries(items []WitnessingItem) (datatypes.JSON, error) {
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func UnmarshalEntries(raw datatypes.JSON) ([]WitnessingItem, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var items []WitnessingItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type SubmitOutreachReportRequest struct {
	// UserID lets an admin file on behalf of a member; everyone else may
	// only submit for themselves.
	UserID *uuid.UUID `json:"user_id,omitempty"`
	Month  int        `json:"month" validate:"required,min=1,max=12"`
	Year   int        `json:"year" validate:"required,min=2000,max=2100"`

	Entries      []WitnessingItem `json:"entries" validate:"omitempty,dive"`
	AreasCovered []string         `json:"areas_covered" validate:"omitempty,dive,min=1,max=255"`
}

type UpdateOutreachReportRequest struct {
	Entries      []WitnessingItem `json:"entries,omitempty" validate:"omitempty,dive"`
	AreasCovered []string         `json:"areas_covered,omitempty" validate:"omitempty,dive,min=1,max=255"`
}

type DecisionRequest struct {
	Decision        string  `json:"decision" validate:"required"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type OutreachReportResponse struct {
	OutreachReportID uuid.UUID  `json:"outreach_report_id"`
	UserID           uuid.UUID  `json:"user_id"`
	FellowshipID     *uuid.UUID `json:"fellowship_id,omitempty"`
	Month            time.Time  `json:"month"`
	SubmittedBy      uuid.UUID  `json:"submitted_by"`
	Status           string     `json:"status"`
	ApprovedBy       *uuid.UUID `json:"approved_by,omitempty"`
	ApprovalDate     *time.Time `json:"approval_date,omitempty"`
	RejectionReason  *string    `json:"rejection_reason,omitempty"`

	Entries       []WitnessingItem `json:"entries"`
	TotalContacts int              `json:"total_contacts"`
	TotalSoulsWon int              `json:"total_souls_won"`
	AreasCovered  []string         `json:"areas_covered"`

	Period period.Window `json:"period"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToOutreachReportResponse(m *oModel.OutreachReportModel, window period.Window) (OutreachReportResponse, error) {
	items, err := UnmarshalEntries(m.OutreachReportEntries)
	if err != nil {
		return OutreachReportResponse{}, err
	}
	return OutreachReportResponse{
		OutreachReportID: m.OutreachReportID,
		UserID:           m.OutreachReportUserID,
		FellowshipID:     m.OutreachReportFellowshipID,
		Month:            m.OutreachReportMonth,
		SubmittedBy:      m.OutreachReportSubmittedBy,
		Status:           m.OutreachReportStatus,
		ApprovedBy:       m.OutreachReportApprovedBy,
		ApprovalDate:     m.OutreachReportApprovalDate,
		RejectionReason:  m.OutreachReportRejectionReason,

		Entries:       items,
		TotalContacts: m.OutreachReportTotalContacts,
		TotalSoulsWon: m.OutreachReportTotalSoulsWon,
		AreasCovered:  m.OutreachReportAreasCovered,

		Period: window,

		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}
