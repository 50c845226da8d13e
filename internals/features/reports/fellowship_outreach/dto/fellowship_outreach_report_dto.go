package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	foModel "campusreach_backend/internals/features/reports/fellowship_outreach/model"
	"campusreach_backend/internals/features/reports/period"
)

/* =======================================================
   LINE ITEMS
   ======================================================= */

type VisitItem struct {
	Location        string    `json:"location" validate:"required,min=2,max=255"`
	VisitDate       time.Time `json:"visit_date" validate:"required"`
	StudentsReached int       `json:"students_reached" validate:"min=0"`
	SoulsWon        int       `json:"souls_won" validate:"min=0"`
	Notes           string    `json:"notes,omitempty" validate:"max=1000"`
}

// SumVisits recomputes the derived totals from the current line items.
func SumVisits(items []VisitItem) (studentsReached, soulsWon int) {
	for _, it := range items {
		studentsReached += it.StudentsReached
		soulsWon += it.SoulsWon
	}
	return studentsReached, soulsWon
}

func MarshalVisits(items []VisitItem) (datatypes.JSON, error) {
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func UnmarshalVisits(raw datatypes.JSON) ([]VisitItem, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var items []VisitItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type SubmitFellowshipOutreachReportRequest struct {
	FellowshipID *uuid.UUID `json:"fellowship_id,omitempty"`
	Month        int        `json:"month" validate:"required,min=1,max=12"`
	Year         int        `json:"year" validate:"required,min=2000,max=2100"`

	Visits       []VisitItem `json:"visits" validate:"omitempty,dive"`
	AreasCovered []string    `json:"areas_covered" validate:"omitempty,dive,min=1,max=255"`
}

type UpdateFellowshipOutreachReportRequest struct {
	Visits       []VisitItem `json:"visits,omitempty" validate:"omitempty,dive"`
	AreasCovered []string    `json:"areas_covered,omitempty" validate:"omitempty,dive,min=1,max=255"`
}

type DecisionRequest struct {
	Decision        string  `json:"decision" validate:"required"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type FellowshipOutreachReportResponse struct {
	FellowshipOutreachReportID uuid.UUID  `json:"fellowship_outreach_report_id"`
	FellowshipID               uuid.UUID  `json:"fellowship_id"`
	Month                      time.Time  `json:"month"`
	SubmittedBy                uuid.UUID  `json:"submitted_by"`
	Status                     string     `json:"status"`
	ApprovedBy                 *uuid.UUID `json:"approved_by,omitempty"`
	ApprovalDate               *time.Time `json:"approval_date,omitempty"`
	RejectionReason            *string    `json:"rejection_reason,omitempty"`

	Visits               []VisitItem `json:"visits"`
	TotalStudentsReached int         `json:"total_students_reached"`
	TotalSoulsWon        int         `json:"total_souls_won"`
	AreasCovered         []string    `json:"areas_covered"`

	Period period.Window `json:"period"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToFellowshipOutreachReportResponse(m *foModel.FellowshipOutreachReportModel, window period.Window) (FellowshipOutreachReportResponse, error) {
	items, err := UnmarshalVisits(m.FellowshipOutreachReportVisits)
	if err != nil {
		return FellowshipOutreachReportResponse{}, err
	}
	return FellowshipOutreachReportResponse{
		FellowshipOutreachReportID: m.FellowshipOutreachReportID,
		FellowshipID:               m.FellowshipOutreachReportFellowshipID,
		Month:                      m.FellowshipOutreachReportMonth,
		SubmittedBy:                m.FellowshipOutreachReportSubmittedBy,
		Status:                     m.FellowshipOutreachReportStatus,
		ApprovedBy:                 m.FellowshipOutreachReportApprovedBy,
		ApprovalDate:               m.FellowshipOutreachReportApprovalDate,
		RejectionReason:            m.FellowshipOutreachReportRejectionReason,

		Visits:               items,
		TotalStudentsReached: m.FellowshipOutreachReportTotalStudentsReached,
		TotalSoulsWon:        m.FellowshipOutreachReportTotalSoulsWon,
		AreasCovered:         m.FellowshipOutreachReportAreasCovered,

		Period: window,

		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}
