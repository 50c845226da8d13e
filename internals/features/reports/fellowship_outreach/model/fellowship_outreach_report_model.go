package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FellowshipOutreachReportModel is one fellowship's monthly outreach report:
// campus visit line items with totals derived from them, plus the list of
// areas covered during the period.
type FellowshipOutreachReportModel struct {
	FellowshipOutreachReportID           uuid.UUID `gorm:"column:fellowship_outreach_report_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fellowship_outreach_report_id"`
	FellowshipOutreachReportFellowshipID uuid.UUID `gorm:"column:fellowship_outreach_report_fellowship_id;type:uuid;not null;uniqueIndex:uq_fellowship_outreach_reports_scope_month" json:"fellowship_outreach_report_fellowship_id"`
	FellowshipOutreachReportMonth        time.Time `gorm:"column:fellowship_outreach_report_month;type:date;not null;uniqueIndex:uq_fellowship_outreach_reports_scope_month" json:"fellowship_outreach_report_month"`
	FellowshipOutreachReportSubmittedBy  uuid.UUID `gorm:"column:fellowship_outreach_report_submitted_by;type:uuid;not null;index" json:"fellowship_outreach_report_submitted_by"`

	FellowshipOutreachReportStatus          string     `gorm:"column:fellowship_outreach_report_status;type:varchar(20);not null;default:'pending';index" json:"fellowship_outreach_report_status"`
	FellowshipOutreachReportApprovedBy      *uuid.UUID `gorm:"column:fellowship_outreach_report_approved_by;type:uuid" json:"fellowship_outreach_report_approved_by,omitempty"`
	FellowshipOutreachReportApprovalDate    *time.Time `gorm:"column:fellowship_outreach_report_approval_date" json:"fellowship_outreach_report_approval_date,omitempty"`
	FellowshipOutreachReportRejectionReason *string    `gorm:"column:fellowship_outreach_report_rejection_reason;type:text" json:"fellowship_outreach_report_rejection_reason,omitempty"`

	FellowshipOutreachReportVisits               datatypes.JSON `gorm:"column:fellowship_outreach_report_visits;type:jsonb" json:"fellowship_outreach_report_visits"`
	FellowshipOutreachReportTotalStudentsReached int            `gorm:"column:fellowship_outreach_report_total_students_reached;not null;default:0" json:"fellowship_outreach_report_total_students_reached"`
	FellowshipOutreachReportTotalSoulsWon        int            `gorm:"column:fellowship_outreach_report_total_souls_won;not null;default:0" json:"fellowship_outreach_report_total_souls_won"`

	FellowshipOutreachReportAreasCovered pq.StringArray `gorm:"column:fellowship_outreach_report_areas_covered;type:text[]" json:"fellowship_outreach_report_areas_covered"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (FellowshipOutreachReportModel) TableName() string {
	return "fellowship_outreach_reports"
}

// workflow.Decidable

func (m *FellowshipOutreachReportModel) CurrentStatus() string {
	return m.FellowshipOutreachReportStatus
}

func (m *FellowshipOutreachReportModel) SetDecision(decision string, reason *string, decidedBy uuid.UUID, at time.Time) {
	m.FellowshipOutreachReportStatus = decision
	m.FellowshipOutreachReportRejectionReason = reason
	m.FellowshipOutreachReportApprovedBy = &decidedBy
	m.FellowshipOutreachReportApprovalDate = &at
}
