package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OutreachReportModel is one member's monthly personal witnessing report.
// Unlike the fellowship families the scope is the owning user; the
// fellowship column is a snapshot of the owner's assignment at submission
// time so zone coordinators can still scope their visibility by fellowship.
type OutreachReportModel struct {
	OutreachReportID           uuid.UUID  `gorm:"column:outreach_report_id;type:uuid;default:gen_random_uuid();primaryKey" json:"outreach_report_id"`
	OutreachReportUserID       uuid.UUID  `gorm:"column:outreach_report_user_id;type:uuid;not null;uniqueIndex:uq_outreach_reports_scope_month" json:"outreach_report_user_id"`
	OutreachReportMonth        time.Time  `gorm:"column:outreach_report_month;type:date;not null;uniqueIndex:uq_outreach_reports_scope_month" json:"outreach_report_month"`
	OutreachReportFellowshipID *uuid.UUID `gorm:"column:outreach_report_fellowship_id;type:uuid;index" json:"outreach_report_fellowship_id,omitempty"`
	OutreachReportSubmittedBy  uuid.UUID  `gorm:"column:outreach_report_submitted_by;type:uuid;not null;index" json:"outreach_report_submitted_by"`

	OutreachReportStatus          string     `gorm:"column:outreach_report_status;type:varchar(20);not null;default:'pending';index" json:"outreach_report_status"`
	OutreachReportApprovedBy      *uuid.UUID `gorm:"column:outreach_report_approved_by;type:uuid" json:"outreach_report_approved_by,omitempty"`
	OutreachReportApprovalDate    *time.Time `gorm:"column:outreach_report_approval_date" json:"outreach_report_approval_date,omitempty"`
	OutreachReportRejectionReason *string    `gorm:"column:outreach_report_rejection_reason;type:text" json:"outreach_report_rejection_reason,omitempty"`

	OutreachReportEntries       datatypes.JSON `gorm:"column:outreach_report_entries;type:jsonb" json:"outreach_report_entries"`
	OutreachReportTotalContacts int            `gorm:"column:outreach_report_total_contacts;not null;default:0" json:"outreach_report_total_contacts"`
	OutreachReportTotalSoulsWon int            `gorm:"column:outreach_report_total_souls_won;not null;default:0" json:"outreach_report_total_souls_won"`

	OutreachReportAreasCovered pq.StringArray `gorm:"column:outreach_report_areas_covered;type:text[]" json:"outreach_report_areas_covered"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (OutreachReportModel) TableName() string {
	return "outreach_reports"
}

// workflow.Decidable

func (m *OutreachReportModel) CurrentStatus() string {
	return m.OutreachReportStatus
}

func (m *OutreachReportModel) SetDecision(decision string, reason *string, decidedBy uuid.UUID, at time.Time) {
	m.OutreachReportStatus = decision
	m.OutreachReportRejectionReason = reason
	m.OutreachReportApprovedBy = &decidedBy
	m.OutreachReportApprovalDate = &at
}
