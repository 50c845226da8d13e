package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityReportModel is one fellowship's monthly activity report: meeting
// and attendance counts, no monetary figures. Same dedup key shape as the
// financial family.
type ActivityReportModel struct {
	ActivityReportID           uuid.UUID `gorm:"column:activity_report_id;type:uuid;default:gen_random_uuid();primaryKey" json:"activity_report_id"`
	ActivityReportFellowshipID uuid.UUID `gorm:"column:activity_report_fellowship_id;type:uuid;not null;uniqueIndex:uq_activity_reports_scope_month" json:"activity_report_fellowship_id"`
	ActivityReportMonth        time.Time `gorm:"column:activity_report_month;type:date;not null;uniqueIndex:uq_activity_reports_scope_month" json:"activity_report_month"`
	ActivityReportSubmittedBy  uuid.UUID `gorm:"column:activity_report_submitted_by;type:uuid;not null;index" json:"activity_report_submitted_by"`

	ActivityReportStatus          string     `gorm:"column:activity_report_status;type:varchar(20);not null;default:'pending';index" json:"activity_report_status"`
	ActivityReportApprovedBy      *uuid.UUID `gorm:"column:activity_report_approved_by;type:uuid" json:"activity_report_approved_by,omitempty"`
	ActivityReportApprovalDate    *time.Time `gorm:"column:activity_report_approval_date" json:"activity_report_approval_date,omitempty"`
	ActivityReportRejectionReason *string    `gorm:"column:activity_report_rejection_reason;type:text" json:"activity_report_rejection_reason,omitempty"`

	ActivityReportServicesHeld    int `gorm:"column:activity_report_services_held;not null;default:0" json:"activity_report_services_held"`
	ActivityReportTotalAttendance int `gorm:"column:activity_report_total_attendance;not null;default:0" json:"activity_report_total_attendance"`
	ActivityReportFirstTimers     int `gorm:"column:activity_report_first_timers;not null;default:0" json:"activity_report_first_timers"`
	ActivityReportNewConverts     int `gorm:"column:activity_report_new_converts;not null;default:0" json:"activity_report_new_converts"`
	ActivityReportFollowUpsMade   int `gorm:"column:activity_report_follow_ups_made;not null;default:0" json:"activity_report_follow_ups_made"`
	ActivityReportPrayerMeetings  int `gorm:"column:activity_report_prayer_meetings;not null;default:0" json:"activity_report_prayer_meetings"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (ActivityReportModel) TableName() string {
	return "activity_reports"
}

// workflow.Decidable

func (m *ActivityReportModel) CurrentStatus() string {
	return m.ActivityReportStatus
}

func (m *ActivityReportModel) SetDecision(decision string, reason *string, decidedBy uuid.UUID, at time.Time) {
	m.ActivityReportStatus = decision
	m.ActivityReportRejectionReason = reason
	m.ActivityReportApprovedBy = &decidedBy
	m.ActivityReportApprovalDate = &at
}
