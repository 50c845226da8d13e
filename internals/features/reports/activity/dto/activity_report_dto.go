package dto

import (
	"time"

	"github.com/google/uuid"

	aModel "campusreach_backend/internals/features/reports/activity/model"
	"campusreach_backend/internals/features/reports/period"
)

type SubmitActivityReportRequest struct {
	FellowshipID *uuid.UUID `json:"fellowship_id,omitempty"`
	Month        int        `json:"month" validate:"required,min=1,max=12"`
	Year         int        `json:"year" validate:"required,min=2000,max=2100"`

	ServicesHeld    int `json:"services_held" validate:"min=0"`
	TotalAttendance int `json:"total_attendance" validate:"min=0"`
	FirstTimers     int `json:"first_timers" validate:"min=0"`
	NewConverts     int `json:"new_converts" validate:"min=0"`
	FollowUpsMade   int `json:"follow_ups_made" validate:"min=0"`
	PrayerMeetings  int `json:"prayer_meetings" validate:"min=0"`
}

type UpdateActivityReportRequest struct {
	ServicesHeld    *int `json:"services_held,omitempty" validate:"omitempty,min=0"`
	TotalAttendance *int `json:"total_attendance,omitempty" validate:"omitempty,min=0"`
	FirstTimers     *int `json:"first_timers,omitempty" validate:"omitempty,min=0"`
	NewConverts     *int `json:"new_converts,omitempty" validate:"omitempty,min=0"`
	FollowUpsMade   *int `json:"follow_ups_made,omitempty" validate:"omitempty,min=0"`
	PrayerMeetings  *int `json:"prayer_meetings,omitempty" validate:"omitempty,min=0"`
}

// Apply copies the provided fields onto the model (pointer-patch).
func (r *UpdateActivityReportRequest) Apply(m *aModel.ActivityReportModel) {
	if r.ServicesHeld != nil {
		m.ActivityReportServicesHeld = *r.ServicesHeld
	}
	if r.TotalAttendance != nil {
		m.ActivityReportTotalAttendance = *r.TotalAttendance
	}
	if r.FirstTimers != nil {
		m.ActivityReportFirstTimers = *r.FirstTimers
	}
	if r.NewConverts != nil {
		m.ActivityReportNewConverts = *r.NewConverts
	}
	if r.FollowUpsMade != nil {
		m.ActivityReportFollowUpsMade = *r.FollowUpsMade
	}
	if r.PrayerMeetings != nil {
		m.ActivityReportPrayerMeetings = *r.PrayerMeetings
	}
}

type DecisionRequest struct {
	Decision        string  `json:"decision" validate:"required"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

type ActivityReportResponse struct {
	ActivityReportID uuid.UUID  `json:"activity_report_id"`
	FellowshipID     uuid.UUID  `json:"fellowship_id"`
	Month            time.Time  `json:"month"`
	SubmittedBy      uuid.UUID  `json:"submitted_by"`
	Status           string     `json:"status"`
	ApprovedBy       *uuid.UUID `json:"approved_by,omitempty"`
	ApprovalDate     *time.Time `json:"approval_date,omitempty"`
	RejectionReason  *string    `json:"rejection_reason,omitempty"`

	ServicesHeld    int `json:"services_held"`
	TotalAttendance int `json:"total_attendance"`
	FirstTimers     int `json:"first_timers"`
	NewConverts     int `json:"new_converts"`
	FollowUpsMade   int `json:"follow_ups_made"`
	PrayerMeetings  int `json:"prayer_meetings"`

	Period period.Window `json:"period"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToActivityReportResponse(m *aModel.ActivityReportModel, window period.Window) ActivityReportResponse {
	return ActivityReportResponse{
		ActivityReportID: m.ActivityReportID,
		FellowshipID:     m.ActivityReportFellowshipID,
		Month:            m.ActivityReportMonth,
		SubmittedBy:      m.ActivityReportSubmittedBy,
		Status:           m.ActivityReportStatus,
		ApprovedBy:       m.ActivityReportApprovedBy,
		ApprovalDate:     m.ActivityReportApprovalDate,
		RejectionReason:  m.ActivityReportRejectionReason,

		ServicesHeld:    m.ActivityReportServicesHeld,
		TotalAttendance: m.ActivityReportTotalAttendance,
		FirstTimers:     m.ActivityReportFirstTimers,
		NewConverts:     m.ActivityReportNewConverts,
		FollowUpsMade:   m.ActivityReportFollowUpsMade,
		PrayerMeetings:  m.ActivityReportPrayerMeetings,

		Period: window,

		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
