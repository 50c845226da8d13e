package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	fModel "campusreach_backend/internals/features/organization/fellowships/model"
)

type CreateFellowshipRequest struct {
	FellowshipName        string     `json:"fellowship_name" validate:"required,min=3,max=100"`
	FellowshipZoneID      uuid.UUID  `json:"fellowship_zone_id" validate:"required"`
	FellowshipCampus      string     `json:"fellowship_campus" validate:"required,min=3,max=150"`
	FellowshipAddress     *string    `json:"fellowship_address,omitempty"`
	FellowshipMeetingDays []string   `json:"fellowship_meeting_days" validate:"omitempty,dive,oneof=Sunday Monday Tuesday Wednesday Thursday Friday Saturday"`
}

func (r *CreateFellowshipRequest) Normalize() {
	r.FellowshipName = strings.TrimSpace(r.FellowshipName)
	r.FellowshipCampus = strings.TrimSpace(r.FellowshipCampus)
}

func (r *CreateFellowshipRequest) ToModel() *fModel.FellowshipModel {
	return &fModel.FellowshipModel{
		FellowshipName:        r.FellowshipName,
		FellowshipZoneID:      r.FellowshipZoneID,
		FellowshipCampus:      r.FellowshipCampus,
		FellowshipAddress:     r.FellowshipAddress,
		FellowshipMeetingDays: pq.StringArray(r.FellowshipMeetingDays),
	}
}

type UpdateFellowshipRequest struct {
	FellowshipName        *string    `json:"fellowship_name,omitempty" validate:"omitempty,min=3,max=100"`
	FellowshipZoneID      *uuid.UUID `json:"fellowship_zone_id,omitempty"`
	FellowshipCampus      *string    `json:"fellowship_campus,omitempty" validate:"omitempty,min=3,max=150"`
	FellowshipAddress     *string    `json:"fellowship_address,omitempty"`
	FellowshipMeetingDays []string   `json:"fellowship_meeting_days,omitempty" validate:"omitempty,dive,oneof=Sunday Monday Tuesday Wednesday Thursday Friday Saturday"`
}

func (r *UpdateFellowshipRequest) Normalize() {
	if r.FellowshipName != nil {
		v := strings.TrimSpace(*r.FellowshipName)
		r.FellowshipName = &v
	}
	if r.FellowshipCampus != nil {
		v := strings.TrimSpace(*r.FellowshipCampus)
		r.FellowshipCampus = &v
	}
}

func (r *UpdateFellowshipRequest) Apply(m *fModel.FellowshipModel) {
	if r.FellowshipName != nil {
		m.FellowshipName = *r.FellowshipName
	}
	if r.FellowshipZoneID != nil {
		m.FellowshipZoneID = *r.FellowshipZoneID
	}
	if r.FellowshipCampus != nil {
		m.FellowshipCampus = *r.FellowshipCampus
	}
	if r.FellowshipAddress != nil {
		m.FellowshipAddress = r.FellowshipAddress
	}
	if r.FellowshipMeetingDays != nil {
		m.FellowshipMeetingDays = pq.StringArray(r.FellowshipMeetingDays)
	}
}
