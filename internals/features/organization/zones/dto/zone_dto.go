package dto

import (
	"strings"

	zModel "campusreach_backend/internals/features/organization/zones/model"
)

type CreateZoneRequest struct {
	ZoneName        string  `json:"zone_name" validate:"required,min=3,max=100"`
	ZoneCode        string  `json:"zone_code" validate:"required,min=2,max=20"`
	ZoneDescription *string `json:"zone_description,omitempty"`
}

func (r *CreateZoneRequest) Normalize() {
	r.ZoneName = strings.TrimSpace(r.ZoneName)
	r.ZoneCode = strings.ToUpper(strings.TrimSpace(r.ZoneCode))
}

func (r *CreateZoneRequest) ToModel() *zModel.ZoneModel {
	return &zModel.ZoneModel{
		ZoneName:        r.ZoneName,
		ZoneCode:        r.ZoneCode,
		ZoneDescription: r.ZoneDescription,
	}
}

type UpdateZoneRequest struct {
	ZoneName        *string `json:"zone_name,omitempty" validate:"omitempty,min=3,max=100"`
	ZoneCode        *string `json:"zone_code,omitempty" validate:"omitempty,min=2,max=20"`
	ZoneDescription *string `json:"zone_description,omitempty"`
}

func (r *UpdateZoneRequest) Normalize() {
	if r.ZoneName != nil {
		v := strings.TrimSpace(*r.ZoneName)
		r.ZoneName = &v
	}
	if r.ZoneCode != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.ZoneCode))
		r.ZoneCode = &v
	}
}

func (r *UpdateZoneRequest) Apply(m *zModel.ZoneModel) {
	if r.ZoneName != nil {
		m.ZoneName = *r.ZoneName
	}
	if r.ZoneCode != nil {
		m.ZoneCode = *r.ZoneCode
	}
	if r.ZoneDescription != nil {
		m.ZoneDescription = r.ZoneDescription
	}
}
