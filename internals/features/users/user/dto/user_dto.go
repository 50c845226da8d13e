package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	uModel "campusreach_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateUserRequest: register / create by admin
type CreateUserRequest struct {
	UserName     string     `json:"user_name" validate:"required,min=3,max=50"`
	FullName     string     `json:"full_name" validate:"required,min=3,max=100"`
	Email        string     `json:"email" validate:"required,email,max=255"`
	Password     string     `json:"password" validate:"required,min=8"`
	Role         string     `json:"role" validate:"omitempty,oneof=admin zone_coordinator fellowship_president member"`
	FellowshipID *uuid.UUID `json:"fellowship_id,omitempty"`
	ZoneID       *uuid.UUID `json:"zone_id,omitempty"`
	PhoneNumber  *string    `json:"phone_number,omitempty" validate:"omitempty,max=30"`
}

// Normalize trims & basic normalization
func (r *CreateUserRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Role = strings.TrimSpace(r.Role)
}

// ToModel builds the row; the password is hashed in the controller, not here
func (r *CreateUserRequest) ToModel() *uModel.UserModel {
	return &uModel.UserModel{
		UserName:     r.UserName,
		FullName:     r.FullName,
		Email:        r.Email,
		Password:     r.Password,
		Role:         r.Role,
		FellowshipID: r.FellowshipID,
		ZoneID:       r.ZoneID,
		PhoneNumber:  r.PhoneNumber,
	}
}

// UpdateUserRequest: partial update (pointers distinguish omit vs null)
type UpdateUserRequest struct {
	UserName     *string    `json:"user_name,omitempty" validate:"omitempty,min=3,max=50"`
	FullName     *string    `json:"full_name,omitempty" validate:"omitempty,min=3,max=100"`
	Email        *string    `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Password     *string    `json:"password,omitempty" validate:"omitempty,min=8"`
	Role         *string    `json:"role,omitempty" validate:"omitempty,oneof=admin zone_coordinator fellowship_president member"`
	FellowshipID *uuid.UUID `json:"fellowship_id,omitempty"`
	ZoneID       *uuid.UUID `json:"zone_id,omitempty"`
	PhoneNumber  *string    `json:"phone_number,omitempty" validate:"omitempty,max=30"`
	IsActive     *bool      `json:"is_active,omitempty"`
}

func (r *UpdateUserRequest) Normalize() {
	if r.UserName != nil {
		v := strings.TrimSpace(*r.UserName)
		r.UserName = &v
	}
	if r.FullName != nil {
		v := strings.TrimSpace(*r.FullName)
		r.FullName = &v
	}
	if r.Email != nil {
		v := strings.TrimSpace(strings.ToLower(*r.Email))
		r.Email = &v
	}
	if r.Role != nil {
		v := strings.TrimSpace(*r.Role)
		r.Role = &v
	}
}

// Apply copies only present fields onto the model. Role/scope assignment is
// admin-only; the controller enforces that before calling Apply.
func (r *UpdateUserRequest) Apply(m *uModel.UserModel) {
	if r.UserName != nil {
		m.UserName = *r.UserName
	}
	if r.FullName != nil {
		m.FullName = *r.FullName
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
	if r.Role != nil {
		m.Role = *r.Role
	}
	if r.FellowshipID != nil {
		m.FellowshipID = r.FellowshipID
	}
	if r.ZoneID != nil {
		m.ZoneID = r.ZoneID
	}
	if r.PhoneNumber != nil {
		m.PhoneNumber = r.PhoneNumber
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type UserResponse struct {
	ID           uuid.UUID  `json:"id"`
	UserName     string     `json:"user_name"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	FellowshipID *uuid.UUID `json:"fellowship_id,omitempty"`
	ZoneID       *uuid.UUID `json:"zone_id,omitempty"`
	PhoneNumber  *string    `json:"phone_number,omitempty"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
}

func ToUserResponse(m *uModel.UserModel) UserResponse {
	return UserResponse{
		ID:           m.ID,
		UserName:     m.UserName,
		FullName:     m.FullName,
		Email:        m.Email,
		Role:         m.Role,
		FellowshipID: m.FellowshipID,
		ZoneID:       m.ZoneID,
		PhoneNumber:  m.PhoneNumber,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
	}
}

func ToUserResponses(ms []uModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToUserResponse(&ms[i]))
	}
	return out
}
