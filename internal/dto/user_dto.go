package dto

import "github.com/google/uuid"

type CreateUserRequest struct {
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Password      string     `json:"password"`
	Phone         string     `json:"phone"`
	Role          string     `json:"role"`
	CondominiumID *uuid.UUID `json:"condominium_id"`
}

// UpdateUserRequest is a partial update: only non-nil fields are
// applied.
type UpdateUserRequest struct {
	Name          *string    `json:"name"`
	Phone         *string    `json:"phone"`
	PhotoURL      *string    `json:"photo_url"`
	Role          *string    `json:"role"`
	CondominiumID *uuid.UUID `json:"condominium_id"`
}

// ApproveUserRequest promotes a pending user into a working role tied
// to a condominium.
type ApproveUserRequest struct {
	Role          string    `json:"role"`
	CondominiumID uuid.UUID `json:"condominium_id"`
}
