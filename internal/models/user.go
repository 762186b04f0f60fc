package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account in one of the Role roles. CondominiumID is nil
// for unassigned/pending users (Google sign-ins before approval).
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"not null;size:255" json:"name"`
	Email    string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Phone    string    `gorm:"size:30" json:"phone,omitempty"`
	PhotoURL string    `gorm:"size:500" json:"photo_url,omitempty"`
	Role     Role      `gorm:"size:20;not null;default:'pending'" json:"role"`

	CondominiumID *uuid.UUID   `gorm:"type:uuid;index" json:"condominium_id,omitempty"`
	Condominium   *Condominium `gorm:"foreignKey:CondominiumID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
