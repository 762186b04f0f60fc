package models

import (
	"time"

	"github.com/google/uuid"
)

// ServiceProvider is an external contractor referenced by work orders.
type ServiceProvider struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"not null;size:255" json:"name"`
	Profession string    `gorm:"size:100" json:"profession,omitempty"`
	TaxID      string    `gorm:"size:20" json:"tax_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
