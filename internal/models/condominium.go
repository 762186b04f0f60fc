package models

import (
	"time"

	"github.com/google/uuid"
)

// Condominium is the root entity every other record hangs off of.
// TaxID (CNPJ) is globally unique. The theme fields feed the
// white-label mobile client.
type Condominium struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name                string    `gorm:"not null;size:255;index" json:"name"`
	TaxID               string    `gorm:"not null;size:20;uniqueIndex" json:"tax_id"`
	Address             string    `gorm:"size:500" json:"address,omitempty"`
	CleaningCompany     string    `gorm:"size:255" json:"cleaning_company,omitempty"`
	ElevatorMaintenance string    `gorm:"size:255" json:"elevator_maintenance,omitempty"`

	// White-label theme
	LogoURL        string `gorm:"size:500" json:"logo_url,omitempty"`
	PrimaryColor   string `gorm:"size:16;default:'0xFF000000'" json:"primary_color"`
	SecondaryColor string `gorm:"size:16;default:'0xFFFFFFFF'" json:"secondary_color"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
