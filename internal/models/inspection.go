package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Inspection statuses.
const (
	InspectionPending   = "pending"
	InspectionCompleted = "completed"
)

// Inspection item statuses, normalized to lowercase on intake.
// ItemStatusBad is the sentinel that triggers work-order generation.
const (
	ItemStatusGood    = "bom"
	ItemStatusRegular = "regular"
	ItemStatusBad     = "ruim"
)

// NormalizeItemStatus lowercases the free-text status sent by the
// mobile client ("Ruim", "RUIM" and "ruim" are the same status).
func NormalizeItemStatus(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Inspection is a survey of a condominium performed by an inspector.
// Items are owned rows deleted with their parent.
type Inspection struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Date     time.Time `gorm:"not null" json:"date"`
	Status   string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	Analysis string    `gorm:"type:text" json:"analysis,omitempty"`
	IsCustom bool      `gorm:"not null;default:false" json:"is_custom"`

	SurveyorID    uuid.UUID    `gorm:"type:uuid;not null;index" json:"surveyor_id"`
	Surveyor      *User        `gorm:"foreignKey:SurveyorID" json:"-"`
	CondominiumID uuid.UUID    `gorm:"type:uuid;not null;index" json:"condominium_id"`
	Condominium   *Condominium `gorm:"foreignKey:CondominiumID" json:"-"`

	Items []InspectionItem `gorm:"foreignKey:InspectionID;constraint:OnDelete:CASCADE" json:"items,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InspectionItem is a single surveyed point. CondominiumID is
// denormalized from the parent inspection so work-order listings can
// filter without a double join.
type InspectionItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null;size:255" json:"name"`
	Status      string    `gorm:"not null;size:20" json:"status"`
	PhotoURL    string    `gorm:"size:500" json:"photo_url,omitempty"`
	Observation string    `gorm:"type:text" json:"observation,omitempty"`

	InspectionID  uuid.UUID    `gorm:"type:uuid;not null;index" json:"inspection_id"`
	CondominiumID uuid.UUID    `gorm:"type:uuid;not null;index" json:"condominium_id"`
	Condominium   *Condominium `gorm:"foreignKey:CondominiumID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
