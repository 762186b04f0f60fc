package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MaintenanceAlert tracks a recurring legal/maintenance deadline
// (water-tank cleaning, fire-safety certificate, insurance renewal).
// The three sent flags are one-shot and monotonic: the daily sweep
// sets them as the due date approaches and never clears them.
type MaintenanceAlert struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Type        string         `gorm:"not null;size:100" json:"type"`
	DueDate     datatypes.Date `gorm:"not null;index" json:"due_date"`
	PeriodYears int            `gorm:"not null;default:1" json:"period_years"`

	AlertSent1Month bool `gorm:"column:alert_sent_1month;not null;default:false" json:"alert_sent_1month"`
	AlertSent1Week  bool `gorm:"column:alert_sent_1week;not null;default:false" json:"alert_sent_1week"`
	AlertSent1Day   bool `gorm:"column:alert_sent_1day;not null;default:false" json:"alert_sent_1day"`

	CondominiumID uuid.UUID    `gorm:"type:uuid;not null;index" json:"condominium_id"`
	Condominium   *Condominium `gorm:"foreignKey:CondominiumID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
