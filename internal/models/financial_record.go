package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Financial record types.
const (
	FinancialIncome  = "income"
	FinancialExpense = "expense"
)

// FinancialRecord is a single income or expense entry of a
// condominium, aggregated by the dashboard endpoint.
type FinancialRecord struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Description string         `gorm:"not null;size:500" json:"description"`
	Amount      float64        `gorm:"not null" json:"amount"`
	Type        string         `gorm:"not null;size:10;index" json:"type"`
	Date        datatypes.Date `gorm:"not null" json:"date"`

	CondominiumID uuid.UUID    `gorm:"type:uuid;not null;index" json:"condominium_id"`
	Condominium   *Condominium `gorm:"foreignKey:CondominiumID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
