package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is one entry in a work order's append-only chat thread.
type Message struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	WorkOrderID uuid.UUID `gorm:"type:uuid;not null;index" json:"work_order_id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	User        *User     `gorm:"foreignKey:UserID" json:"-"`
	Content     string    `gorm:"not null;type:text" json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}
