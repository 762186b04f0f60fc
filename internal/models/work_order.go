package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Work order statuses. The column is free text normalized by
// NormalizeWorkOrderStatus; these are the recognized values.
const (
	WorkOrderPending    = "Pending"
	WorkOrderInProgress = "In Progress"
	WorkOrderCompleted  = "Completed"
)

// NormalizeWorkOrderStatus capitalizes each word so "in progress",
// "IN PROGRESS" and "In Progress" all land on the same label.
func NormalizeWorkOrderStatus(s string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// WorkOrderStatusRank orders statuses for the grouped listing:
// Pending before In Progress before Completed, anything else last.
func WorkOrderStatusRank(status string) int {
	switch status {
	case WorkOrderPending:
		return 1
	case WorkOrderInProgress:
		return 2
	case WorkOrderCompleted:
		return 3
	default:
		return 4
	}
}

// WorkOrder is a maintenance task, either generated from a "ruim"
// inspection item or created manually (ItemID nil). ClosedAt is set
// exactly once, on the first transition into Completed.
type WorkOrder struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string     `gorm:"not null;size:255" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Status      string     `gorm:"size:30;not null;default:'Pending'" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`

	PhotoBeforeURL string `gorm:"size:500" json:"photo_before_url,omitempty"`
	PhotoAfterURL  string `gorm:"size:500" json:"photo_after_url,omitempty"`

	ItemID *uuid.UUID      `gorm:"type:uuid;uniqueIndex" json:"item_id,omitempty"`
	Item   *InspectionItem `gorm:"foreignKey:ItemID" json:"-"`

	ProviderID *uuid.UUID       `gorm:"type:uuid;index" json:"provider_id,omitempty"`
	Provider   *ServiceProvider `gorm:"foreignKey:ProviderID" json:"-"`

	Messages []Message `gorm:"foreignKey:WorkOrderID;constraint:OnDelete:CASCADE" json:"-"`
}
