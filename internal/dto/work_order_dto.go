package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateWorkOrderRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ItemID      *uuid.UUID `json:"item_id"`
	ProviderID  *uuid.UUID `json:"provider_id"`
}

type UpdateWorkOrderStatusRequest struct {
	Status string `json:"status"`
}

type CloseWorkOrderRequest struct {
	PhotoAfterURL string `json:"photo_after_url"`
}

type CreateMessageRequest struct {
	Content string `json:"content"`
}

type MessageAuthor struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type MessageResponse struct {
	ID          uuid.UUID     `json:"id"`
	WorkOrderID uuid.UUID     `json:"work_order_id"`
	UserID      uuid.UUID     `json:"user_id"`
	Content     string        `json:"content"`
	CreatedAt   time.Time     `json:"created_at"`
	User        MessageAuthor `json:"user"`
}
