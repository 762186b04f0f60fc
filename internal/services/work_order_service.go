package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/condomanager/condomanager-api/internal/dto"
	"github.com/condomanager/condomanager-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrWorkOrderNotFound = errors.New("work order not found")
	ErrEmptyMessage      = errors.New("message content is required")
)

// Sort modes for listing.
const (
	SortByStatus = "status"
	SortRecent   = "recent"
)

type WorkOrderService struct {
	db *gorm.DB
}

func NewWorkOrderService(db *gorm.DB) *WorkOrderService {
	return &WorkOrderService{db: db}
}

// Create registers a manual work order. Dangling item or provider
// references surface as a descriptive integrity error, not a raw
// database failure.
func (s *WorkOrderService) Create(req *dto.CreateWorkOrderRequest) (*models.WorkOrder, error) {
	if req.Title == "" || req.Description == "" {
		return nil, errors.New("title and description are required")
	}

	order := models.WorkOrder{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Status:      models.WorkOrderPending,
		ItemID:      req.ItemID,
		ProviderID:  req.ProviderID,
	}

	if err := s.db.Create(&order).Error; err != nil {
		if isIntegrityViolation(err) {
			return nil, fmt.Errorf("%w: check that the inspection item and provider exist", ErrIntegrityViolation)
		}
		return nil, err
	}

	return &order, nil
}

// UpdateStatus normalizes and stores the new status. Entering
// Completed sets closed_at once; re-entering never resets it.
func (s *WorkOrderService) UpdateStatus(id uuid.UUID, status string) (*models.WorkOrder, error) {
	order, err := s.get(id)
	if err != nil {
		return nil, err
	}

	order.Status = models.NormalizeWorkOrderStatus(status)
	if order.Status == models.WorkOrderCompleted && order.ClosedAt == nil {
		now := time.Now().UTC()
		order.ClosedAt = &now
	}

	if err := s.db.Save(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// Close forces the order into Completed and records the after photo.
func (s *WorkOrderService) Close(id uuid.UUID, photoAfterURL string) (*models.WorkOrder, error) {
	order, err := s.get(id)
	if err != nil {
		return nil, err
	}

	order.Status = models.WorkOrderCompleted
	order.PhotoAfterURL = photoAfterURL
	if order.ClosedAt == nil {
		now := time.Now().UTC()
		order.ClosedAt = &now
	}

	if err := s.db.Save(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// List returns work orders visible to the caller. Non-privileged
// callers see orders whose linked item belongs to their condominium,
// plus manual orders with no linked item; privileged callers see all.
// The optional condominium filter and sort mode apply on top.
func (s *WorkOrderService) List(caller *models.User, condominiumID *uuid.UUID, sort string) ([]models.WorkOrder, error) {
	query := s.db.Model(&models.WorkOrder{}).
		Joins("LEFT JOIN inspection_items ON inspection_items.id = work_orders.item_id")

	if !caller.Role.Privileged() {
		if caller.CondominiumID != nil {
			query = query.Where("inspection_items.condominium_id = ? OR work_orders.item_id IS NULL", *caller.CondominiumID)
		} else {
			query = query.Where("work_orders.item_id IS NULL")
		}
	}

	if condominiumID != nil {
		query = query.Where("inspection_items.condominium_id = ? OR work_orders.item_id IS NULL", *condominiumID)
	}

	switch sort {
	case SortByStatus:
		query = query.Order("CASE work_orders.status WHEN 'Pending' THEN 1 WHEN 'In Progress' THEN 2 WHEN 'Completed' THEN 3 ELSE 4 END").
			Order("work_orders.created_at DESC")
	default: // SortRecent
		query = query.Order("work_orders.created_at DESC")
	}

	var orders []models.WorkOrder
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListMessages returns a work order's chat thread in chronological
// order with each author preloaded.
func (s *WorkOrderService) ListMessages(workOrderID uuid.UUID) ([]dto.MessageResponse, error) {
	if _, err := s.get(workOrderID); err != nil {
		return nil, err
	}

	var messages []models.Message
	err := s.db.Preload("User").
		Where("work_order_id = ?", workOrderID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	out := make([]dto.MessageResponse, len(messages))
	for i, m := range messages {
		out[i] = toMessageResponse(&m)
	}
	return out, nil
}

// PostMessage appends to the thread; the author is the authenticated
// caller.
func (s *WorkOrderService) PostMessage(author *models.User, workOrderID uuid.UUID, content string) (*dto.MessageResponse, error) {
	if content == "" {
		return nil, ErrEmptyMessage
	}
	if _, err := s.get(workOrderID); err != nil {
		return nil, err
	}

	message := models.Message{
		ID:          uuid.New(),
		WorkOrderID: workOrderID,
		UserID:      author.ID,
		Content:     content,
	}
	if err := s.db.Create(&message).Error; err != nil {
		return nil, err
	}

	message.User = author
	resp := toMessageResponse(&message)
	return &resp, nil
}

func (s *WorkOrderService) get(id uuid.UUID) (*models.WorkOrder, error) {
	var order models.WorkOrder
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func toMessageResponse(m *models.Message) dto.MessageResponse {
	resp := dto.MessageResponse{
		ID:          m.ID,
		WorkOrderID: m.WorkOrderID,
		UserID:      m.UserID,
		Content:     m.Content,
		CreatedAt:   m.CreatedAt,
	}
	if m.User != nil {
		resp.User = dto.MessageAuthor{ID: m.User.ID, Name: m.User.Name}
	}
	return resp
}
