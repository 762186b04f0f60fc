package services

import (
	"fmt"
	"time"

	"github.com/condomanager/condomanager-api/internal/dto"
	"github.com/condomanager/condomanager-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InspectionService struct {
	db *gorm.DB
}

func NewInspectionService(db *gorm.DB) *InspectionService {
	return &InspectionService{db: db}
}

// Create persists an inspection with its items and, for every item
// rated "ruim", a linked work order — all in one transaction. Any
// constraint violation rolls the whole request back.
func (s *InspectionService) Create(surveyor *models.User, condominiumID uuid.UUID, isCustom bool, analysis string, items []dto.InspectionItemPayload) (*models.Inspection, error) {
	inspection := models.Inspection{
		ID:            uuid.New(),
		Date:          time.Now().UTC(),
		Status:        models.InspectionPending,
		Analysis:      analysis,
		IsCustom:      isCustom,
		SurveyorID:    surveyor.ID,
		CondominiumID: condominiumID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&inspection).Error; err != nil {
			return err
		}

		for _, payload := range items {
			status := models.NormalizeItemStatus(payload.Status)
			item := models.InspectionItem{
				ID:            uuid.New(),
				Name:          payload.Name,
				Status:        status,
				PhotoURL:      payload.PhotoURL,
				Observation:   payload.Observation,
				InspectionID:  inspection.ID,
				CondominiumID: condominiumID,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}

			if status == models.ItemStatusBad {
				order := models.WorkOrder{
					ID:          uuid.New(),
					Title:       fmt.Sprintf("Immediate action: %s", payload.Name),
					Description: fmt.Sprintf("Item %s rated bad in inspection %s.", payload.Name, inspection.ID),
					Status:      models.WorkOrderPending,
					ItemID:      &item.ID,
				}
				if err := tx.Create(&order).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		if isIntegrityViolation(err) {
			return nil, fmt.Errorf("%w: check that the condominium and surveyor exist", ErrIntegrityViolation)
		}
		return nil, err
	}

	return &inspection, nil
}

// List returns inspections visible to the caller: privileged roles see
// everything, inspectors their own surveys, everyone else their
// condominium's.
func (s *InspectionService) List(caller *models.User) ([]models.Inspection, error) {
	query := s.db.Preload("Items").Order("date DESC")

	switch {
	case caller.Role.Privileged():
		// no filter
	case caller.Role == models.RoleInspector:
		query = query.Where("surveyor_id = ?", caller.ID)
	default:
		if caller.CondominiumID == nil {
			return []models.Inspection{}, nil
		}
		query = query.Where("condominium_id = ?", *caller.CondominiumID)
	}

	var inspections []models.Inspection
	if err := query.Find(&inspections).Error; err != nil {
		return nil, err
	}
	return inspections, nil
}
