package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/condomanager/condomanager-api/internal/dto"
	"github.com/condomanager/condomanager-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrInvalidDate = errors.New("date must be YYYY-MM-DD")

// Reminder thresholds in days before the due date.
const (
	threshold1Month = 30
	threshold1Week  = 7
	threshold1Day   = 1
)

type AlertService struct {
	db *gorm.DB
}

func NewAlertService(db *gorm.DB) *AlertService {
	return &AlertService{db: db}
}

// Create registers a maintenance deadline. Non-privileged callers may
// only create alerts for their own condominium.
func (s *AlertService) Create(caller *models.User, req *dto.CreateAlertRequest) (*models.MaintenanceAlert, error) {
	if req.Type == "" {
		return nil, errors.New("type is required")
	}
	due, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if !caller.Role.Privileged() {
		if caller.CondominiumID == nil || *caller.CondominiumID != req.CondominiumID {
			return nil, ErrForbidden
		}
	}

	alert := models.MaintenanceAlert{
		ID:            uuid.New(),
		Type:          req.Type,
		DueDate:       datatypes.Date(due),
		PeriodYears:   req.PeriodYears,
		CondominiumID: req.CondominiumID,
	}
	if alert.PeriodYears <= 0 {
		alert.PeriodYears = 1
	}

	if err := s.db.Create(&alert).Error; err != nil {
		if isIntegrityViolation(err) {
			return nil, fmt.Errorf("%w: check that the condominium exists", ErrIntegrityViolation)
		}
		return nil, err
	}

	return &alert, nil
}

// List returns a condominium's alerts ordered by due date.
func (s *AlertService) List(caller *models.User, condominiumID uuid.UUID) ([]models.MaintenanceAlert, error) {
	if !caller.Role.Privileged() {
		if caller.CondominiumID == nil || *caller.CondominiumID != condominiumID {
			return nil, ErrForbidden
		}
	}

	var alerts []models.MaintenanceAlert
	err := s.db.Where("condominium_id = ?", condominiumID).
		Order("due_date ASC").
		Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

// ListVisible returns every alert for privileged callers and the
// caller's own condominium's otherwise.
func (s *AlertService) ListVisible(caller *models.User) ([]models.MaintenanceAlert, error) {
	query := s.db.Order("due_date ASC")
	if !caller.Role.Privileged() {
		if caller.CondominiumID == nil {
			return []models.MaintenanceAlert{}, nil
		}
		query = query.Where("condominium_id = ?", *caller.CondominiumID)
	}

	var alerts []models.MaintenanceAlert
	if err := query.Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

// RunScheduler is the daily sweep. For every alert not yet past due it
// sets the 30/7/1-day flags whose threshold has been reached. Flags
// are one-shot: a second run on the same day touches nothing, so the
// external cron may fire as often as it likes.
func (s *AlertService) RunScheduler() (*dto.SchedulerResponse, error) {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var updatedIDs []uuid.UUID
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var alerts []models.MaintenanceAlert
		if err := tx.Where("due_date >= ?", today).Find(&alerts).Error; err != nil {
			return err
		}

		for _, alert := range alerts {
			due := time.Time(alert.DueDate)
			daysToDue := int(due.Sub(today).Hours() / 24)

			updates := map[string]interface{}{}
			if daysToDue <= threshold1Month && !alert.AlertSent1Month {
				updates["alert_sent_1month"] = true
			}
			if daysToDue <= threshold1Week && !alert.AlertSent1Week {
				updates["alert_sent_1week"] = true
			}
			if daysToDue <= threshold1Day && !alert.AlertSent1Day {
				updates["alert_sent_1day"] = true
			}

			if len(updates) == 0 {
				continue
			}
			if err := tx.Model(&models.MaintenanceAlert{}).
				Where("id = ?", alert.ID).
				Updates(updates).Error; err != nil {
				return err
			}
			updatedIDs = append(updatedIDs, alert.ID)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if updatedIDs == nil {
		updatedIDs = []uuid.UUID{}
	}
	return &dto.SchedulerResponse{
		Status:           "Scheduler finished",
		AlertsDispatched: len(updatedIDs),
		UpdatedIDs:       updatedIDs,
	}, nil
}
