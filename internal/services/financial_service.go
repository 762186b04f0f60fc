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

var ErrInvalidRecordType = errors.New("type must be income or expense")

type FinancialService struct {
	db *gorm.DB
}

func NewFinancialService(db *gorm.DB) *FinancialService {
	return &FinancialService{db: db}
}

func (s *FinancialService) Create(caller *models.User, req *dto.CreateFinancialRecordRequest) (*models.FinancialRecord, error) {
	if req.Type != models.FinancialIncome && req.Type != models.FinancialExpense {
		return nil, ErrInvalidRecordType
	}
	if req.Description == "" {
		return nil, errors.New("description is required")
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if !caller.Role.Privileged() {
		if caller.CondominiumID == nil || *caller.CondominiumID != req.CondominiumID {
			return nil, ErrForbidden
		}
	}

	record := models.FinancialRecord{
		ID:            uuid.New(),
		Description:   req.Description,
		Amount:        req.Amount,
		Type:          req.Type,
		Date:          datatypes.Date(date),
		CondominiumID: req.CondominiumID,
	}

	if err := s.db.Create(&record).Error; err != nil {
		if isIntegrityViolation(err) {
			return nil, fmt.Errorf("%w: check that the condominium exists", ErrIntegrityViolation)
		}
		return nil, err
	}

	return &record, nil
}

func (s *FinancialService) List(caller *models.User, condominiumID uuid.UUID) ([]models.FinancialRecord, error) {
	if !caller.Role.Privileged() {
		if caller.CondominiumID == nil || *caller.CondominiumID != condominiumID {
			return nil, ErrForbidden
		}
	}

	var records []models.FinancialRecord
	err := s.db.Where("condominium_id = ?", condominiumID).
		Order("date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Dashboard aggregates income and expense totals across every
// condominium. Privileged callers only; the handler enforces the gate.
func (s *FinancialService) Dashboard() (*dto.FinancialDashboardResponse, error) {
	income, err := s.sumByType(models.FinancialIncome)
	if err != nil {
		return nil, err
	}
	expense, err := s.sumByType(models.FinancialExpense)
	if err != nil {
		return nil, err
	}

	return &dto.FinancialDashboardResponse{
		TotalIncome:   income,
		TotalExpense:  expense,
		Profitability: income - expense,
	}, nil
}

func (s *FinancialService) sumByType(recordType string) (float64, error) {
	var total float64
	err := s.db.Model(&models.FinancialRecord{}).
		Where("type = ?", recordType).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
