package services

import (
	"errors"

	"github.com/condomanager/condomanager-api/internal/dto"
	"github.com/condomanager/condomanager-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTaxIDTaken          = errors.New("tax id already registered")
	ErrCondominiumNotFound = errors.New("condominium not found")
)

type CondominiumService struct {
	db *gorm.DB
}

func NewCondominiumService(db *gorm.DB) *CondominiumService {
	return &CondominiumService{db: db}
}

// Create registers a condominium. Tax id is globally unique; a
// duplicate leaves the existing record untouched.
func (s *CondominiumService) Create(req *dto.CreateCondominiumRequest) (*models.Condominium, error) {
	if req.Name == "" || req.TaxID == "" {
		return nil, errors.New("name and tax_id are required")
	}

	var existing models.Condominium
	if err := s.db.Where("tax_id = ?", req.TaxID).First(&existing).Error; err == nil {
		return nil, ErrTaxIDTaken
	}

	condo := models.Condominium{
		ID:                  uuid.New(),
		Name:                req.Name,
		TaxID:               req.TaxID,
		Address:             req.Address,
		CleaningCompany:     req.CleaningCompany,
		ElevatorMaintenance: req.ElevatorMaintenance,
		LogoURL:             req.LogoURL,
		PrimaryColor:        req.PrimaryColor,
		SecondaryColor:      req.SecondaryColor,
	}
	if condo.PrimaryColor == "" {
		condo.PrimaryColor = "0xFF000000"
	}
	if condo.SecondaryColor == "" {
		condo.SecondaryColor = "0xFFFFFFFF"
	}

	if err := s.db.Create(&condo).Error; err != nil {
		if isIntegrityViolation(err) {
			return nil, ErrTaxIDTaken
		}
		return nil, err
	}

	return &condo, nil
}

// Get returns one condominium. Non-privileged callers may only read
// their own.
func (s *CondominiumService) Get(caller *models.User, id uuid.UUID) (*models.Condominium, error) {
	var condo models.Condominium
	if err := s.db.First(&condo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCondominiumNotFound
		}
		return nil, err
	}

	if !caller.Role.Privileged() {
		if caller.CondominiumID == nil || *caller.CondominiumID != id {
			return nil, ErrForbidden
		}
	}

	return &condo, nil
}

// List returns every condominium for privileged callers and only the
// caller's own otherwise.
func (s *CondominiumService) List(caller *models.User) ([]models.Condominium, error) {
	var condos []models.Condominium

	query := s.db.Order("name ASC")
	if !caller.Role.Privileged() {
		if caller.CondominiumID == nil {
			return []models.Condominium{}, nil
		}
		query = query.Where("id = ?", *caller.CondominiumID)
	}

	if err := query.Find(&condos).Error; err != nil {
		return nil, err
	}
	return condos, nil
}
