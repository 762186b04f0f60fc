package services

import (
	"errors"

	"github.com/condomanager/condomanager-api/internal/dto"
	"github.com/condomanager/condomanager-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrProviderNotFound = errors.New("service provider not found")

type ProviderService struct {
	db *gorm.DB
}

func NewProviderService(db *gorm.DB) *ProviderService {
	return &ProviderService{db: db}
}

func (s *ProviderService) Create(req *dto.CreateProviderRequest) (*models.ServiceProvider, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}

	provider := models.ServiceProvider{
		ID:         uuid.New(),
		Name:       req.Name,
		Profession: req.Profession,
		TaxID:      req.TaxID,
	}
	if err := s.db.Create(&provider).Error; err != nil {
		return nil, err
	}
	return &provider, nil
}

func (s *ProviderService) Get(id uuid.UUID) (*models.ServiceProvider, error) {
	var provider models.ServiceProvider
	if err := s.db.First(&provider, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}
	return &provider, nil
}

func (s *ProviderService) List() ([]models.ServiceProvider, error) {
	var providers []models.ServiceProvider
	if err := s.db.Order("name ASC").Find(&providers).Error; err != nil {
		return nil, err
	}
	return providers, nil
}
