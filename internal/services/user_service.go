package services

import (
	"errors"
	"fmt"

	"github.com/condomanager/condomanager-api/internal/dto"
	"github.com/condomanager/condomanager-api/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidRole  = errors.New("unknown role")
	ErrWeakPassword = errors.New("email required and password must be at least 8 characters")
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) Create(req *dto.CreateUserRequest) (*models.User, error) {
	if req.Email == "" || len(req.Password) < 8 {
		return nil, ErrWeakPassword
	}

	role := models.Role(req.Role)
	if req.Role == "" {
		role = models.RolePending
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:            uuid.New(),
		Name:          req.Name,
		Email:         req.Email,
		Password:      string(hash),
		Phone:         req.Phone,
		Role:          role,
		CondominiumID: req.CondominiumID,
	}

	if err := s.db.Create(&user).Error; err != nil {
		if isIntegrityViolation(err) {
			return nil, fmt.Errorf("%w: check that the condominium exists", ErrIntegrityViolation)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// Update applies only the fields present in the request. Allowed for
// the user themself or a privileged role.
func (s *UserService) Update(actor *models.User, id uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error) {
	if actor.ID != id && !actor.Role.Privileged() {
		return nil, ErrForbidden
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.PhotoURL != nil {
		updates["photo_url"] = *req.PhotoURL
	}
	if req.Role != nil {
		role := models.Role(*req.Role)
		if !role.Valid() {
			return nil, ErrInvalidRole
		}
		updates["role"] = role
	}
	if req.CondominiumID != nil {
		updates["condominium_id"] = *req.CondominiumID
	}

	if len(updates) == 0 {
		return &user, nil
	}

	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		if isIntegrityViolation(err) {
			return nil, fmt.Errorf("%w: check that the condominium exists", ErrIntegrityViolation)
		}
		return nil, err
	}

	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns every user. Privileged callers only; the handler
// enforces the role gate.
func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Approve promotes a pending user into a working role tied to a
// condominium.
func (s *UserService) Approve(id uuid.UUID, req *dto.ApproveUserRequest) (*models.User, error) {
	role := models.Role(req.Role)
	if !role.Valid() || role == models.RolePending {
		return nil, ErrInvalidRole
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var condo models.Condominium
	if err := s.db.First(&condo, "id = ?", req.CondominiumID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCondominiumNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{
		"role":           role,
		"condominium_id": condo.ID,
	}
	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}

	user.Role = role
	user.CondominiumID = &condo.ID
	return &user, nil
}
