package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/condomanager/condomanager-api/internal/config"
	"github.com/condomanager/condomanager-api/internal/dto"
	"github.com/condomanager/condomanager-api/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrInvalidGoogleToken = errors.New("invalid Google token")
)

type AuthService struct {
	db     *gorm.DB
	cfg    *config.Config
	google GoogleVerifier
}

func NewAuthService(db *gorm.DB, cfg *config.Config, google GoogleVerifier) *AuthService {
	return &AuthService{db: db, cfg: cfg, google: google}
}

// Login exchanges valid credentials for a signed bearer token.
func (s *AuthService) Login(email, password string) (*dto.TokenResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(&user)
}

// GoogleSignIn verifies a Google ID token and returns an app token.
// First sign-in creates a pending user with no condominium; an admin
// approves it later.
func (s *AuthService) GoogleSignIn(ctx context.Context, idToken string) (*dto.TokenResponse, error) {
	identity, err := s.google.Verify(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidGoogleToken, err)
	}

	var user models.User
	err = s.db.Where("email = ?", identity.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Unusable password: Google accounts never log in with one.
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
		if hashErr != nil {
			return nil, fmt.Errorf("failed to hash placeholder password: %w", hashErr)
		}

		name := identity.Name
		if name == "" {
			name = identity.Email
		}
		user = models.User{
			ID:       uuid.New(),
			Name:     name,
			Email:    identity.Email,
			Password: string(hash),
			Role:     models.RolePending,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	} else if err != nil {
		return nil, err
	}

	return s.issueToken(&user)
}

func (s *AuthService) issueToken(user *models.User) (*dto.TokenResponse, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.Email,
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dto.TokenResponse{AccessToken: signed, TokenType: "bearer"}, nil
}
