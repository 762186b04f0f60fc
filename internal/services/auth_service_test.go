package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/condomanager/condomanager-api/internal/config"
	"github.com/condomanager/condomanager-api/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGoogleVerifier struct {
	identity *GoogleIdentity
	err      error
}

func (s *stubGoogleVerifier) Verify(_ context.Context, _ string) (*GoogleIdentity, error) {
	return s.identity, s.err
}

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: 120 * time.Minute,
	}
}

func TestLoginIssuesTokenWithClaims(t *testing.T) {
	db := newTestDB(t)
	condo := seedCondominium(t, db, "Condo A")
	user := seedUser(t, db, models.RoleManager, &condo.ID)
	cfg := testAuthConfig()
	svc := NewAuthService(db, cfg, &stubGoogleVerifier{})

	resp, err := svc.Login(user.Email, "secret123")
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)

	token, err := jwt.Parse(resp.AccessToken, func(*jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, user.Email, claims["sub"])
	assert.Equal(t, "manager", claims["role"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(cfg.JWTExpiry), exp.Time, time.Minute)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, models.RoleManager, nil)
	svc := NewAuthService(db, testAuthConfig(), &stubGoogleVerifier{})

	_, err := svc.Login(user.Email, "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody@example.com", "secret123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGoogleSignInCreatesPendingUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testAuthConfig(), &stubGoogleVerifier{
		identity: &GoogleIdentity{Email: "new@example.com", Name: "New Person"},
	})

	resp, err := svc.GoogleSignIn(context.Background(), "valid-id-token")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	var user models.User
	require.NoError(t, db.Where("email = ?", "new@example.com").First(&user).Error)
	assert.Equal(t, models.RolePending, user.Role)
	assert.Nil(t, user.CondominiumID)
	assert.Equal(t, "New Person", user.Name)

	// Second sign-in reuses the account.
	_, err = svc.GoogleSignIn(context.Background(), "valid-id-token")
	require.NoError(t, err)
	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGoogleSignInRejectsBadToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testAuthConfig(), &stubGoogleVerifier{
		err: errors.New("audience mismatch"),
	})

	_, err := svc.GoogleSignIn(context.Background(), "bad-token")
	require.ErrorIs(t, err, ErrInvalidGoogleToken)
}
