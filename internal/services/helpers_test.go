package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/condomanager/condomanager-api/internal/database"
	"github.com/condomanager/condomanager-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

// newTestDB opens a fresh in-memory SQLite database with foreign keys
// enforced and the full schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared&_foreign_keys=on",
		atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))
	return db
}

func seedCondominium(t *testing.T, db *gorm.DB, name string) *models.Condominium {
	t.Helper()

	condo := models.Condominium{
		ID:             uuid.New(),
		Name:           name,
		TaxID:          uuid.NewString(),
		PrimaryColor:   "0xFF000000",
		SecondaryColor: "0xFFFFFFFF",
	}
	require.NoError(t, db.Create(&condo).Error)
	return &condo
}

func seedUser(t *testing.T, db *gorm.DB, role models.Role, condoID *uuid.UUID) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		ID:            uuid.New(),
		Name:          "Test " + string(role),
		Email:         uuid.NewString() + "@example.com",
		Password:      string(hash),
		Role:          role,
		CondominiumID: condoID,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}
