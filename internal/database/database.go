package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/condomanager/condomanager-api/internal/config"
	"github.com/condomanager/condomanager-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return db, nil
}

// Migrate runs AutoMigrate for every entity, parents before children.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Condominium{},
		&models.User{},
		&models.ServiceProvider{},
		&models.Inspection{},
		&models.InspectionItem{},
		&models.WorkOrder{},
		&models.Message{},
		&models.MaintenanceAlert{},
		&models.FinancialRecord{},
		&models.Document{},
		&models.SystemLog{},
	)
}

func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
