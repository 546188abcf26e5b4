package repository

import (
	"fmt"
	"time"

	"github.com/kutbudev/agri-api/pkg/config"
	"github.com/kutbudev/agri-api/pkg/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase creates a new database connection
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		cfg.Database.Host,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.Port,
		cfg.Database.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		// Timestamps are stamped in UTC everywhere.
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to auto migrate: %w", err)
	}

	return db, nil
}

// autoMigrate runs auto migration for all models
func autoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Post{},
	); err != nil {
		return err
	}

	// Tag names are unique case-insensitively; gorm struct tags cannot
	// express a functional index, so add it by hand.
	return db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_tags_name_lower ON tags (lower(name))",
	).Error
}
