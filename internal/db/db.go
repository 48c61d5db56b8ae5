package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nailnav/nailnav/internal/config"
	"github.com/nailnav/nailnav/internal/models"
)

// Models is every table owned by the application, in dependency order.
func Models() []any {
	return []any{
		&models.Country{},
		&models.State{},
		&models.City{},
		&models.Salon{},
		&models.SalonPhoto{},
		&models.Review{},
		&models.ContactSubmission{},
		&models.AuthUser{},
		&models.UserProfile{},
		&models.VendorApplication{},
		&models.BlogPost{},
		&models.ServiceCategory{},
		&models.ServiceType{},
		&models.AuditLog{},
	}
}

// Open connects without migrating. The CLI tools use it against an existing schema.
func Open(cfg *config.Config) (*gorm.DB, error) {
	level := gormlogger.Warn
	if cfg.IsProduction() {
		level = gormlogger.Error
	}

	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}

// NewDB opens the database and migrates every model. Failures are fatal.
func NewDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := Open(cfg)
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}

	if err := db.AutoMigrate(Models()...); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	// rows imported before opening hours existed
	if err := db.Exec(`
        UPDATE salons
        SET opening_hours = '{}'::jsonb
        WHERE opening_hours IS NULL
    `).Error; err != nil {
		log.Warn("opening_hours backfill failed", zap.Error(err))
	}

	return db
}
