package database

import (
	"log"

	"github.com/campsitehq/campsite-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Schedule{}, &models.Reservation{}); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Partial index: only active reservations matter for owner lookups
	db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_schedules_owner
		ON schedules (booking_id)
		WHERE status <> 'AVAILABLE'
	`)

	return db
}
