package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/aladinbarber/booking-api/internal/config"
	"github.com/aladinbarber/booking-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		// Surfaces duplicate-key violations as gorm.ErrDuplicatedKey so the
		// booking race loser can be told apart from an internal failure.
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Barber{},
		&models.Service{},
		&models.Appointment{},
		&models.BlockedSlot{},
		&models.AdminMessage{},
		&models.PushSubscription{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Storage-level backstop for the booking race: at most one active
	// appointment per barber/date/start slot even if two transactions slip
	// past the row-lock check.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_slot
        ON appointments (barber_id, date, start_time)
        WHERE status IN ('BOOKED', 'BLOCKED', 'MODIFIED')
    `)

	return db
}
