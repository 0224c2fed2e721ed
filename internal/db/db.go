package db

import (
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tasmimahana/cse470/internal/config"
	"github.com/tasmimahana/cse470/internal/models"
)

const sqlitePrefix = "sqlite:"

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := Open(cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Open accepts a postgres URL or "sqlite:<dsn>".
func Open(dsn string) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
		// Deleting a user leaves its pets, bookings and donations in place.
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}

	if strings.HasPrefix(dsn, sqlitePrefix) {
		db, err := gorm.Open(sqlite.Open(strings.TrimPrefix(dsn, sqlitePrefix)), gcfg)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// single writer; also keeps in-memory databases alive
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	}

	db, err := gorm.Open(postgres.Open(dsn), gcfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Token{},
		&models.Pet{},
		&models.Booking{},
		&models.Donation{},
		&models.Notification{},
		&models.HealthLog{},
		&models.TrainingResource{},
	)
}
