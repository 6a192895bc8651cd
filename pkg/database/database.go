package database

import (
	"essay_coach_backend/internal/config"
	"essay_coach_backend/internal/model"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Single writer: SQLite serializes writes per file, and one open
	// connection keeps concurrent sessions from tripping over lock errors.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	log.Println("Database connection established")

	// Schema is created idempotently at startup; there is no migrations
	// system beyond this.
	err = db.AutoMigrate(
		&model.EssayRecord{},
		&model.KaoyanRecord{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}
