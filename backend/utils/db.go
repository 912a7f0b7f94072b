package utils

import (
	"fmt"
	"phishlms/backend/config"
	"phishlms/backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the Postgres connection and migrates the schema. The returned
// handle is passed to controllers and services at construction; main owns its
// lifecycle and must call CloseDB on shutdown.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.CompletedCourse{},
		&models.Course{},
		&models.TrainingContent{},
		&models.ExamQuestion{},
		&models.ExamResult{},
		&models.ChatSession{},
		&models.ChatMessage{},
	); err != nil {
		return nil, fmt.Errorf("could not migrate schema: %w", err)
	}

	return db, nil
}

func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
