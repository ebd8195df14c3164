package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pr-poehali-dev/employee-monitoring-app/internal/config"
	"github.com/pr-poehali-dev/employee-monitoring-app/internal/models"
)

func Connect(cfg config.Config) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: gormLogger,
	})
}

func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&models.Employee{},
		&models.Checkpoint{},
		&models.MovementEvent{},
	)
}

// SeedDev fills an empty database with a small roster and checkpoint set so
// the service can be exercised locally. It is a no-op when employees exist.
func SeedDev(database *gorm.DB) error {
	var count int64
	if err := database.Model(&models.Employee{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count employees: %w", err)
	}
	if count > 0 {
		return nil
	}

	checkpoints := []models.Checkpoint{
		{Name: "Главный вход"},
		{Name: "Служебный вход"},
	}
	if err := database.Create(&checkpoints).Error; err != nil {
		return fmt.Errorf("seed checkpoints: %w", err)
	}

	employees := []models.Employee{
		{
			FullName:      "Иванов Иван Иванович",
			Position:      "Инженер",
			Phone:         "+7 900 000-00-01",
			AccessGranted: true,
			WorkStartTime: "09:00:00",
			WorkEndTime:   "18:00:00",
			IsActive:      true,
		},
		{
			FullName:      "Петрова Анна Сергеевна",
			Position:      "Бухгалтер",
			Phone:         "+7 900 000-00-02",
			AccessGranted: true,
			WorkStartTime: "10:00:00",
			WorkEndTime:   "19:00:00",
			IsActive:      true,
		},
		{
			FullName:      "Сидоров Пётр Андреевич",
			Position:      "Охранник",
			Phone:         "+7 900 000-00-03",
			AccessGranted: false,
			WorkStartTime: "08:00:00",
			WorkEndTime:   "20:00:00",
			IsActive:      true,
		},
	}
	if err := database.Create(&employees).Error; err != nil {
		return fmt.Errorf("seed employees: %w", err)
	}

	return nil
}
