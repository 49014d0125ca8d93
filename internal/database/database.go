package database

import (
	"strings"

	"github.com/tuchonga/tuchonga-api/internal/config"
	"github.com/tuchonga/tuchonga-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var dialector gorm.Dialector

	// Use PostgreSQL if URL starts with postgres, otherwise SQLite
	if strings.HasPrefix(cfg.DatabaseURL, "postgres") {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.DatabaseURL)
	}

	logMode := logger.Info
	if cfg.Environment == "production" {
		logMode = logger.Warn
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		return err
	}

	DB = db
	return nil
}

func Migrate() error {
	return DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Business{},
		&models.Product{},
		&models.Service{},
		&models.Review{},
		&models.Comment{},
		&models.QuickRating{},
		&models.Favorite{},
	)
}
