package database

import (
	"strings"

	"github.com/JacobDishman/IS-403-Project/internal/config"
	"github.com/JacobDishman/IS-403-Project/internal/models"
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

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return err
	}

	DB = db
	return nil
}

func Migrate() error {
	return MigrateDB(DB)
}

// MigrateDB runs the schema migration against the given connection.
// Split out from Migrate so tests can migrate their own databases.
func MigrateDB(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Event{}, "Contacts", &models.ContactEvent{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&models.Contact{}, "Events", &models.ContactEvent{}); err != nil {
		return err
	}
	return db.AutoMigrate(
		&models.User{},
		&models.Contact{},
		&models.Event{},
		&models.Goal{},
	)
}
