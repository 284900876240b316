package database

import (
	"catalog-app/internal/domain/catalog"
	"catalog-app/internal/domain/users"

	"github.com/charmbracelet/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init opens the database and migrates the schema. The handle is returned
// rather than stored in a package global so tests can inject their own.
func Init(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&users.User{},
		&catalog.Platform{},
		&catalog.VideoGame{},
		&catalog.Publication{},
		&catalog.Game{},
		&catalog.Category{},
		&catalog.Genre{},
	); err != nil {
		return nil, err
	}

	log.Info("connected and migrated")
	return db, nil
}
