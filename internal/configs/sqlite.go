package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "flowt.dev/flowt/internal/models"
)

func NewDatabaseClient(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.Board{},
		&model.Column{},
		&model.Task{},
		&model.Subtask{},
		&model.Label{},
		&model.ActivityLog{},
		&model.SystemSetting{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
