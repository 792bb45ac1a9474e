package config

import (
	"log"

	"github.com/flashdeck/flashdeck-backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB connects to Postgres and runs migrations.
func ConnectDB() *gorm.DB {
	db, err := gorm.Open(postgres.Open(C.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("[FATAL] Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Deck{},
		&models.Card{},
		&models.StudySession{},
	); err != nil {
		log.Fatalf("[FATAL] Migration failed: %v", err)
	}

	DB = db
	log.Println("✅ Database connected and migrated")
	return db
}
