package main

import (
	"log"

	"github.com/flashdeck/flashdeck-backend/config"
)

func main() {
	config.Load()
	db := config.ConnectDB() // connects + migrates
	_ = db
	log.Println("✅ Database migration completed successfully")
}
