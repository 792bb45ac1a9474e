package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	AllowOrigin string
}

var C Config

// Load reads .env (if present) and environment variables into C.
// DATABASE_URL and JWT_SECRET are required.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, reading environment variables")
	}

	C = Config{
		Port:        os.Getenv("PORT"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		AllowOrigin: os.Getenv("ALLOW_ORIGIN"),
	}

	if C.Port == "" {
		C.Port = "4000"
	}
	if C.AllowOrigin == "" {
		C.AllowOrigin = "http://localhost:3000"
	}
	if C.DatabaseURL == "" {
		log.Fatal("[FATAL] DATABASE_URL is required in .env or environment")
	}
	if C.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET is required in .env or environment")
	}
}
