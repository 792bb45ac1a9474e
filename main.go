package main

import (
	"log"
	"net/http"
	"time"

	"github.com/flashdeck/flashdeck-backend/config"
	"github.com/flashdeck/flashdeck-backend/routes"
	"github.com/flashdeck/flashdeck-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// setupRouter initializes Gin routes and middleware
func setupRouter() *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.C.AllowOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup REST routes
	routes.SetupRoutes(r)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})

	// WebSocket viewer endpoint
	r.GET("/ws/decks/:id", services.HandleWebSocket)

	return r
}

func main() {
	// Load env variables
	config.Load()

	// Connect to database
	config.ConnectDB()

	// Initialize in-memory deck hub
	services.InitDeckHub()

	// Setup Gin router
	router := setupRouter()

	// Start server
	log.Printf("🚀 Flashdeck backend starting on port %s", config.C.Port)
	if err := router.Run(":" + config.C.Port); err != nil {
		log.Fatalf("[FATAL] Failed to start server: %v", err)
	}
}
