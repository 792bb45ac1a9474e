package routes

import (
	"github.com/flashdeck/flashdeck-backend/controllers"
	"github.com/flashdeck/flashdeck-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// ----------------------
	// Auth routes (public)
	// ----------------------
	api.POST("/auth/register", controllers.Register) // Register user
	api.POST("/auth/login", controllers.Login)       // Login, returns JWT

	// Everything below requires a valid token; failures carry a
	// redirect hint to /register.
	auth := api.Group("")
	auth.Use(middleware.RequireAuth())

	auth.GET("/me", controllers.Me) // Current user profile

	// ----------------------
	// Deck routes
	// ----------------------
	auth.GET("/decks", controllers.ListDecks)         // List own decks
	auth.POST("/decks", controllers.CreateDeck)       // Create deck
	auth.GET("/decks/:id", controllers.GetDeck)       // Deck with cards + owner username
	auth.PUT("/decks/:id", controllers.UpdateDeck)    // Rename deck (owner)
	auth.DELETE("/decks/:id", controllers.DeleteDeck) // Delete deck (owner)

	// ----------------------
	// Card routes
	// ----------------------
	auth.POST("/decks/:id/cards", controllers.AddCard)              // Append card
	auth.PUT("/decks/:id/cards/:cardId", controllers.UpdateCard)    // Edit card faces
	auth.DELETE("/decks/:id/cards/:cardId", controllers.DeleteCard) // Remove card

	// ----------------------
	// Study history routes
	// ----------------------
	auth.POST("/decks/:id/sessions", controllers.RecordSession) // Record study pass
	auth.GET("/sessions", controllers.ListSessions)             // Own study history
}
