package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/flashdeck/flashdeck-backend/config"
	"github.com/flashdeck/flashdeck-backend/middleware"
	"github.com/flashdeck/flashdeck-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RecordSessionRequest struct {
	CardsSeen  int       `json:"cards_seen" binding:"required,min=1"`
	Shuffled   bool      `json:"shuffled"`
	CardOrder  []int     `json:"card_order"`
	StartedAt  time.Time `json:"started_at" binding:"required"`
	FinishedAt time.Time `json:"finished_at" binding:"required"`
}

// RecordSession stores one finished pass through a deck's viewer
func RecordSession(c *gin.Context) {
	deckID := c.Param("id")

	var deck models.Deck
	if err := config.DB.First(&deck, "id = ?", deckID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Deck not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var req RecordSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orderJSON, err := json.Marshal(req.CardOrder)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card order"})
		return
	}

	session := models.StudySession{
		UserID:     middleware.CurrentUserID(c),
		DeckID:     deckID,
		CardsSeen:  req.CardsSeen,
		Shuffled:   req.Shuffled,
		CardOrder:  datatypes.JSON(orderJSON),
		StartedAt:  req.StartedAt,
		FinishedAt: req.FinishedAt,
	}
	if err := config.DB.Create(&session).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record session"})
		return
	}

	c.JSON(http.StatusCreated, session)
}

// ListSessions returns the authenticated user's study history, newest first
func ListSessions(c *gin.Context) {
	var sessions []models.StudySession
	config.DB.
		Where("user_id = ?", middleware.CurrentUserID(c)).
		Order("finished_at DESC").
		Find(&sessions)
	c.JSON(http.StatusOK, sessions)
}
