package controllers

import (
	"net/http"

	"github.com/flashdeck/flashdeck-backend/config"
	"github.com/flashdeck/flashdeck-backend/middleware"
	"github.com/flashdeck/flashdeck-backend/models"
	"github.com/flashdeck/flashdeck-backend/services"
	"github.com/flashdeck/flashdeck-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateDeckRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	Cards       []struct {
		Front string `json:"front" binding:"required"`
		Back  string `json:"back" binding:"required"`
	} `json:"cards"`
}

// CreateDeck creates a deck (optionally with initial cards) owned by the
// authenticated user
func CreateDeck(c *gin.Context) {
	var req CreateDeckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deck := models.Deck{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     middleware.CurrentUserID(c),
	}
	for i, card := range req.Cards {
		deck.Cards = append(deck.Cards, models.Card{
			Position: i,
			Front:    card.Front,
			Back:     card.Back,
		})
	}

	if err := config.DB.Create(&deck).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create deck"})
		return
	}

	logger.Infof("Deck %s created by user %d with %d cards", deck.ID, deck.OwnerID, len(deck.Cards))
	c.JSON(http.StatusCreated, deck)
}

// ListDecks returns all decks owned by the authenticated user
func ListDecks(c *gin.Context) {
	var decks []models.Deck
	config.DB.Where("owner_id = ?", middleware.CurrentUserID(c)).Order("created_at DESC").Find(&decks)
	c.JSON(http.StatusOK, decks)
}

// GetDeck returns one deck with its cards in position order and the owner
// resolved to a username, the same tuple the websocket channel pushes
func GetDeck(c *gin.Context) {
	id := c.Param("id")

	var deck models.Deck
	err := config.DB.
		Preload("Cards", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&deck, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Deck not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var owner models.User
	username := ""
	if err := config.DB.First(&owner, deck.OwnerID).Error; err == nil {
		username = owner.Username
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          deck.ID,
		"name":        deck.Name,
		"description": deck.Description,
		"username":    username,
		"cards":       deck.Cards,
	})
}

type UpdateDeckRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

// UpdateDeck renames a deck; owner only
func UpdateDeck(c *gin.Context) {
	deck, ok := ownedDeck(c)
	if !ok {
		return
	}

	var req UpdateDeckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{"name": req.Name, "description": req.Description}
	if err := config.DB.Model(&deck).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update deck"})
		return
	}

	services.NotifyDeckChanged(deck.ID)
	c.JSON(http.StatusOK, gin.H{"id": deck.ID, "name": req.Name, "description": req.Description})
}

// DeleteDeck removes a deck and its cards; owner only
func DeleteDeck(c *gin.Context) {
	deck, ok := ownedDeck(c)
	if !ok {
		return
	}

	if err := config.DB.Select("Cards").Delete(&deck).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete deck"})
		return
	}

	services.NotifyDeckChanged(deck.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Deck deleted"})
}

// ownedDeck loads the :id deck and enforces ownership. Writes the error
// response itself when it returns ok=false.
func ownedDeck(c *gin.Context) (models.Deck, bool) {
	var deck models.Deck
	if err := config.DB.First(&deck, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Deck not found"})
			return deck, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return deck, false
	}

	if deck.OwnerID != middleware.CurrentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not the deck owner"})
		return deck, false
	}
	return deck, true
}
