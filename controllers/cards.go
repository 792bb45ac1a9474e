package controllers

import (
	"net/http"
	"strconv"

	"github.com/flashdeck/flashdeck-backend/config"
	"github.com/flashdeck/flashdeck-backend/models"
	"github.com/flashdeck/flashdeck-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CardRequest struct {
	Front string `json:"front" binding:"required"`
	Back  string `json:"back" binding:"required"`
}

// AddCard appends a card to the end of a deck; owner only
func AddCard(c *gin.Context) {
	deck, ok := ownedDeck(c)
	if !ok {
		return
	}

	var req CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// next position = max(position) + 1
	var maxPos struct{ Max int }
	config.DB.Model(&models.Card{}).
		Select("COALESCE(MAX(position), -1) AS max").
		Where("deck_id = ?", deck.ID).
		Scan(&maxPos)

	card := models.Card{
		DeckID:   deck.ID,
		Position: maxPos.Max + 1,
		Front:    req.Front,
		Back:     req.Back,
	}
	if err := config.DB.Create(&card).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add card"})
		return
	}

	services.NotifyDeckChanged(deck.ID)
	c.JSON(http.StatusCreated, card)
}

// UpdateCard rewrites both faces of a card; owner only
func UpdateCard(c *gin.Context) {
	deck, ok := ownedDeck(c)
	if !ok {
		return
	}

	card, ok := deckCard(c, deck.ID)
	if !ok {
		return
	}

	var req CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Model(&card).Updates(map[string]interface{}{"front": req.Front, "back": req.Back}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update card"})
		return
	}

	services.NotifyDeckChanged(deck.ID)
	card.Front = req.Front
	card.Back = req.Back
	c.JSON(http.StatusOK, card)
}

// DeleteCard removes a card; owner only. Remaining positions keep their
// values, order stays well defined.
func DeleteCard(c *gin.Context) {
	deck, ok := ownedDeck(c)
	if !ok {
		return
	}

	card, ok := deckCard(c, deck.ID)
	if !ok {
		return
	}

	if err := config.DB.Delete(&card).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete card"})
		return
	}

	services.NotifyDeckChanged(deck.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Card deleted"})
}

// deckCard loads the :cardId card and checks it belongs to the deck.
func deckCard(c *gin.Context, deckID string) (models.Card, bool) {
	var card models.Card
	cardID, err := strconv.Atoi(c.Param("cardId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card id"})
		return card, false
	}

	if err := config.DB.First(&card, "id = ? AND deck_id = ?", cardID, deckID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
			return card, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return card, false
	}
	return card, true
}
