package services

import (
	"log"
	"net/http"
	"strings"

	"github.com/flashdeck/flashdeck-backend/config"
	"github.com/flashdeck/flashdeck-backend/middleware"
	"github.com/flashdeck/flashdeck-backend/models"
	"github.com/flashdeck/flashdeck-backend/viewer"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket mounts a viewer for one deck over a websocket. The auth
// gate runs before the upgrade: an unauthenticated request is rejected with
// a redirect hint and never touches the hub.
func HandleWebSocket(c *gin.Context) {
	deckID := c.Param("id")

	token := c.Query("token")
	if token == "" {
		token = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	}
	userID, _, err := middleware.ParseToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login required", "redirect": "/register"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		log.Printf("[WS] user not found: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login required", "redirect": "/register"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] upgrade error: %v", err)
		return
	}

	client := &Client{
		userID: user.ID,
		deckID: deckID,
		conn:   conn,
		hub:    DeckHub,
		send:   make(chan []byte, 32),
		viewer: viewer.New(),
	}
	log.Printf("[WS] New client: userID=%d, deck=%s", user.ID, deckID)

	DeckHub.Subscribe(deckID, client)
}
