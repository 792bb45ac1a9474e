package services

import (
	"errors"

	"github.com/flashdeck/flashdeck-backend/config"
	"github.com/flashdeck/flashdeck-backend/models"
	"github.com/flashdeck/flashdeck-backend/viewer"

	"gorm.io/gorm"
)

// DeckStore loads deck snapshots for the hub. Abstracted so the hub can be
// tested without a database.
type DeckStore interface {
	LoadDeck(deckID string) (*viewer.Snapshot, error)
}

// gormDeckStore reads decks from Postgres through the global config.DB.
type gormDeckStore struct{}

// LoadDeck fetches a deck with its cards in position order and resolves the
// owner to a username before returning, so the snapshot is complete in one
// step. A missing deck comes back as an empty snapshot, which the viewer
// treats as NotFound; only real DB failures return an error.
func (gormDeckStore) LoadDeck(deckID string) (*viewer.Snapshot, error) {
	var deck models.Deck
	err := config.DB.
		Preload("Cards", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&deck, "id = ?", deckID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &viewer.Snapshot{}, nil
	}
	if err != nil {
		return nil, err
	}

	var owner models.User
	username := ""
	if err := config.DB.First(&owner, deck.OwnerID).Error; err == nil {
		username = owner.Username
	}

	snap := &viewer.Snapshot{
		Name:        deck.Name,
		Description: deck.Description,
		Username:    username,
		Cards:       make([]viewer.Card, 0, len(deck.Cards)),
	}
	for _, card := range deck.Cards {
		snap.Cards = append(snap.Cards, viewer.Card{Front: card.Front, Back: card.Back})
	}
	return snap, nil
}
