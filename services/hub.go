package services

import (
	"log"
	"sync"
)

// Hub is the binding between decks and mounted viewers: a per-deck
// subscriber registry. Each client holds exactly one subscription, taken
// on connect and released on disconnect. REST mutations call
// NotifyDeckChanged so every mounted viewer re-seeds from a fresh snapshot.
type Hub struct {
	store DeckStore

	mu   sync.RWMutex
	subs map[string]map[*Client]bool // deckID -> subscribers
}

var DeckHub *Hub

// InitDeckHub creates the global hub backed by the database store.
func InitDeckHub() {
	DeckHub = NewHub(gormDeckStore{})
	log.Println("[Init] Deck hub started")
}

func NewHub(store DeckStore) *Hub {
	return &Hub{
		store: store,
		subs:  make(map[string]map[*Client]bool),
	}
}

// Subscribe registers a client for a deck, starts its pumps and pushes the
// initial snapshot into its viewer.
func (h *Hub) Subscribe(deckID string, c *Client) {
	h.mu.Lock()
	set, ok := h.subs[deckID]
	if !ok {
		set = make(map[*Client]bool)
		h.subs[deckID] = set
	}
	set[c] = true
	h.mu.Unlock()

	go c.writePump()
	go c.readPump()

	log.Printf("[Hub] user %d mounted deck %s (subscribers=%d)", c.userID, deckID, h.subscriberCount(deckID))

	h.pushSnapshot(deckID, []*Client{c})
}

// Unsubscribe releases a client's subscription. Safe to call twice.
func (h *Hub) Unsubscribe(deckID string, c *Client) {
	h.mu.Lock()
	if set, ok := h.subs[deckID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.subs, deckID)
		}
	}
	h.mu.Unlock()

	c.Close()
	log.Printf("[Hub] user %d unmounted deck %s", c.userID, deckID)
}

// NotifyDeckChanged reloads the deck and re-seeds every mounted viewer.
func (h *Hub) NotifyDeckChanged(deckID string) {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.subs[deckID]))
	for c := range h.subs[deckID] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	if len(clients) == 0 {
		return
	}
	h.pushSnapshot(deckID, clients)
}

func (h *Hub) subscriberCount(deckID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[deckID])
}

// pushSnapshot loads the deck once and applies it to each client's viewer.
// On a load error the viewers are left as they are: a stalled load just
// stays in the loading state, there is no retry.
func (h *Hub) pushSnapshot(deckID string, clients []*Client) {
	snap, err := h.store.LoadDeck(deckID)
	if err != nil {
		log.Printf("[Hub] failed to load deck %s: %v", deckID, err)
		for _, c := range clients {
			c.ApplySnapshot(nil)
		}
		return
	}
	for _, c := range clients {
		c.ApplySnapshot(snap)
	}
}

// NotifyDeckChanged is the package-level hook controllers call after a
// deck or card write.
func NotifyDeckChanged(deckID string) {
	if DeckHub == nil {
		return
	}
	go DeckHub.NotifyDeckChanged(deckID)
}
