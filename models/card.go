package models

import "time"

// Card is one two-sided study unit. Order inside a deck is Position ASC;
// positions are append-only and may have gaps after deletes.
type Card struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DeckID    string    `gorm:"index;size:36;not null" json:"deck_id"`
	Position  int       `gorm:"not null" json:"position"`
	Front     string    `gorm:"type:text;not null" json:"front"`
	Back      string    `gorm:"type:text;not null" json:"back"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
