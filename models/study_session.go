package models

import (
	"time"

	"gorm.io/datatypes"
)

// StudySession records one completed pass through a deck's viewer.
type StudySession struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"index;not null" json:"user_id"`
	DeckID     string         `gorm:"index;size:36;not null" json:"deck_id"`
	CardsSeen  int            `json:"cards_seen"`
	Shuffled   bool           `json:"shuffled"`
	CardOrder  datatypes.JSON `json:"card_order"` // card positions in the order reviewed
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	CreatedAt  time.Time      `json:"created_at"`
}
