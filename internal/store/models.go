package store

import (
	"time"

	"clash-deck-builder/internal/clash"
)

// SavedDeck is a deck a player kept from a recommendation report.
type SavedDeck struct {
	ID        string       `json:"id"`
	PlayerTag string       `json:"player_tag"`
	Style     string       `json:"style"`
	Cards     []clash.Card `json:"cards"`
	CreatedAt time.Time    `json:"created_at"`
}
