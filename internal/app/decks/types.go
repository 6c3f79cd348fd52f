package decks

import (
	"time"

	"clash-deck-builder/internal/clash"
)

type SaveRequest struct {
	PlayerTag string   `json:"player_tag"`
	Style     string   `json:"style"`
	Cards     []string `json:"cards"`
}

type DeckItem struct {
	ID            string       `json:"id"`
	PlayerTag     string       `json:"player_tag"`
	Style         string       `json:"style"`
	Cards         []clash.Card `json:"cards"`
	AverageElixir float64      `json:"average_elixir"`
	Complete      bool         `json:"complete"`
	Share         string       `json:"share"`
	CreatedAt     time.Time    `json:"created_at"`
}

type DecksResponse struct {
	Items  []DeckItem `json:"items"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

// Export is a deck serialized as a downloadable JSON card list.
type Export struct {
	Filename string
	Body     []byte
}
