package clash

import (
	"math"
	"strings"
)

// DeckSize is the number of cards in a complete deck.
const DeckSize = 8

// Deck is an ordered card list. Nothing enforces its length; use IsComplete.
type Deck []Card

func (d Deck) IsComplete() bool {
	return len(d) == DeckSize
}

// AverageElixir is the mean elixir cost rounded to one decimal, 0 for an empty deck.
func (d Deck) AverageElixir() float64 {
	if len(d) == 0 {
		return 0
	}
	total := 0
	for _, c := range d {
		total += c.ElixirCost
	}
	return math.Round(float64(total)/float64(len(d))*10) / 10
}

// ShareString is the clipboard form of a deck: names joined by ", ".
func (d Deck) ShareString() string {
	names := make([]string, 0, len(d))
	for _, c := range d {
		names = append(names, c.Name)
	}
	return strings.Join(names, ", ")
}

// Names returns the card names in deck order.
func (d Deck) Names() []string {
	names := make([]string, 0, len(d))
	for _, c := range d {
		names = append(names, c.Name)
	}
	return names
}
