package recommend

import (
	"clash-deck-builder/internal/analysis"
	"clash-deck-builder/internal/clash"
)

type Profile struct {
	Player   clash.PlayerStats       `json:"player"`
	Analysis analysis.PlayerAnalysis `json:"analysis"`
	Ratios   analysis.Ratios         `json:"ratios"`
}

type StyleDeck struct {
	Style         string       `json:"style"`
	Cards         []clash.Card `json:"cards"`
	AverageElixir float64      `json:"average_elixir"`
	Complete      bool         `json:"complete"`
	Share         string       `json:"share"`
}

type Report struct {
	PlayerTag  string                  `json:"player_tag"`
	PlayerName string                  `json:"player_name"`
	Trophies   int                     `json:"trophies"`
	Analysis   analysis.PlayerAnalysis `json:"analysis"`
	Source     string                  `json:"source"`
	Decks      []StyleDeck             `json:"decks"`
}

func newReport(player clash.PlayerStats, styles []string, out Outcome) *Report {
	source := SourceAI
	if out.Fallback {
		source = SourceFallback
	}
	decks := make([]StyleDeck, 0, len(styles))
	for _, style := range styles {
		d := clash.Deck(out.Decks[style])
		decks = append(decks, StyleDeck{
			Style:         style,
			Cards:         d,
			AverageElixir: d.AverageElixir(),
			Complete:      d.IsComplete(),
			Share:         d.ShareString(),
		})
	}
	return &Report{
		PlayerTag:  player.Tag,
		PlayerName: player.Name,
		Trophies:   player.Trophies,
		Analysis:   analysis.Analyze(player),
		Source:     source,
		Decks:      decks,
	}
}
