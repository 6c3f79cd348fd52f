package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"clash-deck-builder/internal/clash"

	json "github.com/goccy/go-json"
)

// SampleCatalog is a small catalog with distinct elixir costs.
func SampleCatalog() []clash.Card {
	return []clash.Card{
		{ID: 26000000, Name: "Knight", ElixirCost: 3, Rarity: "common"},
		{ID: 26000001, Name: "Archers", ElixirCost: 3, Rarity: "common"},
		{ID: 26000021, Name: "Hog Rider", ElixirCost: 4, Rarity: "rare"},
		{ID: 26000010, Name: "Skeletons", ElixirCost: 1, Rarity: "common"},
		{ID: 26000030, Name: "Ice Spirit", ElixirCost: 1, Rarity: "common"},
		{ID: 26000038, Name: "Ice Golem", ElixirCost: 2, Rarity: "rare"},
		{ID: 28000000, Name: "Fireball", ElixirCost: 4, Rarity: "rare"},
		{ID: 28000011, Name: "The Log", ElixirCost: 2, Rarity: "legendary"},
		{ID: 26000003, Name: "Giant", ElixirCost: 5, Rarity: "rare"},
		{ID: 26000004, Name: "P.E.K.K.A", ElixirCost: 7, Rarity: "epic"},
	}
}

// SamplePlayer is an intermediate control player with a Hog Rider mastery badge.
func SamplePlayer() clash.PlayerStats {
	return clash.PlayerStats{
		Tag:              "#V0R9VUGUU",
		Name:             "Ada",
		ExpLevel:         40,
		Trophies:         5200,
		BestTrophies:     5600,
		Wins:             600,
		Losses:           400,
		BattleCount:      1000,
		ThreeCrownWins:   120,
		ChallengeMaxWins: 8,
		Badges:           []clash.Badge{{Name: "MasteryHogRider", Level: 6}},
	}
}

// Upstreams fakes the stats API and the chat completion API.
type Upstreams struct {
	Stats *httptest.Server
	LLM   *httptest.Server

	// LLMStatus, when non-zero, is returned instead of a completion.
	LLMStatus atomic.Int32
	LLMCalls  atomic.Int32
}

// NewUpstreams serves player and catalog from the stats fake. The LLM fake
// answers every style with answer(style).
func NewUpstreams(t *testing.T, player clash.PlayerStats, catalog []clash.Card, answer func(style string) string) *Upstreams {
	t.Helper()
	u := &Upstreams{}

	statsMux := http.NewServeMux()
	statsMux.HandleFunc("/players/", func(w http.ResponseWriter, r *http.Request) {
		tag := strings.TrimPrefix(r.URL.Path, "/players/")
		if tag != player.Tag {
			writeJSON(w, http.StatusNotFound, map[string]any{"reason": "notFound"})
			return
		}
		writeJSON(w, http.StatusOK, player)
	})
	statsMux.HandleFunc("/cards", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"items": catalog})
	})
	u.Stats = httptest.NewServer(statsMux)

	u.LLM = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.LLMCalls.Add(1)
		if status := int(u.LLMStatus.Load()); status != 0 {
			writeJSON(w, status, map[string]any{"error": map[string]any{"message": "fake failure", "type": "test"}})
			return
		}
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Messages) == 0 {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": map[string]any{"message": "bad request"}})
			return
		}
		sys := req.Messages[0].Content
		sys = strings.TrimPrefix(sys, "You are a Clash Royale expert deck builder. Provide ")
		style := strings.TrimSuffix(sys, " deck recommendations.")
		writeJSON(w, http.StatusOK, map[string]any{
			"model": req.Model,
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": answer(style)}},
			},
			"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
		})
	}))

	t.Cleanup(func() {
		u.Stats.Close()
		u.LLM.Close()
	})
	return u
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
