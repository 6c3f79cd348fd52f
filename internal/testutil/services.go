package testutil

import (
	"time"

	"clash-deck-builder/internal/completion"
	"clash-deck-builder/internal/credential"
	"clash-deck-builder/internal/recommend"
	"clash-deck-builder/internal/statsapi"
)

// NewRecommendService wires a recommend.Service against the fake upstreams
// with one stats key and one completion key.
func NewRecommendService(u *Upstreams, styles ...string) *recommend.Service {
	stats := statsapi.NewClient(u.Stats.URL, 5*time.Second, 0)
	llm := completion.NewClient(u.LLM.URL, 5*time.Second)
	orch := recommend.NewOrchestrator(llm, credential.NewPool("llm-key"), recommend.DefaultCompletionSettings())
	return recommend.NewService(stats, credential.NewPool("stats-key"), orch, styles)
}
