// Package recommend runs the per-style deck recommendation pipeline.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"clash-deck-builder/internal/analysis"
	"clash-deck-builder/internal/clash"
	"clash-deck-builder/internal/completion"
	"clash-deck-builder/internal/credential"
	"clash-deck-builder/internal/prompt"
	"clash-deck-builder/internal/resolver"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var ErrRecommendationFailed = errors.New("recommendation failed")

type CompletionSettings struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

func DefaultCompletionSettings() CompletionSettings {
	return CompletionSettings{Model: "gpt-3.5-turbo", Temperature: 0.7, MaxTokens: 150}
}

type Orchestrator struct {
	sender   completion.Sender
	pool     *credential.Pool
	settings CompletionSettings

	rndMu sync.Mutex
	rnd   *rand.Rand
}

func NewOrchestrator(sender completion.Sender, pool *credential.Pool, settings CompletionSettings) *Orchestrator {
	return &Orchestrator{
		sender:   sender,
		pool:     pool,
		settings: settings,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Outcome is one batch of decks keyed by style. Fallback is set when the
// decks are random catalog samples; Err then holds the cause.
type Outcome struct {
	Decks    map[string][]clash.Card
	Fallback bool
	Err      error
}

// Recommend returns one deck per style and never fails: if any style's
// completion fails, every style gets a random catalog sample instead.
func (o *Orchestrator) Recommend(ctx context.Context, stats clash.PlayerStats, catalog []clash.Card, styles []string) map[string][]clash.Card {
	return o.Generate(ctx, stats, catalog, styles).Decks
}

func (o *Orchestrator) Generate(ctx context.Context, stats clash.PlayerStats, catalog []clash.Card, styles []string) Outcome {
	if len(styles) == 0 {
		return Outcome{Decks: map[string][]clash.Card{}}
	}
	a := analysis.Analyze(stats)
	results := make([][]clash.Card, len(styles))

	g, gctx := errgroup.WithContext(ctx)
	for i, style := range styles {
		i, style := i, style
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("style %q: panic: %v", style, r)
				}
			}()
			res, err := completion.Complete(gctx, o.sender, o.pool, o.request(a, catalog, style))
			if err != nil {
				return fmt.Errorf("style %q: %w", style, err)
			}
			results[i] = resolver.Resolve(res.Content, catalog)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		err = fmt.Errorf("%w: %w", ErrRecommendationFailed, err)
		fallbackTotal.Add(1)
		log.Error().Err(err).Strs("styles", styles).Msg("deck recommendation failed; using random decks")
		return Outcome{Decks: o.fallback(catalog, styles), Fallback: true, Err: err}
	}

	aiTotal.Add(1)
	decks := make(map[string][]clash.Card, len(styles))
	for i, style := range styles {
		decks[style] = results[i]
	}
	return Outcome{Decks: decks}
}

func (o *Orchestrator) request(a analysis.PlayerAnalysis, catalog []clash.Card, style string) completion.Request {
	return completion.Request{
		Model:       o.settings.Model,
		Temperature: o.settings.Temperature,
		MaxTokens:   o.settings.MaxTokens,
		Messages: []completion.Message{
			{Role: "system", Content: prompt.System(style)},
			{Role: "user", Content: prompt.Build(a, catalog, style)},
		},
	}
}

func (o *Orchestrator) fallback(catalog []clash.Card, styles []string) map[string][]clash.Card {
	o.rndMu.Lock()
	defer o.rndMu.Unlock()
	decks := make(map[string][]clash.Card, len(styles))
	for _, style := range styles {
		decks[style] = sample(o.rnd, catalog, clash.DeckSize)
	}
	return decks
}

// sample shuffles a copy of catalog and keeps the first n cards.
func sample(rnd *rand.Rand, catalog []clash.Card, n int) []clash.Card {
	shuffled := make([]clash.Card, len(catalog))
	copy(shuffled, catalog)
	rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if len(shuffled) > n {
		shuffled = shuffled[:n]
	}
	return shuffled
}
