package recommend

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"clash-deck-builder/internal/clash"
	"clash-deck-builder/internal/completion"
	"clash-deck-builder/internal/credential"
)

func testCatalog(n int) []clash.Card {
	out := make([]clash.Card, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, clash.Card{ID: 26000000 + i, Name: fmt.Sprintf("Card %02d", i), ElixirCost: i%9 + 1})
	}
	return out
}

// fakeSender answers by style, read from the system message.
type fakeSender struct {
	mu       sync.Mutex
	calls    int
	keys     []string
	answers  map[string]string
	failures map[string]error
}

func (f *fakeSender) Send(_ context.Context, apiKey string, req completion.Request) (*completion.Result, error) {
	f.mu.Lock()
	f.calls++
	f.keys = append(f.keys, apiKey)
	f.mu.Unlock()

	style := styleOf(req)
	if err := f.failures[style]; err != nil {
		return nil, err
	}
	return &completion.Result{Content: f.answers[style]}, nil
}

func (f *fakeSender) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func styleOf(req completion.Request) string {
	sys := req.Messages[0].Content
	sys = strings.TrimPrefix(sys, "You are a Clash Royale expert deck builder. Provide ")
	return strings.TrimSuffix(sys, " deck recommendations.")
}

func newTestOrchestrator(sender completion.Sender, keys ...string) *Orchestrator {
	o := NewOrchestrator(sender, credential.NewPool(keys...), DefaultCompletionSettings())
	o.rnd = rand.New(rand.NewSource(7))
	return o
}

type fakeStats struct {
	mu           sync.Mutex
	players      map[string]*clash.PlayerStats
	catalog      []clash.Card
	playerErrs   map[string]error
	catalogErrs  map[string]error
	playerCalls  []string
	catalogCalls []string
}

func (f *fakeStats) FetchPlayer(_ context.Context, tag, cred string) (*clash.PlayerStats, error) {
	f.mu.Lock()
	f.playerCalls = append(f.playerCalls, cred)
	f.mu.Unlock()
	if err := f.playerErrs[cred]; err != nil {
		return nil, err
	}
	p, ok := f.players[tag]
	if !ok {
		return nil, errors.New("unexpected tag " + tag)
	}
	return p, nil
}

func (f *fakeStats) FetchCatalog(_ context.Context, cred string) ([]clash.Card, error) {
	f.mu.Lock()
	f.catalogCalls = append(f.catalogCalls, cred)
	f.mu.Unlock()
	if err := f.catalogErrs[cred]; err != nil {
		return nil, err
	}
	return f.catalog, nil
}
