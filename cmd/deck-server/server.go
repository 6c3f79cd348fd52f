package main

import (
	"context"
	"net/http"
	"time"

	"clash-deck-builder/internal/completion"
	"clash-deck-builder/internal/config"
	"clash-deck-builder/internal/credential"
	"clash-deck-builder/internal/recommend"
	"clash-deck-builder/internal/statsapi"
	"clash-deck-builder/internal/store"
	httptransport "clash-deck-builder/internal/transport/http"

	"github.com/rs/zerolog/log"
)

// newServer wires clients, credential pools and storage into an http.Server.
// The returned cleanup closes the store when one was opened.
func newServer(ctx context.Context, cfg config.ServerConfig) (*http.Server, func(), error) {
	statsPool := credential.NewPool(cfg.StatsAPIKeys()...)
	llmPool := credential.NewPool(cfg.OpenAIAPIKeys()...)
	if statsPool.Len() == 0 {
		log.Warn().Msg("no STATS_API_KEY_n configured; player requests will fail with no_credentials")
	}
	if llmPool.Len() == 0 {
		log.Warn().Msg("no OPENAI_API_KEY_n configured; every recommendation will use random decks")
	}

	stats := statsapi.NewClient(cfg.StatsBaseURL, cfg.HTTPClientTimeout, cfg.StatsRatePerSec)
	llm := completion.NewClient(cfg.OpenAIBaseURL, cfg.HTTPClientTimeout)
	orchestrator := recommend.NewOrchestrator(llm, llmPool, recommend.CompletionSettings{
		Model:       cfg.OpenAIModel,
		Temperature: cfg.OpenAITemperature,
		MaxTokens:   cfg.OpenAIMaxTokens,
	})
	recommendSvc := recommend.NewService(stats, statsPool, orchestrator, cfg.Styles())

	cleanup := func() {}
	var st *store.Store
	if cfg.PostgresDSN != "" {
		var err error
		st, err = store.New(cfg.PostgresDSN)
		if err != nil {
			return nil, cleanup, err
		}
		if err := st.Ping(ctx); err != nil {
			st.Close()
			return nil, cleanup, err
		}
		cleanup = st.Close
	} else {
		log.Warn().Msg("POSTGRES_DSN not set; saved-deck routes disabled")
	}

	r := httptransport.NewRouter(st, cfg, recommendSvc)
	httptransport.LogRoutes(r)

	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.HTTPClientTimeout + 30*time.Second,
		IdleTimeout:       120 * time.Second,
	}, cleanup, nil
}
