package recommend

import (
	"context"
	"errors"
	"strings"

	"clash-deck-builder/internal/analysis"
	"clash-deck-builder/internal/clash"
	"clash-deck-builder/internal/credential"
	"clash-deck-builder/internal/statsapi"

	"github.com/rs/zerolog/log"
)

const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

var ErrInvalidRequest = errors.New("invalid request")

// StatsFetcher is the subset of statsapi.Client the service needs.
type StatsFetcher interface {
	FetchPlayer(ctx context.Context, tag, credential string) (*clash.PlayerStats, error)
	FetchCatalog(ctx context.Context, credential string) ([]clash.Card, error)
}

type Service struct {
	stats         StatsFetcher
	statsPool     *credential.Pool
	orchestrator  *Orchestrator
	defaultStyles []string
}

func NewService(stats StatsFetcher, statsPool *credential.Pool, orchestrator *Orchestrator, defaultStyles []string) *Service {
	return &Service{
		stats:         stats,
		statsPool:     statsPool,
		orchestrator:  orchestrator,
		defaultStyles: defaultStyles,
	}
}

func (s *Service) DefaultStyles() []string {
	out := make([]string, len(s.defaultStyles))
	copy(out, s.defaultStyles)
	return out
}

// ForPlayer tries each stats credential in configured order with the whole
// fetch player, fetch catalog, recommend sequence and stops at the first
// success. When every credential fails the last error is returned.
func (s *Service) ForPlayer(ctx context.Context, tag string, styles []string) (*Report, error) {
	if statsapi.NormalizeTag(tag) == "" {
		return nil, ErrInvalidRequest
	}
	styles = cleanStyles(styles)
	if len(styles) == 0 {
		styles = s.DefaultStyles()
	}

	var report *Report
	err := s.withStatsCredential(ctx, func(cred string) error {
		player, err := s.stats.FetchPlayer(ctx, tag, cred)
		if err != nil {
			return err
		}
		catalog, err := s.stats.FetchCatalog(ctx, cred)
		if err != nil {
			return err
		}
		out := s.orchestrator.Generate(ctx, *player, catalog, styles)
		report = newReport(*player, styles, out)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// Profile fetches a player and returns the derived analysis without calling the LLM.
func (s *Service) Profile(ctx context.Context, tag string) (*Profile, error) {
	if statsapi.NormalizeTag(tag) == "" {
		return nil, ErrInvalidRequest
	}
	var profile *Profile
	err := s.withStatsCredential(ctx, func(cred string) error {
		player, err := s.stats.FetchPlayer(ctx, tag, cred)
		if err != nil {
			return err
		}
		profile = &Profile{
			Player:   *player,
			Analysis: analysis.Analyze(*player),
			Ratios:   analysis.ComputeRatios(*player),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *Service) Catalog(ctx context.Context) ([]clash.Card, error) {
	var catalog []clash.Card
	err := s.withStatsCredential(ctx, func(cred string) error {
		cards, err := s.stats.FetchCatalog(ctx, cred)
		if err != nil {
			return err
		}
		catalog = cards
		return nil
	})
	return catalog, err
}

func (s *Service) withStatsCredential(ctx context.Context, fn func(cred string) error) error {
	creds := s.statsPool.Credentials()
	if len(creds) == 0 {
		return credential.ErrNoCredentialsAvailable
	}
	var lastErr error
	for i, cred := range creds {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := fn(cred)
		if err == nil {
			return nil
		}
		lastErr = err
		statsAttemptsFailed.Add(1)
		log.Warn().Err(err).Int("credential_index", i).Msg("stats request failed; trying next credential")
	}
	return lastErr
}

func cleanStyles(styles []string) []string {
	out := make([]string, 0, len(styles))
	seen := make(map[string]bool, len(styles))
	for _, s := range styles {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
