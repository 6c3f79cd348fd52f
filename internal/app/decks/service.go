package decks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"clash-deck-builder/internal/clash"
	"clash-deck-builder/internal/resolver"
	"clash-deck-builder/internal/statsapi"
	"clash-deck-builder/internal/store"

	json "github.com/goccy/go-json"
)

// Repository is the saved-deck slice of store.Store.
type Repository interface {
	CreateSavedDeck(ctx context.Context, playerTag, style string, cards []clash.Card) (*store.SavedDeck, error)
	GetSavedDeck(ctx context.Context, id string) (*store.SavedDeck, error)
	ListSavedDecksByPlayer(ctx context.Context, playerTag string, limit, offset int) ([]store.SavedDeck, error)
	DeleteSavedDeck(ctx context.Context, id string) error
}

type CatalogSource interface {
	Catalog(ctx context.Context) ([]clash.Card, error)
}

type Service struct {
	repo    Repository
	catalog CatalogSource
}

// NewService returns a Service. A nil repo makes every call fail with
// ErrStorageUnavailable.
func NewService(repo Repository, catalog CatalogSource) *Service {
	return &Service{repo: repo, catalog: catalog}
}

func (s *Service) Enabled() bool {
	return s != nil && s.repo != nil
}

func (s *Service) Save(ctx context.Context, req SaveRequest) (*DeckItem, error) {
	if !s.Enabled() {
		return nil, ErrStorageUnavailable
	}
	tag := canonicalTag(req.PlayerTag)
	style := strings.TrimSpace(req.Style)
	if tag == "" || style == "" || len(req.Cards) == 0 || len(req.Cards) > clash.DeckSize {
		return nil, ErrInvalidRequest
	}
	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	cards, err := resolveNames(req.Cards, catalog)
	if err != nil {
		return nil, err
	}
	saved, err := s.repo.CreateSavedDeck(ctx, tag, style, cards)
	if err != nil {
		return nil, err
	}
	item := toItem(*saved)
	return &item, nil
}

func (s *Service) Get(ctx context.Context, id string) (*DeckItem, error) {
	if !s.Enabled() {
		return nil, ErrStorageUnavailable
	}
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidRequest
	}
	saved, err := s.repo.GetSavedDeck(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrDeckNotFound
		}
		return nil, err
	}
	item := toItem(*saved)
	return &item, nil
}

func (s *Service) Export(ctx context.Context, id string) (*Export, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(item.Cards)
	if err != nil {
		return nil, err
	}
	return &Export{Filename: ExportFilename(item.Style), Body: body}, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if !s.Enabled() {
		return ErrStorageUnavailable
	}
	if strings.TrimSpace(id) == "" {
		return ErrInvalidRequest
	}
	if err := s.repo.DeleteSavedDeck(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrDeckNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ListByPlayer(ctx context.Context, tag string, limit, offset int) (*DecksResponse, error) {
	if !s.Enabled() {
		return nil, ErrStorageUnavailable
	}
	tag = canonicalTag(tag)
	if tag == "" {
		return nil, ErrInvalidRequest
	}
	items, err := s.repo.ListSavedDecksByPlayer(ctx, tag, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]DeckItem, 0, len(items))
	for _, it := range items {
		out = append(out, toItem(it))
	}
	return &DecksResponse{Items: out, Limit: limit, Offset: offset}, nil
}

// ExportFilename is "<style>-deck.json" with path separators and spaces
// replaced so the name is safe in a Content-Disposition header.
func ExportFilename(style string) string {
	r := strings.NewReplacer("/", "-", "\\", "-", "\"", "", " ", "-")
	return r.Replace(strings.ToLower(style)) + "-deck.json"
}

func resolveNames(names []string, catalog []clash.Card) ([]clash.Card, error) {
	out := make([]clash.Card, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		hit := resolver.Resolve(name, catalog)
		if len(hit) != 1 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCard, name)
		}
		out = append(out, hit[0])
	}
	if len(out) == 0 {
		return nil, ErrInvalidRequest
	}
	return out, nil
}

func canonicalTag(tag string) string {
	n := statsapi.NormalizeTag(tag)
	if n == "" {
		return ""
	}
	return "#" + n
}

func toItem(d store.SavedDeck) DeckItem {
	deck := clash.Deck(d.Cards)
	return DeckItem{
		ID:            d.ID,
		PlayerTag:     d.PlayerTag,
		Style:         d.Style,
		Cards:         deck,
		AverageElixir: deck.AverageElixir(),
		Complete:      deck.IsComplete(),
		Share:         deck.ShareString(),
		CreatedAt:     d.CreatedAt,
	}
}
