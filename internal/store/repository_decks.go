package store

import (
	"context"
	"errors"
	"time"

	"clash-deck-builder/internal/clash"

	json "github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
)

const (
	insertSavedDeckSQL = `INSERT INTO saved_decks (id, player_tag, style, cards)
VALUES ($1, $2, $3, $4)
RETURNING created_at`

	getSavedDeckSQL = `SELECT id, player_tag, style, cards, created_at
FROM saved_decks
WHERE id = $1`

	listSavedDecksByPlayerSQL = `SELECT id, player_tag, style, cards, created_at
FROM saved_decks
WHERE player_tag = $1
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3`

	deleteSavedDeckSQL = `DELETE FROM saved_decks WHERE id = $1`
)

func (s *Store) CreateSavedDeck(ctx context.Context, playerTag, style string, cards []clash.Card) (*SavedDeck, error) {
	if playerTag == "" || style == "" {
		return nil, errors.New("player_tag and style are required")
	}
	if cards == nil {
		cards = []clash.Card{}
	}
	raw, err := json.Marshal(cards)
	if err != nil {
		return nil, err
	}
	deck := &SavedDeck{ID: NewID(), PlayerTag: playerTag, Style: style, Cards: cards}
	if err := s.Pool.QueryRow(ctx, insertSavedDeckSQL, deck.ID, playerTag, style, raw).Scan(&deck.CreatedAt); err != nil {
		return nil, err
	}
	return deck, nil
}

func (s *Store) GetSavedDeck(ctx context.Context, id string) (*SavedDeck, error) {
	deck, err := scanSavedDeck(s.Pool.QueryRow(ctx, getSavedDeckSQL, id))
	if err != nil {
		return nil, mapNotFound(err)
	}
	return deck, nil
}

func (s *Store) ListSavedDecksByPlayer(ctx context.Context, playerTag string, limit, offset int) ([]SavedDeck, error) {
	l, o := pageBounds(limit, offset, 50)
	rows, err := s.Pool.Query(ctx, listSavedDecksByPlayerSQL, playerTag, l, o)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SavedDeck, 0)
	for rows.Next() {
		deck, err := scanSavedDeck(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *deck)
	}
	return out, rows.Err()
}

func (s *Store) DeleteSavedDeck(ctx context.Context, id string) error {
	tag, err := s.Pool.Exec(ctx, deleteSavedDeckSQL, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanSavedDeck(row pgx.Row) (*SavedDeck, error) {
	var (
		deck      SavedDeck
		raw       []byte
		createdAt time.Time
	)
	if err := row.Scan(&deck.ID, &deck.PlayerTag, &deck.Style, &raw, &createdAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &deck.Cards); err != nil {
		return nil, err
	}
	if deck.Cards == nil {
		deck.Cards = []clash.Card{}
	}
	deck.CreatedAt = createdAt
	return &deck, nil
}
