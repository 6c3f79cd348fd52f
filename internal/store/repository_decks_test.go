package store

import (
	"errors"
	"testing"

	"clash-deck-builder/internal/clash"
)

func TestSavedDeckCRUD(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	cards := []clash.Card{
		{ID: 26000000, Name: "Knight", ElixirCost: 3, Rarity: "common"},
		{ID: 28000000, Name: "Fireball", ElixirCost: 4, Rarity: "rare"},
	}
	saved := mustSaveDeck(t, st, ctx, "#ABC", "control", cards)
	if saved.ID == "" || saved.CreatedAt.IsZero() {
		t.Fatalf("unexpected saved deck: %+v", saved)
	}

	got, err := st.GetSavedDeck(ctx, saved.ID)
	if err != nil {
		t.Fatalf("get saved deck: %v", err)
	}
	if got.PlayerTag != "#ABC" || got.Style != "control" || len(got.Cards) != 2 || got.Cards[1].Name != "Fireball" {
		t.Fatalf("unexpected deck: %+v", got)
	}

	if err := st.DeleteSavedDeck(ctx, saved.ID); err != nil {
		t.Fatalf("delete saved deck: %v", err)
	}
	if _, err := st.GetSavedDeck(ctx, saved.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := st.DeleteSavedDeck(ctx, saved.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestListSavedDecksByPlayer(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	first := mustSaveDeck(t, st, ctx, "#ABC", "aggressive", nil)
	second := mustSaveDeck(t, st, ctx, "#ABC", "control", nil)
	mustSaveDeck(t, st, ctx, "#XYZ", "siege", nil)

	items, err := st.ListSavedDecksByPlayer(ctx, "#ABC", 10, 0)
	if err != nil {
		t.Fatalf("list saved decks: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 decks, got %d", len(items))
	}
	if items[0].ID != second.ID || items[1].ID != first.ID {
		t.Fatalf("expected newest first, got %s then %s", items[0].ID, items[1].ID)
	}
	if items[0].Cards == nil {
		t.Fatal("expected empty card slice, got nil")
	}

	page, err := st.ListSavedDecksByPlayer(ctx, "#ABC", 1, 1)
	if err != nil {
		t.Fatalf("list page: %v", err)
	}
	if len(page) != 1 || page[0].ID != first.ID {
		t.Fatalf("unexpected page: %+v", page)
	}

	none, err := st.ListSavedDecksByPlayer(ctx, "#NOPE", 10, 0)
	if err != nil || len(none) != 0 {
		t.Fatalf("expected no decks, got %v, %v", none, err)
	}
}
