package clash

import "testing"

func TestDeckAverageElixir(t *testing.T) {
	d := Deck{
		{Name: "Hog Rider", ElixirCost: 4},
		{Name: "Ice Spirit", ElixirCost: 1},
		{Name: "Fireball", ElixirCost: 4},
	}
	if got := d.AverageElixir(); got != 3 {
		t.Fatalf("AverageElixir() = %v, want 3", got)
	}
	if got := (Deck{}).AverageElixir(); got != 0 {
		t.Fatalf("empty AverageElixir() = %v, want 0", got)
	}
	rounded := Deck{{ElixirCost: 3}, {ElixirCost: 4}, {ElixirCost: 4}}
	if got := rounded.AverageElixir(); got != 3.7 {
		t.Fatalf("AverageElixir() = %v, want 3.7", got)
	}
}

func TestDeckShareStringAndCompleteness(t *testing.T) {
	d := Deck{{Name: "Giant"}, {Name: "Musketeer"}}
	if got := d.ShareString(); got != "Giant, Musketeer" {
		t.Fatalf("ShareString() = %q", got)
	}
	if d.IsComplete() {
		t.Fatal("two-card deck reported complete")
	}
	full := make(Deck, DeckSize)
	if !full.IsComplete() {
		t.Fatal("eight-card deck reported incomplete")
	}
}
