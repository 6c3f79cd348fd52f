package store

import "testing"

func TestNewIDIsMonotonic(t *testing.T) {
	prev := NewID()
	for i := 0; i < 100; i++ {
		next := NewID()
		if len(next) != 26 {
			t.Fatalf("unexpected id length %d: %s", len(next), next)
		}
		if next <= prev {
			t.Fatalf("ids not increasing: %s then %s", prev, next)
		}
		prev = next
	}
}

func TestPageBounds(t *testing.T) {
	l, o := pageBounds(0, -5, 50)
	if l != 50 || o != 0 {
		t.Fatalf("pageBounds defaults = %d, %d", l, o)
	}
	l, o = pageBounds(10, 20, 50)
	if l != 10 || o != 20 {
		t.Fatalf("pageBounds = %d, %d", l, o)
	}
}
