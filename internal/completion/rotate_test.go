package completion

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"clash-deck-builder/internal/credential"
)

type scriptedSender struct {
	keys    []string
	results map[string]error
}

func (s *scriptedSender) Send(_ context.Context, apiKey string, _ Request) (*Result, error) {
	s.keys = append(s.keys, apiKey)
	if err := s.results[apiKey]; err != nil {
		return nil, err
	}
	return &Result{Content: "ok from " + apiKey}, nil
}

func rateLimited(key string) error {
	return fmt.Errorf("%w: key %s", ErrRateLimited, key)
}

func TestCompleteRotatesOnRateLimit(t *testing.T) {
	pool := credential.NewPool("a", "b", "c")
	sender := &scriptedSender{results: map[string]error{"a": rateLimited("a")}}

	res, err := Complete(context.Background(), sender, pool, Request{})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if res.Content != "ok from b" {
		t.Fatalf("content = %q", res.Content)
	}
	if pool.Index() != 1 {
		t.Fatalf("cursor = %d, want 1", pool.Index())
	}
}

func TestCompleteDoesNotRotateOnOtherErrors(t *testing.T) {
	pool := credential.NewPool("a", "b")
	boom := errors.New("connection reset")
	sender := &scriptedSender{results: map[string]error{"a": boom}}

	_, err := Complete(context.Background(), sender, pool, Request{})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if len(sender.keys) != 1 || pool.Index() != 0 {
		t.Fatalf("calls=%v cursor=%d, want one call and no rotation", sender.keys, pool.Index())
	}
}

func TestCompleteExhaustsAfterPoolLength(t *testing.T) {
	pool := credential.NewPool("a", "b", "c")
	sender := &scriptedSender{results: map[string]error{
		"a": rateLimited("a"),
		"b": rateLimited("b"),
		"c": rateLimited("c"),
	}}

	_, err := Complete(context.Background(), sender, pool, Request{})
	if !errors.Is(err, ErrAllCredentialsExhausted) {
		t.Fatalf("err = %v, want ErrAllCredentialsExhausted", err)
	}
	var exhausted *ExhaustedError
	if !errors.As(err, &exhausted) || exhausted.Attempts != 3 {
		t.Fatalf("expected ExhaustedError with 3 attempts, got %#v", err)
	}
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("last error should be reachable, got %v", err)
	}
	if len(sender.keys) != 3 || sender.keys[0] != "a" || sender.keys[2] != "c" {
		t.Fatalf("keys tried = %v", sender.keys)
	}
	if pool.Index() != 0 {
		t.Fatalf("cursor = %d after full cycle, want 0", pool.Index())
	}
}

func TestCompleteStartsFromCurrentCursor(t *testing.T) {
	pool := credential.NewPool("a", "b", "c")
	pool.Advance()
	pool.Advance()
	sender := &scriptedSender{results: map[string]error{"c": rateLimited("c")}}

	res, err := Complete(context.Background(), sender, pool, Request{})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if res.Content != "ok from a" {
		t.Fatalf("content = %q, want wrap to a", res.Content)
	}
}

func TestCompleteEmptyPool(t *testing.T) {
	sender := &scriptedSender{}
	_, err := Complete(context.Background(), sender, credential.NewPool(), Request{})
	if !errors.Is(err, credential.ErrNoCredentialsAvailable) {
		t.Fatalf("err = %v, want ErrNoCredentialsAvailable", err)
	}
	if len(sender.keys) != 0 {
		t.Fatalf("unexpected sends: %v", sender.keys)
	}
}
