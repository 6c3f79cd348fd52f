package completion

import (
	"context"
	"errors"
	"fmt"

	"clash-deck-builder/internal/credential"

	"github.com/rs/zerolog/log"
)

var ErrAllCredentialsExhausted = errors.New("all completion credentials exhausted")

// ExhaustedError reports that every credential was rate limited. Last is the
// final attempt's error.
type ExhaustedError struct {
	Attempts int
	Last     error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("all API keys exhausted after %d attempts. Last error: %v", e.Attempts, e.Last)
}

func (e *ExhaustedError) Is(target error) bool {
	return target == ErrAllCredentialsExhausted
}

func (e *ExhaustedError) Unwrap() error {
	return e.Last
}

// Complete sends req with pool.Current(), advancing the pool and retrying on
// ErrRateLimited, at most pool.Len() times. Other errors return immediately
// and leave the cursor alone.
func Complete(ctx context.Context, sender Sender, pool *credential.Pool, req Request) (*Result, error) {
	if pool.Len() == 0 {
		return nil, credential.ErrNoCredentialsAvailable
	}
	var lastErr error
	for attempt := 0; attempt < pool.Len(); attempt++ {
		key, err := pool.Current()
		if err != nil {
			return nil, err
		}
		res, err := sender.Send(ctx, key, req)
		if err == nil {
			return res, nil
		}
		lastErr = err
		if !errors.Is(err, ErrRateLimited) {
			return nil, err
		}
		rotationsTotal.Add(1)
		log.Warn().Int("attempt", attempt+1).Int("credential_index", pool.Index()).Msg("completion rate limited; rotating credential")
		pool.Advance()
	}
	exhaustedTotal.Add(1)
	return nil, &ExhaustedError{Attempts: pool.Len(), Last: lastErr}
}
