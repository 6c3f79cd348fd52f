// Package credential holds ordered API credentials and a rotation cursor.
package credential

import (
	"errors"
	"strings"
	"sync/atomic"
)

var ErrNoCredentialsAvailable = errors.New("no credentials available")

// Pool is shared by every in-flight request of one API. The cursor is atomic,
// but Advance is not conditional on the credential the caller used: two
// requests rate-limited on the same key both advance, and the cursor skips one.
type Pool struct {
	keys   []string
	cursor atomic.Uint64
}

// NewPool keeps the non-blank slots in their given order.
func NewPool(slots ...string) *Pool {
	keys := make([]string, 0, len(slots))
	for _, s := range slots {
		if s = strings.TrimSpace(s); s != "" {
			keys = append(keys, s)
		}
	}
	return &Pool{keys: keys}
}

func (p *Pool) Len() int {
	return len(p.keys)
}

// Index is the cursor position in [0, Len()).
func (p *Pool) Index() int {
	if len(p.keys) == 0 {
		return 0
	}
	return int(p.cursor.Load() % uint64(len(p.keys)))
}

func (p *Pool) Current() (string, error) {
	if len(p.keys) == 0 {
		return "", ErrNoCredentialsAvailable
	}
	return p.keys[p.Index()], nil
}

// Advance moves the cursor to the next credential, wrapping forever.
func (p *Pool) Advance() {
	if len(p.keys) == 0 {
		return
	}
	p.cursor.Add(1)
}

// Credentials is a copy of the configured order, independent of the cursor.
func (p *Pool) Credentials() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}
