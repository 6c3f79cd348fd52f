// Package resolver maps free-text card lists back onto the card catalog.
package resolver

import (
	"strings"

	"clash-deck-builder/internal/clash"
)

// Resolve splits raw on commas and looks each trimmed token up by
// case-insensitive exact name. Unknown tokens are dropped, order is kept and
// repeated names resolve to the same card each time.
func Resolve(raw string, catalog []clash.Card) []clash.Card {
	byName := make(map[string]clash.Card, len(catalog))
	for _, c := range catalog {
		key := strings.ToLower(c.Name)
		if _, dup := byName[key]; !dup {
			byName[key] = c
		}
	}

	out := []clash.Card{}
	for _, token := range strings.Split(strings.TrimSpace(raw), ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if c, ok := byName[strings.ToLower(token)]; ok {
			out = append(out, c)
		}
	}
	return out
}
