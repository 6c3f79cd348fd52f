package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"clash-deck-builder/internal/recommend"

	json "github.com/goccy/go-json"
)

type client struct {
	baseURL    string
	httpClient *http.Client
}

func newClient(baseURL string, timeout time.Duration) *client {
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Decks calls GET /api/players/{tag}/decks on a running deck-server.
func (c *client) Decks(ctx context.Context, tag string, styles []string) (*recommend.Report, error) {
	endpoint := c.baseURL + "/api/players/" + url.PathEscape(tag) + "/decks"
	if len(styles) > 0 {
		endpoint += "?" + url.Values{"styles": {strings.Join(styles, ",")}}.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
			return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, errResp.Error)
		}
		return nil, fmt.Errorf("server returned %d", resp.StatusCode)
	}
	var report recommend.Report
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return &report, nil
}

func printReport(w io.Writer, r *recommend.Report) {
	fmt.Fprintf(w, "%s (%s) - %d trophies\n", r.PlayerName, r.PlayerTag, r.Trophies)
	fmt.Fprintf(w, "playstyle: %s, skill: %s\n", r.Analysis.Playstyle, r.Analysis.SkillLevel)
	if r.Source == recommend.SourceFallback {
		fmt.Fprintln(w, "note: recommendations unavailable, showing random decks")
	}
	for _, d := range r.Decks {
		fmt.Fprintf(w, "\n[%s] avg elixir %.1f", d.Style, d.AverageElixir)
		if !d.Complete {
			fmt.Fprintf(w, " (%d/8 cards)", len(d.Cards))
		}
		fmt.Fprintf(w, "\n  %s\n", d.Share)
	}
}
