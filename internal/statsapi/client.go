// Package statsapi reads player records and the card catalog from the Clash Royale REST API.
package statsapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"clash-deck-builder/internal/clash"

	json "github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

var (
	ErrPlayerNotFound     = errors.New("player not found")
	ErrCatalogUnavailable = errors.New("card catalog unavailable")
	ErrInvalidTag         = errors.New("invalid player tag")
)

const maxErrorBody = 512

type Client struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

// NewClient limits outbound calls to perSecond requests (unlimited when <= 0).
func NewClient(baseURL string, timeout time.Duration, perSecond float64) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{Timeout: timeout},
		rateLimiter: rate.NewLimiter(limit, 1),
	}
}

// NormalizeTag strips surrounding blanks and one leading "#", then upper-cases.
func NormalizeTag(tag string) string {
	tag = strings.TrimSpace(tag)
	tag = strings.TrimPrefix(tag, "#")
	return strings.ToUpper(tag)
}

func (c *Client) FetchPlayer(ctx context.Context, tag, credential string) (*clash.PlayerStats, error) {
	normalized := NormalizeTag(tag)
	if normalized == "" {
		return nil, ErrInvalidTag
	}
	endpoint := c.baseURL + "/players/%23" + url.PathEscape(normalized)

	status, body, err := c.get(ctx, endpoint, credential)
	if err != nil {
		return nil, fmt.Errorf("fetch player %s: %w", normalized, err)
	}
	switch {
	case status == http.StatusNotFound:
		return nil, fmt.Errorf("%w: #%s", ErrPlayerNotFound, normalized)
	case status != http.StatusOK:
		return nil, fmt.Errorf("fetch player %s: %s", normalized, describeStatus(status, body))
	}

	var stats clash.PlayerStats
	if err := json.Unmarshal(body, &stats); err != nil {
		return nil, fmt.Errorf("decode player %s: %w", normalized, err)
	}
	return &stats, nil
}

type catalogResponse struct {
	Items []clash.Card `json:"items"`
}

func (c *Client) FetchCatalog(ctx context.Context, credential string) ([]clash.Card, error) {
	status, body, err := c.get(ctx, c.baseURL+"/cards", credential)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrCatalogUnavailable, describeStatus(status, body))
	}
	var parsed catalogResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrCatalogUnavailable, err)
	}
	if parsed.Items == nil {
		parsed.Items = []clash.Card{}
	}
	return parsed.Items, nil
}

func (c *Client) get(ctx context.Context, endpoint, credential string) (int, []byte, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return 0, nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", authorization(credential))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}

// authorization accepts credentials configured with or without the Bearer scheme.
func authorization(credential string) string {
	credential = strings.TrimSpace(credential)
	if strings.HasPrefix(strings.ToLower(credential), "bearer ") {
		return credential
	}
	return "Bearer " + credential
}

func describeStatus(status int, body []byte) string {
	var apiErr struct {
		Reason  string `json:"reason"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &apiErr) == nil && (apiErr.Reason != "" || apiErr.Message != "") {
		return fmt.Sprintf("status %d: %s %s", status, apiErr.Reason, apiErr.Message)
	}
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return fmt.Sprintf("status %d: %s", status, strings.TrimSpace(string(body)))
}
