package completion

import (
	"context"
	"errors"
	"net/http"
	"testing"

	json "github.com/goccy/go-json"
)

func TestClientSendPayloadAndContent(t *testing.T) {
	var got Request
	var auth, path string
	client := newTestClient(func(r *http.Request) (*http.Response, error) {
		defer r.Body.Close()
		auth = r.Header.Get("Authorization")
		path = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		return jsonResponse(http.StatusOK, `{"model":"gpt-3.5-turbo","choices":[{"message":{"role":"assistant","content":"Giant, Fireball"}}],"usage":{"total_tokens":42}}`), nil
	})

	res, err := client.Send(context.Background(), "sk-a", Request{
		Model:       "gpt-3.5-turbo",
		Temperature: 0.7,
		MaxTokens:   150,
		Messages:    []Message{{Role: "system", Content: "sys"}, {Role: "user", Content: "usr"}},
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if auth != "Bearer sk-a" || path != "/v1/chat/completions" {
		t.Fatalf("unexpected request auth=%q path=%q", auth, path)
	}
	if got.Model != "gpt-3.5-turbo" || got.MaxTokens != 150 || got.Temperature != 0.7 || len(got.Messages) != 2 {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if res.Content != "Giant, Fireball" || res.Usage.TotalTokens != 42 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestClientSendRateLimited(t *testing.T) {
	client := newTestClient(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusTooManyRequests, `{"error":{"message":"Rate limit reached","type":"requests"}}`), nil
	})
	_, err := client.Send(context.Background(), "sk-a", Request{})
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("err = %v, want ErrRateLimited", err)
	}
}

func TestClientSendOtherFailures(t *testing.T) {
	client := newTestClient(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusUnauthorized, `{"error":{"message":"Incorrect API key"}}`), nil
	})
	_, err := client.Send(context.Background(), "sk-a", Request{})
	if err == nil || errors.Is(err, ErrRateLimited) {
		t.Fatalf("err = %v, want non rate-limit failure", err)
	}

	empty := newTestClient(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"choices":[]}`), nil
	})
	if _, err := empty.Send(context.Background(), "sk-a", Request{}); !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("err = %v, want ErrEmptyContent", err)
	}
}
