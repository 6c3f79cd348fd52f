package config

import (
	"testing"
	"time"
)

func TestLoadServerDefaults(t *testing.T) {
	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("LoadServer() error = %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.OpenAIModel != "gpt-3.5-turbo" {
		t.Fatalf("OpenAIModel = %q, want gpt-3.5-turbo", cfg.OpenAIModel)
	}
	if cfg.OpenAITemperature != 0.7 {
		t.Fatalf("OpenAITemperature = %v, want 0.7", cfg.OpenAITemperature)
	}
	if cfg.OpenAIMaxTokens != 150 {
		t.Fatalf("OpenAIMaxTokens = %d, want 150", cfg.OpenAIMaxTokens)
	}
	if cfg.HTTPClientTimeout != 30*time.Second {
		t.Fatalf("HTTPClientTimeout = %v, want 30s", cfg.HTTPClientTimeout)
	}
	styles := cfg.Styles()
	if len(styles) != 3 || styles[0] != "aggressive" || styles[1] != "control" || styles[2] != "fast cycle" {
		t.Fatalf("Styles() = %v", styles)
	}
}

func TestLoadServerCredentialSlots(t *testing.T) {
	t.Setenv("STATS_API_KEY_1", "stats-a")
	t.Setenv("STATS_API_KEY_3", "stats-c")
	t.Setenv("OPENAI_API_KEY_2", "sk-b")
	t.Setenv("OPENAI_API_KEY_6", "sk-f")

	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("LoadServer() error = %v", err)
	}
	stats := cfg.StatsAPIKeys()
	if len(stats) != 4 || stats[0] != "stats-a" || stats[1] != "" || stats[2] != "stats-c" {
		t.Fatalf("StatsAPIKeys() = %v", stats)
	}
	openai := cfg.OpenAIAPIKeys()
	if len(openai) != 6 || openai[1] != "sk-b" || openai[5] != "sk-f" {
		t.Fatalf("OpenAIAPIKeys() = %v", openai)
	}
}

func TestLoadServerParseTypes(t *testing.T) {
	t.Setenv("OPENAI_TEMPERATURE", "0.25")
	t.Setenv("OPENAI_MAX_TOKENS", "300")
	t.Setenv("STATS_RATE_PER_SEC", "2.5")
	t.Setenv("HTTP_CLIENT_TIMEOUT", "5s")
	t.Setenv("DECK_STYLES", " siege , ,bridge spam")

	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("LoadServer() error = %v", err)
	}
	if cfg.OpenAITemperature != 0.25 || cfg.OpenAIMaxTokens != 300 {
		t.Fatalf("unexpected completion config: %+v", cfg)
	}
	if cfg.StatsRatePerSec != 2.5 {
		t.Fatalf("StatsRatePerSec = %v, want 2.5", cfg.StatsRatePerSec)
	}
	if cfg.HTTPClientTimeout != 5*time.Second {
		t.Fatalf("HTTPClientTimeout = %v, want 5s", cfg.HTTPClientTimeout)
	}
	styles := cfg.Styles()
	if len(styles) != 2 || styles[0] != "siege" || styles[1] != "bridge spam" {
		t.Fatalf("Styles() = %v", styles)
	}
}

func TestLoadServerRejectsBadNumber(t *testing.T) {
	t.Setenv("OPENAI_MAX_TOKENS", "lots")

	if _, err := LoadServer(); err == nil {
		t.Fatal("LoadServer() expected error, got nil")
	}
}
