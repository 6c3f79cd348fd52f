package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type ServerConfig struct {
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`
	PostgresDSN string `env:"POSTGRES_DSN"`
	AdminAPIKey string `env:"ADMIN_API_KEY"`

	StatsBaseURL    string  `env:"STATS_API_BASE_URL" envDefault:"https://api.clashroyale.com/v1"`
	StatsAPIKey1    string  `env:"STATS_API_KEY_1"`
	StatsAPIKey2    string  `env:"STATS_API_KEY_2"`
	StatsAPIKey3    string  `env:"STATS_API_KEY_3"`
	StatsAPIKey4    string  `env:"STATS_API_KEY_4"`
	StatsRatePerSec float64 `env:"STATS_RATE_PER_SEC" envDefault:"10"`

	OpenAIBaseURL     string  `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	OpenAIAPIKey1     string  `env:"OPENAI_API_KEY_1"`
	OpenAIAPIKey2     string  `env:"OPENAI_API_KEY_2"`
	OpenAIAPIKey3     string  `env:"OPENAI_API_KEY_3"`
	OpenAIAPIKey4     string  `env:"OPENAI_API_KEY_4"`
	OpenAIAPIKey5     string  `env:"OPENAI_API_KEY_5"`
	OpenAIAPIKey6     string  `env:"OPENAI_API_KEY_6"`
	OpenAIModel       string  `env:"OPENAI_MODEL" envDefault:"gpt-3.5-turbo"`
	OpenAITemperature float64 `env:"OPENAI_TEMPERATURE" envDefault:"0.7"`
	OpenAIMaxTokens   int     `env:"OPENAI_MAX_TOKENS" envDefault:"150"`

	DeckStyles        []string      `env:"DECK_STYLES" envSeparator:"," envDefault:"aggressive,control,fast cycle"`
	HTTPClientTimeout time.Duration `env:"HTTP_CLIENT_TIMEOUT" envDefault:"30s"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}

// StatsAPIKeys returns the fixed stats credential slots in order, empty slots included.
func (c ServerConfig) StatsAPIKeys() []string {
	return []string{c.StatsAPIKey1, c.StatsAPIKey2, c.StatsAPIKey3, c.StatsAPIKey4}
}

// OpenAIAPIKeys returns the fixed completion credential slots in order, empty slots included.
func (c ServerConfig) OpenAIAPIKeys() []string {
	return []string{
		c.OpenAIAPIKey1, c.OpenAIAPIKey2, c.OpenAIAPIKey3,
		c.OpenAIAPIKey4, c.OpenAIAPIKey5, c.OpenAIAPIKey6,
	}
}

// Styles returns DeckStyles trimmed, without blanks.
func (c ServerConfig) Styles() []string {
	out := make([]string, 0, len(c.DeckStyles))
	for _, s := range c.DeckStyles {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
