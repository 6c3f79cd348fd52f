package config

import "github.com/caarlos0/env/v11"

type CLIConfig struct {
	ServerURL string   `env:"SERVER_URL" envDefault:"http://localhost:8080"`
	PlayerTag string   `env:"PLAYER_TAG" envDefault:""`
	Styles    []string `env:"DECK_STYLES" envSeparator:","`
}

func LoadCLI() (CLIConfig, error) {
	var cfg CLIConfig
	err := env.Parse(&cfg)
	return cfg, err
}
