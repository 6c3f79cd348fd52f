package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"clash-deck-builder/internal/config"
	"clash-deck-builder/internal/logging"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		panic(err)
	}
	logCfg, err := config.LoadLog()
	if err != nil {
		panic(err)
	}
	logCfg.Pretty = true
	logging.Init(logCfg)

	cfg, err := config.LoadCLI()
	if err != nil {
		log.Fatal().Err(err).Msg("load cli config failed")
	}
	tag := cfg.PlayerTag
	if len(os.Args) > 1 {
		tag = os.Args[1]
	}
	if tag == "" {
		fmt.Fprintln(os.Stderr, "usage: deck-cli <player-tag>  (or set PLAYER_TAG)")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	c := newClient(cfg.ServerURL, 0)
	report, err := c.Decks(ctx, tag, cfg.Styles)
	if err != nil {
		log.Fatal().Err(err).Str("tag", tag).Msg("fetch decks failed")
	}
	printReport(os.Stdout, report)
}
