package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"clash-deck-builder/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	sinkMu sync.RWMutex
	sink   io.Writer = os.Stdout
)

// Init configures the global zerolog logger and the shared sink returned by Writer.
func Init(cfg config.LogConfig) {
	level := zerolog.InfoLevel
	if v := strings.TrimSpace(cfg.Level); v != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil {
			level = parsed
		}
	}

	var out io.Writer = os.Stdout
	if path := strings.TrimSpace(cfg.File); path != "" {
		fw, err := newSizeLimitedWriter(path, cfg.MaxMB)
		if err == nil {
			out = io.MultiWriter(os.Stdout, fw)
		}
	}
	setWriter(out)

	var output io.Writer = out
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: out}
	}

	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).With().Timestamp().Logger()
	if n := cfg.SampleEvery; n > 1 {
		logger = logger.Sample(&zerolog.BasicSampler{N: uint32(n)})
	}
	log.Logger = logger
}

// Writer is the raw sink, used by the slog request logger.
func Writer() io.Writer {
	sinkMu.RLock()
	defer sinkMu.RUnlock()
	return sink
}

func setWriter(w io.Writer) {
	sinkMu.Lock()
	sink = w
	sinkMu.Unlock()
}
