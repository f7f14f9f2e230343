package config

import (
	"context"
	"encoding/json"
	"os"

	"github.com/rs/zerolog"

	"emawatch/pkg/types"
)

// FileSource reads the watchlist from a JSON file (tickers.json).
type FileSource struct {
	Path   string
	logger zerolog.Logger
}

// NewFileSource creates a file-backed watchlist source.
func NewFileSource(path string, logger zerolog.Logger) *FileSource {
	return &FileSource{Path: path, logger: logger}
}

func (s *FileSource) Name() string { return "file" }

// Load reads and parses the watchlist file, falling back to Default on any
// failure.
func (s *FileSource) Load(_ context.Context) types.TickerConfig {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		s.logger.Error().Err(err).Str("path", s.Path).Msg("failed to read watchlist, using defaults")
		return Default()
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		s.logger.Error().Err(err).Str("path", s.Path).Msg("failed to parse watchlist, using defaults")
		return Default()
	}
	if cfg.Tickers == nil {
		cfg.Tickers = []string{}
	}
	if cfg.ThresholdPercent <= 0 {
		cfg.ThresholdPercent = Default().ThresholdPercent
	}
	return cfg
}
