// Package config loads the ticker watchlist for a monitoring run. Every
// source fails open: an unreadable or malformed watchlist degrades to the
// default empty config so a bad input turns the run into a no-op instead of
// an error.
package config

import (
	"context"

	"emawatch/pkg/indicator"
	"emawatch/pkg/types"
)

// Source loads the watchlist at the start of a run.
type Source interface {
	Load(ctx context.Context) types.TickerConfig
	Name() string
}

// Default returns the fail-open configuration: no tickers, 2% threshold.
func Default() types.TickerConfig {
	return types.TickerConfig{
		Tickers:          []string{},
		ThresholdPercent: indicator.DefaultThresholdPercent,
	}
}
