package marketdata

import (
	"context"
	"errors"

	"emawatch/pkg/types"
)

// ErrNoData is returned when a provider cannot produce a usable price series
// for a symbol: network failure, malformed payload, empty result or all-null
// closes all collapse to this one outcome.
var ErrNoData = errors.New("no market data")

// maxHistory bounds the series at 250 points so a 200 EMA is still possible
// after null closes are dropped.
const maxHistory = 250

// Provider fetches a normalized closing-price series for a symbol.
type Provider interface {
	// Fetch returns the series most-recent-first, or an error wrapping
	// ErrNoData when the symbol has no usable data.
	Fetch(ctx context.Context, symbol string) (*types.PriceSeries, error)
	Name() string
}

// normalize turns a chronological close series into the most-recent-first
// shape of PriceSeries, truncated to maxHistory entries.
func normalize(chronological []float64) []float64 {
	out := make([]float64, 0, len(chronological))
	for i := len(chronological) - 1; i >= 0; i-- {
		out = append(out, chronological[i])
		if len(out) == maxHistory {
			break
		}
	}
	return out
}
