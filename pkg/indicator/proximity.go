package indicator

import (
	"github.com/shopspring/decimal"

	"emawatch/pkg/types"
)

// DefaultThresholdPercent is the proximity threshold applied when the
// watchlist does not specify one.
const DefaultThresholdPercent = 2.0

// Classify checks how far currentPrice sits from its EMA. The percentage
// deviation is rounded to 2 decimal places; a deviation exactly at the
// threshold still counts as near. Equality of price and EMA maps to "below".
// A non-positive EMA can only come from a degenerate series, so it is
// classified as not near rather than dividing by zero.
func Classify(symbol string, currentPrice, ema, thresholdPercent float64) types.ProximityVerdict {
	verdict := types.ProximityVerdict{
		Symbol:           symbol,
		CurrentPrice:     currentPrice,
		EMA:              ema,
		Direction:        "below",
		ThresholdPercent: thresholdPercent,
	}
	if currentPrice > ema {
		verdict.Direction = "above"
	}
	if ema <= 0 {
		return verdict
	}

	diff := (currentPrice - ema) / ema * 100
	if diff < 0 {
		diff = -diff
	}
	verdict.PercentageDiff = decimal.NewFromFloat(diff).Round(2).InexactFloat64()
	verdict.IsNear = verdict.PercentageDiff <= thresholdPercent
	return verdict
}
