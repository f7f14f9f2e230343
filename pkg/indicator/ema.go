package indicator

// DefaultPeriod is the EMA period used for the 200-day proximity check.
const DefaultPeriod = 200

// EMA computes the exponential moving average of a chronological
// (oldest-first) price series. The first EMA value is seeded with the simple
// moving average of the first period points, then each remaining price is
// folded in with multiplier 2/(period+1). Returns ok=false when the series is
// shorter than the period.
func EMA(prices []float64, period int) (float64, bool) {
	if period <= 0 || len(prices) < period {
		return 0, false
	}

	sum := 0.0
	for _, p := range prices[:period] {
		sum += p
	}
	ema := sum / float64(period)

	multiplier := 2.0 / (float64(period) + 1)
	for _, p := range prices[period:] {
		ema = p*multiplier + ema*(1-multiplier)
	}
	return ema, true
}
