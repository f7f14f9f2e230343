package types

// TickerConfig holds the watchlist and the proximity threshold for one run.
type TickerConfig struct {
	Tickers          []string `json:"tickers"`
	ThresholdPercent float64  `json:"threshold_percentage"`
}

// WatchlistEntry is a single watched symbol as stored in DynamoDB.
type WatchlistEntry struct {
	Symbol   string `dynamodbav:"symbol"`
	Disabled bool   `dynamodbav:"disabled,omitempty"`
}

// PriceSeries holds normalized closing prices for one symbol, most recent first.
// Prices is non-empty and Prices[0] equals CurrentPrice.
type PriceSeries struct {
	Symbol       string
	CurrentPrice float64
	Prices       []float64
	AsOf         string
}

// Chronological returns a copy of the series in oldest-first order, which is
// the order the EMA calculator consumes.
func (s *PriceSeries) Chronological() []float64 {
	out := make([]float64, len(s.Prices))
	for i, p := range s.Prices {
		out[len(out)-1-i] = p
	}
	return out
}

// ProximityVerdict is the classification of one symbol against its 200 EMA.
type ProximityVerdict struct {
	Symbol           string  `json:"symbol"`
	CurrentPrice     float64 `json:"current_price"`
	EMA              float64 `json:"ema_200"`
	PercentageDiff   float64 `json:"percentage_diff"`
	IsNear           bool    `json:"is_near_ema"`
	Direction        string  `json:"direction"`
	ThresholdPercent float64 `json:"threshold_pct"`
}

// MonitoringReport aggregates the outcome of one monitoring run.
type MonitoringReport struct {
	AlertsSent      int                `json:"alerts_sent"`
	StocksProcessed int                `json:"stocks_processed"`
	Errors          []string           `json:"errors"`
	Alerts          []ProximityVerdict `json:"alerts"`
	AllResults      []ProximityVerdict `json:"all_results"`
}
