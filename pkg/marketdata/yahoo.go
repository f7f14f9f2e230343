package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"emawatch/pkg/types"
)

const defaultYahooBaseURL = "https://query1.finance.yahoo.com"

// YahooProvider implements Provider using the Yahoo Finance chart API.
type YahooProvider struct {
	Client  *http.Client
	BaseURL string
	logger  zerolog.Logger
}

// NewYahooProvider creates a Yahoo provider with a 30s request timeout.
func NewYahooProvider(logger zerolog.Logger) *YahooProvider {
	return &YahooProvider{
		Client:  &http.Client{Timeout: 30 * time.Second},
		BaseURL: defaultYahooBaseURL,
		logger:  logger,
	}
}

func (p *YahooProvider) Name() string { return "yahoo" }

// yahooChart is the response structure from the Yahoo Finance chart API.
// Close uses pointers so null entries (holidays, halts) decode as nil.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Fetch retrieves ~1 year of daily closes for symbol and normalizes them to
// most-recent-first order with null entries dropped.
func (p *YahooProvider) Fetch(ctx context.Context, symbol string) (*types.PriceSeries, error) {
	log := p.logger.With().Str("symbol", symbol).Str("provider", p.Name()).Logger()
	log.Info().Msg("fetching price history")

	series, err := p.fetch(ctx, symbol)
	if err != nil {
		log.Error().Err(err).Msg("fetch failed")
		return nil, err
	}
	log.Info().Int("points", len(series.Prices)).Float64("current_price", series.CurrentPrice).Msg("price history fetched")
	return series, nil
}

func (p *YahooProvider) fetch(ctx context.Context, symbol string) (*types.PriceSeries, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?range=1y&interval=1d&includePrePost=false&events=div%%2Csplit",
		p.BaseURL, url.PathEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrNoData, err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrNoData, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrNoData, resp.StatusCode)
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrNoData, err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("%w: api error: %s", ErrNoData, chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("%w: empty result for %s", ErrNoData, symbol)
	}

	raw := chart.Chart.Result[0].Indicators.Quote[0].Close
	chronological := make([]float64, 0, len(raw))
	for _, c := range raw {
		if c == nil {
			continue
		}
		chronological = append(chronological, *c)
	}
	if len(chronological) == 0 {
		return nil, fmt.Errorf("%w: no valid closes for %s", ErrNoData, symbol)
	}

	prices := normalize(chronological)
	return &types.PriceSeries{
		Symbol:       symbol,
		CurrentPrice: prices[0],
		Prices:       prices,
		AsOf:         time.Now().UTC().Format("2006-01-02"),
	}, nil
}
