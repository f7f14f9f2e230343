package marketdata

import (
	"context"
	"fmt"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/rs/zerolog"

	"emawatch/pkg/types"
)

// AlpacaProvider implements Provider using the Alpaca market data API.
type AlpacaProvider struct {
	client *marketdata.Client
	logger zerolog.Logger
}

// NewAlpacaProvider creates an Alpaca-backed provider.
func NewAlpacaProvider(apiKey, apiSecret string, logger zerolog.Logger) *AlpacaProvider {
	return &AlpacaProvider{
		client: marketdata.NewClient(marketdata.ClientOpts{
			APIKey:    apiKey,
			APISecret: apiSecret,
		}),
		logger: logger,
	}
}

func (p *AlpacaProvider) Name() string { return "alpaca" }

// Fetch retrieves one year of daily bars for symbol from the IEX feed.
func (p *AlpacaProvider) Fetch(ctx context.Context, symbol string) (*types.PriceSeries, error) {
	log := p.logger.With().Str("symbol", symbol).Str("provider", p.Name()).Logger()
	log.Info().Msg("fetching price history")

	end := time.Now()
	bars, err := p.client.GetBars(symbol, marketdata.GetBarsRequest{
		Start:     end.AddDate(-1, 0, 0),
		End:       end,
		TimeFrame: marketdata.OneDay,
		Feed:      marketdata.IEX,
	})
	if err != nil {
		log.Error().Err(err).Msg("fetch failed")
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}
	if len(bars) == 0 {
		log.Error().Msg("no bars returned")
		return nil, fmt.Errorf("%w: empty result for %s", ErrNoData, symbol)
	}

	chronological := make([]float64, 0, len(bars))
	for _, bar := range bars {
		if bar.Close <= 0 {
			continue
		}
		chronological = append(chronological, bar.Close)
	}
	if len(chronological) == 0 {
		log.Error().Msg("no valid closes")
		return nil, fmt.Errorf("%w: no valid closes for %s", ErrNoData, symbol)
	}

	prices := normalize(chronological)
	log.Info().Int("points", len(prices)).Float64("current_price", prices[0]).Msg("price history fetched")
	return &types.PriceSeries{
		Symbol:       symbol,
		CurrentPrice: prices[0],
		Prices:       prices,
		AsOf:         time.Now().UTC().Format("2006-01-02"),
	}, nil
}
