// Package monitor runs the per-invocation EMA proximity check over the
// configured watchlist.
package monitor

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"emawatch/pkg/config"
	"emawatch/pkg/indicator"
	"emawatch/pkg/marketdata"
	"emawatch/pkg/notify"
	"emawatch/pkg/types"
)

// Monitor orchestrates one monitoring run: load watchlist, fetch and classify
// each ticker sequentially, then send at most one batched notification.
type Monitor struct {
	source   config.Source
	provider marketdata.Provider
	notifier notify.Notifier
	period   int
	logger   zerolog.Logger
}

// New creates a Monitor. notifier may be nil when no notification target is
// configured; the notification step is then skipped entirely.
func New(source config.Source, provider marketdata.Provider, notifier notify.Notifier, logger zerolog.Logger) *Monitor {
	return &Monitor{
		source:   source,
		provider: provider,
		notifier: notifier,
		period:   indicator.DefaultPeriod,
		logger:   logger,
	}
}

// Run executes one monitoring pass. Per-ticker failures are accumulated as
// report errors and never abort the run.
func (m *Monitor) Run(ctx context.Context) types.MonitoringReport {
	cfg := m.source.Load(ctx)
	m.logger.Info().
		Str("source", m.source.Name()).
		Str("provider", m.provider.Name()).
		Int("tickers", len(cfg.Tickers)).
		Float64("threshold_pct", cfg.ThresholdPercent).
		Msg("starting monitoring run")

	report := types.MonitoringReport{
		Errors:     []string{},
		Alerts:     []types.ProximityVerdict{},
		AllResults: []types.ProximityVerdict{},
	}

	for _, ticker := range cfg.Tickers {
		log := m.logger.With().Str("symbol", ticker).Logger()
		log.Info().Msg("processing ticker")

		series, err := m.provider.Fetch(ctx, ticker)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to fetch data for %s", ticker))
			continue
		}

		ema, ok := indicator.EMA(series.Chronological(), m.period)
		if !ok {
			log.Error().Int("points", len(series.Prices)).Int("period", m.period).Msg("insufficient history")
			report.Errors = append(report.Errors, fmt.Sprintf("Insufficient data to calculate 200 EMA for %s", ticker))
			continue
		}

		verdict := indicator.Classify(ticker, series.CurrentPrice, ema, cfg.ThresholdPercent)
		report.AllResults = append(report.AllResults, verdict)
		report.StocksProcessed++

		if verdict.IsNear {
			log.Info().
				Float64("current_price", verdict.CurrentPrice).
				Float64("ema", verdict.EMA).
				Float64("percentage_diff", verdict.PercentageDiff).
				Str("direction", verdict.Direction).
				Msg("ticker near 200 EMA")
			report.Alerts = append(report.Alerts, verdict)
		}
	}

	if len(report.Alerts) > 0 && m.notifier != nil {
		// One batched notification per run; a failed publish never fails the run.
		if err := m.notifier.Notify(ctx, report.Alerts); err != nil {
			m.logger.Error().Err(err).Msg("notification failed")
		}
	}
	report.AlertsSent = len(report.Alerts)

	m.logger.Info().
		Int("stocks_processed", report.StocksProcessed).
		Int("alerts_sent", report.AlertsSent).
		Int("errors", len(report.Errors)).
		Msg("monitoring run complete")
	return report
}
