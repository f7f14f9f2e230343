package config

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog"

	"emawatch/pkg/types"
)

// DynamoSource reads the watchlist from a DynamoDB table where each item is a
// WatchlistEntry keyed by symbol.
type DynamoSource struct {
	client           *dynamodb.Client
	table            string
	thresholdPercent float64
	logger           zerolog.Logger
}

// NewDynamoSource creates a DynamoDB-backed watchlist source. The threshold is
// run-wide, not per symbol, so it is supplied here rather than read from rows.
func NewDynamoSource(client *dynamodb.Client, table string, thresholdPercent float64, logger zerolog.Logger) *DynamoSource {
	if thresholdPercent <= 0 {
		thresholdPercent = Default().ThresholdPercent
	}
	return &DynamoSource{
		client:           client,
		table:            table,
		thresholdPercent: thresholdPercent,
		logger:           logger,
	}
}

func (s *DynamoSource) Name() string { return "dynamodb" }

// Load scans the watchlist table, skipping disabled entries. Any scan or
// unmarshal failure falls back to Default.
func (s *DynamoSource) Load(ctx context.Context) types.TickerConfig {
	result, err := s.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.table),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("table", s.table).Msg("failed to scan watchlist, using defaults")
		return Default()
	}

	var entries []types.WatchlistEntry
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &entries); err != nil {
		s.logger.Error().Err(err).Str("table", s.table).Msg("failed to unmarshal watchlist, using defaults")
		return Default()
	}

	cfg := types.TickerConfig{
		Tickers:          []string{},
		ThresholdPercent: s.thresholdPercent,
	}
	for _, entry := range entries {
		if entry.Disabled || entry.Symbol == "" {
			continue
		}
		cfg.Tickers = append(cfg.Tickers, entry.Symbol)
	}
	return cfg
}
