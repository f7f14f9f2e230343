package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/rs/zerolog"

	"emawatch/pkg/config"
	"emawatch/pkg/indicator"
	"emawatch/pkg/marketdata"
	"emawatch/pkg/monitor"
	"emawatch/pkg/notify"
)

const defaultConfigPath = "tickers.json"

// handler runs one monitoring pass. It always returns a structured response:
// orchestrator failures and panics map to a 500-shaped body, a missing
// provider credential to a 400-shaped body.
func handler(ctx context.Context) (resp map[string]interface{}, err error) {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("monitoring run panicked")
			resp = errorResponse(500, fmt.Sprintf("monitoring run failed: %v", r))
			err = nil
		}
	}()

	provider, providerErr := buildProvider(logger)
	if providerErr != nil {
		logger.Error().Err(providerErr).Msg("provider configuration invalid")
		return errorResponse(400, providerErr.Error()), nil
	}

	source, notifier, buildErr := buildAWSCollaborators(ctx, logger)
	if buildErr != nil {
		logger.Error().Err(buildErr).Msg("failed to initialize AWS clients")
		return errorResponse(500, buildErr.Error()), nil
	}

	report := monitor.New(source, provider, notifier, logger).Run(ctx)

	body, marshalErr := json.Marshal(map[string]interface{}{
		"message": "Stock monitoring completed successfully",
		"results": report,
	})
	if marshalErr != nil {
		return errorResponse(500, marshalErr.Error()), nil
	}

	return map[string]interface{}{
		"statusCode": 200,
		"body":       string(body),
	}, nil
}

// buildProvider selects the market data backend from MARKET_DATA_PROVIDER.
// The Alpaca backend requires credentials up front so a misconfigured run
// fails before any ticker is processed.
func buildProvider(logger zerolog.Logger) (marketdata.Provider, error) {
	switch backend := os.Getenv("MARKET_DATA_PROVIDER"); backend {
	case "", "yahoo":
		return marketdata.NewYahooProvider(logger), nil
	case "alpaca":
		apiKey := os.Getenv("ALPACA_API_KEY")
		apiSecret := os.Getenv("ALPACA_SECRET_KEY")
		if apiKey == "" || apiSecret == "" {
			return nil, fmt.Errorf("alpaca provider requires ALPACA_API_KEY and ALPACA_SECRET_KEY")
		}
		return marketdata.NewAlpacaProvider(apiKey, apiSecret, logger), nil
	default:
		return nil, fmt.Errorf("unknown market data provider %q", backend)
	}
}

// buildAWSCollaborators wires the watchlist source and the notifier. The AWS
// SDK config is only loaded when something actually needs it: a DynamoDB
// watchlist table or an SNS topic.
func buildAWSCollaborators(ctx context.Context, logger zerolog.Logger) (config.Source, notify.Notifier, error) {
	table := os.Getenv("WATCHLIST_TABLE")
	topicARN := os.Getenv("SNS_TOPIC_ARN")

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}
	var source config.Source = config.NewFileSource(configPath, logger)

	var notifier notify.Notifier
	if table != "" || topicARN != "" {
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("load AWS config: %w", err)
		}
		if table != "" {
			source = config.NewDynamoSource(dynamodb.NewFromConfig(cfg), table, indicator.DefaultThresholdPercent, logger)
		}
		if topicARN != "" {
			notifier = notify.NewSNSNotifier(sns.NewFromConfig(cfg), topicARN, logger)
		}
	}
	return source, notifier, nil
}

func errorResponse(statusCode int, message string) map[string]interface{} {
	body, _ := json.Marshal(map[string]string{"error": message})
	return map[string]interface{}{
		"statusCode": statusCode,
		"body":       string(body),
	}
}

func main() {
	lambda.Start(handler)
}
