package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/rs/zerolog"

	"emawatch/pkg/types"
)

const alertSubject = "Stock 200 EMA Alert"

// SNSNotifier publishes the batched alert message to an SNS topic.
type SNSNotifier struct {
	client   *sns.Client
	topicARN string
	logger   zerolog.Logger
}

// NewSNSNotifier creates a notifier publishing to topicARN.
func NewSNSNotifier(client *sns.Client, topicARN string, logger zerolog.Logger) *SNSNotifier {
	return &SNSNotifier{client: client, topicARN: topicARN, logger: logger}
}

// Notify publishes a single message covering all alerts. A degraded
// notification path must not fail the run, so publish failures are logged and
// reported back but the caller is expected to continue.
func (n *SNSNotifier) Notify(ctx context.Context, alerts []types.ProximityVerdict) error {
	if len(alerts) == 0 {
		return nil
	}

	message := FormatAlertMessage(alerts, time.Now())
	_, err := n.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Subject:  aws.String(alertSubject),
		Message:  aws.String(message),
	})
	if err != nil {
		n.logger.Error().Err(err).Str("topic_arn", n.topicARN).Msg("failed to publish notification")
		return fmt.Errorf("publish notification: %w", err)
	}

	n.logger.Info().Int("alerts", len(alerts)).Str("topic_arn", n.topicARN).Msg("notification sent")
	return nil
}
