package kafka

import (
	"context"
	"fmt"
	"slices"
	"time"

	"envios/pkg/logger"
	retrierconfig "envios/pkg/retrier"
	"envios/pkg/retrier/backoff_adapter"
	"github.com/IBM/sarama"
)

const (
	initialInterval = 1 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

// waitForBrokers blocks until the cluster answers a metadata request.
// Missing topics are only reported: the broker may create them on first use.
func waitForBrokers(ctx context.Context, log logger.Logger, brokers []string, cfg *sarama.Config, topics []string) error {
	retrier := backoff_adapter.New(retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		OnRetry: func(err error, next time.Duration) {
			log.Warn("kafka not ready, retrying",
				logger.NewField("error", err),
				logger.NewField("next", next),
			)
		},
	})

	var known []string
	err := retrier.ExecuteWithContext(ctx, func(context.Context) error {
		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.Error("failed to close Kafka connection", logger.NewField("error", err))
			}
		}()

		known, err = client.Topics()
		return err
	})
	if err != nil {
		log.Error("Kafka connection failed after retries", logger.NewField("error", err))
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}

	if missing := missingTopics(known, topics); len(missing) > 0 {
		log.Warn("topics not found, relying on auto creation", logger.NewField("missing", missing))
	}

	log.Info("Kafka connection established")
	return nil
}

func missingTopics(known, wanted []string) []string {
	var missing []string
	for _, topic := range wanted {
		if !slices.Contains(known, topic) {
			missing = append(missing, topic)
		}
	}
	return missing
}
