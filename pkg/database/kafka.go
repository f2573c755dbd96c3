package database

import (
	"context"
	"fmt"
	"time"

	"gamevault/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// NewKafkaWriterWithRetry builds a writer and confirms the brokers answer by writing a ping record
func NewKafkaWriterWithRetry(k KafkaConnection) (*kafka.Writer, error) {
	var err error

	for attempt := 1; attempt <= k.RetryCount; attempt++ {
		writer := &kafka.Writer{
			Addr:                   kafka.TCP(k.Brokers...),
			Topic:                  k.Topic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           50 * time.Millisecond,
			MaxAttempts:            3,
			WriteTimeout:           5 * time.Second,
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte("ping"),
			Value: []byte(`{"type":"ping"}`),
		})
		cancel()
		if err == nil {
			logger.Log.Info("kafka writer ready", zap.Strings("brokers", k.Brokers), zap.Int("attempt", attempt))
			return writer, nil
		}

		logger.Log.Warn("kafka writer not ready, retrying...", zap.Int("attempt", attempt), zap.Error(err))
		writer.Close()
		time.Sleep(k.RetryInterval * time.Second)
	}

	return nil, fmt.Errorf("kafka writer failed after %d attempts: %w", k.RetryCount, err)
}
