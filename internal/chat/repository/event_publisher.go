package repository

import (
	"context"
	"encoding/json"
	"time"

	"gamevault/internal/chat/domain"

	"github.com/segmentio/kafka-go"
)

// EventPublisher chat activity stream
type EventPublisher interface {
	Publish(ctx context.Context, ev domain.ChatEvent) error
}

// KafkaWriter the part of *kafka.Writer the publisher needs
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// DefaultPublishTimeout upper bound one event may hold up the action that produced it
const DefaultPublishTimeout = 2 * time.Second

type kafkaEventPublisher struct {
	writer  KafkaWriter
	timeout time.Duration
}

// NewKafkaEventPublisher events are keyed by chat id so one chat stays ordered within a partition.
// Each write gives up after timeout, DefaultPublishTimeout when timeout is not positive.
func NewKafkaEventPublisher(w KafkaWriter, timeout time.Duration) EventPublisher {
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}
	return &kafkaEventPublisher{writer: w, timeout: timeout}
}

func (p *kafkaEventPublisher) Publish(ctx context.Context, ev domain.ChatEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.ChatID),
		Value: data,
	})
}
