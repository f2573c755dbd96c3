package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"gamevault/internal/chat/domain"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stalledWriter behaves like a writer whose brokers never answer
type stalledWriter struct {
	deadline bool
}

func (w *stalledWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	_, w.deadline = ctx.Deadline()
	<-ctx.Done()
	return ctx.Err()
}

type capturingWriter struct {
	msgs []kafka.Message
}

func (w *capturingWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func TestKafkaEventPublisher(t *testing.T) {
	t.Run("stalled broker gives up after the timeout", func(t *testing.T) {
		w := &stalledWriter{}
		p := NewKafkaEventPublisher(w, 50*time.Millisecond)

		start := time.Now()
		err := p.Publish(context.Background(), domain.ChatEvent{Type: domain.EventMessageSent, ChatID: "c1"})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.True(t, w.deadline)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("keyed by chat", func(t *testing.T) {
		w := &capturingWriter{}
		p := NewKafkaEventPublisher(w, 0)

		require.NoError(t, p.Publish(context.Background(), domain.ChatEvent{Type: domain.EventChatCreated, ChatID: "c7", MemberID: "alice"}))
		require.Len(t, w.msgs, 1)
		assert.Equal(t, "c7", string(w.msgs[0].Key))

		var ev domain.ChatEvent
		require.NoError(t, json.Unmarshal(w.msgs[0].Value, &ev))
		assert.Equal(t, "alice", ev.MemberID)
	})
}
