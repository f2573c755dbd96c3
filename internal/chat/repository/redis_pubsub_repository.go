package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gamevault/internal/chat/domain"
	"gamevault/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// PresenceChannel every chat service instance listens here for presence changes
const PresenceChannel = "chat:presence"

// UserChannel personal channel of a member
func UserChannel(memberID string) string {
	return "chat:user:" + memberID
}

// PubSub fan-out of websocket responses between chat service instances
type PubSub interface {
	Publish(ctx context.Context, channel string, message domain.WSResponse) error
	Subscribe(ctx context.Context, channel string, handler func(resp domain.WSResponse)) error
}

// RedisPubSub definition redis pub/sub
type RedisPubSub struct {
	client redis.UniversalClient
}

// NewRedisPubSub create RedisPubSub
func NewRedisPubSub(client redis.UniversalClient) *RedisPubSub {
	return &RedisPubSub{client: client}
}

// Publish serializes message and publishes it on channel
func (r *RedisPubSub) Publish(ctx context.Context, channel string, message domain.WSResponse) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}
	return r.client.Publish(ctx, channel, data).Err()
}

// Subscribe returns once redis confirmed the subscription, handler runs until ctx is done
func (r *RedisPubSub) Subscribe(ctx context.Context, channel string, handler func(resp domain.WSResponse)) error {
	sub := r.client.Subscribe(ctx, channel)
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return fmt.Errorf("subscribe %s: %w", channel, err)
	}

	go func() {
		defer sub.Close()
		ch := sub.Channel()

		for {
			select {
			case m, ok := <-ch:
				if !ok {
					return
				}

				var resp domain.WSResponse
				if err := json.Unmarshal([]byte(m.Payload), &resp); err != nil {
					logger.Log.Error("pubsub unmarshal failed", zap.String("channel", channel), zap.Error(err))
					continue
				}
				handler(resp)
			case <-ctx.Done():
				logger.Log.Debug("sub close", zap.String("channel", channel))
				return
			}
		}
	}()
	return nil
}
