package repository

import (
	"context"

	"gamevault/pkg/database"

	"github.com/go-redis/redis/v8"
)

// PresenceReader read side of the chat service presence counters
type PresenceReader interface {
	OnlineUsers(ctx context.Context, memberIDs []string) (map[string]bool, error)
}

type redisPresenceReader struct {
	client redis.UniversalClient
}

// NewRedisPresenceReader create PresenceReader
func NewRedisPresenceReader(client redis.UniversalClient) PresenceReader {
	return &redisPresenceReader{client: client}
}

func (r *redisPresenceReader) OnlineUsers(ctx context.Context, memberIDs []string) (map[string]bool, error) {
	return database.OnlineFlags(ctx, r.client, memberIDs)
}
