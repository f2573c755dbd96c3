package database

import (
	"context"
	"strconv"

	"github.com/go-redis/redis/v8"
)

// PresenceStatusPrefix status:<uid> holds the number of live connections of a member
const PresenceStatusPrefix = "status:"

// PresenceStatusKey key of the online counter of memberID
func PresenceStatusKey(memberID string) string {
	return PresenceStatusPrefix + memberID
}

// OnlineFlag a member is online only while its counter is a positive integer
func OnlineFlag(v interface{}) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	return err == nil && n > 0
}

// OnlineFlags one MGET over the status counters of memberIDs, missing keys read as offline
func OnlineFlags(ctx context.Context, client redis.UniversalClient, memberIDs []string) (map[string]bool, error) {
	online := make(map[string]bool, len(memberIDs))
	if len(memberIDs) == 0 {
		return online, nil
	}

	keys := make([]string, len(memberIDs))
	for i, id := range memberIDs {
		keys[i] = PresenceStatusKey(id)
	}
	vals, err := client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		online[memberIDs[i]] = OnlineFlag(v)
	}
	return online, nil
}
