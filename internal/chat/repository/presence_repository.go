package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"gamevault/pkg/database"

	"github.com/go-redis/redis/v8"
)

const (
	connsPrefix  = "conns:"
	typingPrefix = "typing:"
	typingKeyTTL = time.Minute
)

// touchScript adds or renews one connection and rewrites the status counter from the live set.
// A refresh after the counter lapsed therefore brings the member back online.
// KEYS conns, status. ARGV now ms, expiry ms, connection id. Returns the live count before the call.
var touchScript = redis.NewScript(`
redis.call('ZREMRANGEBYSCORE', KEYS[1], '-inf', ARGV[1])
local before = redis.call('ZCARD', KEYS[1])
redis.call('ZADD', KEYS[1], ARGV[2], ARGV[3])
local latest = redis.call('ZRANGE', KEYS[1], -1, -1, 'WITHSCORES')
local expireAt = string.format('%.0f', tonumber(latest[2]))
redis.call('SET', KEYS[2], redis.call('ZCARD', KEYS[1]))
redis.call('PEXPIREAT', KEYS[2], expireAt)
redis.call('PEXPIREAT', KEYS[1], expireAt)
return before
`)

// releaseScript drops one connection. KEYS conns, status. ARGV now ms, connection id. Returns the live count after the call.
var releaseScript = redis.NewScript(`
redis.call('ZREM', KEYS[1], ARGV[2])
redis.call('ZREMRANGEBYSCORE', KEYS[1], '-inf', ARGV[1])
local n = redis.call('ZCARD', KEYS[1])
if n == 0 then
	redis.call('DEL', KEYS[1], KEYS[2])
	return 0
end
local latest = redis.call('ZRANGE', KEYS[1], -1, -1, 'WITHSCORES')
redis.call('SET', KEYS[2], n)
redis.call('PEXPIREAT', KEYS[2], string.format('%.0f', tonumber(latest[2])))
return n
`)

// PresenceRepository online flags and typing entries
type PresenceRepository interface {
	// Connect registers connID of memberID, first is true when the member just came online
	Connect(ctx context.Context, memberID, connID string, ttl time.Duration) (bool, error)
	// Disconnect drops connID, last is true when the member went offline
	Disconnect(ctx context.Context, memberID, connID string) (bool, error)
	// Refresh renews connID, re-registering it if it already expired
	Refresh(ctx context.Context, memberID, connID string, ttl time.Duration) error
	OnlineUsers(ctx context.Context, memberIDs []string) (map[string]bool, error)
	AllOnline(ctx context.Context) (map[string]bool, error)

	SetTyping(ctx context.Context, chatID, memberID string, at time.Time) error
	ClearTyping(ctx context.Context, chatID, memberID string) error
	TypingEntries(ctx context.Context, chatID string) (map[string]time.Time, error)
}

type presenceRepository struct {
	client redis.UniversalClient
	now    func() time.Time
}

// NewRedisPresenceRepository conns:<uid> is a sorted set of connection id -> expiry unix millis,
// status:<uid> mirrors its size and expires with its newest entry, typing:<chat> is a hash of uid -> unix millis
func NewRedisPresenceRepository(client redis.UniversalClient) PresenceRepository {
	return &presenceRepository{client: client, now: time.Now}
}

func presenceKeys(memberID string) []string {
	return []string{connsPrefix + memberID, database.PresenceStatusKey(memberID)}
}

func (r *presenceRepository) touch(ctx context.Context, memberID, connID string, ttl time.Duration) (int64, error) {
	at := r.now()
	return touchScript.Run(ctx, r.client, presenceKeys(memberID), at.UnixMilli(), at.Add(ttl).UnixMilli(), connID).Int64()
}

func (r *presenceRepository) Connect(ctx context.Context, memberID, connID string, ttl time.Duration) (bool, error) {
	before, err := r.touch(ctx, memberID, connID, ttl)
	if err != nil {
		return false, err
	}
	return before == 0, nil
}

func (r *presenceRepository) Disconnect(ctx context.Context, memberID, connID string) (bool, error) {
	n, err := releaseScript.Run(ctx, r.client, presenceKeys(memberID), r.now().UnixMilli(), connID).Int64()
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

func (r *presenceRepository) Refresh(ctx context.Context, memberID, connID string, ttl time.Duration) error {
	_, err := r.touch(ctx, memberID, connID, ttl)
	return err
}

func (r *presenceRepository) OnlineUsers(ctx context.Context, memberIDs []string) (map[string]bool, error) {
	return database.OnlineFlags(ctx, r.client, memberIDs)
}

func (r *presenceRepository) AllOnline(ctx context.Context) (map[string]bool, error) {
	online := map[string]bool{}
	iter := r.client.Scan(ctx, 0, database.PresenceStatusPrefix+"*", 200).Iterator()
	for iter.Next(ctx) {
		online[strings.TrimPrefix(iter.Val(), database.PresenceStatusPrefix)] = true
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return online, nil
}

func (r *presenceRepository) SetTyping(ctx context.Context, chatID, memberID string, at time.Time) error {
	key := typingPrefix + chatID
	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key, memberID, at.UnixMilli())
	pipe.Expire(ctx, key, typingKeyTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *presenceRepository) ClearTyping(ctx context.Context, chatID, memberID string) error {
	return r.client.HDel(ctx, typingPrefix+chatID, memberID).Err()
}

func (r *presenceRepository) TypingEntries(ctx context.Context, chatID string) (map[string]time.Time, error) {
	raw, err := r.client.HGetAll(ctx, typingPrefix+chatID).Result()
	if err != nil {
		return nil, err
	}

	entries := make(map[string]time.Time, len(raw))
	for id, v := range raw {
		ms, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		entries[id] = time.UnixMilli(ms)
	}
	return entries, nil
}
