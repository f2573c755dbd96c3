//go:build integration

package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gamevault/pkg/database"
	testtool "gamevault/pkg/test_tool"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func newPresenceRepo(t *testing.T) (PresenceRepository, func(ids ...string) map[string]bool) {
	t.Helper()
	ctx := context.Background()

	container, host, port, err := testtool.SetupContainer(ctx, testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	client, err := database.NewRedisClient("", fmt.Sprintf("%s:%s", host, port), nil, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	repo := NewRedisPresenceRepository(client)
	online := func(ids ...string) map[string]bool {
		flags, err := repo.OnlineUsers(ctx, ids)
		require.NoError(t, err)
		return flags
	}
	return repo, online
}

func TestPresenceRepository(t *testing.T) {
	ctx := context.Background()
	repo, online := newPresenceRepo(t)

	t.Run("tabs are counted once each", func(t *testing.T) {
		first, err := repo.Connect(ctx, "alice", "tab-1", time.Minute)
		require.NoError(t, err)
		assert.True(t, first)

		first, err = repo.Connect(ctx, "alice", "tab-2", time.Minute)
		require.NoError(t, err)
		assert.False(t, first)

		// a reconnect with the same id does not inflate the count
		require.NoError(t, repo.Refresh(ctx, "alice", "tab-2", time.Minute))

		last, err := repo.Disconnect(ctx, "alice", "tab-1")
		require.NoError(t, err)
		assert.False(t, last)
		assert.True(t, online("alice")["alice"])

		last, err = repo.Disconnect(ctx, "alice", "tab-2")
		require.NoError(t, err)
		assert.True(t, last)
		assert.False(t, online("alice")["alice"])
	})

	t.Run("refresh restores a lapsed flag", func(t *testing.T) {
		first, err := repo.Connect(ctx, "bob", "tab-1", 300*time.Millisecond)
		require.NoError(t, err)
		assert.True(t, first)

		time.Sleep(600 * time.Millisecond)
		assert.False(t, online("bob")["bob"])

		require.NoError(t, repo.Refresh(ctx, "bob", "tab-1", time.Minute))
		assert.True(t, online("bob")["bob"])

		all, err := repo.AllOnline(ctx)
		require.NoError(t, err)
		assert.True(t, all["bob"])

		last, err := repo.Disconnect(ctx, "bob", "tab-1")
		require.NoError(t, err)
		assert.True(t, last)
	})

	t.Run("expired tab does not keep the member online", func(t *testing.T) {
		_, err := repo.Connect(ctx, "carol", "stale", 300*time.Millisecond)
		require.NoError(t, err)
		_, err = repo.Connect(ctx, "carol", "live", time.Minute)
		require.NoError(t, err)

		time.Sleep(600 * time.Millisecond)
		assert.True(t, online("carol")["carol"])

		last, err := repo.Disconnect(ctx, "carol", "live")
		require.NoError(t, err)
		assert.True(t, last, "the stale tab never sent a close")
		assert.False(t, online("carol")["carol"])
	})
}
