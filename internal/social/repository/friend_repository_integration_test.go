//go:build integration

package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"gamevault/internal/social/domain"
	"gamevault/pkg/database"
	"gamevault/pkg/logger"
	testtool "gamevault/pkg/test_tool"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func newFriendRepo(t *testing.T) FriendRepository {
	t.Helper()
	logger.SetNewNop()
	ctx := context.Background()

	container, host, port, err := testtool.SetupContainer(ctx, testcontainers.ContainerRequest{
		Image: "postgres:16-alpine",
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "testdb",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	db, err := database.NewPGConnection(database.Connection{
		ConnectStr:    fmt.Sprintf("postgres://test:test@%s:%s/testdb?sslmode=disable", host, port),
		RetryCount:    5,
		RetryInterval: 2,
	})
	require.NoError(t, err)

	repo := NewFriendRepository(db)
	require.NoError(t, repo.AutoMigrate())
	return repo
}

func pendingRequest(from, to string) *domain.FriendRequest {
	return &domain.FriendRequest{
		ID:     uuid.NewString(),
		FromID: from,
		ToID:   to,
		Status: domain.RequestPending,
		SentAt: time.Now().UTC(),
	}
}

func TestSendRequestConcurrently(t *testing.T) {
	ctx := context.Background()
	repo := newFriendRepo(t)

	t.Run("duplicate sends store one request", func(t *testing.T) {
		const senders = 8
		var wg sync.WaitGroup
		errs := make([]error, senders)
		for i := 0; i < senders; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, _, errs[i] = repo.SendRequest(ctx, pendingRequest("alice", "bob"))
			}(i)
		}
		wg.Wait()

		stored := 0
		for _, err := range errs {
			if err == nil {
				stored++
				continue
			}
			assert.ErrorIs(t, err, domain.ErrRequestExists)
		}
		assert.Equal(t, 1, stored)

		incoming, err := repo.IncomingRequests(ctx, "bob")
		require.NoError(t, err)
		assert.Len(t, incoming, 1)
	})

	t.Run("crossed requests become one friendship", func(t *testing.T) {
		var wg sync.WaitGroup
		accepted := make([]bool, 2)
		errs := make([]error, 2)
		for i, pair := range [][2]string{{"carol", "dave"}, {"dave", "carol"}} {
			wg.Add(1)
			go func(i int, from, to string) {
				defer wg.Done()
				_, accepted[i], errs[i] = repo.SendRequest(ctx, pendingRequest(from, to))
			}(i, pair[0], pair[1])
		}
		wg.Wait()

		require.NoError(t, errs[0])
		require.NoError(t, errs[1])
		assert.True(t, accepted[0] != accepted[1], "exactly one send accepts the other")

		friends, err := repo.AreFriends(ctx, "carol", "dave")
		require.NoError(t, err)
		assert.True(t, friends)

		for _, id := range []string{"carol", "dave"} {
			incoming, err := repo.IncomingRequests(ctx, id)
			require.NoError(t, err)
			assert.Empty(t, incoming)
		}
	})

	t.Run("new request after an answered one", func(t *testing.T) {
		first, _, err := repo.SendRequest(ctx, pendingRequest("erin", "frank"))
		require.NoError(t, err)
		require.NoError(t, repo.DeclineRequest(ctx, first, time.Now().UTC()))

		again, accepted, err := repo.SendRequest(ctx, pendingRequest("erin", "frank"))
		require.NoError(t, err)
		assert.False(t, accepted)
		assert.NotEqual(t, first.ID, again.ID)
	})
}
