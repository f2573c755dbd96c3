package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"gamevault/internal/social/domain"
	"gamevault/pkg/logger"
	memberpb "gamevault/pkg/proto/member"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFriendRepo struct {
	mock.Mock
}

func (m *MockFriendRepo) AutoMigrate() error {
	return m.Called().Error(0)
}

func (m *MockFriendRepo) FriendIDs(ctx context.Context, memberID string) ([]string, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFriendRepo) AreFriends(ctx context.Context, a, b string) (bool, error) {
	args := m.Called(ctx, a, b)
	return args.Bool(0), args.Error(1)
}

func (m *MockFriendRepo) RemoveFriendship(ctx context.Context, a, b string) error {
	return m.Called(ctx, a, b).Error(0)
}

func (m *MockFriendRepo) SendRequest(ctx context.Context, req *domain.FriendRequest) (*domain.FriendRequest, bool, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.FriendRequest), args.Bool(1), args.Error(2)
}

func (m *MockFriendRepo) GetRequest(ctx context.Context, id string) (*domain.FriendRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FriendRequest), args.Error(1)
}

func (m *MockFriendRepo) IncomingRequests(ctx context.Context, memberID string) ([]domain.FriendRequest, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FriendRequest), args.Error(1)
}

func (m *MockFriendRepo) AcceptRequest(ctx context.Context, req *domain.FriendRequest, at time.Time) error {
	return m.Called(ctx, req, at).Error(0)
}

func (m *MockFriendRepo) DeclineRequest(ctx context.Context, req *domain.FriendRequest, at time.Time) error {
	return m.Called(ctx, req, at).Error(0)
}

type MockPresence struct {
	mock.Mock
}

func (m *MockPresence) OnlineUsers(ctx context.Context, memberIDs []string) (map[string]bool, error) {
	args := m.Called(ctx, memberIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

// staticDirectory profiles by id
type staticDirectory map[string]*memberpb.MemberProfile

func (d staticDirectory) Profiles(ctx context.Context, memberIDs []string) (map[string]*memberpb.MemberProfile, error) {
	out := map[string]*memberpb.MemberProfile{}
	for _, id := range memberIDs {
		if p, ok := d[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

var fixedNow = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

type socialFixture struct {
	repo     *MockFriendRepo
	presence *MockPresence
	uc       SocialUseCase
}

func newSocialFixture(t *testing.T) *socialFixture {
	t.Helper()
	logger.SetNewNop()
	orig := now
	now = func() time.Time { return fixedNow }
	t.Cleanup(func() { now = orig })

	dir := staticDirectory{
		"alice": {MemberId: "alice", Username: "alice", Status: "Online"},
		"bob":   {MemberId: "bob", Username: "bob", Status: "Busy"},
		"carol": {MemberId: "carol", Username: "carol", Status: "Offline"},
		"dave":  {MemberId: "dave", Username: "dave", Status: "Away"},
	}
	f := &socialFixture{repo: new(MockFriendRepo), presence: new(MockPresence)}
	f.uc = NewSocialUseCase(f.repo, f.presence, dir)
	t.Cleanup(func() {
		f.repo.AssertExpectations(t)
		f.presence.AssertExpectations(t)
	})
	return f
}

func TestListFriends(t *testing.T) {
	ctx := context.Background()
	friendIDs := []string{"bob", "carol", "dave", "ghost"}

	t.Run("presence and invisible members", func(t *testing.T) {
		f := newSocialFixture(t)
		f.repo.On("FriendIDs", ctx, "alice").Return(friendIDs, nil)
		// carol is connected but invisible
		f.presence.On("OnlineUsers", ctx, friendIDs).Return(map[string]bool{"bob": true, "carol": true}, nil)

		friends, err := f.uc.ListFriends(ctx, "alice", "all", "")
		require.NoError(t, err)
		require.Len(t, friends, 3)

		assert.Equal(t, domain.Friend{MemberID: "bob", Username: "bob", Status: "Busy", Online: true}, friends[0])
		assert.Equal(t, "carol", friends[1].Username)
		assert.False(t, friends[1].Online)
		assert.Equal(t, domain.StatusOffline, friends[1].Status)
		assert.Equal(t, "dave", friends[2].Username)
		assert.Equal(t, domain.StatusOffline, friends[2].Status)
	})

	t.Run("online tab", func(t *testing.T) {
		f := newSocialFixture(t)
		f.repo.On("FriendIDs", ctx, "alice").Return(friendIDs, nil)
		f.presence.On("OnlineUsers", ctx, friendIDs).Return(map[string]bool{"bob": true, "carol": true}, nil)

		friends, err := f.uc.ListFriends(ctx, "alice", "online", "")
		require.NoError(t, err)
		require.Len(t, friends, 1)
		assert.Equal(t, "bob", friends[0].MemberID)
	})

	t.Run("presence failure shows everyone offline", func(t *testing.T) {
		f := newSocialFixture(t)
		f.repo.On("FriendIDs", ctx, "alice").Return([]string{"bob"}, nil)
		f.presence.On("OnlineUsers", ctx, []string{"bob"}).Return(nil, errors.New("redis down"))

		friends, err := f.uc.ListFriends(ctx, "alice", "", "B")
		require.NoError(t, err)
		require.Len(t, friends, 1)
		assert.False(t, friends[0].Online)
	})

	t.Run("no friends", func(t *testing.T) {
		f := newSocialFixture(t)
		f.repo.On("FriendIDs", ctx, "alice").Return([]string{}, nil)

		friends, err := f.uc.ListFriends(ctx, "alice", "all", "")
		require.NoError(t, err)
		assert.Empty(t, friends)
		assert.NotNil(t, friends)
	})
}

func TestSendRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("to yourself", func(t *testing.T) {
		f := newSocialFixture(t)
		_, _, err := f.uc.SendRequest(ctx, "alice", "alice")
		assert.ErrorIs(t, err, domain.ErrSelfRequest)
	})

	t.Run("unknown member", func(t *testing.T) {
		f := newSocialFixture(t)
		_, _, err := f.uc.SendRequest(ctx, "alice", "ghost")
		assert.ErrorIs(t, err, domain.ErrMemberNotFound)
	})

	t.Run("already friends", func(t *testing.T) {
		f := newSocialFixture(t)
		f.repo.On("AreFriends", ctx, "alice", "bob").Return(true, nil)

		_, _, err := f.uc.SendRequest(ctx, "alice", "bob")
		assert.ErrorIs(t, err, domain.ErrAlreadyFriends)
	})

	t.Run("duplicate", func(t *testing.T) {
		f := newSocialFixture(t)
		f.repo.On("AreFriends", ctx, "alice", "bob").Return(false, nil)
		f.repo.On("SendRequest", ctx, mock.Anything).Return(nil, false, domain.ErrRequestExists)

		_, _, err := f.uc.SendRequest(ctx, "alice", "bob")
		assert.ErrorIs(t, err, domain.ErrRequestExists)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		f := newSocialFixture(t)
		f.repo.On("AreFriends", ctx, "alice", "bob").Return(false, nil)
		f.repo.On("SendRequest", ctx, mock.Anything).Return(nil, false, errors.New("connection reset"))

		_, _, err := f.uc.SendRequest(ctx, "alice", "bob")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
		assert.NotErrorIs(t, err, domain.ErrRequestExists)
	})

	t.Run("crossed request is accepted", func(t *testing.T) {
		f := newSocialFixture(t)
		reverse := &domain.FriendRequest{ID: "r2", FromID: "bob", ToID: "alice", Status: domain.RequestPending}
		f.repo.On("AreFriends", ctx, "alice", "bob").Return(false, nil)
		f.repo.On("SendRequest", ctx, mock.Anything).Return(reverse, true, nil)

		req, accepted, err := f.uc.SendRequest(ctx, "alice", "bob")
		require.NoError(t, err)
		assert.True(t, accepted)
		assert.Equal(t, "r2", req.ID)
	})

	t.Run("new request", func(t *testing.T) {
		f := newSocialFixture(t)
		f.repo.On("AreFriends", ctx, "alice", "bob").Return(false, nil)
		f.repo.On("SendRequest", ctx, mock.MatchedBy(func(r *domain.FriendRequest) bool {
			return r.FromID == "alice" && r.ToID == "bob" && r.Status == domain.RequestPending && r.SentAt.Equal(fixedNow) && r.ID != ""
		})).Return(&domain.FriendRequest{ID: "r9", FromID: "alice", ToID: "bob", Status: domain.RequestPending}, false, nil)

		req, accepted, err := f.uc.SendRequest(ctx, "alice", " bob ")
		require.NoError(t, err)
		assert.False(t, accepted)
		assert.Equal(t, "bob", req.ToID)
	})
}

func TestAnswerRequest(t *testing.T) {
	ctx := context.Background()
	pending := func() *domain.FriendRequest {
		return &domain.FriendRequest{ID: "r1", FromID: "bob", ToID: "alice", Status: domain.RequestPending}
	}

	t.Run("accept", func(t *testing.T) {
		f := newSocialFixture(t)
		req := pending()
		f.repo.On("GetRequest", ctx, "r1").Return(req, nil)
		f.repo.On("AcceptRequest", ctx, req, fixedNow).Return(nil)

		require.NoError(t, f.uc.AcceptRequest(ctx, "alice", "r1"))
	})

	t.Run("decline", func(t *testing.T) {
		f := newSocialFixture(t)
		req := pending()
		f.repo.On("GetRequest", ctx, "r1").Return(req, nil)
		f.repo.On("DeclineRequest", ctx, req, fixedNow).Return(nil)

		require.NoError(t, f.uc.DeclineRequest(ctx, "alice", "r1"))
	})

	t.Run("sender cannot accept", func(t *testing.T) {
		f := newSocialFixture(t)
		f.repo.On("GetRequest", ctx, "r1").Return(pending(), nil)

		assert.ErrorIs(t, f.uc.AcceptRequest(ctx, "bob", "r1"), domain.ErrNotAddressee)
	})

	t.Run("handled twice", func(t *testing.T) {
		f := newSocialFixture(t)
		req := pending()
		req.Status = domain.RequestDeclined
		f.repo.On("GetRequest", ctx, "r1").Return(req, nil)

		assert.ErrorIs(t, f.uc.AcceptRequest(ctx, "alice", "r1"), domain.ErrRequestHandled)
	})

	t.Run("missing", func(t *testing.T) {
		f := newSocialFixture(t)
		f.repo.On("GetRequest", ctx, "nope").Return(nil, domain.ErrRequestNotFound)

		assert.ErrorIs(t, f.uc.DeclineRequest(ctx, "alice", "nope"), domain.ErrRequestNotFound)
	})
}

func TestListRequests(t *testing.T) {
	ctx := context.Background()
	f := newSocialFixture(t)
	f.repo.On("IncomingRequests", ctx, "alice").Return([]domain.FriendRequest{
		{ID: "r1", FromID: "bob", ToID: "alice", Status: domain.RequestPending},
		{ID: "r2", FromID: "ghost", ToID: "alice", Status: domain.RequestPending},
	}, nil)

	reqs, err := f.uc.ListRequests(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	assert.Equal(t, "bob", reqs[0].FromUsername)
	assert.Empty(t, reqs[1].FromUsername)
}

func TestRemoveFriend(t *testing.T) {
	ctx := context.Background()
	f := newSocialFixture(t)
	f.repo.On("RemoveFriendship", ctx, "alice", "bob").Return(nil)
	f.repo.On("RemoveFriendship", ctx, "alice", "carol").Return(domain.ErrNotFriends)

	require.NoError(t, f.uc.RemoveFriend(ctx, "alice", "bob"))
	assert.ErrorIs(t, f.uc.RemoveFriend(ctx, "alice", "carol"), domain.ErrNotFriends)
	assert.ErrorIs(t, f.uc.RemoveFriend(ctx, "alice", "alice"), domain.ErrNotFriends)
}
