package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"gamevault/internal/member/domain"
	"gamevault/pkg/logger"
	memberpb "gamevault/pkg/proto/member"
	testtool "gamevault/pkg/test_tool"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMemberUseCase struct {
	mock.Mock
}

func (m *MockMemberUseCase) Signup(ctx context.Context, email, password, username string) (string, string, error) {
	args := m.Called(ctx, email, password, username)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockMemberUseCase) FindMember(ctx context.Context, param *domain.MemberQuery) (*domain.Member, error) {
	args := m.Called(ctx, param)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Member), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMemberUseCase) Login(ctx context.Context, email, password string) (string, string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockMemberUseCase) Logout(ctx context.Context, t string) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockMemberUseCase) ForceLogout(ctx context.Context, memberID string) error {
	return m.Called(ctx, memberID).Error(0)
}

func (m *MockMemberUseCase) CheckSessionTimeout(ctx context.Context, t string) (bool, error) {
	args := m.Called(ctx, t)
	return args.Bool(0), args.Error(1)
}

func (m *MockMemberUseCase) ReconnectSession(ctx context.Context, t string) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockMemberUseCase) GetProfile(ctx context.Context, memberID, viewerID string) (domain.Profile, error) {
	args := m.Called(ctx, memberID, viewerID)
	return args.Get(0).(domain.Profile), args.Error(1)
}

func (m *MockMemberUseCase) UpdateProfile(ctx context.Context, memberID string, update domain.ProfileUpdate) (domain.Profile, error) {
	args := m.Called(ctx, memberID, update)
	return args.Get(0).(domain.Profile), args.Error(1)
}

func (m *MockMemberUseCase) UpdateProfileImage(ctx context.Context, memberID, url string) error {
	return m.Called(ctx, memberID, url).Error(0)
}

func (m *MockMemberUseCase) UpdateStatus(ctx context.Context, memberID, status string) error {
	return m.Called(ctx, memberID, status).Error(0)
}

func (m *MockMemberUseCase) FindMembers(ctx context.Context, memberIDs []string, viewerID string) ([]domain.Profile, error) {
	args := m.Called(ctx, memberIDs, viewerID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMemberUseCase) SearchMembers(ctx context.Context, query string, limit int, viewerID string) ([]domain.Profile, error) {
	args := m.Called(ctx, query, limit, viewerID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestMemberGRPCServer_Direct(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	t.Run("signup failure is reported in the body", func(t *testing.T) {
		uc := new(MockMemberUseCase)
		uc.On("Signup", ctx, "a@b.c", "pw", "name").Return("", "", domain.ErrEmailExists).Once()

		s := &MemberGRPCServer{Usecase: uc}
		resp, err := s.Signup(ctx, &memberpb.SignupReq{Email: "a@b.c", Password: "pw", Username: "name"})

		assert.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, domain.ErrEmailExists.Error(), resp.Message)
	})

	t.Run("login success", func(t *testing.T) {
		uc := new(MockMemberUseCase)
		uc.On("Login", ctx, "a@b.c", "pw").Return("m1", "tk", nil).Once()

		s := &MemberGRPCServer{Usecase: uc}
		resp, err := s.Login(ctx, &memberpb.LoginReq{Email: "a@b.c", Password: "pw"})

		assert.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "m1", resp.MemberId)
		assert.Equal(t, "tk", resp.Token)
	})

	t.Run("update profile maps fields", func(t *testing.T) {
		uc := new(MockMemberUseCase)
		created := time.Unix(1700000000, 0)
		uc.On("UpdateProfile", ctx, "m1", domain.ProfileUpdate{Username: "gamer", Bio: "hi", ShowEmail: true}).
			Return(domain.Profile{MemberID: "m1", Username: "gamer", Bio: "hi", ShowEmail: true, Status: domain.StatusAway, CreatedAt: created}, nil).Once()

		s := &MemberGRPCServer{Usecase: uc}
		resp, err := s.UpdateProfile(ctx, &memberpb.UpdateProfileReq{MemberId: "m1", Username: "gamer", Bio: "hi", ShowEmail: true})

		assert.NoError(t, err)
		require.True(t, resp.Success)
		assert.Equal(t, "Away", resp.Profile.Status)
		assert.Equal(t, created.Unix(), resp.Profile.CreatedAt)
	})

	t.Run("update status error", func(t *testing.T) {
		uc := new(MockMemberUseCase)
		uc.On("UpdateStatus", ctx, "m1", "Sleeping").Return(domain.ErrInvalidStatus).Once()

		s := &MemberGRPCServer{Usecase: uc}
		resp, err := s.UpdateStatus(ctx, &memberpb.UpdateStatusReq{MemberId: "m1", Status: "Sleeping"})

		assert.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, domain.ErrInvalidStatus.Error(), resp.Message)
	})
}

// Goes through a real grpc server and client with the member.proto codec.
func TestMemberGRPCServer_OverTheWire(t *testing.T) {
	logger.SetNewNop()

	uc := new(MockMemberUseCase)
	uc.On("FindMembers", mock.Anything, []string{"m1", "m2"}, "").
		Return([]domain.Profile{{MemberID: "m1", Username: "one"}, {MemberID: "m2", Username: "two"}}, nil).Once()
	uc.On("SearchMembers", mock.Anything, "on", 10, "").
		Return(nil, errors.New("db down")).Once()

	srv, addr := testtool.StartMockMemberGRPCServer(&MemberGRPCServer{Usecase: uc})
	defer srv.Stop()

	client, conn, err := testtool.NewMemberClient(addr)
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := client.FindMembers(ctx, &memberpb.FindMembersReq{MemberIds: []string{"m1", "m2"}})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.Len(t, resp.GetMembers(), 2)
	assert.Equal(t, "two", resp.Members[1].Username)

	search, err := client.SearchMembers(ctx, &memberpb.SearchMembersReq{Query: "on", Limit: 10})
	require.NoError(t, err)
	assert.False(t, search.Success)
	assert.Equal(t, "db down", search.Message)

	uc.AssertExpectations(t)
}
