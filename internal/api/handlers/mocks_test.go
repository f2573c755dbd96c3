package handlers

import (
	"context"
	"io"
	"time"

	catalogdomain "gamevault/internal/catalog/domain"
	socialdomain "gamevault/internal/social/domain"
	memberpb "gamevault/pkg/proto/member"

	"github.com/stretchr/testify/mock"
	"google.golang.org/grpc"
)

type MockMemberClient struct {
	mock.Mock
}

func called[T any](m *mock.Mock, method string, ctx context.Context, in interface{}) (*T, error) {
	args := m.MethodCalled(method, ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockMemberClient) Signup(ctx context.Context, in *memberpb.SignupReq, _ ...grpc.CallOption) (*memberpb.SignupRes, error) {
	return called[memberpb.SignupRes](&m.Mock, "Signup", ctx, in)
}

func (m *MockMemberClient) Login(ctx context.Context, in *memberpb.LoginReq, _ ...grpc.CallOption) (*memberpb.LoginRes, error) {
	return called[memberpb.LoginRes](&m.Mock, "Login", ctx, in)
}

func (m *MockMemberClient) Logout(ctx context.Context, in *memberpb.LogoutReq, _ ...grpc.CallOption) (*memberpb.CommonRes, error) {
	return called[memberpb.CommonRes](&m.Mock, "Logout", ctx, in)
}

func (m *MockMemberClient) ForceLogout(ctx context.Context, in *memberpb.ForceLogoutReq, _ ...grpc.CallOption) (*memberpb.CommonRes, error) {
	return called[memberpb.CommonRes](&m.Mock, "ForceLogout", ctx, in)
}

func (m *MockMemberClient) CheckSessionTimeout(ctx context.Context, in *memberpb.CheckSessionTimeoutReq, _ ...grpc.CallOption) (*memberpb.CheckSessionTimeoutRes, error) {
	return called[memberpb.CheckSessionTimeoutRes](&m.Mock, "CheckSessionTimeout", ctx, in)
}

func (m *MockMemberClient) ReconnectSession(ctx context.Context, in *memberpb.ReconnectSessionReq, _ ...grpc.CallOption) (*memberpb.CommonRes, error) {
	return called[memberpb.CommonRes](&m.Mock, "ReconnectSession", ctx, in)
}

func (m *MockMemberClient) GetProfile(ctx context.Context, in *memberpb.GetProfileReq, _ ...grpc.CallOption) (*memberpb.ProfileRes, error) {
	return called[memberpb.ProfileRes](&m.Mock, "GetProfile", ctx, in)
}

func (m *MockMemberClient) UpdateProfile(ctx context.Context, in *memberpb.UpdateProfileReq, _ ...grpc.CallOption) (*memberpb.ProfileRes, error) {
	return called[memberpb.ProfileRes](&m.Mock, "UpdateProfile", ctx, in)
}

func (m *MockMemberClient) UpdateProfileImage(ctx context.Context, in *memberpb.UpdateProfileImageReq, _ ...grpc.CallOption) (*memberpb.CommonRes, error) {
	return called[memberpb.CommonRes](&m.Mock, "UpdateProfileImage", ctx, in)
}

func (m *MockMemberClient) UpdateStatus(ctx context.Context, in *memberpb.UpdateStatusReq, _ ...grpc.CallOption) (*memberpb.CommonRes, error) {
	return called[memberpb.CommonRes](&m.Mock, "UpdateStatus", ctx, in)
}

func (m *MockMemberClient) FindMembers(ctx context.Context, in *memberpb.FindMembersReq, _ ...grpc.CallOption) (*memberpb.MembersRes, error) {
	return called[memberpb.MembersRes](&m.Mock, "FindMembers", ctx, in)
}

func (m *MockMemberClient) SearchMembers(ctx context.Context, in *memberpb.SearchMembersReq, _ ...grpc.CallOption) (*memberpb.MembersRes, error) {
	return called[memberpb.MembersRes](&m.Mock, "SearchMembers", ctx, in)
}

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) Seed(ctx context.Context, games []catalogdomain.Game) (int, error) {
	args := m.Called(ctx, games)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalog) ListGames(ctx context.Context, query, genre string) ([]catalogdomain.Game, error) {
	args := m.Called(ctx, query, genre)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalogdomain.Game), args.Error(1)
}

func (m *MockCatalog) Dashboard(ctx context.Context, query, genre string) (catalogdomain.Dashboard, error) {
	args := m.Called(ctx, query, genre)
	return args.Get(0).(catalogdomain.Dashboard), args.Error(1)
}

func (m *MockCatalog) Genres() []string {
	return m.Called().Get(0).([]string)
}

func (m *MockCatalog) GetGame(ctx context.Context, id string) (*catalogdomain.Game, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogdomain.Game), args.Error(1)
}

func (m *MockCatalog) Library(ctx context.Context, memberID, filter string) ([]catalogdomain.LibraryEntry, error) {
	args := m.Called(ctx, memberID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalogdomain.LibraryEntry), args.Error(1)
}

func (m *MockCatalog) AddToLibrary(ctx context.Context, memberID, gameID string) (bool, error) {
	args := m.Called(ctx, memberID, gameID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalog) RemoveFromLibrary(ctx context.Context, memberID, gameID string) error {
	return m.Called(ctx, memberID, gameID).Error(0)
}

func (m *MockCatalog) SetFavorite(ctx context.Context, memberID, gameID string, favorite bool) error {
	return m.Called(ctx, memberID, gameID, favorite).Error(0)
}

func (m *MockCatalog) SetInstalled(ctx context.Context, memberID, gameID string, installed bool) error {
	return m.Called(ctx, memberID, gameID, installed).Error(0)
}

func (m *MockCatalog) RecordPlay(ctx context.Context, memberID, gameID string) (time.Time, error) {
	args := m.Called(ctx, memberID, gameID)
	return args.Get(0).(time.Time), args.Error(1)
}

type MockSocial struct {
	mock.Mock
}

func (m *MockSocial) ListFriends(ctx context.Context, memberID, filter, search string) ([]socialdomain.Friend, error) {
	args := m.Called(ctx, memberID, filter, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]socialdomain.Friend), args.Error(1)
}

func (m *MockSocial) SendRequest(ctx context.Context, fromID, toID string) (*socialdomain.FriendRequest, bool, error) {
	args := m.Called(ctx, fromID, toID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*socialdomain.FriendRequest), args.Bool(1), args.Error(2)
}

func (m *MockSocial) ListRequests(ctx context.Context, memberID string) ([]socialdomain.IncomingRequest, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]socialdomain.IncomingRequest), args.Error(1)
}

func (m *MockSocial) AcceptRequest(ctx context.Context, memberID, requestID string) error {
	return m.Called(ctx, memberID, requestID).Error(0)
}

func (m *MockSocial) DeclineRequest(ctx context.Context, memberID, requestID string) error {
	return m.Called(ctx, memberID, requestID).Error(0)
}

func (m *MockSocial) RemoveFriend(ctx context.Context, memberID, friendID string) error {
	return m.Called(ctx, memberID, friendID).Error(0)
}

type MockAvatars struct {
	mock.Mock
}

func (m *MockAvatars) UploadAvatar(ctx context.Context, memberID string, file io.Reader) (string, error) {
	args := m.Called(ctx, memberID, file)
	return args.String(0), args.Error(1)
}

func (m *MockAvatars) AvatarURL(ctx context.Context, memberID string) (string, error) {
	args := m.Called(ctx, memberID)
	return args.String(0), args.Error(1)
}
