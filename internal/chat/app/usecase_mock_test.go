package app

import (
	"context"
	"sync"
	"time"

	"gamevault/internal/chat/domain"

	"github.com/stretchr/testify/mock"
)

// MockChatRepo mock repository.ChatRepository
type MockChatRepo struct {
	mock.Mock
}

func (m *MockChatRepo) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockChatRepo) CreateChat(ctx context.Context, chat *domain.Chat) error {
	args := m.Called(ctx, chat)
	return args.Error(0)
}

func (m *MockChatRepo) FindByID(ctx context.Context, chatID string) (*domain.Chat, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chat), args.Error(1)
}

func (m *MockChatRepo) FindByParticipant(ctx context.Context, memberID string) ([]*domain.Chat, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Chat), args.Error(1)
}

func (m *MockChatRepo) UpsertDirectChat(ctx context.Context, chat *domain.Chat) (*domain.Chat, bool, error) {
	args := m.Called(ctx, chat)
	if rf, ok := args.Get(0).(func(context.Context, *domain.Chat) *domain.Chat); ok {
		return rf(ctx, chat), args.Bool(1), args.Error(2)
	}
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*domain.Chat), args.Bool(1), args.Error(2)
}

func (m *MockChatRepo) UpsertGameChannel(ctx context.Context, chat *domain.Chat) (*domain.Chat, bool, error) {
	args := m.Called(ctx, chat)
	if rf, ok := args.Get(0).(func(context.Context, *domain.Chat) *domain.Chat); ok {
		return rf(ctx, chat), args.Bool(1), args.Error(2)
	}
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*domain.Chat), args.Bool(1), args.Error(2)
}

func (m *MockChatRepo) AddParticipant(ctx context.Context, chatID, memberID string, p domain.Participant, at time.Time) error {
	args := m.Called(ctx, chatID, memberID, p, at)
	return args.Error(0)
}

func (m *MockChatRepo) UpdateLastMessage(ctx context.Context, chatID string, last *domain.MessageSnapshot) error {
	args := m.Called(ctx, chatID, last)
	return args.Error(0)
}

// MockMessageRepo mock repository.MessageRepository
type MockMessageRepo struct {
	mock.Mock
}

func (m *MockMessageRepo) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMessageRepo) InsertMessage(ctx context.Context, msg *domain.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockMessageRepo) FindByChat(ctx context.Context, chatID string, limit int64) ([]*domain.Message, error) {
	args := m.Called(ctx, chatID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Message), args.Error(1)
}

func (m *MockMessageRepo) MarkRead(ctx context.Context, chatID, readerID string) (int64, error) {
	args := m.Called(ctx, chatID, readerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMessageRepo) CountUnread(ctx context.Context, memberID string, chatIDs []string) (map[string]int, error) {
	args := m.Called(ctx, memberID, chatIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

// MockPresenceRepo mock repository.PresenceRepository
type MockPresenceRepo struct {
	mock.Mock
}

func (m *MockPresenceRepo) Connect(ctx context.Context, memberID, connID string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, memberID, connID, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockPresenceRepo) Disconnect(ctx context.Context, memberID, connID string) (bool, error) {
	args := m.Called(ctx, memberID, connID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPresenceRepo) Refresh(ctx context.Context, memberID, connID string, ttl time.Duration) error {
	args := m.Called(ctx, memberID, connID, ttl)
	return args.Error(0)
}

func (m *MockPresenceRepo) OnlineUsers(ctx context.Context, memberIDs []string) (map[string]bool, error) {
	args := m.Called(ctx, memberIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockPresenceRepo) AllOnline(ctx context.Context) (map[string]bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockPresenceRepo) SetTyping(ctx context.Context, chatID, memberID string, at time.Time) error {
	args := m.Called(ctx, chatID, memberID, at)
	return args.Error(0)
}

func (m *MockPresenceRepo) ClearTyping(ctx context.Context, chatID, memberID string) error {
	args := m.Called(ctx, chatID, memberID)
	return args.Error(0)
}

func (m *MockPresenceRepo) TypingEntries(ctx context.Context, chatID string) (map[string]time.Time, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]time.Time), args.Error(1)
}

// MockDirectory mock MemberDirectory
type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) Resolve(ctx context.Context, memberIDs []string) (map[string]domain.Participant, error) {
	args := m.Called(ctx, memberIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Participant), args.Error(1)
}

// MockEventPublisher mock repository.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, ev domain.ChatEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

// published one recorded pubsub publish
type published struct {
	Channel string
	Resp    domain.WSResponse
}

// recordingPubSub keeps every publish, Subscribe registers handlers fed by deliver
type recordingPubSub struct {
	mu       sync.Mutex
	sent     []published
	handlers map[string][]func(domain.WSResponse)
	err      error
}

func newRecordingPubSub() *recordingPubSub {
	return &recordingPubSub{handlers: map[string][]func(domain.WSResponse){}}
}

func (p *recordingPubSub) Publish(ctx context.Context, channel string, message domain.WSResponse) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, published{Channel: channel, Resp: message})
	return nil
}

func (p *recordingPubSub) Subscribe(ctx context.Context, channel string, handler func(resp domain.WSResponse)) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handlers[channel] = append(p.handlers[channel], handler)
	return nil
}

func (p *recordingPubSub) deliver(channel string, resp domain.WSResponse) {
	p.mu.Lock()
	hs := append([]func(domain.WSResponse){}, p.handlers[channel]...)
	p.mu.Unlock()
	for _, h := range hs {
		h(resp)
	}
}

func (p *recordingPubSub) on(channel string) []domain.WSResponse {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []domain.WSResponse
	for _, s := range p.sent {
		if s.Channel == channel {
			out = append(out, s.Resp)
		}
	}
	return out
}

func (p *recordingPubSub) reset() {
	p.mu.Lock()
	p.sent = nil
	p.mu.Unlock()
}
