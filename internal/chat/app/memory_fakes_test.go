package app

import (
	"context"
	"sort"
	"sync"
	"time"

	"gamevault/internal/chat/domain"
)

// in memory stand-ins for the mongo and redis repositories

type memChatRepo struct {
	mu    sync.Mutex
	chats map[string]*domain.Chat
}

func newMemChatRepo() *memChatRepo {
	return &memChatRepo{chats: map[string]*domain.Chat{}}
}

func cloneChat(c *domain.Chat) *domain.Chat {
	out := *c
	out.Participants = append([]string{}, c.Participants...)
	out.ParticipantNames = map[string]string{}
	for k, v := range c.ParticipantNames {
		out.ParticipantNames[k] = v
	}
	out.ParticipantImages = map[string]string{}
	for k, v := range c.ParticipantImages {
		out.ParticipantImages[k] = v
	}
	if c.LastMessage != nil {
		last := *c.LastMessage
		out.LastMessage = &last
	}
	return &out
}

func (r *memChatRepo) EnsureIndexes(ctx context.Context) error { return nil }

func (r *memChatRepo) CreateChat(ctx context.Context, chat *domain.Chat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chats[chat.ID] = cloneChat(chat)
	return nil
}

func (r *memChatRepo) FindByID(ctx context.Context, chatID string) (*domain.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.chats[chatID]
	if !ok {
		return nil, domain.ErrChatNotFound
	}
	return cloneChat(c), nil
}

func (r *memChatRepo) FindByParticipant(ctx context.Context, memberID string) ([]*domain.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Chat
	for _, c := range r.chats {
		if c.HasParticipant(memberID) {
			out = append(out, cloneChat(c))
		}
	}
	domain.SortByUpdated(out)
	return out, nil
}

func (r *memChatRepo) upsert(chat *domain.Chat, same func(*domain.Chat) bool) (*domain.Chat, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.chats {
		if same(c) {
			return cloneChat(c), false, nil
		}
	}
	r.chats[chat.ID] = cloneChat(chat)
	return cloneChat(chat), true, nil
}

func (r *memChatRepo) UpsertDirectChat(ctx context.Context, chat *domain.Chat) (*domain.Chat, bool, error) {
	return r.upsert(chat, func(c *domain.Chat) bool { return c.DirectKey != "" && c.DirectKey == chat.DirectKey })
}

func (r *memChatRepo) UpsertGameChannel(ctx context.Context, chat *domain.Chat) (*domain.Chat, bool, error) {
	return r.upsert(chat, func(c *domain.Chat) bool {
		return c.IsGameChannel && c.GameID == chat.GameID && c.ChannelName == chat.ChannelName
	})
}

func (r *memChatRepo) AddParticipant(ctx context.Context, chatID, memberID string, p domain.Participant, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.chats[chatID]
	if !ok {
		return domain.ErrChatNotFound
	}
	if !c.HasParticipant(memberID) {
		c.Participants = append(c.Participants, memberID)
	}
	c.ParticipantNames[memberID] = p.Name
	c.ParticipantImages[memberID] = p.Image
	c.UpdatedAt = at
	return nil
}

func (r *memChatRepo) UpdateLastMessage(ctx context.Context, chatID string, last *domain.MessageSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.chats[chatID]
	if !ok {
		return domain.ErrChatNotFound
	}
	snap := *last
	c.LastMessage = &snap
	c.UpdatedAt = last.Timestamp
	return nil
}

type memMessageRepo struct {
	mu       sync.Mutex
	messages []*domain.Message
}

func (r *memMessageRepo) EnsureIndexes(ctx context.Context) error { return nil }

func (r *memMessageRepo) InsertMessage(ctx context.Context, msg *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *msg
	r.messages = append(r.messages, &cp)
	return nil
}

func (r *memMessageRepo) FindByChat(ctx context.Context, chatID string, limit int64) ([]*domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Message
	for _, m := range r.messages {
		if m.ChatID == chatID {
			cp := *m
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	if limit > 0 && int64(len(out)) > limit {
		out = out[int64(len(out))-limit:]
	}
	return out, nil
}

func (r *memMessageRepo) MarkRead(ctx context.Context, chatID, readerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, m := range r.messages {
		if m.ChatID == chatID && m.SenderID != readerID && !m.Read {
			m.Read = true
			n++
		}
	}
	return n, nil
}

func (r *memMessageRepo) CountUnread(ctx context.Context, memberID string, chatIDs []string) (map[string]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wanted := map[string]bool{}
	for _, id := range chatIDs {
		wanted[id] = true
	}
	out := map[string]int{}
	for _, m := range r.messages {
		if wanted[m.ChatID] && m.SenderID != memberID && !m.Read {
			out[m.ChatID]++
		}
	}
	return out, nil
}

type memPresenceRepo struct {
	mu     sync.Mutex
	conns  map[string]map[string]bool
	typing map[string]map[string]time.Time
}

func newMemPresenceRepo() *memPresenceRepo {
	return &memPresenceRepo{conns: map[string]map[string]bool{}, typing: map[string]map[string]time.Time{}}
}

func (r *memPresenceRepo) Connect(ctx context.Context, memberID, connID string, ttl time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	first := len(r.conns[memberID]) == 0
	if r.conns[memberID] == nil {
		r.conns[memberID] = map[string]bool{}
	}
	r.conns[memberID][connID] = true
	return first, nil
}

func (r *memPresenceRepo) Disconnect(ctx context.Context, memberID, connID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.conns[memberID], connID)
	if len(r.conns[memberID]) == 0 {
		delete(r.conns, memberID)
		return true, nil
	}
	return false, nil
}

func (r *memPresenceRepo) Refresh(ctx context.Context, memberID, connID string, ttl time.Duration) error {
	_, err := r.Connect(ctx, memberID, connID, ttl)
	return err
}

func (r *memPresenceRepo) OnlineUsers(ctx context.Context, memberIDs []string) (map[string]bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := map[string]bool{}
	for _, id := range memberIDs {
		out[id] = len(r.conns[id]) > 0
	}
	return out, nil
}

func (r *memPresenceRepo) AllOnline(ctx context.Context) (map[string]bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := map[string]bool{}
	for id, conns := range r.conns {
		out[id] = len(conns) > 0
	}
	return out, nil
}

func (r *memPresenceRepo) SetTyping(ctx context.Context, chatID, memberID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.typing[chatID] == nil {
		r.typing[chatID] = map[string]time.Time{}
	}
	r.typing[chatID][memberID] = at
	return nil
}

func (r *memPresenceRepo) ClearTyping(ctx context.Context, chatID, memberID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.typing[chatID], memberID)
	return nil
}

func (r *memPresenceRepo) TypingEntries(ctx context.Context, chatID string) (map[string]time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := map[string]time.Time{}
	for k, v := range r.typing[chatID] {
		out[k] = v
	}
	return out, nil
}

// staticDirectory members known by id
type staticDirectory map[string]domain.Participant

func (d staticDirectory) Resolve(ctx context.Context, memberIDs []string) (map[string]domain.Participant, error) {
	out := map[string]domain.Participant{}
	for _, id := range memberIDs {
		if p, ok := d[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}
