package app

import (
	"context"
	"strings"
	"time"

	"gamevault/internal/chat/domain"
	"gamevault/internal/chat/repository"
	"gamevault/pkg"
	"gamevault/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// messages returned by OpenChat
const openChatHistory = 200

var now = func() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// ChatUseCase chat listing, creation and read state
type ChatUseCase struct {
	chatRepo  repository.ChatRepository
	msgRepo   repository.MessageRepository
	directory MemberDirectory
	pubsub    repository.PubSub
	events    repository.EventPublisher
}

// NewChatUseCase init chat use case
func NewChatUseCase(
	chatRepo repository.ChatRepository,
	msgRepo repository.MessageRepository,
	directory MemberDirectory,
	pubsub repository.PubSub,
	events repository.EventPublisher,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:  chatRepo,
		msgRepo:   msgRepo,
		directory: directory,
		pubsub:    pubsub,
		events:    events,
	}
}

// ListChats direct and group chats of memberID, newest first, with unread counts
func (uc *ChatUseCase) ListChats(ctx context.Context, memberID string) ([]*domain.Chat, error) {
	regular, _, err := uc.listSplit(ctx, memberID)
	return regular, err
}

// ListGameChannels game channels memberID joined, newest first, with unread counts
func (uc *ChatUseCase) ListGameChannels(ctx context.Context, memberID string) ([]*domain.Chat, error) {
	_, channels, err := uc.listSplit(ctx, memberID)
	return channels, err
}

func (uc *ChatUseCase) listSplit(ctx context.Context, memberID string) ([]*domain.Chat, []*domain.Chat, error) {
	chats, err := uc.chatRepo.FindByParticipant(ctx, memberID)
	if err != nil {
		return nil, nil, err
	}
	domain.SortByUpdated(chats)

	if err := uc.annotateUnread(ctx, memberID, chats); err != nil {
		return nil, nil, err
	}

	regular, channels := domain.SplitChannels(chats)
	return regular, channels, nil
}

func (uc *ChatUseCase) annotateUnread(ctx context.Context, memberID string, chats []*domain.Chat) error {
	ids := make([]string, 0, len(chats))
	for _, c := range chats {
		ids = append(ids, c.ID)
	}

	counts, err := uc.msgRepo.CountUnread(ctx, memberID, ids)
	if err != nil {
		return err
	}
	for _, c := range chats {
		c.UnreadCount = counts[c.ID]
	}
	return nil
}

// UnreadCounts chat id -> unread messages for memberID, chats without unread are left out
func (uc *ChatUseCase) UnreadCounts(ctx context.Context, memberID string) (map[string]int, error) {
	chats, err := uc.chatRepo.FindByParticipant(ctx, memberID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(chats))
	for _, c := range chats {
		ids = append(ids, c.ID)
	}
	return uc.msgRepo.CountUnread(ctx, memberID, ids)
}

// OpenChat returns the chat with its history and marks foreign messages read
func (uc *ChatUseCase) OpenChat(ctx context.Context, memberID, chatID string) (*domain.Chat, []*domain.Message, error) {
	chat, err := uc.chatRepo.FindByID(ctx, chatID)
	if err != nil {
		return nil, nil, err
	}
	if !chat.CanView(memberID) {
		return nil, nil, domain.ErrNotParticipant
	}

	messages, err := uc.msgRepo.FindByChat(ctx, chatID, openChatHistory)
	if err != nil {
		return nil, nil, err
	}

	if chat.HasParticipant(memberID) {
		if _, err := uc.markRead(ctx, memberID, chatID); err != nil {
			return nil, nil, err
		}
		for _, m := range messages {
			if m.SenderID != memberID {
				m.Read = true
			}
		}
	}
	return chat, messages, nil
}

// MarkRead marks every message of chatID not sent by memberID read
func (uc *ChatUseCase) MarkRead(ctx context.Context, memberID, chatID string) (int64, error) {
	chat, err := uc.chatRepo.FindByID(ctx, chatID)
	if err != nil {
		return 0, err
	}
	if !chat.HasParticipant(memberID) {
		return 0, domain.ErrNotParticipant
	}
	return uc.markRead(ctx, memberID, chatID)
}

func (uc *ChatUseCase) markRead(ctx context.Context, memberID, chatID string) (int64, error) {
	n, err := uc.msgRepo.MarkRead(ctx, chatID, memberID)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		uc.publishEvent(ctx, domain.ChatEvent{Type: domain.EventMessagesRead, ChatID: chatID, MemberID: memberID, At: now()})
	}
	return n, nil
}

// GetOrCreateDirectChat the single direct chat of the pair, created is false when it already existed
func (uc *ChatUseCase) GetOrCreateDirectChat(ctx context.Context, memberID, peerID string) (*domain.Chat, bool, error) {
	peerID = strings.TrimSpace(peerID)
	if peerID == "" || peerID == memberID {
		return nil, false, domain.ErrSelfChat
	}

	participants := []string{memberID, peerID}
	resolved, err := uc.directory.Resolve(ctx, participants)
	if err != nil {
		return nil, false, err
	}
	if _, ok := resolved[peerID]; !ok {
		return nil, false, domain.ErrParticipantMissing
	}

	ts := now()
	chat := &domain.Chat{
		ID:           uuid.New().String(),
		Participants: participants,
		DirectKey:    domain.DirectKey(memberID, peerID),
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	fillParticipants(chat, resolved)

	stored, created, err := uc.chatRepo.UpsertDirectChat(ctx, chat)
	if err != nil {
		return nil, false, err
	}

	if created {
		logger.Log.Info("direct chat created", zap.String("chat_id", stored.ID), zap.String("member_id", memberID))
		uc.notifyChat(ctx, stored, memberID)
		uc.publishEvent(ctx, domain.ChatEvent{Type: domain.EventChatCreated, ChatID: stored.ID, MemberID: memberID, At: ts})
	}
	return stored, created, nil
}

// CreateGroupChat memberID is always the first participant
func (uc *ChatUseCase) CreateGroupChat(ctx context.Context, memberID, name string, memberIDs []string) (*domain.Chat, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrGroupNameRequired
	}

	participants := pkg.Unique(append([]string{memberID}, memberIDs...))
	if len(participants) < 2 {
		return nil, domain.ErrGroupMembers
	}

	resolved, err := uc.directory.Resolve(ctx, participants)
	if err != nil {
		return nil, err
	}

	ts := now()
	chat := &domain.Chat{
		ID:           uuid.New().String(),
		Participants: participants,
		IsGroupChat:  true,
		Name:         name,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	fillParticipants(chat, resolved)

	if err := uc.chatRepo.CreateChat(ctx, chat); err != nil {
		return nil, err
	}

	uc.notifyChat(ctx, chat, memberID)
	uc.publishEvent(ctx, domain.ChatEvent{Type: domain.EventChatCreated, ChatID: chat.ID, MemberID: memberID, At: ts})
	return chat, nil
}

// JoinGameChannel joins the channel of the game, creating it with a welcome message on first use
func (uc *ChatUseCase) JoinGameChannel(ctx context.Context, memberID, gameID, gameName, channel string) (*domain.Chat, error) {
	gameID = strings.TrimSpace(gameID)
	gameName = strings.TrimSpace(gameName)
	channel = domain.NormalizeChannel(channel)
	if gameID == "" || gameName == "" || channel == "" {
		return nil, domain.ErrChannelRequired
	}

	resolved, err := uc.directory.Resolve(ctx, []string{memberID})
	if err != nil {
		return nil, err
	}
	me := resolved[memberID]

	ts := now()
	chat := &domain.Chat{
		ID:            uuid.New().String(),
		Participants:  []string{memberID},
		IsGroupChat:   true,
		IsGameChannel: true,
		IsPublic:      true,
		Name:          domain.GameChannelName(gameName, channel),
		Description:   domain.GameChannelDescription(gameName, channel),
		GameID:        gameID,
		ChannelName:   channel,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}
	fillParticipants(chat, resolved)

	stored, created, err := uc.chatRepo.UpsertGameChannel(ctx, chat)
	if err != nil {
		return nil, err
	}

	if created {
		welcome := &domain.Message{
			ID:         uuid.New().String(),
			ChatID:     stored.ID,
			Content:    domain.GameChannelWelcome(gameName, channel),
			SenderID:   domain.SystemSenderID,
			SenderName: domain.SystemSenderName,
			Timestamp:  ts,
			Read:       true,
			System:     true,
		}
		if err := uc.msgRepo.InsertMessage(ctx, welcome); err != nil {
			return nil, err
		}
		if err := uc.chatRepo.UpdateLastMessage(ctx, stored.ID, welcome.Snapshot()); err != nil {
			return nil, err
		}
		stored.LastMessage = welcome.Snapshot()
		logger.Log.Info("game channel created", zap.String("chat_id", stored.ID), zap.String("game_id", gameID), zap.String("channel", channel))
	} else if !stored.HasParticipant(memberID) {
		if err := addParticipant(ctx, uc.chatRepo, stored, memberID, me, ts); err != nil {
			return nil, err
		}
	}

	uc.publishEvent(ctx, domain.ChatEvent{Type: domain.EventChannelJoined, ChatID: stored.ID, MemberID: memberID, At: ts})
	return stored, nil
}

// notifyChat tells the other participants about a chat they were added to
func (uc *ChatUseCase) notifyChat(ctx context.Context, chat *domain.Chat, creatorID string) {
	for _, p := range chat.Others(creatorID) {
		err := uc.pubsub.Publish(ctx, repository.UserChannel(p), domain.WSResponse{
			Action:  string(domain.NotifyChat),
			Success: true,
			Payload: map[string]interface{}{"chat": NewChatView(chat, p)},
		})
		if err != nil {
			fanoutErrorsTotal.Inc()
			logger.Log.Error("notify chat failed", zap.String("chat_id", chat.ID), zap.String("member_id", p), zap.Error(err))
		}
	}
}

func (uc *ChatUseCase) publishEvent(ctx context.Context, ev domain.ChatEvent) {
	if uc.events == nil {
		return
	}
	if err := uc.events.Publish(ctx, ev); err != nil {
		logger.Log.Warn("chat event publish failed", zap.String("type", string(ev.Type)), zap.String("chat_id", ev.ChatID), zap.Error(err))
	}
}

// addParticipant stores memberID on chat and mirrors it on the in-memory copy
func addParticipant(ctx context.Context, repo repository.ChatRepository, chat *domain.Chat, memberID string, p domain.Participant, at time.Time) error {
	if err := repo.AddParticipant(ctx, chat.ID, memberID, p, at); err != nil {
		return err
	}
	chat.Participants = append(chat.Participants, memberID)
	chat.UpdatedAt = at
	if chat.ParticipantNames == nil {
		chat.ParticipantNames = map[string]string{}
	}
	if chat.ParticipantImages == nil {
		chat.ParticipantImages = map[string]string{}
	}
	chat.ParticipantNames[memberID] = p.Name
	chat.ParticipantImages[memberID] = p.Image
	return nil
}

func fillParticipants(chat *domain.Chat, resolved map[string]domain.Participant) {
	chat.ParticipantNames = make(map[string]string, len(chat.Participants))
	chat.ParticipantImages = make(map[string]string, len(chat.Participants))
	for _, id := range chat.Participants {
		p := resolved[id]
		chat.ParticipantNames[id] = p.Name
		chat.ParticipantImages[id] = p.Image
	}
}

// ChatView chat as one viewer sees it
type ChatView struct {
	*domain.Chat
	Kind        domain.ChatKind `json:"kind"`
	DisplayName string          `json:"display_name"`
}

// NewChatView annotates chat for viewerID
func NewChatView(chat *domain.Chat, viewerID string) ChatView {
	return ChatView{Chat: chat, Kind: chat.Kind(), DisplayName: chat.DisplayName(viewerID)}
}

// NewChatViews NewChatView for every chat
func NewChatViews(chats []*domain.Chat, viewerID string) []ChatView {
	out := make([]ChatView, 0, len(chats))
	for _, c := range chats {
		out = append(out, NewChatView(c, viewerID))
	}
	return out
}
