package app

import (
	"context"
	"sort"
	"time"

	"gamevault/internal/chat/domain"
	"gamevault/internal/chat/repository"
	"gamevault/pkg/logger"

	"go.uber.org/zap"
)

// PresenceUseCase online flags and typing indicators
type PresenceUseCase struct {
	presence  repository.PresenceRepository
	chatRepo  repository.ChatRepository
	directory MemberDirectory
	pubsub    repository.PubSub
	ttl       time.Duration
}

// NewPresenceUseCase ttl is how long an online flag survives without Heartbeat
func NewPresenceUseCase(
	presence repository.PresenceRepository,
	chatRepo repository.ChatRepository,
	directory MemberDirectory,
	pubsub repository.PubSub,
	ttl time.Duration,
) *PresenceUseCase {
	return &PresenceUseCase{
		presence:  presence,
		chatRepo:  chatRepo,
		directory: directory,
		pubsub:    pubsub,
		ttl:       ttl,
	}
}

// Connect registers connection connID, the first live one announces the member online
func (uc *PresenceUseCase) Connect(ctx context.Context, memberID, connID string) error {
	first, err := uc.presence.Connect(ctx, memberID, connID, uc.ttl)
	if err != nil {
		return err
	}
	if first && uc.visible(ctx, memberID) {
		uc.broadcastPresence(ctx, memberID, true)
	}
	return nil
}

// Heartbeat keeps connID alive, restoring the online flag if it had lapsed
func (uc *PresenceUseCase) Heartbeat(ctx context.Context, memberID, connID string) error {
	return uc.presence.Refresh(ctx, memberID, connID, uc.ttl)
}

// Disconnect drops connID, the last one clears typing everywhere and announces the member offline
func (uc *PresenceUseCase) Disconnect(ctx context.Context, memberID, connID string) error {
	last, err := uc.presence.Disconnect(ctx, memberID, connID)
	if err != nil {
		return err
	}
	if !last {
		return nil
	}

	chats, err := uc.chatRepo.FindByParticipant(ctx, memberID)
	if err != nil {
		logger.Log.Warn("typing cleanup skipped", zap.String("member_id", memberID), zap.Error(err))
	}
	for _, c := range chats {
		if err := uc.StopTyping(ctx, memberID, c); err != nil {
			logger.Log.Warn("typing cleanup failed", zap.String("chat_id", c.ID), zap.Error(err))
		}
	}

	uc.broadcastPresence(ctx, memberID, false)
	return nil
}

// OnlineUsers online flags of memberIDs, invisible members are reported offline
func (uc *PresenceUseCase) OnlineUsers(ctx context.Context, memberIDs []string) (map[string]bool, error) {
	flags, err := uc.presence.OnlineUsers(ctx, memberIDs)
	if err != nil {
		return nil, err
	}
	return uc.hideInvisible(ctx, flags)
}

// AllOnline ids of every visible online member, sorted
func (uc *PresenceUseCase) AllOnline(ctx context.Context) ([]string, error) {
	flags, err := uc.presence.AllOnline(ctx)
	if err != nil {
		return nil, err
	}
	flags, err = uc.hideInvisible(ctx, flags)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(flags))
	for id, online := range flags {
		if online {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (uc *PresenceUseCase) hideInvisible(ctx context.Context, flags map[string]bool) (map[string]bool, error) {
	online := make([]string, 0, len(flags))
	for id, ok := range flags {
		if ok {
			online = append(online, id)
		}
	}
	if len(online) == 0 {
		return flags, nil
	}

	resolved, err := uc.directory.Resolve(ctx, online)
	if err != nil {
		return nil, err
	}
	for _, id := range online {
		if p, ok := resolved[id]; ok && p.Status == domain.StatusOffline {
			flags[id] = false
		}
	}
	return flags, nil
}

func (uc *PresenceUseCase) visible(ctx context.Context, memberID string) bool {
	resolved, err := uc.directory.Resolve(ctx, []string{memberID})
	if err != nil {
		logger.Log.Warn("presence lookup failed", zap.String("member_id", memberID), zap.Error(err))
		return true
	}
	return resolved[memberID].Status != domain.StatusOffline
}

func (uc *PresenceUseCase) broadcastPresence(ctx context.Context, memberID string, online bool) {
	err := uc.pubsub.Publish(ctx, repository.PresenceChannel, domain.WSResponse{
		Action:  string(domain.NotifyPresence),
		Success: true,
		Payload: map[string]interface{}{
			"member_id": memberID,
			"online":    online,
		},
	})
	if err != nil {
		fanoutErrorsTotal.Inc()
		logger.Log.Error("presence broadcast failed", zap.String("member_id", memberID), zap.Error(err))
	}
}

// SetTyping starts or stops the typing indicator of memberID in chatID
func (uc *PresenceUseCase) SetTyping(ctx context.Context, memberID, chatID string, isTyping bool) error {
	chat, err := uc.chatRepo.FindByID(ctx, chatID)
	if err != nil {
		return err
	}
	if !chat.HasParticipant(memberID) {
		return domain.ErrNotParticipant
	}

	if !isTyping {
		return uc.StopTyping(ctx, memberID, chat)
	}
	if err := uc.presence.SetTyping(ctx, chatID, memberID, now()); err != nil {
		return err
	}
	return uc.publishTyping(ctx, memberID, chat)
}

// StopTyping clears the entry of memberID and refreshes the indicator of the others
func (uc *PresenceUseCase) StopTyping(ctx context.Context, memberID string, chat *domain.Chat) error {
	if err := uc.presence.ClearTyping(ctx, chat.ID, memberID); err != nil {
		return err
	}
	return uc.publishTyping(ctx, memberID, chat)
}

// TypingUsers members typing in chatID as seen by memberID
func (uc *PresenceUseCase) TypingUsers(ctx context.Context, memberID, chatID string) ([]string, error) {
	entries, err := uc.presence.TypingEntries(ctx, chatID)
	if err != nil {
		return nil, err
	}
	return domain.ActiveTypers(entries, memberID, now()), nil
}

func (uc *PresenceUseCase) publishTyping(ctx context.Context, actorID string, chat *domain.Chat) error {
	entries, err := uc.presence.TypingEntries(ctx, chat.ID)
	if err != nil {
		return err
	}

	ts := now()
	for _, p := range chat.Others(actorID) {
		typers := domain.ActiveTypers(entries, p, ts)
		names := make([]string, 0, len(typers))
		for _, id := range typers {
			names = append(names, chat.ParticipantNames[id])
		}

		err := uc.pubsub.Publish(ctx, repository.UserChannel(p), domain.WSResponse{
			Action:  string(domain.NotifyTyping),
			Success: true,
			Payload: map[string]interface{}{
				"chat_id":    chat.ID,
				"member_ids": typers,
				"indicator":  domain.TypingIndicator(names),
			},
		})
		if err != nil {
			fanoutErrorsTotal.Inc()
			logger.Log.Error("typing fanout failed", zap.String("chat_id", chat.ID), zap.String("member_id", p), zap.Error(err))
		}
	}
	return nil
}
