package app

import (
	"context"

	"gamevault/internal/chat/domain"
	"gamevault/internal/chat/repository"
	"gamevault/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MessageUseCase stores chat messages and pushes them to the other participants
type MessageUseCase struct {
	chatRepo  repository.ChatRepository
	msgRepo   repository.MessageRepository
	directory MemberDirectory
	pubsub    repository.PubSub
	events    repository.EventPublisher
	presence  *PresenceUseCase
}

// NewMessageUseCase init send message use case, presence and events may be nil
func NewMessageUseCase(
	chatRepo repository.ChatRepository,
	msgRepo repository.MessageRepository,
	directory MemberDirectory,
	pubsub repository.PubSub,
	events repository.EventPublisher,
	presence *PresenceUseCase,
) *MessageUseCase {
	return &MessageUseCase{
		chatRepo:  chatRepo,
		msgRepo:   msgRepo,
		directory: directory,
		pubsub:    pubsub,
		events:    events,
		presence:  presence,
	}
}

// SendMessage stores content as a new unread message of chatID.
// Sending to a public game channel joins it.
func (uc *MessageUseCase) SendMessage(ctx context.Context, senderID, chatID, content string) (*domain.Message, error) {
	content, err := domain.ValidateContent(content)
	if err != nil {
		return nil, err
	}

	chat, err := uc.chatRepo.FindByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !chat.CanView(senderID) {
		return nil, domain.ErrNotParticipant
	}

	sender := uc.sender(ctx, chat, senderID)
	if !chat.HasParticipant(senderID) {
		if err := addParticipant(ctx, uc.chatRepo, chat, senderID, sender, now()); err != nil {
			return nil, err
		}
	}

	msg := &domain.Message{
		ID:                 uuid.New().String(),
		ChatID:             chat.ID,
		Content:            content,
		SenderID:           senderID,
		SenderName:         sender.Name,
		SenderProfileImage: sender.Image,
		Timestamp:          now(),
	}
	if err := uc.msgRepo.InsertMessage(ctx, msg); err != nil {
		return nil, err
	}
	if err := uc.chatRepo.UpdateLastMessage(ctx, chat.ID, msg.Snapshot()); err != nil {
		return nil, err
	}
	messagesSentTotal.Inc()

	if uc.presence != nil {
		if err := uc.presence.StopTyping(ctx, senderID, chat); err != nil {
			logger.Log.Warn("stop typing failed", zap.String("chat_id", chat.ID), zap.Error(err))
		}
	}

	for _, p := range chat.Others(senderID) {
		err := uc.pubsub.Publish(ctx, repository.UserChannel(p), domain.WSResponse{
			Action:  string(domain.NotifyMessage),
			Success: true,
			Payload: map[string]interface{}{
				"chat_id": chat.ID,
				"message": msg,
			},
		})
		if err != nil {
			fanoutErrorsTotal.Inc()
			logger.Log.Error("message fanout failed", zap.String("chat_id", chat.ID), zap.String("member_id", p), zap.Error(err))
		}
	}

	if uc.events != nil {
		ev := domain.ChatEvent{Type: domain.EventMessageSent, ChatID: chat.ID, MemberID: senderID, MessageID: msg.ID, At: msg.Timestamp}
		if err := uc.events.Publish(ctx, ev); err != nil {
			logger.Log.Warn("chat event publish failed", zap.String("type", string(ev.Type)), zap.String("chat_id", chat.ID), zap.Error(err))
		}
	}
	return msg, nil
}

// sender fresh name and avatar from the directory, the names stored on the chat otherwise
func (uc *MessageUseCase) sender(ctx context.Context, chat *domain.Chat, senderID string) domain.Participant {
	resolved, err := uc.directory.Resolve(ctx, []string{senderID})
	if err == nil {
		if p, ok := resolved[senderID]; ok {
			return p
		}
	} else {
		logger.Log.Warn("sender lookup failed", zap.String("member_id", senderID), zap.Error(err))
	}
	return domain.Participant{
		Name:  chat.ParticipantNames[senderID],
		Image: chat.ParticipantImages[senderID],
	}
}
