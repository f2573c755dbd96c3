package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxMessageLength in characters
const MaxMessageLength = 2000

// author of messages the service writes itself
const (
	SystemSenderID   = "system"
	SystemSenderName = "GameVault System"
)

// Message one chat message. Read only moves from false to true.
type Message struct {
	ID                 string    `bson:"_id" json:"id"`
	ChatID             string    `bson:"chat_id" json:"chat_id"`
	Content            string    `bson:"content" json:"content"`
	SenderID           string    `bson:"sender_id" json:"sender_id"`
	SenderName         string    `bson:"sender_name" json:"sender_name"`
	SenderProfileImage string    `bson:"sender_profile_image,omitempty" json:"sender_profile_image,omitempty"`
	Timestamp          time.Time `bson:"timestamp" json:"timestamp"`
	Read               bool      `bson:"read" json:"read"`
	System             bool      `bson:"system,omitempty" json:"system,omitempty"`
}

// Snapshot for Chat.LastMessage
func (m *Message) Snapshot() *MessageSnapshot {
	return &MessageSnapshot{
		Content:   m.Content,
		SenderID:  m.SenderID,
		Timestamp: m.Timestamp,
	}
}

// ValidateContent trims content and checks its length
func ValidateContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", ErrEmptyMessage
	}
	if utf8.RuneCountInString(content) > MaxMessageLength {
		return "", ErrMessageTooLong
	}
	return content, nil
}
