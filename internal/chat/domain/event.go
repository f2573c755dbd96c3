package domain

import "time"

// EventType chat activity published to the event stream
type EventType string

const (
	EventChatCreated   EventType = "chat_created"
	EventChannelJoined EventType = "channel_joined"
	EventMessageSent   EventType = "message_sent"
	EventMessagesRead  EventType = "messages_read"
)

// ChatEvent one entry of the chat activity stream, keyed by ChatID
type ChatEvent struct {
	Type      EventType `json:"type"`
	ChatID    string    `json:"chat_id"`
	MemberID  string    `json:"member_id"`
	MessageID string    `json:"message_id,omitempty"`
	At        time.Time `json:"at"`
}
