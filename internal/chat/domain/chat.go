package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"gamevault/pkg"
)

// ChatKind derived from the chat flags
type ChatKind string

const (
	// KindDirect two participants, one chat per pair
	KindDirect ChatKind = "direct"
	// KindGroup named group chat
	KindGroup ChatKind = "group"
	// KindGameChannel public forum of a game
	KindGameChannel ChatKind = "game_channel"
)

// DefaultChatName shown when nothing better is known
const DefaultChatName = "Chat"

var (
	ErrChatNotFound       = errors.New("chat not found")
	ErrNotParticipant     = errors.New("not a participant of this chat")
	ErrSelfChat           = errors.New("cannot start a chat with yourself")
	ErrGroupNameRequired  = errors.New("group name is required")
	ErrGroupMembers       = errors.New("group needs at least one other member")
	ErrChannelRequired    = errors.New("game id, game name and channel name are required")
	ErrEmptyMessage       = errors.New("message is empty")
	ErrMessageTooLong     = errors.New("message is too long")
	ErrRateLimited        = errors.New("sending too fast")
	ErrParticipantMissing = errors.New("participant not found")
)

// MessageSnapshot copy of the newest message kept on the chat
type MessageSnapshot struct {
	Content   string    `bson:"content" json:"content"`
	SenderID  string    `bson:"sender_id" json:"sender_id"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// Chat direct, group or game channel conversation
type Chat struct {
	ID                string            `bson:"_id" json:"id"`
	Participants      []string          `bson:"participants" json:"participants"`
	ParticipantNames  map[string]string `bson:"participant_names" json:"participant_names"`
	ParticipantImages map[string]string `bson:"participant_images" json:"participant_images"`
	IsGroupChat       bool              `bson:"is_group_chat" json:"is_group_chat"`
	IsGameChannel     bool              `bson:"is_game_channel" json:"is_game_channel"`
	IsPublic          bool              `bson:"is_public" json:"is_public"`
	Name              string            `bson:"name,omitempty" json:"name,omitempty"`
	Description       string            `bson:"description,omitempty" json:"description,omitempty"`
	GameID            string            `bson:"game_id,omitempty" json:"game_id,omitempty"`
	ChannelName       string            `bson:"channel_name,omitempty" json:"channel_name,omitempty"`
	DirectKey         string            `bson:"direct_key,omitempty" json:"-"`
	LastMessage       *MessageSnapshot  `bson:"last_message,omitempty" json:"last_message,omitempty"`
	CreatedAt         time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time         `bson:"updated_at" json:"updated_at"`

	// filled per viewer, never stored
	UnreadCount int `bson:"-" json:"unread_count"`
}

// Participant name, avatar and public status resolved from the member directory
type Participant struct {
	Name   string
	Image  string
	Status string
}

// StatusOffline what the directory reports for invisible members
const StatusOffline = "Offline"

// Kind direct, group or game channel
func (c *Chat) Kind() ChatKind {
	switch {
	case c.IsGameChannel:
		return KindGameChannel
	case c.IsGroupChat:
		return KindGroup
	default:
		return KindDirect
	}
}

// HasParticipant membership check
func (c *Chat) HasParticipant(memberID string) bool {
	return pkg.Contains(c.Participants, memberID)
}

// CanView participants always, anyone for public game channels
func (c *Chat) CanView(memberID string) bool {
	return c.HasParticipant(memberID) || (c.IsGameChannel && c.IsPublic)
}

// Others participants except memberID
func (c *Chat) Others(memberID string) []string {
	out := make([]string, 0, len(c.Participants))
	for _, p := range c.Participants {
		if p != memberID {
			out = append(out, p)
		}
	}
	return out
}

// DisplayName group or channel name, else the other participant's name, else DefaultChatName
func (c *Chat) DisplayName(viewerID string) string {
	if c.IsGroupChat || c.IsGameChannel {
		if c.Name != "" {
			return c.Name
		}
		return DefaultChatName
	}
	for _, id := range c.Others(viewerID) {
		if name := c.ParticipantNames[id]; name != "" {
			return name
		}
	}
	return DefaultChatName
}

// DirectKey order independent key of a member pair
func DirectKey(a, b string) string {
	pair := []string{a, b}
	sort.Strings(pair)
	return pair[0] + ":" + pair[1]
}

// GameChannelName "<game> - #<channel>"
func GameChannelName(gameName, channel string) string {
	return fmt.Sprintf("%s - #%s", gameName, channel)
}

// GameChannelDescription forum description
func GameChannelDescription(gameName, channel string) string {
	return fmt.Sprintf("Discussion forum for %s in %s", channel, gameName)
}

// GameChannelWelcome first system message of a new channel
func GameChannelWelcome(gameName, channel string) string {
	return fmt.Sprintf("Welcome to the #%s discussion forum for %s! This is a public channel for all players to discuss %s-related topics.", channel, gameName, channel)
}

// SortByUpdated newest activity first
func SortByUpdated(chats []*Chat) {
	sort.SliceStable(chats, func(i, j int) bool {
		return chats[i].UpdatedAt.After(chats[j].UpdatedAt)
	})
}

// SplitChannels separates game channels from direct and group chats
func SplitChannels(chats []*Chat) (regular, channels []*Chat) {
	regular = make([]*Chat, 0, len(chats))
	for _, c := range chats {
		if c.IsGameChannel {
			channels = append(channels, c)
		} else {
			regular = append(regular, c)
		}
	}
	return regular, channels
}

// NormalizeChannel trims the channel name and drops a leading '#'
func NormalizeChannel(channel string) string {
	return strings.TrimPrefix(strings.TrimSpace(channel), "#")
}
