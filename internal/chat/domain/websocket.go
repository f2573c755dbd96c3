package domain

// Action websocket request action
type Action string

const (
	// ListChats websocket action list_chats
	ListChats Action = "list_chats"
	// ListChannels websocket action list_channels
	ListChannels Action = "list_channels"
	// OpenChat websocket action open_chat
	OpenChat Action = "open_chat"
	// CloseChat websocket action close_chat
	CloseChat Action = "close_chat"

	// CreateDirect websocket action create_direct
	CreateDirect Action = "create_direct"
	// CreateGroup websocket action create_group
	CreateGroup Action = "create_group"
	// JoinGameChannel websocket action join_game_channel
	JoinGameChannel Action = "join_game_channel"

	// SendMessage websocket action send_message
	SendMessage Action = "send_message"
	// MarkRead websocket action mark_read
	MarkRead Action = "mark_read"
	// GetUnread websocket action get_unread
	GetUnread Action = "get_unread"

	// Typing websocket action typing
	Typing Action = "typing"
	// OnlineUsers websocket action online_users
	OnlineUsers Action = "online_users"

	// NotifyMessage server event, new message in one of the member's chats
	NotifyMessage Action = "notify_message"
	// NotifyTyping server event, typing indicator changed
	NotifyTyping Action = "notify_typing"
	// NotifyPresence server event, a member went online or offline
	NotifyPresence Action = "notify_presence"
	// NotifyChat server event, the member was added to a chat
	NotifyChat Action = "notify_chat"
)

// WSRequest websocket Request
type WSRequest struct {
	Action      string   `json:"action"`
	ChatID      string   `json:"chat_id"`
	Content     string   `json:"content"`
	PeerID      string   `json:"peer_id"`
	Name        string   `json:"name"`
	Members     []string `json:"members"`
	GameID      string   `json:"game_id"`
	GameName    string   `json:"game_name"`
	ChannelName string   `json:"channel_name"`
	IsTyping    bool     `json:"is_typing"`
}

// WSResponse websocket Response
type WSResponse struct {
	Action  string                 `json:"action"`
	Success bool                   `json:"success"`
	Payload map[string]interface{} `json:"payload,omitempty"`
	Error   string                 `json:"error,omitempty"`
}
