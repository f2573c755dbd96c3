package app

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"gamevault/internal/chat/domain"
	"gamevault/internal/chat/repository"
	"gamevault/pkg/logger"
	"gamevault/pkg/middlewares"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatWebsocketHandler one websocket per member tab, all chat actions go through it
type ChatWebsocketHandler struct {
	chatUC       *ChatUseCase
	messageUC    *MessageUseCase
	presenceUC   *PresenceUseCase
	pubsub       repository.PubSub
	limiter      *middlewares.RateLimiter
	pingInterval time.Duration
}

// NewChatWebsocketHandler create ChatWebsocketHandler, limiter throttles send_message per member
func NewChatWebsocketHandler(
	chatUC *ChatUseCase,
	messageUC *MessageUseCase,
	presenceUC *PresenceUseCase,
	pubsub repository.PubSub,
	limiter *middlewares.RateLimiter,
	pingInterval time.Duration,
) *ChatWebsocketHandler {
	if pingInterval <= 0 {
		pingInterval = 30 * time.Second
	}
	return &ChatWebsocketHandler{
		chatUC:       chatUC,
		messageUC:    messageUC,
		presenceUC:   presenceUC,
		pubsub:       pubsub,
		limiter:      limiter,
		pingInterval: pingInterval,
	}
}

// wsSession state of one connection
type wsSession struct {
	memberID string
	connID   string
	write    func(resp domain.WSResponse)

	mu         sync.Mutex
	activeChat string
}

func (s *wsSession) setActiveChat(chatID string) {
	s.mu.Lock()
	s.activeChat = chatID
	s.mu.Unlock()
}

func (s *wsSession) active() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeChat
}

// HandleConnection entry point of one websocket connection, returns when it closes
func (h *ChatWebsocketHandler) HandleConnection(ctx context.Context, conn *websocket.Conn) {
	memberID, ok := conn.Locals(middlewares.TokenMemberID).(string)
	if !ok || memberID == "" {
		closeWebSocketConnection(conn, websocket.ClosePolicyViolation, "unauthorized")
		return
	}
	logger.Log.Info("websocket open", zap.String("member_id", memberID))

	ctxClose, cancel := context.WithCancel(ctx)
	var writeMu sync.Mutex
	session := &wsSession{memberID: memberID, connID: uuid.NewString()}
	session.write = func(resp domain.WSResponse) {
		writeMu.Lock()
		defer writeMu.Unlock()
		h.sendResponse(conn, resp)
	}

	wsActiveConnections.Inc()
	defer func() {
		cancel()
		wsActiveConnections.Dec()
		// the request ctx may already be gone, presence must still be released
		cleanupCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		if err := h.presenceUC.Disconnect(cleanupCtx, memberID, session.connID); err != nil {
			logger.Log.Error("presence disconnect failed", zap.String("member_id", memberID), zap.Error(err))
		}
		done()
		logger.Log.Info("websocket close", zap.String("member_id", memberID))
		conn.Close()
	}()

	if err := h.presenceUC.Connect(ctxClose, memberID, session.connID); err != nil {
		logger.Log.Error("presence connect failed", zap.String("member_id", memberID), zap.Error(err))
	}

	if err := h.subscribe(ctxClose, session); err != nil {
		logger.Log.Error("subscribe failed", zap.String("member_id", memberID), zap.Error(err))
		return
	}

	readTimeout := 2 * h.pingInterval
	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))

	conn.SetCloseHandler(func(code int, text string) error {
		logger.Log.Debug("websocket closed by client", zap.String("member_id", memberID), zap.Int("code", code))
		return nil
	})

	conn.SetPongHandler(func(appData string) error {
		return conn.SetReadDeadline(time.Now().Add(readTimeout))
	})

	conn.SetPingHandler(func(appData string) error {
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
		writeMu.Lock()
		defer writeMu.Unlock()
		return conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(time.Second))
	})

	go h.keepAlive(ctxClose, conn, &writeMu, session)

	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseNoStatusReceived,
			) {
				logger.Log.Debug("connection closed", zap.String("member_id", memberID))
			} else {
				logger.Log.Warn("websocket read error", zap.String("member_id", memberID), zap.Error(err))
			}
			return
		}

		if mt != websocket.TextMessage {
			session.write(errorResponse("unsupported message type"))
			continue
		}

		var req domain.WSRequest
		if err := json.Unmarshal(message, &req); err != nil {
			session.write(errorResponse("invalid request"))
			continue
		}
		session.write(h.handleRequest(ctxClose, session, req))
	}
}

// keepAlive pings the client and refreshes the online flag
func (h *ChatWebsocketHandler) keepAlive(ctx context.Context, conn *websocket.Conn, writeMu *sync.Mutex, s *wsSession) {
	memberID := s.memberID
	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			writeMu.Lock()
			err := conn.WriteControl(websocket.PingMessage, []byte("ping"), time.Now().Add(time.Second))
			writeMu.Unlock()
			if err != nil {
				logger.Log.Debug("ping failed", zap.String("member_id", memberID), zap.Error(err))
				return
			}
			if err := h.presenceUC.Heartbeat(ctx, memberID, s.connID); err != nil {
				logger.Log.Warn("presence heartbeat failed", zap.String("member_id", memberID), zap.Error(err))
			}
		case <-ctx.Done():
			return
		}
	}
}

// subscribe forwards the member channel and presence changes of others to the session
func (h *ChatWebsocketHandler) subscribe(ctx context.Context, s *wsSession) error {
	if err := h.pubsub.Subscribe(ctx, repository.UserChannel(s.memberID), func(resp domain.WSResponse) {
		h.forward(ctx, s, resp)
	}); err != nil {
		return err
	}

	return h.pubsub.Subscribe(ctx, repository.PresenceChannel, func(resp domain.WSResponse) {
		if id, _ := resp.Payload["member_id"].(string); id == s.memberID {
			return
		}
		s.write(resp)
	})
}

// forward a message arriving in the open chat is read right away
func (h *ChatWebsocketHandler) forward(ctx context.Context, s *wsSession, resp domain.WSResponse) {
	if resp.Action == string(domain.NotifyMessage) {
		chatID, _ := resp.Payload["chat_id"].(string)
		if chatID != "" && chatID == s.active() {
			if _, err := h.chatUC.MarkRead(ctx, s.memberID, chatID); err != nil {
				logger.Log.Warn("auto mark read failed", zap.String("chat_id", chatID), zap.Error(err))
			} else if m, ok := resp.Payload["message"].(map[string]interface{}); ok {
				m["read"] = true
			}
		}
	}
	s.write(resp)
}

func (h *ChatWebsocketHandler) handleRequest(ctx context.Context, s *wsSession, req domain.WSRequest) domain.WSResponse {
	resp := domain.WSResponse{Action: req.Action, Payload: map[string]interface{}{}}
	memberID := s.memberID

	var err error
	switch domain.Action(req.Action) {
	case domain.ListChats:
		var chats []*domain.Chat
		if chats, err = h.chatUC.ListChats(ctx, memberID); err == nil {
			resp.Payload["chats"] = NewChatViews(chats, memberID)
		}

	case domain.ListChannels:
		var chats []*domain.Chat
		if chats, err = h.chatUC.ListGameChannels(ctx, memberID); err == nil {
			resp.Payload["channels"] = NewChatViews(chats, memberID)
		}

	case domain.OpenChat:
		var chat *domain.Chat
		var messages []*domain.Message
		if chat, messages, err = h.chatUC.OpenChat(ctx, memberID, req.ChatID); err == nil {
			s.setActiveChat(chat.ID)
			resp.Payload["chat"] = NewChatView(chat, memberID)
			resp.Payload["messages"] = messages
			typers, terr := h.presenceUC.TypingUsers(ctx, memberID, chat.ID)
			if terr != nil {
				logger.Log.Warn("typing lookup failed", zap.String("chat_id", chat.ID), zap.Error(terr))
			}
			resp.Payload["typing"] = typers
		}

	case domain.CloseChat:
		if active := s.active(); active != "" {
			if terr := h.presenceUC.SetTyping(ctx, memberID, active, false); terr != nil {
				logger.Log.Debug("typing clear on close failed", zap.String("chat_id", active), zap.Error(terr))
			}
		}
		s.setActiveChat("")
		resp.Payload["chat_id"] = req.ChatID

	case domain.CreateDirect:
		var chat *domain.Chat
		var created bool
		if chat, created, err = h.chatUC.GetOrCreateDirectChat(ctx, memberID, req.PeerID); err == nil {
			resp.Payload["chat"] = NewChatView(chat, memberID)
			resp.Payload["created"] = created
		}

	case domain.CreateGroup:
		var chat *domain.Chat
		if chat, err = h.chatUC.CreateGroupChat(ctx, memberID, req.Name, req.Members); err == nil {
			resp.Payload["chat"] = NewChatView(chat, memberID)
		}

	case domain.JoinGameChannel:
		var chat *domain.Chat
		if chat, err = h.chatUC.JoinGameChannel(ctx, memberID, req.GameID, req.GameName, req.ChannelName); err == nil {
			resp.Payload["chat"] = NewChatView(chat, memberID)
		}

	case domain.SendMessage:
		if h.limiter != nil && !h.limiter.Allow(memberID) {
			err = domain.ErrRateLimited
			break
		}
		var msg *domain.Message
		if msg, err = h.messageUC.SendMessage(ctx, memberID, req.ChatID, req.Content); err == nil {
			resp.Payload["message"] = msg
		}

	case domain.MarkRead:
		var n int64
		if n, err = h.chatUC.MarkRead(ctx, memberID, req.ChatID); err == nil {
			resp.Payload["chat_id"] = req.ChatID
			resp.Payload["marked"] = n
		}

	case domain.GetUnread:
		var counts map[string]int
		if counts, err = h.chatUC.UnreadCounts(ctx, memberID); err == nil {
			resp.Payload["unread"] = counts
		}

	case domain.Typing:
		if err = h.presenceUC.SetTyping(ctx, memberID, req.ChatID, req.IsTyping); err == nil {
			resp.Payload["chat_id"] = req.ChatID
			resp.Payload["is_typing"] = req.IsTyping
		}

	case domain.OnlineUsers:
		if len(req.Members) > 0 {
			var flags map[string]bool
			if flags, err = h.presenceUC.OnlineUsers(ctx, req.Members); err == nil {
				resp.Payload["online"] = flags
			}
		} else {
			var ids []string
			if ids, err = h.presenceUC.AllOnline(ctx); err == nil {
				resp.Payload["member_ids"] = ids
			}
		}

	default:
		err = errUnknownAction
	}

	if err != nil {
		resp.Error = err.Error()
		resp.Payload = nil
		logger.Log.Info("websocket action failed", zap.String("member_id", memberID), zap.String("action", req.Action), zap.Error(err))
	} else {
		resp.Success = true
	}
	observeAction(actionLabel(req.Action), resp.Success)
	return resp
}

var errUnknownAction = errors.New("unknown action")

// actionLabel keeps metric cardinality bounded
func actionLabel(action string) string {
	switch domain.Action(action) {
	case domain.ListChats, domain.ListChannels, domain.OpenChat, domain.CloseChat,
		domain.CreateDirect, domain.CreateGroup, domain.JoinGameChannel,
		domain.SendMessage, domain.MarkRead, domain.GetUnread, domain.Typing, domain.OnlineUsers:
		return action
	}
	return "unknown"
}

// sendResponse - write JSON to the client
func (h *ChatWebsocketHandler) sendResponse(conn *websocket.Conn, resp domain.WSResponse) {
	b, err := json.Marshal(resp)
	if err != nil {
		logger.Log.Error("marshal response failed", zap.String("action", resp.Action), zap.Error(err))
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
		logger.Log.Debug("write message error", zap.Error(err))
	}
}

func errorResponse(msg string) domain.WSResponse {
	return domain.WSResponse{Action: "error", Success: false, Error: msg}
}

func closeWebSocketConnection(conn *websocket.Conn, code int, reason string) {
	if err := conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason)); err != nil {
		logger.Log.Debug("failed to send close message", zap.Error(err))
	}
	conn.Close()
}
