package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/service"
	"portal/internal/realtime"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultPongTimeout = 60 * time.Second

// clientMessage is the envelope for every message a websocket client sends.
type clientMessage struct {
	Type           string `json:"type"`
	ConversationID string `json:"conversation_id,omitempty"`
	MessageID      string `json:"message_id,omitempty"`
}

// WSHandler upgrades authenticated clients to websocket sessions and routes
// their typing, read and room subscription messages.
type WSHandler struct {
	cfg      *config.Config
	logger   *slog.Logger
	hub      *realtime.Hub
	tokenSvc service.TokenService
	userUC   usecase.UserUsecase
	convUC   usecase.ConversationUsecase
	msgUC    usecase.MessageUsecase

	upgrader websocket.Upgrader
}

// WSHandlerParams holds dependencies for the WSHandler
type WSHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	Hub            *realtime.Hub
	TokenService   service.TokenService
	UserUC         usecase.UserUsecase
	ConversationUC usecase.ConversationUsecase
	MessageUC      usecase.MessageUsecase
}

// NewWSHandler is the constructor for WSHandler, injected by Fx.
func NewWSHandler(params WSHandlerParams) *WSHandler {
	allowed := params.Config.WebSocket.AllowedOrigins

	return &WSHandler{
		cfg:      params.Config,
		logger:   params.Logger,
		hub:      params.Hub,
		tokenSvc: params.TokenService,
		userUC:   params.UserUC,
		convUC:   params.ConversationUC,
		msgUC:    params.MessageUC,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if len(allowed) == 0 || slices.Contains(allowed, "*") {
					return true
				}

				return slices.Contains(allowed, r.Header.Get("Origin"))
			},
		},
	}
}

// Serve authenticates the client, upgrades the connection and runs the session
// until the client disconnects.
func (h *WSHandler) Serve(c echo.Context) error {
	userID, err := h.authenticate(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or missing token"})
	}

	ws, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		return nil
	}

	conn := realtime.NewConnection(userID, ws, realtime.ConnectionOptions{
		SendBufferSize: h.cfg.WebSocket.SendBufferSize,
		PingInterval:   h.cfg.WebSocket.PingInterval,
	})
	conn.Start()

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		With(slog.String("session_id", conn.SessionID()), slog.String("user_id", userID.String()))

	cameOnline := h.hub.Attach(conn)
	if cameOnline {
		h.setPresence(c.Request().Context(), userID, true)
	}
	h.subscribeToConversations(c.Request().Context(), conn, logger)
	if cameOnline {
		for _, roomID := range h.hub.Rooms(conn) {
			h.hub.BroadcastToConversation(roomID, service.LiveEvent{
				Type: "presenceChanged",
				Payload: map[string]any{
					"user_id": userID.String(),
					"online":  true,
				},
			}, userID)
		}
	}
	logger.Info("Websocket session opened", slog.Bool("came_online", cameOnline))

	h.readLoop(c, conn, ws, logger)

	// Capture room subscriptions before detaching so presence can be announced
	// to the conversations the session was watching.
	rooms := h.hub.Rooms(conn)
	wentOffline := h.hub.Detach(conn)
	conn.Close(websocket.CloseNormalClosure, "session ended")

	if wentOffline {
		// The request context may already be canceled once the socket drops.
		h.setPresence(context.Background(), userID, false)
		for _, roomID := range rooms {
			h.hub.BroadcastToConversation(roomID, service.LiveEvent{
				Type: "presenceChanged",
				Payload: map[string]any{
					"user_id": userID.String(),
					"online":  false,
				},
			}, userID)
		}
	}
	logger.Info("Websocket session closed", slog.Bool("went_offline", wentOffline))

	return nil
}

// authenticate resolves the caller from the token query parameter or the
// Authorization header. Browsers cannot set headers on websocket requests, so
// the query parameter form is the primary one.
func (h *WSHandler) authenticate(c echo.Context) (uuid.UUID, error) {
	tokenString := c.QueryParam("token")
	if tokenString == "" {
		authHeader := c.Request().Header.Get("Authorization")
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
	}

	claims, err := h.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, err
	}
	if claims.Type != "access" {
		return uuid.Nil, websocket.ErrBadHandshake
	}

	return claims.UserID, nil
}

// subscribeToConversations joins the session to the rooms of every
// conversation the user currently belongs to. Later membership changes are
// propagated through the hub by the conversation service.
func (h *WSHandler) subscribeToConversations(ctx context.Context, conn realtime.Conn, logger *slog.Logger) {
	conversations, err := h.convUC.ListForUser(ctx, conn.UserID())
	if err != nil {
		logger.Warn("Failed to load conversations for session subscription", slog.Any("error", err))

		return
	}

	for _, conversation := range conversations {
		h.hub.Join(conversation.ID, conn)
	}
}

func (h *WSHandler) readLoop(c echo.Context, conn *realtime.Connection, ws *websocket.Conn, logger *slog.Logger) {
	pongTimeout := h.cfg.WebSocket.PongTimeout
	if pongTimeout <= 0 {
		pongTimeout = defaultPongTimeout
	}

	ws.SetReadLimit(4096)
	_ = ws.SetReadDeadline(time.Now().Add(pongTimeout))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongTimeout))
	})

	for {
		_, payload, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("Websocket read failed", slog.Any("error", err))
			}

			return
		}

		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			logger.Warn("Dropping malformed client message", slog.Any("error", err))

			continue
		}

		h.dispatch(c, conn, msg, logger)
	}
}

// dispatch routes one parsed client message.
func (h *WSHandler) dispatch(c echo.Context, conn realtime.Conn, msg clientMessage, logger *slog.Logger) {
	ctx := c.Request().Context()

	switch msg.Type {
	case "joinConversation":
		conversationID, err := uuid.Parse(msg.ConversationID)
		if err != nil {
			return
		}
		// Membership is checked before subscribing the session to the room.
		if _, err := h.convUC.Get(ctx, conn.UserID(), conversationID); err != nil {
			logger.Warn("Rejected room join", slog.String("conversation_id", msg.ConversationID), slog.Any("error", err))

			return
		}
		h.hub.Join(conversationID, conn)
		h.hub.BroadcastToConversation(conversationID, service.LiveEvent{
			Type: "presenceChanged",
			Payload: map[string]any{
				"user_id": conn.UserID().String(),
				"online":  true,
			},
		}, conn.UserID())

	case "leaveConversation":
		conversationID, err := uuid.Parse(msg.ConversationID)
		if err != nil {
			return
		}
		h.hub.Leave(conversationID, conn)

	case "typing", "stopTyping":
		conversationID, err := uuid.Parse(msg.ConversationID)
		if err != nil {
			return
		}
		// Typing indicators only reach sessions already subscribed to the room,
		// so membership was verified when they joined.
		h.hub.BroadcastToConversation(conversationID, service.LiveEvent{
			Type: msg.Type,
			Payload: map[string]any{
				"conversation_id": conversationID.String(),
				"user_id":         conn.UserID().String(),
			},
		}, conn.UserID())

	case "markAsRead":
		messageID, err := uuid.Parse(msg.MessageID)
		if err != nil {
			return
		}
		// The receipt write must survive the socket dropping mid-call.
		readCtx := context.WithoutCancel(ctx)
		if err := h.msgUC.MarkRead(readCtx, conn.UserID(), messageID); err != nil {
			logger.Warn("Failed to mark message read", slog.String("message_id", msg.MessageID), slog.Any("error", err))
		}

	default:
		logger.Warn("Unknown client message type", slog.String("type", msg.Type))
	}
}

func (h *WSHandler) setPresence(ctx context.Context, userID uuid.UUID, online bool) {
	if err := h.userUC.SetPresence(ctx, userID, online); err != nil {
		h.logger.Warn("Failed to persist presence",
			slog.String("user_id", userID.String()),
			slog.Bool("online", online),
			slog.Any("error", err),
		)
	}
}
