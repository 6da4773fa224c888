package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"portal/internal/domain/entity"
	"portal/internal/domain/service"
	mockUsecase "portal/internal/mocks/usecase"
	"portal/internal/realtime"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// wsFakeConn records payloads instead of writing to a websocket.
type wsFakeConn struct {
	id     string
	userID uuid.UUID
	sent   [][]byte
}

func newWSFakeConn(userID uuid.UUID) *wsFakeConn {
	return &wsFakeConn{id: uuid.NewString(), userID: userID}
}

func (c *wsFakeConn) SessionID() string { return c.id }

func (c *wsFakeConn) UserID() uuid.UUID { return c.userID }

func (c *wsFakeConn) Send(payload []byte) error {
	c.sent = append(c.sent, payload)

	return nil
}

func (c *wsFakeConn) Close(code int, reason string) {}

func newWSTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWSHandler_SubscribeToConversations_AutoJoinsRooms(t *testing.T) {
	convUC := mockUsecase.NewMockConversationUsecase(t)
	hub := realtime.NewHub(newWSTestLogger())
	h := &WSHandler{logger: newWSTestLogger(), hub: hub, convUC: convUC}

	ctx := context.Background()
	userID := uuid.New()
	team := &entity.Conversation{ID: uuid.New(), Type: entity.ConversationTypeGroup, Name: "Varsity Team"}
	direct := &entity.Conversation{ID: uuid.New(), Type: entity.ConversationTypeDirect}

	conn := newWSFakeConn(userID)
	hub.Attach(conn)

	convUC.EXPECT().
		ListForUser(ctx, userID).
		Return([]*entity.Conversation{team, direct}, nil)

	h.subscribeToConversations(ctx, conn, newWSTestLogger())

	// A broadcast reaches the session without an explicit join frame.
	hub.BroadcastToConversation(team.ID, service.LiveEvent{Type: "newMessage"})
	require.Len(t, conn.sent, 1)

	var decoded service.LiveEvent
	require.NoError(t, json.Unmarshal(conn.sent[0], &decoded))
	assert.Equal(t, "newMessage", decoded.Type)

	assert.ElementsMatch(t, []uuid.UUID{team.ID, direct.ID}, hub.Rooms(conn))
}

func TestWSHandler_SubscribeToConversations_ListFailureKeepsSession(t *testing.T) {
	convUC := mockUsecase.NewMockConversationUsecase(t)
	hub := realtime.NewHub(newWSTestLogger())
	h := &WSHandler{logger: newWSTestLogger(), hub: hub, convUC: convUC}

	ctx := context.Background()
	userID := uuid.New()
	conn := newWSFakeConn(userID)
	hub.Attach(conn)

	convUC.EXPECT().
		ListForUser(ctx, userID).
		Return(nil, errors.New("connection refused"))

	h.subscribeToConversations(ctx, conn, newWSTestLogger())

	// The session stays attached; personal delivery still works.
	assert.Empty(t, hub.Rooms(conn))
	assert.True(t, hub.PublishToUser(userID, service.LiveEvent{Type: "newNotification"}))
}

func TestWSHandler_Dispatch_MarkReadSurvivesDisconnect(t *testing.T) {
	msgUC := mockUsecase.NewMockMessageUsecase(t)
	hub := realtime.NewHub(newWSTestLogger())
	h := &WSHandler{logger: newWSTestLogger(), hub: hub, msgUC: msgUC}

	userID := uuid.New()
	messageID := uuid.New()
	conn := newWSFakeConn(userID)
	hub.Attach(conn)

	// Simulate the socket dropping while the receipt write is in flight.
	reqCtx, cancel := context.WithCancel(context.Background())
	cancel()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ws", nil).WithContext(reqCtx)
	c := e.NewContext(req, httptest.NewRecorder())

	msgUC.EXPECT().
		MarkRead(mock.MatchedBy(func(ctx context.Context) bool {
			return ctx.Err() == nil
		}), userID, messageID).
		Return(nil)

	h.dispatch(c, conn, clientMessage{Type: "markAsRead", MessageID: messageID.String()}, newWSTestLogger())
}
