package realtime

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"portal/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConn records payloads instead of writing to a websocket.
type fakeConn struct {
	id       string
	userID   uuid.UUID
	sent     [][]byte
	failSend bool
	closed   bool
}

func newFakeConn(userID uuid.UUID) *fakeConn {
	return &fakeConn{id: uuid.NewString(), userID: userID}
}

func (c *fakeConn) SessionID() string { return c.id }

func (c *fakeConn) UserID() uuid.UUID { return c.userID }

func (c *fakeConn) Send(payload []byte) error {
	if c.failSend {
		return errors.New("send buffer full")
	}
	c.sent = append(c.sent, payload)

	return nil
}

func (c *fakeConn) Close(code int, reason string) { c.closed = true }

func newTestHub() *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHub_AttachDetach_PresenceRefcount(t *testing.T) {
	hub := newTestHub()
	userID := uuid.New()

	phone := newFakeConn(userID)
	laptop := newFakeConn(userID)

	assert.True(t, hub.Attach(phone), "first session brings the user online")
	assert.False(t, hub.Attach(laptop), "second session does not change presence")
	assert.True(t, hub.IsOnline(userID))

	assert.False(t, hub.Detach(phone), "one session left, still online")
	assert.True(t, hub.IsOnline(userID))

	assert.True(t, hub.Detach(laptop), "last session takes the user offline")
	assert.False(t, hub.IsOnline(userID))
}

func TestHub_Detach_UnknownSessionIsNoop(t *testing.T) {
	hub := newTestHub()
	conn := newFakeConn(uuid.New())

	assert.False(t, hub.Detach(conn))
}

func TestHub_PublishToUser_ReachesAllSessions(t *testing.T) {
	hub := newTestHub()
	userID := uuid.New()

	phone := newFakeConn(userID)
	laptop := newFakeConn(userID)
	hub.Attach(phone)
	hub.Attach(laptop)

	event := service.LiveEvent{Type: "newNotification", Payload: map[string]any{"id": "n1"}}
	delivered := hub.PublishToUser(userID, event)

	assert.True(t, delivered)
	require.Len(t, phone.sent, 1)
	require.Len(t, laptop.sent, 1)

	var decoded service.LiveEvent
	require.NoError(t, json.Unmarshal(phone.sent[0], &decoded))
	assert.Equal(t, "newNotification", decoded.Type)
}

func TestHub_SubscribeUser_JoinsAllSessions(t *testing.T) {
	hub := newTestHub()
	userID := uuid.New()
	conversationID := uuid.New()

	phone := newFakeConn(userID)
	laptop := newFakeConn(userID)
	hub.Attach(phone)
	hub.Attach(laptop)

	hub.SubscribeUser(conversationID, userID)

	hub.BroadcastToConversation(conversationID, service.LiveEvent{Type: "newMessage"})
	require.Len(t, phone.sent, 1)
	require.Len(t, laptop.sent, 1)
	assert.Contains(t, hub.Rooms(phone), conversationID)
}

func TestHub_SubscribeUser_OfflineUserIsNoop(t *testing.T) {
	hub := newTestHub()

	hub.SubscribeUser(uuid.New(), uuid.New())

	hub.BroadcastToConversation(uuid.New(), service.LiveEvent{Type: "newMessage"})
}

func TestHub_UnsubscribeUser_StopsRoomDelivery(t *testing.T) {
	hub := newTestHub()
	userID := uuid.New()
	conversationID := uuid.New()

	phone := newFakeConn(userID)
	laptop := newFakeConn(userID)
	hub.Attach(phone)
	hub.Attach(laptop)
	hub.SubscribeUser(conversationID, userID)

	hub.UnsubscribeUser(conversationID, userID)

	hub.BroadcastToConversation(conversationID, service.LiveEvent{Type: "newMessage"})
	assert.Empty(t, phone.sent)
	assert.Empty(t, laptop.sent)
	assert.Empty(t, hub.Rooms(phone))
}

func TestHub_PublishToUser_OfflineUser(t *testing.T) {
	hub := newTestHub()

	delivered := hub.PublishToUser(uuid.New(), service.LiveEvent{Type: "newNotification"})
	assert.False(t, delivered)
}

func TestHub_PublishToUser_AllSendsFail(t *testing.T) {
	hub := newTestHub()
	userID := uuid.New()

	conn := newFakeConn(userID)
	conn.failSend = true
	hub.Attach(conn)

	delivered := hub.PublishToUser(userID, service.LiveEvent{Type: "newNotification"})
	assert.False(t, delivered)
}

func TestHub_BroadcastToConversation_ExcludesUsers(t *testing.T) {
	hub := newTestHub()
	conversationID := uuid.New()

	sender := newFakeConn(uuid.New())
	member := newFakeConn(uuid.New())
	outsider := newFakeConn(uuid.New())

	hub.Attach(sender)
	hub.Attach(member)
	hub.Attach(outsider)
	hub.Join(conversationID, sender)
	hub.Join(conversationID, member)

	hub.BroadcastToConversation(conversationID, service.LiveEvent{Type: "newMessage"}, sender.UserID())

	assert.Empty(t, sender.sent, "excluded sender must not receive the event")
	assert.Len(t, member.sent, 1)
	assert.Empty(t, outsider.sent, "sessions outside the room must not receive the event")
}

func TestHub_Join_RequiresAttachedSession(t *testing.T) {
	hub := newTestHub()
	conversationID := uuid.New()
	conn := newFakeConn(uuid.New())

	hub.Join(conversationID, conn)
	hub.BroadcastToConversation(conversationID, service.LiveEvent{Type: "newMessage"})

	assert.Empty(t, conn.sent)
}

func TestHub_Leave_StopsDelivery(t *testing.T) {
	hub := newTestHub()
	conversationID := uuid.New()
	conn := newFakeConn(uuid.New())

	hub.Attach(conn)
	hub.Join(conversationID, conn)
	hub.Leave(conversationID, conn)

	hub.BroadcastToConversation(conversationID, service.LiveEvent{Type: "typing"})
	assert.Empty(t, conn.sent)
	assert.Empty(t, hub.Rooms(conn))
}

func TestHub_Detach_CleansRoomMemberships(t *testing.T) {
	hub := newTestHub()
	conversationID := uuid.New()
	conn := newFakeConn(uuid.New())

	hub.Attach(conn)
	hub.Join(conversationID, conn)
	require.Len(t, hub.Rooms(conn), 1)

	hub.Detach(conn)

	hub.BroadcastToConversation(conversationID, service.LiveEvent{Type: "newMessage"})
	assert.Empty(t, conn.sent)
}

func TestHub_Close_TerminatesSessions(t *testing.T) {
	hub := newTestHub()
	userID := uuid.New()
	conn := newFakeConn(userID)

	hub.Attach(conn)
	hub.Close()

	assert.True(t, conn.closed)
	assert.False(t, hub.IsOnline(userID))
}
