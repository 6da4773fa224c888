package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"

	"portal/internal/domain/service"

	"github.com/google/uuid"
)

// Hub coordinates live sessions and logical rooms (conversations). A user may
// hold several sessions at once, one per open client; the user counts as
// online while at least one session remains. The hub implements
// service.LivePublisher for the fan-out layer.
type Hub struct {
	mu           sync.RWMutex
	sessions     map[string]Conn                     // sessionID -> connection
	userSessions map[uuid.UUID]map[string]struct{}   // userID -> set of sessionIDs
	rooms        map[uuid.UUID]map[string]Conn       // conversationID -> sessionID -> connection
	sessionRooms map[string]map[uuid.UUID]struct{}   // sessionID -> set of conversationIDs

	logger *slog.Logger
}

// NewHub constructs an initialized Hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		sessions:     make(map[string]Conn),
		userSessions: make(map[uuid.UUID]map[string]struct{}),
		rooms:        make(map[uuid.UUID]map[string]Conn),
		sessionRooms: make(map[string]map[uuid.UUID]struct{}),
		logger:       logger,
	}
}

// Attach registers a session. It reports whether this is the user's first live
// session, i.e. whether the user just came online.
func (h *Hub) Attach(conn Conn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	sessions := h.userSessions[conn.UserID()]
	if sessions == nil {
		sessions = make(map[string]struct{})
		h.userSessions[conn.UserID()] = sessions
	}
	wasOffline := len(sessions) == 0

	h.sessions[conn.SessionID()] = conn
	sessions[conn.SessionID()] = struct{}{}
	h.sessionRooms[conn.SessionID()] = make(map[uuid.UUID]struct{})

	return wasOffline
}

// Detach removes a session and its room memberships. It reports whether the
// user now has no live sessions left, i.e. whether the user went offline.
func (h *Hub) Detach(conn Conn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.sessions[conn.SessionID()]; !ok {
		return false
	}
	delete(h.sessions, conn.SessionID())

	for roomID := range h.sessionRooms[conn.SessionID()] {
		h.leaveLocked(roomID, conn.SessionID())
	}
	delete(h.sessionRooms, conn.SessionID())

	sessions := h.userSessions[conn.UserID()]
	delete(sessions, conn.SessionID())
	if len(sessions) == 0 {
		delete(h.userSessions, conn.UserID())

		return true
	}

	return false
}

// Join subscribes a session to a conversation room.
func (h *Hub) Join(conversationID uuid.UUID, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.sessions[conn.SessionID()]; !ok {
		return
	}

	room := h.rooms[conversationID]
	if room == nil {
		room = make(map[string]Conn)
		h.rooms[conversationID] = room
	}
	room[conn.SessionID()] = conn

	memberships := h.sessionRooms[conn.SessionID()]
	if memberships == nil {
		memberships = make(map[uuid.UUID]struct{})
		h.sessionRooms[conn.SessionID()] = memberships
	}
	memberships[conversationID] = struct{}{}
}

// Leave unsubscribes a session from a conversation room.
func (h *Hub) Leave(conversationID uuid.UUID, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.leaveLocked(conversationID, conn.SessionID())
}

// SubscribeUser subscribes every live session of a user to the conversation
// room. Keeps membership changes in sync with already connected sessions.
func (h *Hub) SubscribeUser(conversationID, userID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sessionID := range h.userSessions[userID] {
		conn := h.sessions[sessionID]
		if conn == nil {
			continue
		}

		room := h.rooms[conversationID]
		if room == nil {
			room = make(map[string]Conn)
			h.rooms[conversationID] = room
		}
		room[sessionID] = conn
		h.sessionRooms[sessionID][conversationID] = struct{}{}
	}
}

// UnsubscribeUser removes every live session of a user from the conversation
// room.
func (h *Hub) UnsubscribeUser(conversationID, userID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sessionID := range h.userSessions[userID] {
		h.leaveLocked(conversationID, sessionID)
	}
}

// Rooms returns the conversations a session is currently subscribed to.
func (h *Hub) Rooms(conn Conn) []uuid.UUID {
	h.mu.RLock()
	defer h.mu.RUnlock()

	memberships := h.sessionRooms[conn.SessionID()]
	rooms := make([]uuid.UUID, 0, len(memberships))
	for roomID := range memberships {
		rooms = append(rooms, roomID)
	}

	return rooms
}

// PublishToUser delivers an event to every live session of a user.
func (h *Hub) PublishToUser(userID uuid.UUID, event service.LiveEvent) bool {
	payload, ok := h.encode(event)
	if !ok {
		return false
	}

	h.mu.RLock()
	conns := make([]Conn, 0, len(h.userSessions[userID]))
	for sessionID := range h.userSessions[userID] {
		if conn := h.sessions[sessionID]; conn != nil {
			conns = append(conns, conn)
		}
	}
	h.mu.RUnlock()

	delivered := false
	for _, conn := range conns {
		if err := conn.Send(payload); err == nil {
			delivered = true
		}
	}

	return delivered
}

// BroadcastToConversation delivers an event to every session subscribed to
// the conversation room, excluding the given users.
func (h *Hub) BroadcastToConversation(conversationID uuid.UUID, event service.LiveEvent, exclude ...uuid.UUID) {
	payload, ok := h.encode(event)
	if !ok {
		return
	}

	excluded := make(map[uuid.UUID]struct{}, len(exclude))
	for _, id := range exclude {
		excluded[id] = struct{}{}
	}

	h.mu.RLock()
	conns := make([]Conn, 0, len(h.rooms[conversationID]))
	for _, conn := range h.rooms[conversationID] {
		if _, skip := excluded[conn.UserID()]; skip {
			continue
		}
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		_ = conn.Send(payload)
	}
}

// IsOnline reports whether the user currently has at least one live session.
func (h *Hub) IsOnline(userID uuid.UUID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.userSessions[userID]) > 0
}

// Close terminates all tracked sessions and clears hub state.
func (h *Hub) Close() {
	h.mu.Lock()
	sessions := make([]Conn, 0, len(h.sessions))
	for _, conn := range h.sessions {
		sessions = append(sessions, conn)
	}
	h.sessions = make(map[string]Conn)
	h.userSessions = make(map[uuid.UUID]map[string]struct{})
	h.rooms = make(map[uuid.UUID]map[string]Conn)
	h.sessionRooms = make(map[string]map[uuid.UUID]struct{})
	h.mu.Unlock()

	for _, conn := range sessions {
		conn.Close(1001, "hub shutdown")
	}
}

func (h *Hub) encode(event service.LiveEvent) ([]byte, bool) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("Failed to encode live event", slog.String("type", event.Type), slog.Any("error", err))

		return nil, false
	}

	return payload, true
}

func (h *Hub) leaveLocked(conversationID uuid.UUID, sessionID string) {
	room := h.rooms[conversationID]
	if room == nil {
		return
	}
	delete(room, sessionID)
	if len(room) == 0 {
		delete(h.rooms, conversationID)
	}
	if memberships, ok := h.sessionRooms[sessionID]; ok {
		delete(memberships, conversationID)
	}
}
