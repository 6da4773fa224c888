// Package realtime implements the in-memory websocket session registry used
// for live message delivery, typing indicators and presence.
package realtime

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	defaultWriteWait      = 10 * time.Second
	defaultPingInterval   = 30 * time.Second
	defaultSendBufferSize = 128
)

// Conn is the hub's view of one live session. It is an interface so that the
// hub can be exercised without a real websocket.
type Conn interface {
	// SessionID uniquely identifies this session.
	SessionID() string

	// UserID identifies the authenticated owner of the session.
	UserID() uuid.UUID

	// Send enqueues a payload for delivery.
	Send(payload []byte) error

	// Close terminates the session.
	Close(code int, reason string)
}

// ConnectionOptions tunes a Connection. Zero values fall back to defaults.
type ConnectionOptions struct {
	SendBufferSize int
	PingInterval   time.Duration
	WriteWait      time.Duration
}

// Connection wraps a websocket and coordinates outbound writes via a buffered
// channel. It is safe for concurrent use.
type Connection struct {
	id     string
	userID uuid.UUID

	ws           *websocket.Conn
	send         chan []byte
	once         sync.Once
	closed       chan struct{}
	pingInterval time.Duration
	writeWait    time.Duration
}

// NewConnection constructs a Connection for the given user.
func NewConnection(userID uuid.UUID, ws *websocket.Conn, opts ConnectionOptions) *Connection {
	if opts.SendBufferSize <= 0 {
		opts.SendBufferSize = defaultSendBufferSize
	}
	if opts.PingInterval <= 0 {
		opts.PingInterval = defaultPingInterval
	}
	if opts.WriteWait <= 0 {
		opts.WriteWait = defaultWriteWait
	}

	return &Connection{
		id:           uuid.NewString(),
		userID:       userID,
		ws:           ws,
		send:         make(chan []byte, opts.SendBufferSize),
		closed:       make(chan struct{}),
		pingInterval: opts.PingInterval,
		writeWait:    opts.WriteWait,
	}
}

// SessionID returns the unique session identifier.
func (c *Connection) SessionID() string {
	return c.id
}

// UserID returns the owner of the session.
func (c *Connection) UserID() uuid.UUID {
	return c.userID
}

// Start launches the write loop. It must be called exactly once per connection.
func (c *Connection) Start() {
	go c.writeLoop()
}

// Send enqueues payload for delivery. If the client is slow and the buffer is
// full, the connection is closed to keep backpressure bounded.
func (c *Connection) Send(payload []byte) error {
	select {
	case <-c.closed:
		return errors.New("connection closed")
	case c.send <- payload:
		return nil
	default:
		c.Close(websocket.CloseGoingAway, "send buffer full")

		return errors.New("connection buffer exceeded")
	}
}

// Close terminates the connection and stops the write loop.
func (c *Connection) Close(code int, reason string) {
	c.once.Do(func() {
		close(c.closed)
		_ = c.ws.SetWriteDeadline(time.Now().Add(c.writeWait))
		_ = c.ws.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), time.Now().Add(c.writeWait))
		_ = c.ws.Close()
	})
}

func (c *Connection) writeLoop() {
	ticker := time.NewTicker(c.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.closed:
			return
		case msg := <-c.send:
			if err := c.writeMessage(msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.writePing(); err != nil {
				return
			}
		}
	}
}

func (c *Connection) writeMessage(payload []byte) error {
	if err := c.ws.SetWriteDeadline(time.Now().Add(c.writeWait)); err != nil {
		return err
	}

	return c.ws.WriteMessage(websocket.TextMessage, payload)
}

func (c *Connection) writePing() error {
	if err := c.ws.SetWriteDeadline(time.Now().Add(c.writeWait)); err != nil {
		return err
	}

	return c.ws.WriteMessage(websocket.PingMessage, nil)
}
