package gateway

import (
	"context"
	"time"

	"campuschat/internal/chat"

	"github.com/google/uuid"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// Client wraps one live websocket connection. Identity is set exactly once,
// after the handshake succeeds; the gateway is the only mutator.
type Client struct {
	ID       uuid.UUID
	Identity chat.Identity

	conn *websocket.Conn
	send chan Event

	ctx    context.Context
	cancel context.CancelFunc
}

func newClient(conn *websocket.Conn, buffer int) *Client {
	ctx, cancel := context.WithCancel(context.Background())
	return &Client{
		ID:     uuid.New(),
		conn:   conn,
		send:   make(chan Event, buffer),
		ctx:    ctx,
		cancel: cancel,
	}
}

// trySend queues an event without blocking. A full queue or a torn-down
// client drops the frame rather than stalling the broadcaster.
func (c *Client) trySend(ev Event) bool {
	select {
	case <-c.ctx.Done():
		return false
	default:
	}

	select {
	case c.send <- ev:
		return true
	default:
		return false
	}
}

func (c *Client) writeLoop() {
	for {
		select {
		case <-c.ctx.Done():
			return
		case ev := <-c.send:
			writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			_ = wsjson.Write(writeCtx, c.conn, ev)
			cancel()
		}
	}
}

func (c *Client) keepAliveLoop() {
	ticker := time.NewTicker(25 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			_ = c.conn.Ping(pingCtx)
			cancel()
		}
	}
}

func (c *Client) close(code websocket.StatusCode, reason string) {
	c.cancel()
	if c.conn != nil {
		_ = c.conn.Close(code, reason)
	}
}
