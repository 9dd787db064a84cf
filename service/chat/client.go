package chat

import (
	"sync"
	"time"

	"chatrelay/logger"

	"github.com/gorilla/websocket"
)

// Client is one live WebSocket connection. Display identity and room
// membership live in the Registry, never here; the client only owns the
// socket and its outbound queue (consumed by a single writer goroutine).
type Client struct {
	ConnID string
	WS     *websocket.Conn
	Send   chan []byte

	mu     sync.Mutex
	closed bool
}

func NewClient(connID string, ws *websocket.Conn, sendQueueSize int) *Client {
	return &Client{
		ConnID: connID,
		WS:     ws,
		Send:   make(chan []byte, sendQueueSize),
	}
}

// push enqueues a payload without blocking. A full queue means a slow
// client; the frame is dropped (best-effort fan-out). A closed client
// also drops: fan-outs hold target snapshots taken before unregister,
// so push must stay safe after Close.
func (c *Client) push(payload []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.Send <- payload:
		return true
	default:
		return false
	}
}

// Close shuts the outbound queue; the write pump sends the close frame
// and closes the socket on its way out. push and Close share the lock,
// so the queue is never closed under a concurrent send.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.Send)
}

// WritePump drains the send queue to the socket and keeps the connection
// alive with periodic pings. It is the only goroutine writing to WS.
func (c *Client) WritePump(pingInterval, writeWait time.Duration) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.WS.SetWriteDeadline(time.Now().Add(writeWait))
		_ = c.WS.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		_ = c.WS.Close()
	}()

	for {
		select {
		case payload, ok := <-c.Send:
			if !ok {
				return
			}
			_ = c.WS.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.WS.WriteMessage(websocket.TextMessage, payload); err != nil {
				logger.Debugf("[ws] write err conn=%s err=%v", c.ConnID, err)
				return
			}
		case <-ticker.C:
			_ = c.WS.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.WS.WriteControl(websocket.PingMessage, []byte("ping"), time.Now().Add(writeWait)); err != nil {
				logger.Debugf("[ws] ping err conn=%s err=%v", c.ConnID, err)
				return
			}
		}
	}
}
