package chat

import (
	"net"
	"time"

	"chatrelay/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// HandleWS upgrades the connection, registers it, and runs the read
// loop. Events from one connection are handled in arrival order on this
// goroutine; the write pump is the only goroutine writing to the socket.
func (s *Server) HandleWS(c *gin.Context) {
	ws, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warnf("[ws] upgrade failed: %v", err)
		return
	}

	connID := uuid.NewString()
	client := NewClient(connID, ws, s.cfg.SendQueueSize)
	s.reg.Register(connID, client)
	logger.Infof("[ws] connected conn=%s remote=%s", connID, ws.RemoteAddr())

	ws.SetReadLimit(s.cfg.ReadLimitBytes)
	_ = ws.SetReadDeadline(time.Now().Add(s.cfg.PongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(s.cfg.PongWait))
	})
	go client.WritePump(s.cfg.PingInterval, s.cfg.WriteWait)

	for {
		mt, data, rerr := ws.ReadMessage()
		if rerr != nil {
			if websocket.IsCloseError(rerr,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseNoStatusReceived,
			) {
				logger.Infof("[ws] peer closed conn=%s", connID)
			} else if ne, ok := rerr.(net.Error); ok && ne.Timeout() {
				logger.Infof("[ws] read timeout conn=%s", connID)
			} else {
				logger.Infof("[ws] read err conn=%s err=%v", connID, rerr)
			}
			break
		}
		if mt != websocket.TextMessage && mt != websocket.BinaryMessage {
			continue
		}

		f, perr := ParseFrame(data)
		if perr != nil {
			sample := data
			if len(sample) > 256 {
				sample = sample[:256]
			}
			logger.Warnf("[ws] bad frame conn=%s err=%v sample=%q", connID, perr, sample)
			continue
		}

		if derr := s.disp.Dispatch(&Context{S: s}, f, client); derr != nil {
			// One client's bad event must not crash or disconnect
			// anyone, the sender included. Log and move on.
			logger.Warnf("[ws] drop %s conn=%s err=%v", f.Event, connID, derr)
		}
	}

	s.Disconnect(client)
}

// Disconnect runs the terminal transition: unregister, then tell the
// prior room who left. The broadcast happens after the entry is gone,
// so the member list never shows the departed identity.
func (s *Server) Disconnect(client *Client) {
	room, id, members, ok := s.reg.Unregister(client.ConnID)
	if ok && room != "" {
		s.ToRoom(room, client.ConnID, EventReceiveMessage, NewSystemLeave(id.Name))
		s.ToRoom(room, client.ConnID, EventUserList, members)
	}
	client.Close()
	logger.Infof("[ws] disconnected conn=%s user=%s", client.ConnID, id.Name)
}
