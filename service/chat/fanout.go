package chat

import (
	"encoding/json"

	"chatrelay/logger"
)

// Fan-out helpers. Payloads are encoded once and pushed into each
// target's send queue without blocking; a slow client is skipped rather
// than allowed to stall the room (best-effort at-most-once delivery).

// ToClient emits an event to a single connection.
func (s *Server) ToClient(c *Client, event string, payload any) {
	raw, err := EncodeFrame(event, payload)
	if err != nil {
		logger.Errorf("[fanout] encode %s: %v", event, err)
		return
	}
	s.push([]*Client{c}, event, raw)
}

// ToRoom emits an event to every connection in room. exceptConnID may be
// empty to include the sender (member list refreshes) or the sender's
// conn id to exclude it (chat traffic, typing, status updates).
func (s *Server) ToRoom(room, exceptConnID, event string, payload any) {
	raw, err := EncodeFrame(event, payload)
	if err != nil {
		logger.Errorf("[fanout] encode %s: %v", event, err)
		return
	}
	s.push(s.reg.RoomClients(room, exceptConnID), event, raw)
}

// ToRoomRaw forwards an opaque payload to room untouched.
func (s *Server) ToRoomRaw(room, exceptConnID, event string, data json.RawMessage) {
	s.ToRoom(room, exceptConnID, event, data)
}

// ToChannel emits an event to every connection subscribed to a private
// identity channel, regardless of the room those connections are in.
func (s *Server) ToChannel(channel, event string, payload any) {
	raw, err := EncodeFrame(event, payload)
	if err != nil {
		logger.Errorf("[fanout] encode %s: %v", event, err)
		return
	}
	s.push(s.reg.ChannelClients(channel), event, raw)
}

func (s *Server) push(targets []*Client, event string, raw []byte) {
	for _, c := range targets {
		if c == nil {
			continue
		}
		if !c.push(raw) {
			logger.Warnf("[fanout] drop %s conn=%s: queue full or closed", event, c.ConnID)
		}
	}
}
