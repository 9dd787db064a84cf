package chat

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// Inbound event names.
const (
	EventSetup         = "setup"
	EventJoinRoom      = "join_room"
	EventLeaveRoom     = "leave_room"
	EventTyping        = "typing"
	EventStopTyping    = "stop_typing"
	EventSendMessage   = "send_message"
	EventMessageStatus = "message_status_update"
	EventCallUser      = "call_user"
	EventAnswerCall    = "answer_call"
	EventEndCall       = "end_call"
)

// Outbound event names.
const (
	EventConnected      = "connected"
	EventReceiveMessage = "receive_message"
	EventUserList       = "update_user_list"
	EventDisplayTyping  = "display_typing"
	EventHideTyping     = "hide_typing"
	EventStatusUpdated  = "message_status_updated"
	EventIncomingCall   = "incoming_call"
	EventCallAccepted   = "call_accepted"
	EventCallEnded      = "call_ended"
)

// Frame is the wire envelope: one JSON object per WebSocket text frame.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

func ParseFrame(raw []byte) (*Frame, error) {
	f := &Frame{}
	if err := json.Unmarshal(raw, f); err != nil {
		return nil, errors.Wrap(err, "unmarshal frame")
	}
	if f.Event == "" {
		return nil, errors.New("frame has no event")
	}
	return f, nil
}

// EncodeFrame marshals an outbound envelope. v may be nil for events
// without payload, or a json.RawMessage to forward bytes untouched.
func EncodeFrame(event string, v any) ([]byte, error) {
	f := Frame{Event: event}
	if v != nil {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, errors.Wrapf(err, "marshal %s payload", event)
		}
		f.Data = data
	}
	raw, err := json.Marshal(f)
	if err != nil {
		return nil, errors.Wrapf(err, "marshal %s frame", event)
	}
	return raw, nil
}

// ---- inbound payloads ----

type SetupPayload struct {
	UID    string `json:"uid" validate:"required"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type JoinRoomPayload struct {
	Room     string `json:"room" validate:"required"`
	Username string `json:"username" validate:"required"`
	Avatar   string `json:"avatar"`
}

type LeaveRoomPayload struct {
	Room string `json:"room" validate:"required"`
}

type TypingPayload struct {
	Room     string `json:"room" validate:"required"`
	Username string `json:"username" validate:"required"`
}

type StopTypingPayload struct {
	Room string `json:"room" validate:"required"`
}

// RoomScoped extracts only the routing field of an opaque room-scoped
// payload (send_message, message_status_update); the payload itself is
// forwarded byte-for-byte.
type RoomScoped struct {
	Room string `json:"room" validate:"required"`
}

type CallUserPayload struct {
	UserToCall string `json:"userToCall" validate:"required"`
	SignalData any    `json:"signalData"`
	From       string `json:"from"`
	Name       string `json:"name"`
	CallType   string `json:"callType"`
}

type AnswerCallPayload struct {
	To     string `json:"to" validate:"required"`
	Signal any    `json:"signal"`
}

type EndCallPayload struct {
	To string `json:"to" validate:"required"`
}

// ---- outbound payloads ----

type IncomingCall struct {
	Signal   any    `json:"signal"`
	From     string `json:"from"`
	Name     string `json:"name"`
	CallType string `json:"callType"`
}

// SystemMessage is the chat line announcing joins and leaves.
type SystemMessage struct {
	Author  string `json:"author"`
	Message string `json:"message"`
	Time    string `json:"time"`
}

func NewSystemJoin(name string) SystemMessage {
	return SystemMessage{
		Author:  "System",
		Message: name + " has joined the chat",
		Time:    time.Now().Format("15:04"),
	}
}

func NewSystemLeave(name string) SystemMessage {
	return SystemMessage{
		Author:  "System",
		Message: name + " has left the chat",
		Time:    time.Now().Format("15:04"),
	}
}

// ---- payload decoding ----

var validate = validator.New()

// DecodePayload decodes an event payload into its typed struct and
// checks required fields. Decoding is weakly typed on purpose: clients
// are not trusted to get number/string distinctions right, and one bad
// payload must never take down the shared process.
func DecodePayload[T any](data json.RawMessage) (*T, error) {
	if len(data) == 0 {
		return nil, errors.New("empty payload")
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "payload is not an object")
	}

	var out T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           &out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(m); err != nil {
		return nil, errors.Wrap(err, "decode payload")
	}
	if err := validate.Struct(&out); err != nil {
		return nil, errors.Wrap(err, "validate payload")
	}
	return &out, nil
}
