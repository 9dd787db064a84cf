package chat

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrame(t *testing.T) {
	f, err := ParseFrame([]byte(`{"event":"join_room","data":{"room":"lobby","username":"alice"}}`))
	require.NoError(t, err)
	require.Equal(t, EventJoinRoom, f.Event)

	p, err := DecodePayload[JoinRoomPayload](f.Data)
	require.NoError(t, err)
	require.Equal(t, "lobby", p.Room)
	require.Equal(t, "alice", p.Username)
}

func TestParseFrameRejectsGarbage(t *testing.T) {
	_, err := ParseFrame([]byte(`not json`))
	assert.Error(t, err)

	_, err = ParseFrame([]byte(`{"data":{"room":"lobby"}}`))
	assert.Error(t, err, "missing event name")
}

func TestDecodePayloadValidatesRequiredFields(t *testing.T) {
	_, err := DecodePayload[JoinRoomPayload](json.RawMessage(`{"username":"alice"}`))
	assert.Error(t, err, "room is required")

	_, err = DecodePayload[RoomScoped](json.RawMessage(`{"author":"alice","message":"hi"}`))
	assert.Error(t, err, "room-scoped payload without room")

	_, err = DecodePayload[SetupPayload](json.RawMessage(`"just a string"`))
	assert.Error(t, err, "payload must be an object")

	_, err = DecodePayload[SetupPayload](nil)
	assert.Error(t, err)
}

func TestDecodePayloadIsWeaklyTyped(t *testing.T) {
	// Clients are sloppy about number/string distinctions; the decoder
	// tolerates them instead of dropping the event.
	p, err := DecodePayload[RoomScoped](json.RawMessage(`{"room":42,"extra":"ignored"}`))
	require.NoError(t, err)
	require.Equal(t, "42", p.Room)
}

func TestDecodePayloadKeepsOpaqueSignal(t *testing.T) {
	p, err := DecodePayload[CallUserPayload](json.RawMessage(
		`{"userToCall":"u2","signalData":{"type":"offer","sdp":"v=0"},"from":"u1","name":"alice","callType":"video"}`))
	require.NoError(t, err)
	require.Equal(t, "u2", p.UserToCall)
	sig, ok := p.SignalData.(map[string]any)
	require.True(t, ok)
	require.Equal(t, "offer", sig["type"])
}

func TestEncodeFrame(t *testing.T) {
	raw, err := EncodeFrame(EventUserList, []string{"alice", "bob"})
	require.NoError(t, err)
	require.JSONEq(t, `{"event":"update_user_list","data":["alice","bob"]}`, string(raw))

	raw, err = EncodeFrame(EventHideTyping, nil)
	require.NoError(t, err)
	require.JSONEq(t, `{"event":"hide_typing"}`, string(raw))

	// Raw payloads pass through byte-for-byte.
	raw, err = EncodeFrame(EventReceiveMessage, json.RawMessage(`{"room":"lobby","message":"hi"}`))
	require.NoError(t, err)
	require.JSONEq(t, `{"event":"receive_message","data":{"room":"lobby","message":"hi"}}`, string(raw))
}

func TestSystemMessages(t *testing.T) {
	m := NewSystemJoin("alice")
	require.Equal(t, "System", m.Author)
	require.Equal(t, "alice has joined the chat", m.Message)
	require.Regexp(t, `^\d{2}:\d{2}$`, m.Time)

	m = NewSystemLeave("bob")
	require.Equal(t, "bob has left the chat", m.Message)
}

func TestPairRoomID(t *testing.T) {
	require.Equal(t, "u1_u2", PairRoomID("u1", "u2"))
	require.Equal(t, "u1_u2", PairRoomID("u2", "u1"), "both sides derive the same id")
	require.Equal(t, "a_b", PairRoomID("b", "a"))
}
