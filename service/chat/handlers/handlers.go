// Package handlers holds one Handler per inbound relay event. Handlers
// decode and validate the payload, apply the registry mutation, and fan
// out to the target set computed for that event.
package handlers

import (
	chat "chatrelay/service/chat"

	"github.com/pkg/errors"
)

// Register installs every relay handler on the server's dispatcher.
func Register(s *chat.Server) {
	for _, h := range []chat.Handler{
		&SetupHandler{},
		&JoinRoomHandler{},
		&LeaveRoomHandler{},
		&TypingHandler{},
		&StopTypingHandler{},
		&SendMessageHandler{},
		&MessageStatusHandler{},
		&CallUserHandler{},
		&AnswerCallHandler{},
		&EndCallHandler{},
	} {
		s.Disp().Register(h)
	}
}

// requireIdentified gates the pure-forward events. An anonymous
// connection may setup, join_room or leave_room; anything else is
// rejected before it reaches a room or a private channel.
func requireIdentified(ctx *chat.Context, sender *chat.Client) error {
	if ctx.S.Registry().StateOf(sender.ConnID) == chat.StateAnonymous {
		return errors.New("anonymous connection")
	}
	return nil
}
