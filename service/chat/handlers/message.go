package handlers

import (
	chat "chatrelay/service/chat"
)

// TypingHandler relays a typing indicator to the room, never back to
// its sender.
type TypingHandler struct{}

func (h *TypingHandler) Event() string { return chat.EventTyping }

func (h *TypingHandler) Handle(ctx *chat.Context, f *chat.Frame, sender *chat.Client) error {
	if err := requireIdentified(ctx, sender); err != nil {
		return err
	}
	p, err := chat.DecodePayload[chat.TypingPayload](f.Data)
	if err != nil {
		return err
	}
	ctx.S.ToRoom(p.Room, sender.ConnID, chat.EventDisplayTyping, p.Username)
	return nil
}

type StopTypingHandler struct{}

func (h *StopTypingHandler) Event() string { return chat.EventStopTyping }

func (h *StopTypingHandler) Handle(ctx *chat.Context, f *chat.Frame, sender *chat.Client) error {
	if err := requireIdentified(ctx, sender); err != nil {
		return err
	}
	p, err := chat.DecodePayload[chat.StopTypingPayload](f.Data)
	if err != nil {
		return err
	}
	ctx.S.ToRoom(p.Room, sender.ConnID, chat.EventHideTyping, nil)
	return nil
}

// SendMessageHandler is a pure forwarding channel: the relay reads only
// the room field for routing and passes the payload through untouched.
// Schema ownership stays with the application layer.
type SendMessageHandler struct{}

func (h *SendMessageHandler) Event() string { return chat.EventSendMessage }

func (h *SendMessageHandler) Handle(ctx *chat.Context, f *chat.Frame, sender *chat.Client) error {
	if err := requireIdentified(ctx, sender); err != nil {
		return err
	}
	p, err := chat.DecodePayload[chat.RoomScoped](f.Data)
	if err != nil {
		return err
	}
	ctx.S.ToRoomRaw(p.Room, sender.ConnID, chat.EventReceiveMessage, f.Data)
	return nil
}

type MessageStatusHandler struct{}

func (h *MessageStatusHandler) Event() string { return chat.EventMessageStatus }

func (h *MessageStatusHandler) Handle(ctx *chat.Context, f *chat.Frame, sender *chat.Client) error {
	if err := requireIdentified(ctx, sender); err != nil {
		return err
	}
	p, err := chat.DecodePayload[chat.RoomScoped](f.Data)
	if err != nil {
		return err
	}
	ctx.S.ToRoomRaw(p.Room, sender.ConnID, chat.EventStatusUpdated, f.Data)
	return nil
}
