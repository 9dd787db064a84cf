package handlers

import (
	chat "chatrelay/service/chat"
)

// Call signaling is identity-scoped, not room-scoped: the callee must be
// reachable wherever it is currently chatting, so every call event
// targets the private channel bound at setup time.

type CallUserHandler struct{}

func (h *CallUserHandler) Event() string { return chat.EventCallUser }

func (h *CallUserHandler) Handle(ctx *chat.Context, f *chat.Frame, sender *chat.Client) error {
	if err := requireIdentified(ctx, sender); err != nil {
		return err
	}
	p, err := chat.DecodePayload[chat.CallUserPayload](f.Data)
	if err != nil {
		return err
	}
	ctx.S.ToChannel(p.UserToCall, chat.EventIncomingCall, chat.IncomingCall{
		Signal:   p.SignalData,
		From:     p.From,
		Name:     p.Name,
		CallType: p.CallType,
	})
	return nil
}

type AnswerCallHandler struct{}

func (h *AnswerCallHandler) Event() string { return chat.EventAnswerCall }

func (h *AnswerCallHandler) Handle(ctx *chat.Context, f *chat.Frame, sender *chat.Client) error {
	if err := requireIdentified(ctx, sender); err != nil {
		return err
	}
	p, err := chat.DecodePayload[chat.AnswerCallPayload](f.Data)
	if err != nil {
		return err
	}
	ctx.S.ToChannel(p.To, chat.EventCallAccepted, p.Signal)
	return nil
}

type EndCallHandler struct{}

func (h *EndCallHandler) Event() string { return chat.EventEndCall }

func (h *EndCallHandler) Handle(ctx *chat.Context, f *chat.Frame, sender *chat.Client) error {
	if err := requireIdentified(ctx, sender); err != nil {
		return err
	}
	p, err := chat.DecodePayload[chat.EndCallPayload](f.Data)
	if err != nil {
		return err
	}
	ctx.S.ToChannel(p.To, chat.EventCallEnded, nil)
	return nil
}
