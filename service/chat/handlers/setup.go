package handlers

import (
	"chatrelay/logger"
	chat "chatrelay/service/chat"
)

// SetupHandler binds the caller's identity and subscribes it to its
// private channel, making it reachable for call signaling no matter
// which room it chats in afterwards.
type SetupHandler struct{}

func (h *SetupHandler) Event() string { return chat.EventSetup }

func (h *SetupHandler) Handle(ctx *chat.Context, f *chat.Frame, sender *chat.Client) error {
	p, err := chat.DecodePayload[chat.SetupPayload](f.Data)
	if err != nil {
		return err
	}

	ctx.S.Registry().SetIdentity(sender.ConnID, chat.Identity{
		UID:    p.UID,
		Name:   p.Name,
		Avatar: p.Avatar,
	})
	ctx.S.ToClient(sender, chat.EventConnected, nil)
	logger.Infof("[setup] conn=%s joined private channel %s", sender.ConnID, p.UID)
	return nil
}
