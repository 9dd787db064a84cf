package handlers

import (
	"chatrelay/logger"
	chat "chatrelay/service/chat"
)

// JoinRoomHandler moves the caller into a room. Joining clears any
// previous room membership first; a client that hops rooms by emitting
// only join_room leaves no ghost entry behind.
type JoinRoomHandler struct{}

func (h *JoinRoomHandler) Event() string { return chat.EventJoinRoom }

func (h *JoinRoomHandler) Handle(ctx *chat.Context, f *chat.Frame, sender *chat.Client) error {
	p, err := chat.DecodePayload[chat.JoinRoomPayload](f.Data)
	if err != nil {
		return err
	}

	members, prevRoom := ctx.S.Registry().Join(sender.ConnID, p.Room, chat.Identity{
		Name:   p.Username,
		Avatar: p.Avatar,
	})
	if prevRoom != "" {
		// Implicit room switch: the room left behind still gets a
		// fresh member list.
		ctx.S.ToRoom(prevRoom, sender.ConnID, chat.EventUserList,
			ctx.S.Registry().MembersOf(prevRoom))
	}

	ctx.S.ToRoom(p.Room, sender.ConnID, chat.EventReceiveMessage, chat.NewSystemJoin(p.Username))
	ctx.S.ToRoom(p.Room, "", chat.EventUserList, members)
	logger.Infof("[room] %s joined %s conn=%s", p.Username, p.Room, sender.ConnID)
	return nil
}

// LeaveRoomHandler handles the explicit-leave path (navigation). A
// leave for a room the caller is not in is a silent no-op: late or
// duplicate leaves race with disconnects and are expected.
type LeaveRoomHandler struct{}

func (h *LeaveRoomHandler) Event() string { return chat.EventLeaveRoom }

func (h *LeaveRoomHandler) Handle(ctx *chat.Context, f *chat.Frame, sender *chat.Client) error {
	p, err := chat.DecodePayload[chat.LeaveRoomPayload](f.Data)
	if err != nil {
		return err
	}

	id, _ := ctx.S.Registry().IdentityOf(sender.ConnID)
	members, ok := ctx.S.Registry().Leave(sender.ConnID, p.Room)
	if !ok {
		return nil
	}

	ctx.S.ToRoom(p.Room, sender.ConnID, chat.EventReceiveMessage, chat.NewSystemLeave(id.Name))
	ctx.S.ToRoom(p.Room, sender.ConnID, chat.EventUserList, members)
	logger.Infof("[room] %s left %s conn=%s", id.Name, p.Room, sender.ConnID)
	return nil
}
