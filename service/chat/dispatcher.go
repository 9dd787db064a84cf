package chat

import (
	"github.com/pkg/errors"
)

// Handler processes one inbound event family. Handlers mutate the
// Registry through the server and compute their own fan-out targets.
type Handler interface {
	Event() string
	Handle(ctx *Context, f *Frame, sender *Client) error
}

// Context is what a handler sees of the relay.
type Context struct {
	S *Server
}

type Dispatcher struct {
	handlers map[string]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string]Handler)}
}

func (d *Dispatcher) Register(h Handler) { d.handlers[h.Event()] = h }

func (d *Dispatcher) Dispatch(ctx *Context, f *Frame, sender *Client) error {
	h, ok := d.handlers[f.Event]
	if !ok {
		return errors.Errorf("no handler for event=%q", f.Event)
	}
	return h.Handle(ctx, f, sender)
}
