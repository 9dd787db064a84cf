package chat

import (
	"chatrelay/global"
	"chatrelay/middleware"

	"github.com/gorilla/websocket"
)

// Server is the event relay: it owns the Registry (constructor-injected,
// never a package global) and the dispatch table, and computes fan-out
// target sets. One Server per process; the registry is never shared
// across relay instances.
type Server struct {
	cfg      *global.AppConfig
	reg      *Registry
	disp     *Dispatcher
	upgrader websocket.Upgrader
}

func NewServer(cfg *global.AppConfig, reg *Registry) *Server {
	s := &Server{
		cfg:  cfg,
		reg:  reg,
		disp: NewDispatcher(),
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     middleware.OriginChecker(cfg.AllowedOrigins),
	}
	return s
}

func (s *Server) Registry() *Registry       { return s.reg }
func (s *Server) Disp() *Dispatcher         { return s.disp }
func (s *Server) Config() *global.AppConfig { return s.cfg }
