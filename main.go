package main

import (
	"fmt"
	"net/http"
	"os"

	"chatrelay/global"
	"chatrelay/logger"
	"chatrelay/middleware"
	chat "chatrelay/service/chat"
	"chatrelay/service/chat/handlers"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := global.LoadConfig()
	if err != nil {
		logger.Errorf("config: %v", err)
		os.Exit(1)
	}
	defer logger.Sync()

	srv := chat.NewServer(cfg, chat.NewRegistry())
	handlers.Register(srv)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Origin(cfg.AllowedOrigins))

	// Uptime monitors poll the root path; no other REST surface exists.
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "chat relay running")
	})
	r.GET("/ws", srv.HandleWS)

	logger.Infof("[HTTP] listening on :%d origins=%v", cfg.Port, cfg.AllowedOrigins)
	if err := r.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		logger.Errorf("http server failed: %v", err)
		os.Exit(1)
	}
}
