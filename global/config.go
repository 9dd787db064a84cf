package global

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// AppConfig carries everything the relay reads from its environment.
// No file-based configuration; the process is meant to run behind a
// platform ingress that injects these variables.
type AppConfig struct {
	Port           int           `envconfig:"PORT" default:"3001"`
	AllowedOrigins []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173"`
	SendQueueSize  int           `envconfig:"SEND_QUEUE_SIZE" default:"256"`
	ReadLimitBytes int64         `envconfig:"READ_LIMIT_BYTES" default:"1048576"`
	PingInterval   time.Duration `envconfig:"PING_INTERVAL" default:"25s"`
	PongWait       time.Duration `envconfig:"PONG_WAIT" default:"60s"`
	WriteWait      time.Duration `envconfig:"WRITE_WAIT" default:"10s"`
}

// LoadConfig reads a local .env if present, then the process environment.
func LoadConfig() (*AppConfig, error) {
	_ = godotenv.Load()

	cfg := &AppConfig{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, errors.Wrap(err, "load app config")
	}
	for i, o := range cfg.AllowedOrigins {
		cfg.AllowedOrigins[i] = strings.TrimSpace(o)
	}
	return cfg, nil
}
