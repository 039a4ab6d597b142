package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Session store backends.
const (
	StoreFile  = "file"
	StoreRedis = "redis"
)

type Config struct {
	APIURL          string        `env:"FORUM_API_URL,          default=http://localhost:8080/api"`
	LogLevel        string        `env:"FORUM_LOG_LEVEL,        default=info"`
	LogPretty       bool          `env:"FORUM_LOG_PRETTY,       default=true"`
	HTTPTimeout     time.Duration `env:"FORUM_HTTP_TIMEOUT,     default=15s"`
	BanPollInterval time.Duration `env:"FORUM_BAN_POLL_INTERVAL, default=15s"`

	Session SessionConfig
	Redis   RedisConfig
}

type SessionConfig struct {
	// Store selects where the encoded session blob lives: "file" or "redis".
	Store string `env:"FORUM_SESSION_STORE, default=file"`
	// File is the blob path for the file store. Empty means the default
	// location under the user's home directory.
	File string `env:"FORUM_SESSION_FILE"`
}

type RedisConfig struct {
	Addr string `env:"FORUM_REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"FORUM_REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Session.Store != StoreFile && cfg.Session.Store != StoreRedis {
		return nil, fmt.Errorf("config: unknown session store %q", cfg.Session.Store)
	}
	return &cfg, nil
}
