package config

import (
	"context"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "http://localhost:8080/api" {
		t.Fatalf("APIURL = %q", cfg.APIURL)
	}
	if cfg.BanPollInterval != 15*time.Second {
		t.Fatalf("BanPollInterval = %v", cfg.BanPollInterval)
	}
	if cfg.Session.Store != StoreFile {
		t.Fatalf("Session.Store = %q", cfg.Session.Store)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("FORUM_API_URL", "https://forum.internal/api")
	t.Setenv("FORUM_BAN_POLL_INTERVAL", "30s")
	t.Setenv("FORUM_SESSION_STORE", "redis")
	t.Setenv("FORUM_REDIS_ADDR", "redis.internal:6379")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "https://forum.internal/api" {
		t.Fatalf("APIURL = %q", cfg.APIURL)
	}
	if cfg.BanPollInterval != 30*time.Second {
		t.Fatalf("BanPollInterval = %v", cfg.BanPollInterval)
	}
	if cfg.Session.Store != StoreRedis || cfg.Redis.Addr != "redis.internal:6379" {
		t.Fatalf("session config = %+v %+v", cfg.Session, cfg.Redis)
	}
}

func TestLoad_UnknownStoreRejected(t *testing.T) {
	t.Setenv("FORUM_SESSION_STORE", "memcache")
	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("unknown session store must be rejected")
	}
}
