package config

import (
	"log/slog"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"PORT", "FIELD_WIDTH", "MAX_NODES", "MAX_DEPTH", "MAX_BODY_SIZE", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "LOG_LEVEL", "TRACE_TEARDOWN"} {
			t.Setenv(key, "")
		}

		cfg := Load()

		if cfg.Port != "8080" {
			t.Errorf("expected port 8080, got %s", cfg.Port)
		}
		if cfg.FieldWidth != 20 {
			t.Errorf("expected field width 20, got %d", cfg.FieldWidth)
		}
		if cfg.MaxNodes != 10000 {
			t.Errorf("expected max nodes 10000, got %d", cfg.MaxNodes)
		}
		if cfg.MaxDepth != 64 {
			t.Errorf("expected max depth 64, got %d", cfg.MaxDepth)
		}
		if cfg.MaxBodySize != "1M" {
			t.Errorf("expected body size 1M, got %s", cfg.MaxBodySize)
		}
		if cfg.RateLimitRPS != 10 || cfg.RateLimitBurst != 20 {
			t.Errorf("expected rate limit 10/20, got %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
		}
		if cfg.LogLevel != slog.LevelInfo {
			t.Errorf("expected info level, got %v", cfg.LogLevel)
		}
		if !cfg.TraceTeardown {
			t.Error("expected teardown tracing on by default")
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("FIELD_WIDTH", "30")
		t.Setenv("MAX_NODES", "5")
		t.Setenv("MAX_DEPTH", "3")
		t.Setenv("MAX_BODY_SIZE", "64K")
		t.Setenv("RATE_LIMIT_RPS", "0.5")
		t.Setenv("RATE_LIMIT_BURST", "2")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("TRACE_TEARDOWN", "false")

		cfg := Load()

		if cfg.Port != "9090" || cfg.FieldWidth != 30 || cfg.MaxNodes != 5 || cfg.MaxDepth != 3 {
			t.Errorf("unexpected config %+v", cfg)
		}
		if cfg.MaxBodySize != "64K" {
			t.Errorf("expected body size 64K, got %s", cfg.MaxBodySize)
		}
		if cfg.RateLimitRPS != 0.5 || cfg.RateLimitBurst != 2 {
			t.Errorf("expected rate limit 0.5/2, got %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
		}
		if cfg.LogLevel != slog.LevelDebug {
			t.Errorf("expected debug level, got %v", cfg.LogLevel)
		}
		if cfg.TraceTeardown {
			t.Error("expected teardown tracing off")
		}
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		t.Setenv("FIELD_WIDTH", "wide")
		t.Setenv("MAX_BODY_SIZE", "lots")
		t.Setenv("RATE_LIMIT_RPS", "fast")
		t.Setenv("LOG_LEVEL", "loud")
		t.Setenv("TRACE_TEARDOWN", "maybe")

		cfg := Load()

		if cfg.FieldWidth != 20 {
			t.Errorf("expected fallback width 20, got %d", cfg.FieldWidth)
		}
		if cfg.MaxBodySize != "1M" {
			t.Errorf("expected fallback body size 1M, got %s", cfg.MaxBodySize)
		}
		if cfg.RateLimitRPS != 10 {
			t.Errorf("expected fallback rate 10, got %v", cfg.RateLimitRPS)
		}
		if cfg.LogLevel != slog.LevelInfo {
			t.Errorf("expected fallback info level, got %v", cfg.LogLevel)
		}
		if !cfg.TraceTeardown {
			t.Error("expected fallback true")
		}
	})
}
