package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/bytes"
)

type Config struct {
	Port           string
	FieldWidth     int
	MaxNodes       int
	MaxDepth       int
	MaxBodySize    string
	RateLimitRPS   float64 // per client IP; zero or less disables limiting
	RateLimitBurst int
	LogLevel       slog.Level
	TraceTeardown  bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; variables already set win.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		FieldWidth:     getEnvInt("FIELD_WIDTH", 20),
		MaxNodes:       getEnvInt("MAX_NODES", 10000),
		MaxDepth:       getEnvInt("MAX_DEPTH", 64),
		MaxBodySize:    getEnvSize("MAX_BODY_SIZE", "1M"),
		RateLimitRPS:   getEnvFloat64("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 20),
		LogLevel:       getEnvLevel("LOG_LEVEL", slog.LevelInfo),
		TraceTeardown:  getEnvBool("TRACE_TEARDOWN", true),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat64(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}

// getEnvSize accepts sizes in the form echo's BodyLimit parses ("512K", "1M").
func getEnvSize(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		if _, err := bytes.Parse(val); err == nil {
			return val
		}
		slog.Warn("ignoring invalid size", "key", key, "value", val, "fallback", fallback)
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvLevel(key string, fallback slog.Level) slog.Level {
	if val := os.Getenv(key); val != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(val)); err == nil {
			return level
		}
	}
	return fallback
}
