package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"
)

type Config struct {
	Port        string
	PostgresDSN string
	BucketTZ    *time.Location
	LogLevel    slog.Level
}

func FromEnv() (Config, error) {
	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		return Config{}, fmt.Errorf("POSTGRES_DSN is not set")
	}

	loc := time.UTC
	if tz := os.Getenv("BUCKET_TZ"); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			return Config{}, fmt.Errorf("invalid BUCKET_TZ %q: %w", tz, err)
		}
		loc = l
	}

	lvl := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		lvl = slog.LevelDebug
	}

	return Config{
		Port:        envOr("PORT", "8080"),
		PostgresDSN: dsn,
		BucketTZ:    loc,
		LogLevel:    lvl,
	}, nil
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
