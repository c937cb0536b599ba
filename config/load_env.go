package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/subosito/gotenv"
)

const defaultWindowSeconds = 60

func LoadEnv(env string) {
	envFile := "config/envs/.env." + env
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("No .env file found, using OS environment")
	}
}

// WindowSeconds returns the configured window length in seconds.
func WindowSeconds() int {
	raw := os.Getenv("WINDOW_SECONDS")
	if raw == "" {
		return defaultWindowSeconds
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		slog.Warn("Invalid WINDOW_SECONDS, using default",
			slog.String("value", raw))
		return defaultWindowSeconds
	}
	return n
}

// DataDir is where batch mode looks for per-game comment and play-by-play
// files when --data-dir is not given.
func DataDir() string {
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		return dir
	}
	return "data"
}

// OutDir is where batch mode writes per-game timelines when --out-dir is not
// given.
func OutDir() string {
	if dir := os.Getenv("OUT_DIR"); dir != "" {
		return dir
	}
	return "out"
}
