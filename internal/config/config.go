package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"quoridor/internal/quoridor"
)

type Config struct {
	HTTPAddr  string
	LogLevel  string
	ServerURL string

	BotName string
	BotSeed int64
	Weights quoridor.Weights
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return def
}

// Load reads .env when present, then the process environment.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		HTTPAddr:  getenv("HTTP_ADDR", ":8080"),
		LogLevel:  getenv("LOG_LEVEL", "info"),
		ServerURL: getenv("QUORIDOR_SERVER_URL", "http://localhost:8080/api"),
		BotName:   getenv("BOT_NAME", "robot"),
		BotSeed:   getenvInt64("BOT_SEED", 0),
		Weights: quoridor.Weights{
			WallHorizontal: max(getenvInt("W_WALL_H", 1), 0),
			WallVertical:   max(getenvInt("W_WALL_V", 1), 0),
			Move:           max(getenvInt("W_MOVE", 1), 0),
		},
	}
}
