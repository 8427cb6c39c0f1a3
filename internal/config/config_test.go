package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quoridor/internal/quoridor"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "LOG_LEVEL", "QUORIDOR_SERVER_URL", "BOT_NAME", "BOT_SEED", "W_WALL_H", "W_WALL_V", "W_MOVE"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "http://localhost:8080/api", cfg.ServerURL)
	assert.Equal(t, "robot", cfg.BotName)
	assert.Equal(t, int64(0), cfg.BotSeed)
	assert.Equal(t, quoridor.DefaultWeights(), cfg.Weights)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("BOT_NAME", "hal")
	t.Setenv("BOT_SEED", "1234")
	t.Setenv("W_WALL_H", "3")
	t.Setenv("W_WALL_V", "-4")
	t.Setenv("W_MOVE", "not-a-number")

	cfg := Load()
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	assert.Equal(t, "hal", cfg.BotName)
	assert.Equal(t, int64(1234), cfg.BotSeed)
	assert.Equal(t, quoridor.Weights{WallHorizontal: 3, WallVertical: 0, Move: 1}, cfg.Weights)
}
