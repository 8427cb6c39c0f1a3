package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpapi "quoridor/internal/api/http"
	"quoridor/internal/api/ws"
	"quoridor/internal/config"
	"quoridor/internal/match"
	"quoridor/internal/store"
)

func main() {
	cfg := config.Load()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	mem := store.NewMemoryStore()
	hub := ws.NewHub()
	mm := match.NewManager(mem, cfg, hub)
	hub.SetPlayer(mm)
	r := httpapi.NewRouter(mm, hub)

	log.Info().Str("addr", cfg.HTTPAddr).Str("bot", cfg.BotName).Msg("starting quoridor server")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
