package match

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"quoridor/internal/config"
	"quoridor/internal/quoridor"
)

type Manager struct {
	store Store
	cfg   config.Config
	hub   Broadcaster

	seedMu sync.Mutex
	seeds  *rand.Rand
}

func NewManager(s Store, cfg config.Config, hub Broadcaster) *Manager {
	seed := cfg.BotSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Manager{
		store: s,
		cfg:   cfg,
		hub:   hub,
		seeds: rand.New(rand.NewSource(seed)),
	}
}

func (m *Manager) newBot() Mover {
	m.seedMu.Lock()
	seed := m.seeds.Int63()
	m.seedMu.Unlock()
	return quoridor.NewBot(rand.New(rand.NewSource(seed)), m.cfg.Weights)
}

func (m *Manager) broadcast(id, action string, data interface{}) {
	if m.hub == nil {
		return
	}
	m.hub.Broadcast(id, action, data)
}

// Create starts a match with the caller as player 1 and the bot as player 2.
func (m *Manager) Create(ctx context.Context, name string) (string, quoridor.State, error) {
	mt := &Match{
		ID:        uuid.NewString(),
		Player:    name,
		CreatedAt: time.Now(),
		game:      quoridor.New(name, m.cfg.BotName),
		bot:       m.newBot(),
	}
	if err := m.store.Save(ctx, mt); err != nil {
		return "", quoridor.State{}, fmt.Errorf("save match: %w", err)
	}
	log.Info().Str("match", mt.ID).Str("player", name).Msg("match created")
	return mt.ID, mt.game.State(), nil
}

// Get returns the current snapshot of a match.
func (m *Manager) Get(ctx context.Context, id string) (Result, error) {
	mt, err := m.store.Get(ctx, id)
	if err != nil {
		return Result{}, err
	}
	mt.mu.Lock()
	defer mt.mu.Unlock()
	return Result{State: mt.game.State(), Winner: mt.game.WinnerName()}, nil
}

// Play applies the human move and, unless it ended the game, the bot's reply.
// Both are played on a copy that replaces the match only when the whole turn
// succeeded.
func (m *Manager) Play(ctx context.Context, id string, mv quoridor.Move) (Result, error) {
	mt, err := m.store.Get(ctx, id)
	if err != nil {
		return Result{}, err
	}
	mt.mu.Lock()
	defer mt.mu.Unlock()

	next := mt.game.Clone()
	if err := next.Apply(HumanPlayer, mv); err != nil {
		log.Debug().Err(err).Str("match", id).Stringer("move", mv).Msg("move rejected")
		return Result{}, err
	}
	log.Debug().Str("match", id).Stringer("move", mv).Msg("human moved")

	res := Result{State: next.State(), Winner: next.WinnerName()}
	if res.Winner == "" {
		reply, err := mt.bot.Play(next, BotPlayer)
		if err != nil {
			return Result{}, fmt.Errorf("bot reply: %w", err)
		}
		log.Debug().Str("match", id).Stringer("move", reply).Msg("bot moved")
		res = Result{State: next.State(), Winner: next.WinnerName(), Reply: &reply}
	}

	prev := mt.game
	mt.game = next
	if err := m.store.Save(ctx, mt); err != nil {
		mt.game = prev
		return Result{}, fmt.Errorf("save match: %w", err)
	}

	m.broadcast(id, "state-updated", res)
	if res.Winner != "" {
		log.Info().Str("match", id).Str("winner", res.Winner).Msg("match finished")
		m.broadcast(id, "game-over", res)
	}
	return res, nil
}

// Suggest returns the move the bot would play for the human, computed on a
// copy so the match itself is unchanged.
func (m *Manager) Suggest(ctx context.Context, id string) (quoridor.Move, error) {
	mt, err := m.store.Get(ctx, id)
	if err != nil {
		return quoridor.Move{}, err
	}
	mt.mu.Lock()
	defer mt.mu.Unlock()
	return mt.bot.Play(mt.game.Clone(), HumanPlayer)
}

// List returns the ids of player's most recent matches, newest first.
func (m *Manager) List(ctx context.Context, player string) ([]string, error) {
	ids, err := m.store.List(ctx, player, ListLimit)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return ids, nil
}
