package match

import (
	"context"
	"errors"
	"sync"
	"time"

	"quoridor/internal/quoridor"
)

const (
	HumanPlayer = 1
	BotPlayer   = 2
)

// ListLimit caps how many match ids List returns.
const ListLimit = 20

var ErrMatchNotFound = errors.New("match not found")

// Mover picks and applies a move for one side.
type Mover interface {
	Play(g *quoridor.Game, player int) (quoridor.Move, error)
}

// Match is one human-versus-bot game held by the server.
type Match struct {
	ID        string    `json:"id"`
	Player    string    `json:"player"`
	CreatedAt time.Time `json:"createdAt"`

	mu   sync.Mutex
	game *quoridor.Game
	bot  Mover
}

type Store interface {
	Get(ctx context.Context, id string) (*Match, error)
	Save(ctx context.Context, m *Match) error
	// List returns up to limit ids of the matches started by player,
	// newest first.
	List(ctx context.Context, player string, limit int) ([]string, error)
}

type Broadcaster interface {
	Broadcast(matchID string, action string, data interface{})
}

// Result is what a caller sees after a request on a match.
type Result struct {
	State  quoridor.State `json:"state"`
	Winner string         `json:"winner,omitempty"`
	Reply  *quoridor.Move `json:"reply,omitempty"`
}
