package quoridor

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Rand is the part of *rand.Rand the bot draws from.
type Rand interface {
	Intn(n int) int
}

// Weights sets the relative odds of each intent. The zero value behaves like
// DefaultWeights.
type Weights struct {
	WallHorizontal int `json:"wallHorizontal"`
	WallVertical   int `json:"wallVertical"`
	Move           int `json:"move"`
}

// DefaultWeights draws each intent with equal probability.
func DefaultWeights() Weights {
	return Weights{WallHorizontal: 1, WallVertical: 1, Move: 1}
}

func (w Weights) normalized() Weights {
	w.WallHorizontal = max(w.WallHorizontal, 0)
	w.WallVertical = max(w.WallVertical, 0)
	w.Move = max(w.Move, 0)
	if w.WallHorizontal+w.WallVertical+w.Move == 0 {
		return DefaultWeights()
	}
	return w
}

// Bot is the greedy-random move chooser: it either blocks the opponent's
// shortest route with a wall or takes one step along its own.
type Bot struct {
	rnd     Rand
	weights Weights
}

// NewBot returns a bot drawing from rnd. A nil rnd is seeded from the clock.
func NewBot(rnd Rand, w Weights) *Bot {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Bot{rnd: rnd, weights: w.normalized()}
}

// Play chooses a move for player, applies it to g and returns it.
//
// Steps: draw an intent; for a wall intent try each cell of the opponent's
// shortest path in order; if none takes (or the intent was a pawn move) step
// along the player's own shortest path.
func (b *Bot) Play(g *Game, player int) (Move, error) {
	if _, err := g.player(player); err != nil {
		return Move{}, err
	}
	if g.Winner() != 0 {
		return Move{}, ErrGameAlreadyOver
	}
	me, opp := g.players[player-1], other(player)
	own := g.graph.ShortestPath(me.Pos, player)
	theirs := g.graph.ShortestPath(g.players[opp-1].Pos, opp)

	kind := b.intent()
	if me.Walls == 0 {
		kind = KindMove
	}
	if o, ok := kind.Orientation(); ok {
		at, placed, err := tryWalls(g, player, theirs, o)
		if err != nil {
			return Move{}, err
		}
		if placed {
			return Move{Kind: kind, Position: at}, nil
		}
	}

	if len(own) < 2 {
		return Move{}, fmt.Errorf("%w: player %d has no route", ErrPlayerFullyBlocked, player)
	}
	if err := g.MovePawn(player, own[1]); err != nil {
		return Move{}, err
	}
	return Move{Kind: KindMove, Position: own[1]}, nil
}

func (b *Bot) intent() MoveKind {
	w := b.weights
	n := b.rnd.Intn(w.WallHorizontal + w.WallVertical + w.Move)
	switch {
	case n < w.WallHorizontal:
		return KindWallHorizontal
	case n < w.WallHorizontal+w.WallVertical:
		return KindWallVertical
	}
	return KindMove
}

// tryWalls places the first wall among candidates that the rules accept.
// Overlaps, out-of-range anchors and walls that would shut a player in just
// move on to the next candidate.
func tryWalls(g *Game, player int, candidates []Position, o Orientation) (Position, bool, error) {
	for _, at := range candidates {
		err := g.PlaceWall(player, at, o)
		switch {
		case err == nil:
			return at, true, nil
		case errors.Is(err, ErrWallOccupied),
			errors.Is(err, ErrInvalidWallPosition),
			errors.Is(err, ErrPlayerFullyBlocked):
			continue
		default:
			return Position{}, false, err
		}
	}
	return Position{}, false, nil
}

func other(player int) int { return 3 - player }
