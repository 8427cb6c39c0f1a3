package quoridor

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const (
	BoardSize      = 9
	WallsPerPlayer = 10
	TotalWalls     = 2 * WallsPerPlayer
)

// Position is a board cell, 1-based on both axes.
type Position struct {
	X, Y int
}

func Pos(x, y int) Position { return Position{X: x, Y: y} }

func (p Position) OnBoard() bool {
	return p.X >= 1 && p.X <= BoardSize && p.Y >= 1 && p.Y <= BoardSize
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// MarshalJSON encodes a position as [x, y].
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.X, p.Y})
}

func (p *Position) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var xy []int
	if err := json.Unmarshal(b, &xy); err != nil {
		return fmt.Errorf("position: %w", err)
	}
	if len(xy) != 2 {
		return fmt.Errorf("position: want [x, y], got %d values", len(xy))
	}
	p.X, p.Y = xy[0], xy[1]
	return nil
}

type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// Wall is a two-cell barrier anchored at its lower-left cell.
//
// A horizontal wall at (x,y) sits between rows y-1 and y and spans columns x
// and x+1. A vertical wall at (x,y) sits between columns x-1 and x and spans
// rows y and y+1.
type Wall struct {
	Anchor      Position
	Orientation Orientation
}

// InRange reports whether the anchor lies in the sub-range valid for the
// wall's orientation.
func (w Wall) InRange() bool {
	x, y := w.Anchor.X, w.Anchor.Y
	switch w.Orientation {
	case Horizontal:
		return x >= 1 && x <= BoardSize-1 && y >= 2 && y <= BoardSize
	case Vertical:
		return x >= 2 && x <= BoardSize && y >= 1 && y <= BoardSize-1
	}
	return false
}

// Conflicts reports whether w overlaps or crosses other.
func (w Wall) Conflicts(other Wall) bool {
	a, b := w.Anchor, other.Anchor
	switch {
	case w.Orientation == Horizontal && other.Orientation == Horizontal:
		return a.Y == b.Y && (a.X == b.X || a.X == b.X+1 || a.X == b.X-1)
	case w.Orientation == Vertical && other.Orientation == Vertical:
		return a.X == b.X && (a.Y == b.Y || a.Y == b.Y+1 || a.Y == b.Y-1)
	case w.Orientation == Horizontal && other.Orientation == Vertical:
		return a == Pos(b.X-1, b.Y+1)
	case w.Orientation == Vertical && other.Orientation == Horizontal:
		return a == Pos(b.X+1, b.Y-1)
	}
	return false
}

type Player struct {
	Name  string   `json:"name"`
	Walls int      `json:"walls"`
	Pos   Position `json:"pos"`
}

type Walls struct {
	Horizontal []Position `json:"horizontal"`
	Vertical   []Position `json:"vertical"`
}

// State is the snapshot exchanged with the game server and renderers.
type State struct {
	Players []Player `json:"players"`
	Walls   Walls    `json:"walls"`
}

// MoveKind uses the server's wire codes.
type MoveKind string

const (
	KindMove           MoveKind = "D"
	KindWallHorizontal MoveKind = "MH"
	KindWallVertical   MoveKind = "MV"
)

func (k MoveKind) Valid() bool {
	return k == KindMove || k == KindWallHorizontal || k == KindWallVertical
}

// Orientation returns the wall orientation for a wall kind.
func (k MoveKind) Orientation() (Orientation, bool) {
	switch k {
	case KindWallHorizontal:
		return Horizontal, true
	case KindWallVertical:
		return Vertical, true
	}
	return "", false
}

type Move struct {
	Kind     MoveKind `json:"moveKind"`
	Position Position `json:"position"`
}

func (m Move) String() string { return fmt.Sprintf("%s %d %d", m.Kind, m.Position.X, m.Position.Y) }

// ParseMove reads the text form "KIND X Y", e.g. "D 5 2" or "mh 4 8".
func ParseMove(s string) (Move, error) {
	f := strings.Fields(s)
	if len(f) != 3 {
		return Move{}, fmt.Errorf("want KIND X Y, got %q", s)
	}
	kind := MoveKind(strings.ToUpper(f[0]))
	if !kind.Valid() {
		return Move{}, fmt.Errorf("unknown move kind %q, want D, MH or MV", f[0])
	}
	x, err := strconv.Atoi(f[1])
	if err != nil {
		return Move{}, fmt.Errorf("column: %w", err)
	}
	y, err := strconv.Atoi(f[2])
	if err != nil {
		return Move{}, fmt.Errorf("row: %w", err)
	}
	return Move{Kind: kind, Position: Pos(x, y)}, nil
}
