package quoridor

import (
	"fmt"
	"slices"
)

// Game holds the local state of one match and enforces the rules on every
// mutation. It is not safe for concurrent use.
type Game struct {
	players    [2]Player
	horizontal []Position
	vertical   []Position
	graph      *Graph
}

// New starts a fresh game: player 1 on (5,1) heading for row 9, player 2 on
// (5,9) heading for row 1, ten walls each.
func New(name1, name2 string) *Game {
	g := &Game{
		players: [2]Player{
			{Name: name1, Walls: WallsPerPlayer, Pos: Pos(5, 1)},
			{Name: name2, Walls: WallsPerPlayer, Pos: Pos(5, BoardSize)},
		},
		horizontal: []Position{},
		vertical:   []Position{},
	}
	g.rebuild()
	return g
}

// FromState resumes a game from a snapshot. Nothing is returned unless the
// snapshot describes a legal position.
func FromState(s State) (*Game, error) {
	if len(s.Players) != 2 {
		return nil, setupErr("want 2 players, got %d", len(s.Players))
	}
	g := &Game{
		horizontal: append([]Position{}, s.Walls.Horizontal...),
		vertical:   append([]Position{}, s.Walls.Vertical...),
	}

	total := 0
	for i, p := range s.Players {
		if p.Walls < 0 || p.Walls > WallsPerPlayer {
			return nil, setupErr("player %d has %d walls, want 0..%d", i+1, p.Walls, WallsPerPlayer)
		}
		if !p.Pos.OnBoard() {
			return nil, setupErr("player %d is off the board at %v", i+1, p.Pos)
		}
		g.players[i] = p
		total += p.Walls
	}
	if g.players[0].Pos == g.players[1].Pos {
		return nil, setupErr("both players on %v", g.players[0].Pos)
	}

	var placed []Wall
	for _, w := range g.walls() {
		if !w.InRange() {
			return nil, setupErr("%s wall at %v is out of range", w.Orientation, w.Anchor)
		}
		for _, other := range placed {
			if w.Conflicts(other) {
				return nil, setupErr("%s wall at %v overlaps %s wall at %v", w.Orientation, w.Anchor, other.Orientation, other.Anchor)
			}
		}
		placed = append(placed, w)
	}
	total += len(placed)
	if total != TotalWalls {
		return nil, setupErr("placed and remaining walls add up to %d, want %d", total, TotalWalls)
	}

	g.rebuild()
	for n := 1; n <= 2; n++ {
		if !g.graph.ReachesGoal(g.players[n-1].Pos, n) {
			return nil, setupErr("player %d cannot reach their goal", n)
		}
	}
	return g, nil
}

func setupErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidGameSetup, fmt.Sprintf(format, args...))
}

// State returns a copy of the current snapshot; wall order is preserved.
func (g *Game) State() State {
	return State{
		Players: []Player{g.players[0], g.players[1]},
		Walls: Walls{
			Horizontal: slices.Clone(g.horizontal),
			Vertical:   slices.Clone(g.vertical),
		},
	}
}

// Clone returns an independent copy of the game.
func (g *Game) Clone() *Game {
	return &Game{
		players:    g.players,
		horizontal: slices.Clone(g.horizontal),
		vertical:   slices.Clone(g.vertical),
		graph:      g.graph,
	}
}

// Graph returns the movement graph for the current position.
func (g *Game) Graph() *Graph { return g.graph }

func (g *Game) Player(n int) (Player, error) {
	p, err := g.player(n)
	if err != nil {
		return Player{}, err
	}
	return *p, nil
}

func (g *Game) player(n int) (*Player, error) {
	if n != 1 && n != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPlayer, n)
	}
	return &g.players[n-1], nil
}

// LegalPawnMoves lists where player's pawn may move next.
func (g *Game) LegalPawnMoves(n int) ([]Position, error) {
	p, err := g.player(n)
	if err != nil {
		return nil, err
	}
	return g.graph.Successors(p.Pos), nil
}

// Winner returns 1 or 2 once a pawn has reached its goal row, 0 otherwise.
// It is advisory: in networked play the server has the final word.
func (g *Game) Winner() int {
	switch {
	case g.players[0].Pos.Y == BoardSize:
		return 1
	case g.players[1].Pos.Y == 1:
		return 2
	}
	return 0
}

// WinnerName returns the winner's name, or "" while the game is running.
func (g *Game) WinnerName() string {
	if w := g.Winner(); w != 0 {
		return g.players[w-1].Name
	}
	return ""
}

// Apply plays m for player.
func (g *Game) Apply(player int, m Move) error {
	if m.Kind == KindMove {
		return g.MovePawn(player, m.Position)
	}
	o, ok := m.Kind.Orientation()
	if !ok {
		return fmt.Errorf("%w: unknown move kind %q", ErrIllegalMove, m.Kind)
	}
	return g.PlaceWall(player, m.Position, o)
}

// MovePawn moves player's pawn to to. Straight and diagonal jumps are
// ordinary edges of the movement graph, so one lookup covers every case.
func (g *Game) MovePawn(player int, to Position) error {
	p, err := g.player(player)
	if err != nil {
		return err
	}
	if g.Winner() != 0 {
		return ErrGameAlreadyOver
	}
	if !to.OnBoard() {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, to)
	}
	if !g.graph.CanMove(p.Pos, to) {
		return fmt.Errorf("%w: %v to %v", ErrIllegalMove, p.Pos, to)
	}
	p.Pos = to
	g.rebuild()
	return nil
}

// PlaceWall puts a wall for player at anchor. A wall that would leave either
// pawn without a route to its goal is undone before ErrPlayerFullyBlocked is
// returned; the game is then exactly as it was before the call.
func (g *Game) PlaceWall(player int, anchor Position, o Orientation) error {
	p, err := g.player(player)
	if err != nil {
		return err
	}
	if g.Winner() != 0 {
		return ErrGameAlreadyOver
	}
	if o != Horizontal && o != Vertical {
		return fmt.Errorf("%w: unknown orientation %q", ErrInvalidWallPosition, o)
	}
	w := Wall{Anchor: anchor, Orientation: o}
	for _, existing := range g.walls() {
		if w.Conflicts(existing) {
			return fmt.Errorf("%w: %s wall at %v", ErrWallOccupied, o, anchor)
		}
	}
	if !w.InRange() {
		return fmt.Errorf("%w: %s wall at %v", ErrInvalidWallPosition, o, anchor)
	}
	if p.Walls == 0 {
		return fmt.Errorf("%w: player %d", ErrNoWallsRemaining, player)
	}

	saved := g.checkpoint()
	if o == Horizontal {
		g.horizontal = append(g.horizontal, anchor)
	} else {
		g.vertical = append(g.vertical, anchor)
	}
	p.Walls--
	g.rebuild()

	for n := 1; n <= 2; n++ {
		if !g.graph.ReachesGoal(g.players[n-1].Pos, n) {
			g.restore(saved)
			return fmt.Errorf("%w: player %d", ErrPlayerFullyBlocked, n)
		}
	}
	return nil
}

func (g *Game) walls() []Wall {
	out := make([]Wall, 0, len(g.horizontal)+len(g.vertical))
	for _, a := range g.horizontal {
		out = append(out, Wall{Anchor: a, Orientation: Horizontal})
	}
	for _, a := range g.vertical {
		out = append(out, Wall{Anchor: a, Orientation: Vertical})
	}
	return out
}

type checkpoint struct {
	players    [2]Player
	horizontal []Position
	vertical   []Position
}

func (g *Game) checkpoint() checkpoint {
	return checkpoint{
		players:    g.players,
		horizontal: slices.Clone(g.horizontal),
		vertical:   slices.Clone(g.vertical),
	}
}

func (g *Game) restore(c checkpoint) {
	g.players = c.players
	g.horizontal = c.horizontal
	g.vertical = c.vertical
	g.rebuild()
}

func (g *Game) rebuild() {
	g.graph = BuildGraph(g.players[0].Pos, g.players[1].Pos, g.horizontal, g.vertical)
}
