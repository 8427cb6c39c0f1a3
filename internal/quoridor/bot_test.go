package quoridor

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand always draws the same intent.
type fixedRand int

func (f fixedRand) Intn(n int) int { return int(f) % n }

const (
	drawWallH fixedRand = 0
	drawWallV fixedRand = 1
	drawMove  fixedRand = 2
)

func TestBotMoveIntentStepsAlongShortestPath(t *testing.T) {
	g := New("A", "B")

	m, err := NewBot(drawMove, DefaultWeights()).Play(g, 1)
	require.NoError(t, err)
	assert.Equal(t, Move{Kind: KindMove, Position: Pos(5, 2)}, m)

	p, _ := g.Player(1)
	assert.Equal(t, Pos(5, 2), p.Pos)
}

func TestBotHorizontalWallOnOpponentPath(t *testing.T) {
	g := New("A", "B")

	m, err := NewBot(drawWallH, DefaultWeights()).Play(g, 1)
	require.NoError(t, err)
	assert.Equal(t, Move{Kind: KindWallHorizontal, Position: Pos(5, 9)}, m)

	s := g.State()
	assert.Equal(t, []Position{Pos(5, 9)}, s.Walls.Horizontal)
	assert.Equal(t, 9, s.Players[0].Walls)
}

func TestBotVerticalWallSkipsInvalidCandidates(t *testing.T) {
	g := New("A", "B")

	// (5,9) is out of range for a vertical wall, so the next cell is used.
	m, err := NewBot(drawWallV, DefaultWeights()).Play(g, 1)
	require.NoError(t, err)
	assert.Equal(t, Move{Kind: KindWallVertical, Position: Pos(5, 8)}, m)
}

func TestBotFallsBackToPawnMoveWhenNoWallFits(t *testing.T) {
	g := mustGame(t, stateOf(
		Player{Name: "A", Walls: 10, Pos: Pos(5, 1)},
		Player{Name: "B", Walls: 10, Pos: Pos(9, 2)},
		nil, nil))
	before := g.State()

	// The opponent's path is (9,2),(9,1): no horizontal wall fits on either.
	m, err := NewBot(drawWallH, DefaultWeights()).Play(g, 1)
	require.NoError(t, err)
	assert.Equal(t, Move{Kind: KindMove, Position: Pos(5, 2)}, m)

	s := g.State()
	assert.Equal(t, before.Walls, s.Walls)
	assert.Equal(t, 10, s.Players[0].Walls)
}

func TestBotWithoutWallsAlwaysMoves(t *testing.T) {
	g := mustGame(t, stateOf(
		Player{Name: "A", Walls: 0, Pos: Pos(5, 1)},
		Player{Name: "B", Walls: 10, Pos: Pos(5, 9)},
		tenWalls, nil))

	m, err := NewBot(drawWallH, DefaultWeights()).Play(g, 1)
	require.NoError(t, err)
	assert.Equal(t, KindMove, m.Kind)
	assert.Len(t, g.State().Walls.Horizontal, len(tenWalls))
}

func TestBotRejectsFinishedGameAndBadPlayer(t *testing.T) {
	done := mustGame(t, stateOf(
		Player{Name: "A", Walls: 10, Pos: Pos(5, 9)},
		Player{Name: "B", Walls: 10, Pos: Pos(5, 5)},
		nil, nil))
	bot := NewBot(drawMove, DefaultWeights())

	_, err := bot.Play(done, 2)
	assert.ErrorIs(t, err, ErrGameAlreadyOver)

	_, err = bot.Play(New("A", "B"), 3)
	assert.ErrorIs(t, err, ErrInvalidPlayer)
}

func TestBotWeights(t *testing.T) {
	onlyMoves := NewBot(rand.New(rand.NewSource(7)), Weights{Move: 1})
	for i := 0; i < 50; i++ {
		assert.Equal(t, KindMove, onlyMoves.intent())
	}

	onlyVertical := NewBot(rand.New(rand.NewSource(7)), Weights{WallVertical: 3, Move: -2})
	for i := 0; i < 50; i++ {
		assert.Equal(t, KindWallVertical, onlyVertical.intent())
	}

	assert.Equal(t, DefaultWeights(), Weights{}.normalized())
}

func TestBotDrawsAllIntents(t *testing.T) {
	bot := NewBot(rand.New(rand.NewSource(42)), DefaultWeights())
	seen := map[MoveKind]int{}
	for i := 0; i < 300; i++ {
		m, err := bot.Play(New("A", "B"), 1)
		require.NoError(t, err)
		seen[m.Kind]++
	}
	assert.Positive(t, seen[KindMove])
	assert.Positive(t, seen[KindWallHorizontal])
	assert.Positive(t, seen[KindWallVertical])
}

// Bot against bot over many seeds: every returned move replays cleanly on a
// copy of the game taken before the call, and the wall and connectivity
// invariants hold after every turn.
func TestBotSelfPlayKeepsInvariants(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		g := New("A", "B")
		bot := NewBot(rand.New(rand.NewSource(seed)), DefaultWeights())

		turn := 1
		for i := 0; g.Winner() == 0; i++ {
			require.Less(t, i, 1000, "seed %d: game did not finish", seed)

			replay := g.Clone()
			m, err := bot.Play(g, turn)
			require.NoError(t, err, "seed %d turn %d", seed, i)
			require.NoError(t, replay.Apply(turn, m), "seed %d turn %d: %v", seed, i, m)
			require.Equal(t, g.State(), replay.State())

			s := g.State()
			require.Equal(t, TotalWalls, wallTotal(s))
			require.True(t, g.Graph().ReachesGoal(s.Players[0].Pos, 1))
			require.True(t, g.Graph().ReachesGoal(s.Players[1].Pos, 2))

			turn = other(turn)
		}
	}
}
