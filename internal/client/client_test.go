package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "quoridor/internal/api/http"
	"quoridor/internal/api/ws"
	"quoridor/internal/config"
	"quoridor/internal/match"
	"quoridor/internal/quoridor"
	"quoridor/internal/store"
)

func newServer(t *testing.T) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Config{BotName: "robot", BotSeed: 1, Weights: quoridor.Weights{Move: 1}}
	hub := ws.NewHub()
	mm := match.NewManager(store.NewMemoryStore(), cfg, hub)
	srv := httptest.NewServer(httpapi.NewRouter(mm, hub))
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api/", srv.Client())
}

func TestStartAndPlay(t *testing.T) {
	c := newServer(t)
	ctx := context.Background()

	id, s, err := c.Start(ctx, "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, quoridor.New("alice", "robot").State(), s)

	s, err = c.Play(ctx, id, quoridor.Move{Kind: quoridor.KindMove, Position: quoridor.Pos(5, 2)})
	require.NoError(t, err)
	assert.Equal(t, quoridor.Pos(5, 2), s.Players[0].Pos)
	assert.Equal(t, quoridor.Pos(5, 8), s.Players[1].Pos)

	got, winner, err := c.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, s, got)
	assert.Empty(t, winner)
}

func TestRejectedMove(t *testing.T) {
	c := newServer(t)
	ctx := context.Background()
	id, _, err := c.Start(ctx, "alice")
	require.NoError(t, err)

	_, err = c.Play(ctx, id, quoridor.Move{Kind: quoridor.KindMove, Position: quoridor.Pos(5, 3)})
	var rej *RejectedError
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, http.StatusBadRequest, rej.Status)
	assert.Contains(t, rej.Message, quoridor.ErrIllegalMove.Error())

	_, _, err = c.Get(ctx, "missing")
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, http.StatusNotFound, rej.Status)
}

func TestPlayUntilGameOver(t *testing.T) {
	c := newServer(t)
	ctx := context.Background()
	id, _, err := c.Start(ctx, "alice")
	require.NoError(t, err)

	var over *GameOverError
	for turn := 1; ; turn++ {
		require.LessOrEqual(t, turn, 8)
		mv, err := c.Suggest(ctx, id)
		require.NoError(t, err)
		_, err = c.Play(ctx, id, mv)
		if errors.As(err, &over) {
			break
		}
		require.NoError(t, err)
	}
	assert.Equal(t, "robot", over.Winner)
	assert.Equal(t, quoridor.Pos(5, 1), over.State.Players[1].Pos)

	_, winner, err := c.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "robot", winner)
}

func TestUnexpectedStatusWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	_, _, err := New(srv.URL, nil).Start(context.Background(), "alice")
	require.Error(t, err)
	var rej *RejectedError
	assert.False(t, errors.As(err, &rej))
	assert.Contains(t, err.Error(), "502")
}

func TestContextCancelled(t *testing.T) {
	c := newServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := c.Start(ctx, "alice")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestList(t *testing.T) {
	c := newServer(t)
	ctx := context.Background()

	first, _, err := c.Start(ctx, "alice b")
	require.NoError(t, err)
	second, _, err := c.Start(ctx, "alice b")
	require.NoError(t, err)

	ids, err := c.List(ctx, "alice b")
	require.NoError(t, err)
	assert.Equal(t, []string{second, first}, ids)

	ids, err = c.List(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = c.List(ctx, "")
	var rej *RejectedError
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, http.StatusBadRequest, rej.Status)
}
