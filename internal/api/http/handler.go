package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"quoridor/internal/match"
	"quoridor/internal/quoridor"
)

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, match.ErrMatchNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case quoridor.IsRuleViolation(err):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}

// @Summary Create new game
// @Description Start a match against the bot; the caller is player 1
// @Tags Game
// @Accept json
// @Produce json
// @Param request body CreateGameRequest true "Player name"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/games [post]
func CreateGameHandler(mm *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateGameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "name required"})
			return
		}
		id, state, err := mm.Create(c.Request.Context(), req.Name)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id, "state": state})
	}
}

// @Summary Get game state
// @Description Current state of a match, with the winner once it is over
// @Tags Game
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/games/{id} [get]
func GetGameHandler(mm *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		res, err := mm.Get(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		out := gin.H{"id": id, "state": res.State}
		if res.Winner != "" {
			out["winner"] = res.Winner
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Play a move
// @Description Apply the caller's move (D, MH or MV) and the bot's reply. The
// @Description response carries the winner once the match is over.
// @Tags Game
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Param request body MoveRequest true "Move"
// @Success 200 {object} match.Result
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/games/{id}/moves [post]
func MoveHandler(mm *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "moveKind and position required"})
			return
		}
		if !req.MoveKind.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"message": "moveKind must be D, MH or MV"})
			return
		}
		res, err := mm.Play(c.Request.Context(), c.Param("id"), req.Move())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// @Summary Suggest a move
// @Description The move the bot would play in the caller's place; the game is not changed
// @Tags Game
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} quoridor.Move
// @Failure 404 {object} map[string]interface{}
// @Router /api/games/{id}/suggestion [get]
func SuggestionHandler(mm *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		mv, err := mm.Suggest(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, mv)
	}
}

// @Summary List a player's games
// @Description Ids of the player's most recent games, newest first (at most 20)
// @Tags Game
// @Produce json
// @Param name query string true "Player name"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/games [get]
func ListGamesHandler(mm *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Query("name")
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "name required"})
			return
		}
		ids, err := mm.List(c.Request.Context(), name)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"games": ids})
	}
}
