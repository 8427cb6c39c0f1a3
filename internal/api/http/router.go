package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quoridor/internal/api/ws"
	"quoridor/internal/match"
)

func NewRouter(mm *match.Manager, hub *ws.Hub) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// live updates for a match: /ws?game_id=...
	r.GET("/ws", hub.HandleWS)

	api := r.Group("/api")
	api.GET("/games", ListGamesHandler(mm))
	api.POST("/games", CreateGameHandler(mm))
	api.GET("/games/:id", GetGameHandler(mm))
	api.POST("/games/:id/moves", MoveHandler(mm))
	api.GET("/games/:id/suggestion", SuggestionHandler(mm))

	return r
}
