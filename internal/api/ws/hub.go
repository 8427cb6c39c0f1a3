package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"quoridor/internal/match"
	"quoridor/internal/quoridor"
)

// Player is the part of the match manager reachable over a socket.
type Player interface {
	Play(ctx context.Context, id string, mv quoridor.Move) (match.Result, error)
}

type message struct {
	Action string      `json:"action"`
	Data   interface{} `json:"data,omitempty"`
}

type Hub struct {
	mu      sync.Mutex
	matches map[string]map[*websocket.Conn]struct{}
	player  Player
}

// NewHub returns a hub that only fans out events until SetPlayer is called.
func NewHub() *Hub {
	return &Hub{
		matches: make(map[string]map[*websocket.Conn]struct{}),
	}
}

// SetPlayer lets clients submit moves over the socket.
func (h *Hub) SetPlayer(p Player) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.player = p
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Hub) HandleWS(c *gin.Context) {
	matchID := c.Query("game_id")
	if matchID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "missing game_id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Str("match", matchID).Msg("websocket upgrade failed")
		return
	}
	log.Debug().Str("match", matchID).Msg("websocket connected")

	h.mu.Lock()
	if _, ok := h.matches[matchID]; !ok {
		h.matches[matchID] = make(map[*websocket.Conn]struct{})
	}
	h.matches[matchID][conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.matches[matchID], conn)
		if len(h.matches[matchID]) == 0 {
			delete(h.matches, matchID)
		}
		h.mu.Unlock()
		_ = conn.Close()
	}()

	for {
		var msg struct {
			Action string          `json:"action"`
			Data   json.RawMessage `json:"data"`
		}
		if err := conn.ReadJSON(&msg); err != nil {
			log.Debug().Err(err).Str("match", matchID).Msg("websocket closed")
			return
		}

		switch msg.Action {
		case "move":
			var mv quoridor.Move
			if err := json.Unmarshal(msg.Data, &mv); err != nil {
				h.send(conn, message{Action: "error", Data: gin.H{"message": "bad move: " + err.Error()}})
				continue
			}
			h.handleMove(c.Request.Context(), conn, matchID, mv)
		default:
			h.send(conn, message{Action: "error", Data: gin.H{"message": "unknown action " + msg.Action}})
		}
	}
}

// handleMove plays the move; the resulting state reaches every client of the
// match through the manager's broadcast, rejections go back to the sender only.
func (h *Hub) handleMove(ctx context.Context, conn *websocket.Conn, matchID string, mv quoridor.Move) {
	h.mu.Lock()
	p := h.player
	h.mu.Unlock()
	if p == nil {
		h.send(conn, message{Action: "error", Data: gin.H{"message": "moves are not accepted here"}})
		return
	}
	if _, err := p.Play(ctx, matchID, mv); err != nil {
		h.send(conn, message{Action: "error", Data: gin.H{"message": err.Error()}})
	}
}

func (h *Hub) send(conn *websocket.Conn, msg message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := conn.WriteJSON(msg); err != nil {
		log.Warn().Err(err).Msg("websocket write failed")
	}
}

func (h *Hub) Broadcast(matchID string, action string, data interface{}) {
	if h == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.matches[matchID]
	if !ok {
		return
	}

	msg := message{Action: action, Data: data}
	for conn := range clients {
		if err := conn.WriteJSON(msg); err != nil {
			log.Warn().Err(err).Str("match", matchID).Msg("dropping websocket client")
			_ = conn.Close()
			delete(clients, conn)
		}
	}
}

// Clients reports how many sockets follow a match.
func (h *Hub) Clients(matchID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.matches[matchID])
}

var _ match.Broadcaster = (*Hub)(nil)
