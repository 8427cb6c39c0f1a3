package http

import "quoridor/internal/quoridor"

// CreateGameRequest is the payload for POST /api/games.
type CreateGameRequest struct {
	Name string `json:"name" binding:"required"`
}

// MoveRequest is the payload for POST /api/games/:id/moves.
type MoveRequest struct {
	MoveKind quoridor.MoveKind  `json:"moveKind" binding:"required"`
	Position *quoridor.Position `json:"position" binding:"required"`
}

func (r MoveRequest) Move() quoridor.Move {
	return quoridor.Move{Kind: r.MoveKind, Position: *r.Position}
}
