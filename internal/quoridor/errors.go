package quoridor

import "errors"

// Rule violations. Every rejection returned by Game wraps exactly one of these.
var (
	ErrInvalidPlayer       = errors.New("player must be 1 or 2")
	ErrOutOfBounds         = errors.New("position is off the board")
	ErrIllegalMove         = errors.New("position is not reachable in one move")
	ErrWallOccupied        = errors.New("a wall already occupies this position")
	ErrInvalidWallPosition = errors.New("invalid position for this orientation")
	ErrNoWallsRemaining    = errors.New("player has no walls left")
	ErrPlayerFullyBlocked  = errors.New("wall would cut a player off from their goal")
	ErrGameAlreadyOver     = errors.New("game is already over")
	ErrInvalidGameSetup    = errors.New("invalid game setup")
)

var ruleErrors = []error{
	ErrInvalidPlayer,
	ErrOutOfBounds,
	ErrIllegalMove,
	ErrWallOccupied,
	ErrInvalidWallPosition,
	ErrNoWallsRemaining,
	ErrPlayerFullyBlocked,
	ErrGameAlreadyOver,
	ErrInvalidGameSetup,
}

// IsRuleViolation reports whether err is one of the game's rejections, as
// opposed to an infrastructure failure.
func IsRuleViolation(err error) bool {
	for _, target := range ruleErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
