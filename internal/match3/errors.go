package match3

import "errors"

var (
	// ErrInvalidConfiguration is returned for bad board construction parameters.
	ErrInvalidConfiguration = errors.New("match3: invalid configuration")

	// ErrInvalidPosition is returned when a swap references a cell off the board.
	ErrInvalidPosition = errors.New("match3: invalid position")

	// ErrInvalidMove is returned when the two cells of a swap are not orthogonal neighbours.
	ErrInvalidMove = errors.New("match3: invalid move")

	// ErrCascadeDidNotStabilize is returned when the cascade loop exceeds MaxCascadePasses.
	// It indicates an internal consistency failure and should end the game.
	ErrCascadeDidNotStabilize = errors.New("match3: cascade did not stabilize")
)
