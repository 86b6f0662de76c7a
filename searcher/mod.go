package searcher

import (
	"errors"
	"mancala/game"
)

// ErrNotMoversTurn is returned when a search is asked to move for the player who is not to move.
var ErrNotMoversTurn = errors.New("mover is not the player to move")

type Searcher interface {
	// FindMove returns the pit chosen for the player to move along with search metrics.
	FindMove(state *game.State) (pit int, metrics SearchMetrics, err error)
}

// Candidate is a root move and the minimax value the search assigned to it.
type Candidate struct {
	Pit   int
	Value int
}
