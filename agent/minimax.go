package agent

import (
	"mancala/game"
	"mancala/searcher"
)

type minimaxAgent struct {
	minimax *searcher.Minimax
}

// NewMinimaxAgent returns an agent that plays the move chosen by a depth-limited minimax search.
func NewMinimaxAgent(minimax *searcher.Minimax) Agent {
	return minimaxAgent{minimax: minimax}
}

func (a minimaxAgent) FindMove(state *game.State) (int, searcher.SearchMetrics, error) {
	return a.minimax.FindMove(state)
}
