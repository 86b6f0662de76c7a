package agent

import (
	"fmt"
	"mancala/game"
	"mancala/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng   *rand.Rand
	rules game.Rules
}

// NewRandomAgent returns an agent that picks uniformly among legal pits. It
// owns its generator, so two agents built with the same seed play the same moves.
func NewRandomAgent(seed uint64, rules game.Rules) Agent {
	if rules == nil {
		rules = game.NewStandardRules()
	}
	return &randomAgent{
		rng:   rand.New(rand.NewSource(seed)),
		rules: rules,
	}
}

// FindMove draws pits uniformly until one is legal.
func (a *randomAgent) FindMove(state *game.State) (int, searcher.SearchMetrics, error) {
	if len(a.rules.ValidMoves(state)) == 0 {
		return 0, searcher.SearchMetrics{}, fmt.Errorf("%w: %s has no legal pit", game.ErrNoValidMoves, state.CurrentPlayer)
	}

	pit := 1 + a.rng.Intn(state.PitsPerPlayer)
	for !a.rules.ValidMove(state, pit) {
		pit = 1 + a.rng.Intn(state.PitsPerPlayer)
	}
	return pit, searcher.SearchMetrics{}, nil
}
