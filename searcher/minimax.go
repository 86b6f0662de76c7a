package searcher

import (
	"fmt"
	"mancala/game"
	"mancala/meta"
	"math"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax picks moves by plain depth-limited minimax over copies of the
// board, scoring leaves with the store differential. A Minimax is not safe
// for concurrent use.
type Minimax struct {
	depth    int
	rules    game.Rules
	evaluate game.Evaluate
	metrics  MetricsCollector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

func WithRules(rules game.Rules) Option {
	return func(m *Minimax) {
		if rules != nil {
			m.rules = rules
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = NewMetricsCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:    meta.DefaultDepth,
		rules:    game.NewStandardRules(),
		evaluate: game.Utility,
		metrics:  NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

func (m *Minimax) FindMove(state *game.State) (int, SearchMetrics, error) {
	return m.Decide(state, state.CurrentPlayer)
}

// Decide returns the lowest numbered pit whose minimax value is maximal for mover.
func (m *Minimax) Decide(state *game.State, mover game.Player) (int, SearchMetrics, error) {
	m.metrics.Start(m.depth)
	candidates, err := m.Candidates(state, mover)
	metrics := m.metrics.Complete()
	if err != nil {
		return 0, metrics, err
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Value > best.Value {
			best = c
		}
	}

	log.Debug().
		Str("player", mover.String()).
		Int("pit", best.Pit).
		Int("value", best.Value).
		Int64("expansions", metrics.Expansions).
		Msg("minimax decided")

	return best.Pit, metrics, nil
}

// Candidates scores every legal root move of mover in ascending pit order.
func (m *Minimax) Candidates(state *game.State, mover game.Player) ([]Candidate, error) {
	if state.CurrentPlayer != mover {
		return nil, fmt.Errorf("%w: %s to move, asked for %s", ErrNotMoversTurn, state.CurrentPlayer, mover)
	}

	moves := m.rules.ValidMoves(state)
	if len(moves) == 0 {
		return nil, fmt.Errorf("%w: %s has no legal pit", game.ErrNoValidMoves, mover)
	}

	candidates := make([]Candidate, 0, len(moves))
	for _, pit := range moves {
		value := m.minValue(m.expand(state, pit), mover, m.depth-1)
		candidates = append(candidates, Candidate{Pit: pit, Value: value})
	}
	return candidates, nil
}

func (m *Minimax) maxValue(state *game.State, mover game.Player, depth int) int {
	if depth <= 0 || m.rules.IsTerminal(state) {
		m.metrics.AddLeaf()
		return m.evaluate(state, mover)
	}

	value := math.MinInt
	for _, pit := range m.rules.ValidMoves(state) {
		value = max(value, m.minValue(m.expand(state, pit), mover, depth-1))
	}
	return value
}

func (m *Minimax) minValue(state *game.State, mover game.Player, depth int) int {
	if depth <= 0 || m.rules.IsTerminal(state) {
		m.metrics.AddLeaf()
		return m.evaluate(state, mover)
	}

	value := math.MaxInt
	for _, pit := range m.rules.ValidMoves(state) {
		value = min(value, m.maxValue(m.expand(state, pit), mover, depth-1))
	}
	return value
}

// expand plays pit on a copy of state, so siblings never see each other's boards.
func (m *Minimax) expand(state *game.State, pit int) *game.State {
	child := state.Copy()
	if err := m.rules.Play(child, pit); err != nil {
		panic(fmt.Sprintf("expanding a listed legal move failed: %v", err))
	}
	m.metrics.AddExpansion()
	return child
}
