package agent

import (
	"fmt"
	"mancala/game"
	"mancala/searcher"
)

type Kind string

const (
	Random  Kind = "random"
	Minimax Kind = "minimax"
)

type Agent interface {
	// FindMove returns a legal pit for the player to move and search metrics (if collected).
	FindMove(state *game.State) (int, searcher.SearchMetrics, error)
}

// Config describes how to build an agent for one seat at the table.
type Config struct {
	ID    int    `yaml:"id" json:"id"`
	Kind  Kind   `yaml:"kind" json:"kind"`
	Depth int    `yaml:"depth,omitempty" json:"depth,omitempty"`
	Seed  uint64 `yaml:"seed,omitempty" json:"seed,omitempty"`
}

func (c Config) String() string {
	switch c.Kind {
	case Minimax:
		return fmt.Sprintf("minimax(depth=%d)", c.Depth)
	default:
		return string(c.Kind)
	}
}

func (c Config) Validate() error {
	switch c.Kind {
	case Random:
		return nil
	case Minimax:
		if c.Depth <= 0 {
			return fmt.Errorf("minimax agent needs a positive depth, got %d", c.Depth)
		}
		return nil
	default:
		return fmt.Errorf("unknown agent kind %q", c.Kind)
	}
}

// New builds the agent described by config playing under rules.
func New(config Config, rules game.Rules) (Agent, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Kind {
	case Minimax:
		return NewMinimaxAgent(searcher.NewMinimax(
			searcher.WithDepth(config.Depth),
			searcher.WithRules(rules),
			searcher.WithMetrics(),
		)), nil
	default:
		return NewRandomAgent(config.Seed, rules), nil
	}
}
