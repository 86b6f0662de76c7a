package engine

import (
	"errors"
	"mancala/experiments/metrics"
)

var ErrGameOver = errors.New("game is over - no moves allowed")

type Runner interface {
	// Run plays a game till a terminal state or the turn limit is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
