package engine

import (
	"fmt"
	"mancala/agent"
	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/meta"
	"time"

	"github.com/rs/zerolog/log"
)

// Observer is called after every applied move with the move and the resulting state.
type Observer func(move game.Move, state *game.State)

type Option func(e *Engine)

// Engine owns the live board of one game and drives it with one agent per player.
type Engine struct {
	State    *game.State
	Rules    game.Rules
	Agents   []agent.Agent // indexed by player - 1
	maxTurns int
	observer Observer
}

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithObserver(observer Observer) Option {
	return func(e *Engine) {
		e.observer = observer
	}
}

func LocalEngine(state *game.State, rules game.Rules, agents []agent.Agent, options ...Option) *Engine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	if rules == nil {
		rules = game.NewStandardRules()
	}

	e := &Engine{
		State:    state,
		Rules:    rules,
		Agents:   agents,
		maxTurns: meta.MaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Play applies pit for the player to move. An invalid pit leaves the board unchanged.
func (e *Engine) Play(pit int) error {
	if e.Rules.IsTerminal(e.State) {
		return ErrGameOver
	}
	mover := e.State.CurrentPlayer
	if err := e.Rules.Play(e.State, pit); err != nil {
		return err
	}
	if e.observer != nil {
		e.observer(game.Move{Player: mover, Pit: pit}, e.State)
	}
	return nil
}

// Run executes the game loop until a terminal state or the turn limit.
func (e *Engine) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.CurrentPlayer,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("player %s is starting", e.State.CurrentPlayer)

	turnCount := 1
	for !e.Rules.IsTerminal(e.State) && turnCount <= e.maxTurns {
		mover := e.State.CurrentPlayer

		pit, searchMetrics, err := e.Agents[mover-1].FindMove(e.State)
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("turn %d: %s failed to find a move: %w", turnCount, mover, err)
		}
		if err := e.Play(pit); err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("turn %d: %w", turnCount, err)
		}

		log.Debug().
			Int("turn", turnCount).
			Str("player", mover.String()).
			Int("pit", pit).
			Uint64("hash", uint64(e.State.Hash())).
			Msg("move played")

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:          turnCount,
			Player:        mover,
			Pit:           pit,
			SearchMetrics: searchMetrics,
		})
		turnCount++
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.Store1, gameMetric.Store2 = e.Rules.Score(e.State)
	gameMetric.Finished = e.Rules.IsTerminal(e.State)
	if gameMetric.Finished {
		gameMetric.Winner = e.State.Winner()
	} else {
		log.Warn().Msgf("stopped after %d turns without a terminal state", e.maxTurns)
	}

	log.Debug().Msgf("game over after %d moves: %d-%d, %s", gameMetric.TotalMoves, gameMetric.Store1, gameMetric.Store2, gameMetric.Outcome())

	return gameMetric, moveMetrics, nil
}
