package experiments

import (
	"fmt"
	"mancala/agent"
	"mancala/engine"
	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/meta"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Matchup pairs two agents. Agent1 sits as player 1 unless seats alternate.
type Matchup struct {
	Agent1 agent.Config
	Agent2 agent.Config
}

type Experiment struct {
	Name          string
	PitsPerPlayer int
	StonesPerPit  int
	Games         int // per matchup
	Seed          uint64
	Goroutines    int
	MaxTurns      int
	Alternate     bool // swap seats on every other game of a matchup
	Matchups      []Matchup
}

// Tally counts results from the point of view of the matchup's Agent1.
type Tally struct {
	Matchup
	Wins       int
	Losses     int
	Ties       int
	Unfinished int
	EloMin     float64
	Elo        float64
	EloMax     float64
}

func (t Tally) String() string {
	return fmt.Sprintf("%s vs %s: +%d -%d =%d (unfinished %d), elo %.1f [%.1f, %.1f]",
		t.Agent1, t.Agent2, t.Wins, t.Losses, t.Ties, t.Unfinished, t.Elo, t.EloMin, t.EloMax)
}

type Report struct {
	Tallies []Tally
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
	Start   time.Time
	End     time.Time
}

// Progress is called after every finished game. Calls are serialized.
type Progress func(done, total int)

type task struct {
	id      int // 1-based game record ID
	matchup int
	game    int // index within the matchup
}

type outcome struct {
	swapped bool // the matchup's Agent2 sat as player 1
	record  metrics.GameRecord
	moves   []metrics.MoveRecord
	err     error
}

// Run plays every game of the experiment. Games run on up to Goroutines
// workers, each game owning its own board and agents.
func Run(exp Experiment, progress Progress) (*Report, error) {
	if exp.Games <= 0 {
		return nil, fmt.Errorf("games per matchup must be positive, got %d", exp.Games)
	}
	if exp.Goroutines <= 0 {
		exp.Goroutines = 1
	}
	if exp.MaxTurns <= 0 {
		exp.MaxTurns = meta.MaxTurns
	}
	for i, m := range exp.Matchups {
		if err := m.Agent1.Validate(); err != nil {
			return nil, fmt.Errorf("matchup %d agent 1: %w", i+1, err)
		}
		if err := m.Agent2.Validate(); err != nil {
			return nil, fmt.Errorf("matchup %d agent 2: %w", i+1, err)
		}
	}

	total := len(exp.Matchups) * exp.Games
	tasks := make(chan task, total)
	for mi := range exp.Matchups {
		for g := 0; g < exp.Games; g++ {
			tasks <- task{id: mi*exp.Games + g + 1, matchup: mi, game: g}
		}
	}
	close(tasks)

	log.Info().Msgf("starting %s experiment: %d matchups, %d games each", exp.Name, len(exp.Matchups), exp.Games)
	report := &Report{Start: time.Now()}

	outcomes := make([]outcome, total)
	var mu sync.Mutex
	done := 0

	var wg sync.WaitGroup
	for i := 0; i < exp.Goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for t := range tasks {
				outcomes[t.id-1] = exp.playGame(t)

				mu.Lock()
				done++
				if progress != nil {
					progress(done, total)
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	report.Tallies = make([]Tally, len(exp.Matchups))
	for mi, m := range exp.Matchups {
		report.Tallies[mi].Matchup = m
	}
	for i, o := range outcomes {
		if o.err != nil {
			return nil, fmt.Errorf("game %d: %w", i+1, o.err)
		}
		report.Games = append(report.Games, o.record)
		report.Moves = append(report.Moves, o.moves...)
		report.Tallies[i/exp.Games].add(o)
	}
	for i := range report.Tallies {
		t := &report.Tallies[i]
		t.EloMin, t.Elo, t.EloMax = Elo(t.Wins, t.Ties, t.Losses)
		log.Info().Msgf("completed matchup %d of %d: %s", i+1, len(report.Tallies), t)
	}

	report.End = time.Now()
	log.Info().Msgf("completed %s experiment in %s", exp.Name, report.End.Sub(report.Start))
	return report, nil
}

func (exp Experiment) playGame(t task) outcome {
	rules := game.NewStandardRules()
	m := exp.Matchups[t.matchup]
	swapped := exp.Alternate && t.game%2 == 1
	config1, config2 := m.Agent1, m.Agent2
	if swapped {
		config1, config2 = m.Agent2, m.Agent1
	}

	// Seeds depend only on the game, so results do not depend on scheduling.
	agents := make([]agent.Agent, 2)
	for seat, config := range []agent.Config{config1, config2} {
		if config.Seed == 0 {
			config.Seed = exp.Seed
		}
		config.Seed += uint64(t.id)*2 + uint64(seat)

		a, err := agent.New(config, rules)
		if err != nil {
			return outcome{err: err}
		}
		agents[seat] = a
	}

	log.Debug().Msgf("starting game %d: %s vs %s", t.id, config1, config2)

	var runner engine.Runner = engine.LocalEngine(game.NewState(exp.PitsPerPlayer, exp.StonesPerPit), rules, agents, engine.WithMaxTurns(exp.MaxTurns))
	gameMetric, moveMetrics, err := runner.Run()
	if err != nil {
		return outcome{err: err}
	}

	moves := make([]metrics.MoveRecord, len(moveMetrics))
	for i, mm := range moveMetrics {
		moves[i] = metrics.MoveRecord{Game: t.id, MoveMetric: mm}
	}
	return outcome{
		swapped: swapped,
		record: metrics.GameRecord{
			ID:         t.id,
			Agent1:     config1.ID,
			Agent2:     config2.ID,
			GameMetric: gameMetric,
		},
		moves: moves,
	}
}

func (t *Tally) add(o outcome) {
	record := o.record
	if !record.Finished {
		t.Unfinished++
		return
	}
	if record.Winner == game.NoPlayer {
		t.Ties++
		return
	}

	agent1Seat := game.Player1
	if o.swapped {
		agent1Seat = game.Player2
	}
	if record.Winner == agent1Seat {
		t.Wins++
	} else {
		t.Losses++
	}
}

// Write stores the experiment setup and records under w.
func (r *Report) Write(w *metrics.Writer, exp Experiment) error {
	configs := []agent.Config{}
	seen := map[int]bool{}
	for _, m := range exp.Matchups {
		for _, c := range []agent.Config{m.Agent1, m.Agent2} {
			if !seen[c.ID] {
				seen[c.ID] = true
				configs = append(configs, c)
			}
		}
	}

	err := w.WriteSetup(metrics.Setup{
		Name:          exp.Name,
		PitsPerPlayer: exp.PitsPerPlayer,
		StonesPerPit:  exp.StonesPerPit,
		Agents:        configs,
		NumGames:      exp.Games,
		Seed:          exp.Seed,
		StartTime:     r.Start,
		EndTime:       r.End,
		Duration:      r.End.Sub(r.Start),
	})
	if err != nil {
		return err
	}
	log.Info().Msg("stored experiment setup")

	if err := w.WriteGameRecords(r.Games); err != nil {
		return err
	}
	log.Info().Msg("stored game records")

	if err := w.WriteMoveRecords(r.Moves); err != nil {
		return err
	}
	log.Info().Msg("stored move records")
	return nil
}
