package searcher

import (
	"mancala/game"
	"mancala/meta"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// referenceValue is an independent minimax that decides whether to maximize
// from whose turn it is rather than by alternating plies.
func referenceValue(rules game.Rules, s *game.State, mover game.Player, depth int) int {
	if depth == 0 || rules.IsTerminal(s) {
		return game.Utility(s, mover)
	}
	var values []int
	for _, pit := range rules.ValidMoves(s) {
		child := s.Copy()
		if err := rules.Play(child, pit); err != nil {
			panic(err)
		}
		values = append(values, referenceValue(rules, child, mover, depth-1))
	}
	best := values[0]
	for _, v := range values[1:] {
		if (s.CurrentPlayer == mover && v > best) || (s.CurrentPlayer != mover && v < best) {
			best = v
		}
	}
	return best
}

func TestNewMinimax(t *testing.T) {
	t.Run("uses default depth", func(t *testing.T) {
		require.Equal(t, meta.DefaultDepth, NewMinimax().Depth())
	})

	t.Run("ignores non-positive depth", func(t *testing.T) {
		require.Equal(t, meta.DefaultDepth, NewMinimax(WithDepth(0)).Depth())
		require.Equal(t, meta.DefaultDepth, NewMinimax(WithDepth(-3)).Depth())
	})

	t.Run("sets depth", func(t *testing.T) {
		require.Equal(t, 7, NewMinimax(WithDepth(7)).Depth())
	})
}

func TestDecide(t *testing.T) {
	t.Run("breaks ties by lowest pit", func(t *testing.T) {
		m := NewMinimax(WithDepth(1))
		state := game.NewState(2, 5)

		candidates, err := m.Candidates(state, game.Player1)
		require.NoError(t, err)
		require.Equal(t, []Candidate{{Pit: 1, Value: 8}, {Pit: 2, Value: 8}}, candidates,
			"Both moves capture seven stones plus the landing stone")

		pit, _, err := m.Decide(state, game.Player1)
		require.NoError(t, err)
		require.Equal(t, 1, pit, "First maximizer in enumeration order should win the tie")
	})

	t.Run("prefers the big capture", func(t *testing.T) {
		m := NewMinimax(WithDepth(1))
		state := &game.State{
			PitsPerPlayer: 3,
			Slots:         []int{1, 0, 3, 0, 2, 9, 1, 0},
			CurrentPlayer: game.Player1,
		}

		pit, _, err := m.FindMove(state)

		require.NoError(t, err)
		require.Equal(t, 1, pit)
	})

	t.Run("plays for player 2", func(t *testing.T) {
		m := NewMinimax(WithDepth(1))
		state := &game.State{
			PitsPerPlayer: 3,
			Slots:         []int{2, 9, 1, 0, 1, 0, 3, 0},
			CurrentPlayer: game.Player2,
		}

		pit, _, err := m.FindMove(state)

		require.NoError(t, err)
		require.Equal(t, 1, pit, "Pit 1 lands in the empty pit facing nine stones")
	})

	t.Run("does not mutate the searched state", func(t *testing.T) {
		m := NewMinimax(WithDepth(4))
		state := game.NewState(4, 3)
		before := state.Copy()

		_, _, err := m.FindMove(state)

		require.NoError(t, err)
		require.Equal(t, before, state)
	})

	t.Run("is deterministic", func(t *testing.T) {
		m := NewMinimax(WithDepth(4))
		state := game.NewState(6, 4)

		first, _, err := m.FindMove(state)
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			pit, _, err := m.FindMove(state)
			require.NoError(t, err)
			require.Equal(t, first, pit)
		}
	})

	t.Run("fails without valid moves", func(t *testing.T) {
		m := NewMinimax(WithDepth(2))
		state := &game.State{
			PitsPerPlayer: 2,
			Slots:         []int{0, 0, 7, 5, 5, 1},
			CurrentPlayer: game.Player1,
		}

		_, _, err := m.FindMove(state)

		require.ErrorIs(t, err, game.ErrNoValidMoves)
	})

	t.Run("fails for the wrong mover", func(t *testing.T) {
		m := NewMinimax(WithDepth(2))

		_, _, err := m.Decide(game.NewState(2, 5), game.Player2)

		require.ErrorIs(t, err, ErrNotMoversTurn)
	})
}

func TestDecideMatchesReference(t *testing.T) {
	rules := game.NewStandardRules()
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 40; trial++ {
		state := game.NewState(4, 3)
		for plies := rng.Intn(8); plies > 0 && !rules.IsTerminal(state); plies-- {
			moves := rules.ValidMoves(state)
			require.NoError(t, rules.Play(state, moves[rng.Intn(len(moves))]))
		}
		if rules.IsTerminal(state) {
			continue
		}

		for depth := 1; depth <= 4; depth++ {
			m := NewMinimax(WithDepth(depth))
			mover := state.CurrentPlayer

			candidates, err := m.Candidates(state, mover)
			require.NoError(t, err)

			wantPit, wantValue := 0, 0
			for i, pit := range rules.ValidMoves(state) {
				child := state.Copy()
				require.NoError(t, rules.Play(child, pit))
				value := referenceValue(rules, child, mover, depth-1)

				require.Equal(t, Candidate{Pit: pit, Value: value}, candidates[i])
				if i == 0 || value > wantValue {
					wantPit, wantValue = pit, value
				}
			}

			pit, _, err := m.Decide(state, mover)
			require.NoError(t, err)
			require.Equal(t, wantPit, pit, "trial %d depth %d", trial, depth)
		}
	}
}

func TestMetrics(t *testing.T) {
	t.Run("counts expansions and leaves", func(t *testing.T) {
		m := NewMinimax(WithDepth(2), WithMetrics())

		_, metrics, err := m.FindMove(game.NewState(2, 5))

		require.NoError(t, err)
		require.Equal(t, 2, metrics.Depth)
		require.Equal(t, int64(4), metrics.Expansions, "Two root moves, each leaving player 2 a single reply")
		require.Equal(t, int64(2), metrics.Leaves)
	})

	t.Run("resets between searches", func(t *testing.T) {
		m := NewMinimax(WithDepth(2), WithMetrics())

		_, first, err := m.FindMove(game.NewState(2, 5))
		require.NoError(t, err)
		_, second, err := m.FindMove(game.NewState(2, 5))
		require.NoError(t, err)

		require.Equal(t, first.Expansions, second.Expansions)
	})

	t.Run("collects nothing by default", func(t *testing.T) {
		_, metrics, err := NewMinimax(WithDepth(2)).FindMove(game.NewState(2, 5))

		require.NoError(t, err)
		require.Equal(t, SearchMetrics{}, metrics)
	})
}
