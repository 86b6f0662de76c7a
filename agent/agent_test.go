package agent

import (
	"mancala/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomAgent(t *testing.T) {
	rules := game.NewStandardRules()

	t.Run("only picks legal pits", func(t *testing.T) {
		a := NewRandomAgent(1, rules)
		state := &game.State{
			PitsPerPlayer: 4,
			Slots:         []int{0, 3, 0, 0, 0, 1, 1, 1, 1, 0},
			CurrentPlayer: game.Player1,
		}

		for i := 0; i < 50; i++ {
			pit, _, err := a.FindMove(state)
			require.NoError(t, err)
			require.Equal(t, 2, pit, "Pit 2 is the only non-empty pit")
		}
	})

	t.Run("same seed plays the same sequence", func(t *testing.T) {
		a := NewRandomAgent(109, rules)
		b := NewRandomAgent(109, rules)
		state := game.NewState(6, 4)

		for i := 0; i < 20; i++ {
			pitA, _, err := a.FindMove(state)
			require.NoError(t, err)
			pitB, _, err := b.FindMove(state)
			require.NoError(t, err)
			require.Equal(t, pitA, pitB)
		}
	})

	t.Run("covers every legal pit", func(t *testing.T) {
		a := NewRandomAgent(3, rules)
		state := game.NewState(6, 4)
		seen := map[int]bool{}

		for i := 0; i < 500; i++ {
			pit, _, err := a.FindMove(state)
			require.NoError(t, err)
			seen[pit] = true
		}
		require.Len(t, seen, 6)
	})

	t.Run("fails without valid moves", func(t *testing.T) {
		a := NewRandomAgent(1, rules)
		state := &game.State{
			PitsPerPlayer: 2,
			Slots:         []int{0, 0, 7, 5, 5, 1},
			CurrentPlayer: game.Player1,
		}

		_, _, err := a.FindMove(state)

		require.ErrorIs(t, err, game.ErrNoValidMoves)
	})
}

func TestNew(t *testing.T) {
	rules := game.NewStandardRules()

	t.Run("builds a minimax agent", func(t *testing.T) {
		a, err := New(Config{Kind: Minimax, Depth: 1}, rules)
		require.NoError(t, err)

		pit, metrics, err := a.FindMove(game.NewState(2, 5))
		require.NoError(t, err)
		require.Equal(t, 1, pit)
		require.Equal(t, 1, metrics.Depth)
		require.Equal(t, int64(2), metrics.Expansions)
	})

	t.Run("builds a random agent", func(t *testing.T) {
		a, err := New(Config{Kind: Random, Seed: 5}, rules)
		require.NoError(t, err)
		require.IsType(t, &randomAgent{}, a)
	})

	t.Run("rejects unknown kinds", func(t *testing.T) {
		_, err := New(Config{Kind: "oracle"}, rules)
		require.Error(t, err)
	})

	t.Run("rejects minimax without depth", func(t *testing.T) {
		_, err := New(Config{Kind: Minimax}, rules)
		require.Error(t, err)
	})
}

func TestConfigString(t *testing.T) {
	require.Equal(t, "minimax(depth=3)", Config{Kind: Minimax, Depth: 3}.String())
	require.Equal(t, "random", Config{Kind: Random}.String())
}
