package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) (string, string) {
	dir := t.TempDir()
	output := filepath.Join(dir, "records")
	path := filepath.Join(dir, "config.yaml")
	content := `
board:
  pits: 3
  stones: 2
agents:
  - id: 1
    kind: minimax
    depth: 2
  - id: 2
    kind: random
matchups:
  - [1, 2]
games: 4
output: ` + output + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path, output
}

func execute(t *testing.T, args ...string) (string, error) {
	root := Root()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPlay(t *testing.T) {
	path, _ := testConfig(t)

	t.Run("plays the first matchup", func(t *testing.T) {
		out, err := execute(t, "play", "--config", path)

		require.NoError(t, err)
		require.Contains(t, out, "P1: minimax(depth=2)")
		require.Contains(t, out, "P2: random")
		require.Contains(t, out, "P1 sows pit")
		require.Contains(t, out, "moves, score")
	})

	t.Run("plays the given agents", func(t *testing.T) {
		out, err := execute(t, "play", "--config", path, "--seed", "5", "2", "1")

		require.NoError(t, err)
		require.Contains(t, out, "P1: random")
		require.Contains(t, out, "P2: minimax(depth=2)")
	})

	t.Run("rejects unknown agents", func(t *testing.T) {
		_, err := execute(t, "play", "--config", path, "1", "9")
		require.ErrorContains(t, err, "no agent with id 9")
	})
}

func TestSimulate(t *testing.T) {
	path, output := testConfig(t)

	out, err := execute(t, "simulate", "--config", path, "--name", "smoke", "--goroutines", "2")

	require.NoError(t, err)
	require.Contains(t, out, "minimax(depth=2) vs random")
	require.Contains(t, out, "records written to")

	runs, err := os.ReadDir(filepath.Join(output, "smoke"))
	require.NoError(t, err)
	require.Len(t, runs, 1)
	_, err = os.Stat(filepath.Join(output, "smoke", runs[0].Name(), "game_records.csv"))
	require.NoError(t, err)
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mancala", "config.yaml")

	_, err := execute(t, "init", "--config", path)
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err)

	_, err = execute(t, "init", "--config", path)
	require.ErrorContains(t, err, "already exists")

	_, err = execute(t, "init", "--config", path, "--force")
	require.NoError(t, err)
}
