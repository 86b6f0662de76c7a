package config

import (
	"bytes"
	"errors"
	"fmt"
	"mancala/agent"
	"mancala/experiments"
	"mancala/meta"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const Permissions = 0755

var (
	// File is where the CLI looks for its configuration when --config is not given.
	File = filepath.Join(xdg.ConfigHome, "mancala", "config.yaml")

	// OutputDirectory is the default root for experiment records.
	OutputDirectory = filepath.Join(xdg.DataHome, "mancala", "experiments")
)

type Board struct {
	Pits   int `yaml:"pits"`
	Stones int `yaml:"stones"`
}

// Config is the YAML document driving the play and simulate commands.
// Matchups reference agents by ID, the first ID sitting as player 1.
type Config struct {
	Board      Board          `yaml:"board"`
	Agents     []agent.Config `yaml:"agents"`
	Matchups   [][2]int       `yaml:"matchups"`
	Games      int            `yaml:"games"`
	Seed       uint64         `yaml:"seed"`
	Goroutines int            `yaml:"goroutines"`
	MaxTurns   int            `yaml:"max_turns"`
	Alternate  bool           `yaml:"alternate"`
	Output     string         `yaml:"output"`
}

func Default() Config {
	return Config{
		Board: Board{Pits: meta.DefaultPits, Stones: meta.DefaultStones},
		Agents: []agent.Config{
			{ID: 1, Kind: agent.Minimax, Depth: meta.DefaultDepth},
			{ID: 2, Kind: agent.Random},
		},
		Matchups:   [][2]int{{1, 2}},
		Games:      meta.DefaultGames,
		Seed:       meta.DefaultSeed,
		Goroutines: 1,
		MaxTurns:   meta.MaxTurns,
		Alternate:  true,
		Output:     OutputDirectory,
	}
}

// Load reads the configuration at path on top of the defaults. An empty
// path falls back to File, and a missing default file yields the defaults.
func Load(path string) (Config, error) {
	config := Default()

	explicit := path != ""
	if !explicit {
		path = File
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("failed to read config: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return config, config.Validate()
}

// Save writes config to path, creating parent directories as needed.
func Save(path string, config Config) error {
	if err := os.MkdirAll(filepath.Dir(path), Permissions); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func (c Config) Validate() error {
	if c.Board.Pits <= 0 {
		return fmt.Errorf("board needs at least one pit per player, got %d", c.Board.Pits)
	}
	if c.Board.Stones < 0 {
		return fmt.Errorf("board cannot start with %d stones per pit", c.Board.Stones)
	}
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}

	ids := map[int]bool{}
	for _, a := range c.Agents {
		if ids[a.ID] {
			return fmt.Errorf("duplicate agent id %d", a.ID)
		}
		ids[a.ID] = true
		if err := a.Validate(); err != nil {
			return fmt.Errorf("agent %d: %w", a.ID, err)
		}
	}
	for _, m := range c.Matchups {
		for _, id := range m {
			if !ids[id] {
				return fmt.Errorf("matchup %v references unknown agent %d", m, id)
			}
		}
	}
	return nil
}

func (c Config) Agent(id int) (agent.Config, error) {
	for _, a := range c.Agents {
		if a.ID == id {
			return a, nil
		}
	}
	return agent.Config{}, fmt.Errorf("no agent with id %d", id)
}

// Experiment turns the configured matchups into a runnable experiment.
func (c Config) Experiment(name string) (experiments.Experiment, error) {
	if err := c.Validate(); err != nil {
		return experiments.Experiment{}, err
	}
	if len(c.Matchups) == 0 {
		return experiments.Experiment{}, errors.New("no matchups configured")
	}

	exp := experiments.Experiment{
		Name:          name,
		PitsPerPlayer: c.Board.Pits,
		StonesPerPit:  c.Board.Stones,
		Games:         c.Games,
		Seed:          c.Seed,
		Goroutines:    c.Goroutines,
		MaxTurns:      c.MaxTurns,
		Alternate:     c.Alternate,
	}
	for _, m := range c.Matchups {
		agent1, _ := c.Agent(m[0])
		agent2, _ := c.Agent(m[1])
		exp.Matchups = append(exp.Matchups, experiments.Matchup{Agent1: agent1, Agent2: agent2})
	}
	return exp, nil
}
