package cmd

import (
	"fmt"
	"mancala/agent"
	"mancala/config"
	"mancala/engine"
	"mancala/game"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

func Play() *cobra.Command {
	play := &cobra.Command{
		Use:   "play [agent1-id agent2-id]",
		Short: "Play a single game and print every position",
		Args:  cobra.RangeArgs(0, 2),
		Long: heredoc.Doc(`play runs one game between two configured agents and prints
			the board after every move, finishing with the final score.

			Agents are picked by their id in the configuration file. Without
			arguments the first configured matchup is played. A seed given
			with --seed replaces the seed of every random agent.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flag("config").Value.String())
			if err != nil {
				return err
			}

			ids, err := matchupIDs(cfg, args)
			if err != nil {
				return err
			}

			seed, _ := cmd.Flags().GetUint64("seed")
			if !cmd.Flag("seed").Changed {
				seed = cfg.Seed
			}

			rules := game.NewStandardRules()
			agents := make([]agent.Agent, 2)
			for seat, id := range ids {
				c, err := cfg.Agent(id)
				if err != nil {
					return err
				}
				if c.Seed == 0 || cmd.Flag("seed").Changed {
					c.Seed = seed + uint64(seat)
				}
				if agents[seat], err = agent.New(c, rules); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", game.Player(seat+1), c)
			}

			state := game.NewState(cfg.Board.Pits, cfg.Board.Stones)
			fmt.Fprintln(cmd.OutOrStdout(), state)

			e := engine.LocalEngine(state, rules, agents,
				engine.WithMaxTurns(cfg.MaxTurns),
				engine.WithObserver(func(move game.Move, state *game.State) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s sows pit %d\n%s\n", move.Player, move.Pit, state)
				}),
			)

			result, _, err := e.Run()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s after %d moves, score %d-%d\n",
				result.Outcome(), result.TotalMoves, result.Store1, result.Store2)
			return nil
		},
	}

	play.Flags().Uint64("seed", 0, "Seed for random agents")

	return play
}

func matchupIDs(cfg config.Config, args []string) ([2]int, error) {
	switch len(args) {
	case 0:
		if len(cfg.Matchups) == 0 {
			return [2]int{}, fmt.Errorf("no matchups configured, pass two agent ids")
		}
		return cfg.Matchups[0], nil
	case 2:
		var ids [2]int
		for i, arg := range args {
			if _, err := fmt.Sscanf(arg, "%d", &ids[i]); err != nil {
				return ids, fmt.Errorf("invalid agent id %q", arg)
			}
		}
		return ids, nil
	default:
		return [2]int{}, fmt.Errorf("expected two agent ids, got %d", len(args))
	}
}
