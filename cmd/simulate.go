package cmd

import (
	"fmt"
	"mancala/config"
	"mancala/experiments"
	"mancala/experiments/metrics"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

const SPIN = 14

func Simulate() *cobra.Command {
	simulate := &cobra.Command{
		Use:   "simulate",
		Short: "Run repeated games for every configured matchup",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`simulate plays the configured number of games for every
			matchup and prints a tally with an Elo estimate per matchup.

			Games run on --goroutines workers. Each game derives its agent
			seeds from the experiment seed and its game number, so the
			results do not depend on the number of workers.

			Unless --no-records is given, the setup, one row per game and one
			row per move are written to a timestamped folder under the
			output directory.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flag("config").Value.String())
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("games") {
				cfg.Games, _ = flags.GetInt("games")
			}
			if flags.Changed("seed") {
				cfg.Seed, _ = flags.GetUint64("seed")
			}
			if flags.Changed("goroutines") {
				cfg.Goroutines, _ = flags.GetInt("goroutines")
			}
			if flags.Changed("output") {
				cfg.Output, _ = flags.GetString("output")
			}

			name, _ := flags.GetString("name")
			exp, err := cfg.Experiment(name)
			if err != nil {
				return err
			}

			s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond)
			s.Writer = cmd.ErrOrStderr()
			s.Start()
			report, err := experiments.Run(exp, func(done, total int) {
				s.Lock()
				s.Suffix = fmt.Sprintf(" %d/%d games", done, total)
				s.Unlock()
			})
			s.Stop()
			if err != nil {
				return err
			}

			for _, tally := range report.Tallies {
				fmt.Fprintln(cmd.OutOrStdout(), tally)
			}

			if noRecords, _ := flags.GetBool("no-records"); noRecords {
				return nil
			}

			w, err := metrics.NewWriter(cfg.Output, exp.Name)
			if err != nil {
				return err
			}
			if err := report.Write(w, exp); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "records written to %s\n", w.Dir())
			return nil
		},
	}

	simulate.Flags().StringP("name", "n", "simulation", "Experiment name used for the records folder")
	simulate.Flags().IntP("games", "g", 0, "Games per matchup")
	simulate.Flags().Uint64P("seed", "s", 0, "Experiment seed")
	simulate.Flags().Int("goroutines", 1, "Number of games played in parallel")
	simulate.Flags().StringP("output", "o", "", "Root directory for records")
	simulate.Flags().Bool("no-records", false, "Only print the tallies")

	return simulate
}
