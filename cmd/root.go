package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "mancala",
		Short: "Play and simulate Kalah with minimax agents",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cmd.Flag("trace").Changed {
				zerolog.SetGlobalLevel(zerolog.TraceLevel)
			}
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().StringP("config", "c", "", "Configuration file (default $XDG_CONFIG_HOME/mancala/config.yaml)")

	root.AddCommand(Play())
	root.AddCommand(Simulate())
	root.AddCommand(Init())

	return root
}
