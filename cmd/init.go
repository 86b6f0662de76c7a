package cmd

import (
	"errors"
	"fmt"
	"mancala/config"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

func Init() *cobra.Command {
	command := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`init writes the default configuration to the file given with
			--config, or to $XDG_CONFIG_HOME/mancala/config.yaml. An existing
			file is only replaced with --force.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cmd.Flag("config").Value.String()
			if path == "" {
				path = config.File
			}

			force, _ := cmd.Flags().GetBool("force")
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to replace it", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			if err := config.Save(path, config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	command.Flags().BoolP("force", "f", false, "Replace an existing configuration")

	return command
}
