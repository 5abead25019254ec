package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start <command-name>",
	Short: "Start a command in tmux",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		matches := store.Commands.Named(args[0])
		if len(matches) == 0 {
			log.Warn("no command registered", "name", args[0])
			return nil
		}
		return startAll(cmd, matches)
	},
	ValidArgsFunction: completeNames,
}

func init() {
	rootCmd.AddCommand(startCmd)
}
