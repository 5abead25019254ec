package cmd

import (
	"github.com/spf13/cobra"
)

var startupCmd = &cobra.Command{
	Use:   "startup",
	Short: "Run all startup commands",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		return startAll(cmd, store.Commands.Startup())
	},
}

func init() {
	rootCmd.AddCommand(startupCmd)
}
