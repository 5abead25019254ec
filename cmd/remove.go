package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a startup command",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		n := store.Remove(args[0])
		log.Debug("removed", "name", args[0], "count", n)

		if err := store.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		return nil
	},
	ValidArgsFunction: completeNames,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
