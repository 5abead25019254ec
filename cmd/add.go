package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simon/tmux-startup/internal/config"
)

var addCmd = &cobra.Command{
	Use:   "add <session> <name> <command>",
	Short: "Add a command to start",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		startup, _ := cmd.Flags().GetBool("startup")
		overwrite, _ := cmd.Flags().GetBool("overwrite")

		c := config.Command{
			Session: args[0],
			Name:    args[1],
			Command: args[2],
			Startup: startup,
		}
		if err := store.Add(c, overwrite); err != nil {
			return err
		}

		if err := store.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		return nil
	},
}

func init() {
	addCmd.Flags().BoolP("startup", "s", false, "Run on startup")
	addCmd.Flags().BoolP("overwrite", "o", false, "Overwrite an existing command with the same name")
	rootCmd.AddCommand(addCmd)
}
