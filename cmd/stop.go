package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/simon/tmux-startup/internal/config"
	"github.com/simon/tmux-startup/internal/state"
)

var stopCmd = &cobra.Command{
	Use:   "stop [name]",
	Short: "Stop running programs",
	Long: `Sends SIGTERM to every process in the named window, or destroys the
window outright with --force. The name is ignored when --all is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		all, _ := cmd.Flags().GetBool("all")
		force, _ := cmd.Flags().GetBool("force")

		var targets config.List
		switch {
		case all:
			targets = store.Commands
		case len(args) == 1:
			// Unregistered windows can be stopped too.
			targets = config.List{{Name: args[0], Session: sessionOf(store.Commands, args[0])}}
		default:
			return nil
		}
		if len(targets) == 0 {
			return nil
		}

		r, err := newReconciler(cmd)
		if err != nil {
			return err
		}
		h := openHistory()
		defer h.Close()

		return eachCommand(targets, func(c config.Command) error {
			if force {
				if err := r.CloseWindow(c.Name); err != nil {
					return err
				}
				h.Record(c.Name, c.Session, state.Killed)
				return nil
			}

			pids, err := r.SignalStop(c.Name)
			if len(pids) > 0 {
				log.Debug("sent SIGTERM", "name", c.Name, "pids", pids)
				h.Record(c.Name, c.Session, state.Stopped)
			}
			return err
		})
	},
	ValidArgsFunction: completeNames,
}

func init() {
	stopCmd.Flags().BoolP("all", "a", false, "Stop all registered processes")
	stopCmd.Flags().BoolP("force", "f", false, "Immediately kill the window")
	rootCmd.AddCommand(stopCmd)
}
