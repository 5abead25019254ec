package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simon/tmux-startup/internal/config"
)

var checkRunningCmd = &cobra.Command{
	Use:   "check-running [name]",
	Short: "Check if a command is running",
	Long: `Prints the name of each command with at least one live pane. The name
is ignored when --all is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		all, _ := cmd.Flags().GetBool("all")
		showPids, _ := cmd.Flags().GetBool("pids")

		var names []string
		switch {
		case all:
			for _, c := range store.Commands {
				names = append(names, c.Name)
			}
		case len(args) == 1:
			names = []string{args[0]}
		default:
			return nil
		}
		if len(names) == 0 {
			return nil
		}

		r, err := newReconciler(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		targets := make(config.List, 0, len(names))
		for _, n := range names {
			targets = append(targets, config.Command{Name: n})
		}
		return eachCommand(targets, func(c config.Command) error {
			if !showPids {
				running, err := r.Running(c.Name)
				if err != nil {
					return err
				}
				if running {
					fmt.Fprintln(out, c.Name)
				}
				return nil
			}

			procs, err := r.Processes(c.Name)
			if err != nil {
				return err
			}
			for _, p := range procs {
				exe := p.Executable
				if exe == "" {
					exe = "-"
				}
				fmt.Fprintf(out, "%s %d %s\n", c.Name, p.Pid, exe)
			}
			return nil
		})
	},
	ValidArgsFunction: completeNames,
}

func init() {
	checkRunningCmd.Flags().BoolP("all", "a", false, "Check all registered processes")
	checkRunningCmd.Flags().BoolP("pids", "p", false, "Print each live pid and its executable")
	rootCmd.AddCommand(checkRunningCmd)
}
