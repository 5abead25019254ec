package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history [name]",
	Short: "Show recent start and stop events",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h := openHistory()
		if h == nil {
			return errors.New("history database unavailable")
		}
		defer h.Close()

		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		limit, _ := cmd.Flags().GetInt("limit")

		events, err := h.store.Recent(name, limit)
		if err != nil {
			return fmt.Errorf("failed to read history: %w", err)
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, ev := range events {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
				ev.At.Local().Format("2006-01-02 15:04:05"), ev.Action, ev.Session, ev.Name)
		}
		return tw.Flush()
	},
	ValidArgsFunction: completeNames,
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Maximum number of events")
	rootCmd.AddCommand(historyCmd)
}
