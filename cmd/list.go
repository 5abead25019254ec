package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/simon/tmux-startup/internal/config"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#D6249F", Dark: "#FF79C6"})
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#777777", Dark: "#6272A4"}).PaddingRight(2)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List startable tmux windows",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		format, _ := cmd.Flags().GetString("output")
		switch format {
		case "json":
			data, err := json.MarshalIndent(store.Commands, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
			return nil
		case "yaml":
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(store.Commands); err != nil {
				return err
			}
			return enc.Close()
		case "":
		default:
			return fmt.Errorf("unknown output format %q (want json or yaml)", format)
		}

		if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			var lastStarted map[string]time.Time
			if h := openHistory(); h != nil {
				lastStarted, _ = h.store.LastStarted()
				h.Close()
			}
			fmt.Fprintln(out, renderTable(store.Commands, lastStarted))
			return nil
		}
		return writePlain(out, store.Commands)
	},
}

func init() {
	listCmd.Flags().StringP("output", "o", "", "Output format: json or yaml")
	rootCmd.AddCommand(listCmd)
}

// writePlain prints one tab separated line per command for scripts.
func writePlain(w io.Writer, cmds config.List) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, c := range cmds {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Session, c.Name, strconv.FormatBool(c.Startup), c.Command)
	}
	return tw.Flush()
}

func renderTable(cmds config.List, lastStarted map[string]time.Time) string {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("SESSION", "NAME", "STARTUP", "COMMAND", "LAST STARTED").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle.PaddingRight(2)
			case col == 4:
				return dimStyle
			default:
				return cellStyle
			}
		})

	for _, c := range cmds {
		startup := ""
		if c.Startup {
			startup = "yes"
		}
		last := "-"
		if ts, ok := lastStarted[c.Name]; ok {
			last = formatAgo(time.Since(ts))
		}
		t.Row(c.Session, c.Name, startup, c.Command, last)
	}
	return t.Render()
}

func formatAgo(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
