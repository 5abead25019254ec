package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/simon/tmux-startup/internal/config"
)

// Exit codes.
const (
	exitFailure  = 1
	exitNoConfig = 2
)

func SetVersionInfo(version, commit string) {
	rootCmd.Version = fmt.Sprintf("%s (%s)", version, commit)
}

var rootCmd = &cobra.Command{
	Use:           "tmux-startup",
	Short:         "Run named commands in tmux windows",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.InfoLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log every tmux invocation")
	rootCmd.PersistentFlags().String("tmux", "", "tmux binary to use (default $TMUX_STARTUP_TMUX or tmux)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(userMessage(err))
		os.Exit(exitCode(err))
	}
}

// userMessage turns the well-known failures into the sentences users see.
func userMessage(err error) string {
	var dup *config.DuplicateNameError
	switch {
	case errors.As(err, &dup):
		return fmt.Sprintf("Command by the name of %q already exists. Use --overwrite to overwrite it.", dup.Name)
	case errors.Is(err, config.ErrNoConfigDir):
		return "Please set $HOME, $XDG_CONFIG_HOME, or $TMUX_STARTUP_HOME"
	}
	return err.Error()
}

func exitCode(err error) int {
	if errors.Is(err, config.ErrNoConfigDir) {
		return exitNoConfig
	}
	return exitFailure
}
