package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// completeNames offers registered command names for the first argument.
func completeNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	store, err := openStore()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var names []string
	for _, c := range store.Commands {
		if strings.HasPrefix(c.Name, toComplete) {
			names = append(names, c.Name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
