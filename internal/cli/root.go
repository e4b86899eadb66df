// Package cli wires the cobra command surface: the interactive session,
// the demo, the TUI browser, and version information.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "todotree",
		Short: "Todotree is an interactive tool for managing a forest of nested tasks",
		Long: `Todotree keeps a forest of hierarchical tasks in memory for the length of
a session: multiple roots, arbitrarily nested children, completion state
that propagates upward, and safe move/delete operations.

Running todotree with no arguments starts an interactive session.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default behavior is the interactive session
			return runRepl(cmd, replOptions{})
		},
	}

	// Add subcommands
	rootCmd.AddCommand(newReplCmd())
	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newTuiCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}
