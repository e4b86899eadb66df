package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"todotree.dev/todotree/internal/runtime"
	"todotree.dev/todotree/internal/tui"
)

// newTuiCmd creates the tui command
func newTuiCmd() *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse and edit the forest in a full-screen terminal UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !tui.IsTTY() {
				return fmt.Errorf("tui requires an interactive terminal")
			}

			ctx := runtime.NewContextAuto()
			defer func() { _ = ctx.Splog.Close() }()

			return tui.Run(ctx, seed)
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "Preload the sample forest instead of starting empty")

	return cmd
}
