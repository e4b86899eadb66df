package cli

import (
	"github.com/spf13/cobra"

	"todotree.dev/todotree/internal/demo"
	"todotree.dev/todotree/internal/engine"
	"todotree.dev/todotree/internal/output"
	"todotree.dev/todotree/internal/runtime"
)

// newDemoCmd creates the demo command
func newDemoCmd() *cobra.Command {
	var styled bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Build the sample forest, mutate it, and print it",
		Long: `Build the sample forest, mark a few tasks done, nest a task one level
deeper, and print the forest before and after. Completion state on parents
is derived from their children throughout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := runtime.NewContext(engine.NewEngine())
			defer func() { _ = ctx.Splog.Close() }()

			ids := demo.Seed(ctx.Engine)

			// Mark some as done. "Write report" is Work's only child, so
			// Work derives done as well.
			if err := ctx.Engine.Toggle(ids.BuyMilk); err != nil {
				return err
			}
			if err := ctx.Engine.Toggle(ids.WriteReport); err != nil {
				return err
			}

			renderer := output.NewForestRenderer(ctx.Engine)
			opts := output.RenderOptions{Styled: styled}

			ctx.Splog.Page(renderer.RenderString(opts))
			ctx.Splog.Info("========================")

			if err := ctx.Engine.Toggle(ids.CallMom); err != nil {
				return err
			}

			ctx.Splog.Page(renderer.RenderString(opts))
			return nil
		},
	}

	cmd.Flags().BoolVar(&styled, "styled", false, "Render with terminal styling")

	return cmd
}
