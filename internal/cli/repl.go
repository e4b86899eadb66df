package cli

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"todotree.dev/todotree/internal/demo"
	"todotree.dev/todotree/internal/repl"
	"todotree.dev/todotree/internal/runtime"
	"todotree.dev/todotree/internal/tui"
	"todotree.dev/todotree/internal/utils"
)

type replOptions struct {
	seed bool
}

// newReplCmd creates the repl command
func newReplCmd() *cobra.Command {
	var opts replOptions

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session on a fresh forest",
		Long: `Start a line-oriented interactive session. Commands are whitespace
delimited; type 'help' inside the session for the full list. The forest
lives in memory for the length of the session.`,
		Aliases: []string{"run"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.seed, "seed", false, "Preload the sample forest instead of starting empty")

	return cmd
}

func runRepl(_ *cobra.Command, opts replOptions) error {
	ctx := runtime.NewContextAuto()
	defer func() { _ = ctx.Splog.Close() }()

	interactive := utils.IsInteractive() && tui.IsTTY()

	if opts.seed {
		if !runtime.IsDemoMode() {
			demo.Seed(ctx.Engine)
		}
	} else if interactive && !runtime.IsDemoMode() && ctx.Engine.Len() == 0 {
		// Offer the sample forest so a first session has something to poke at
		preload := false
		prompt := &survey.Confirm{
			Message: "Start with the sample forest?",
			Default: false,
		}
		if err := survey.AskOne(prompt, &preload); err == nil && preload {
			demo.Seed(ctx.Engine)
		}
	}

	r := repl.New(ctx, os.Stdin)
	if interactive {
		r.Prompt = "todo> "
		ctx.Splog.Tip("Type 'help' for commands, 'quit' to leave")
	}

	return r.Run()
}
