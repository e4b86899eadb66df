// Package tui provides the full-screen terminal browser for the forest.
package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"todotree.dev/todotree/internal/demo"
	"todotree.dev/todotree/internal/runtime"
)

// IsTTY returns true if we can use a TTY for interactive TUI
func IsTTY() bool {
	// First check if stdin/stdout are terminals
	if !((isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))) {
		return false
	}
	// Also try to open /dev/tty to verify it's actually available
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// Run starts the browser over the context's engine and blocks until the
// user quits
func Run(ctx *runtime.Context, seed bool) error {
	if seed && ctx.Engine.Len() == 0 {
		demo.Seed(ctx.Engine)
	}

	// Console logging would tear the alt screen; quiet it for the session
	ctx.Splog.SetQuiet(true)
	defer ctx.Splog.SetQuiet(false)

	m := newBrowserModel(ctx)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
