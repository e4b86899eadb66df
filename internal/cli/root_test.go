package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"todotree.dev/todotree/internal/cli"
)

func TestNewRootCmd(t *testing.T) {
	root := cli.NewRootCmd("1.0.0", "abc123", "today")

	require.Equal(t, "todotree", root.Use)

	names := make(map[string]bool)
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"repl", "demo", "tui", "version"} {
		require.True(t, names[want], "missing %s command", want)
	}
}
