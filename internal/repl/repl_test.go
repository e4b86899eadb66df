package repl_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"todotree.dev/todotree/internal/engine"
	"todotree.dev/todotree/internal/errors"
	"todotree.dev/todotree/internal/output"
	"todotree.dev/todotree/internal/repl"
	"todotree.dev/todotree/internal/runtime"
)

// newTestREPL builds a REPL whose output is captured in a buffer
func newTestREPL(t *testing.T, script string) (*repl.REPL, engine.Engine, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	splog, err := output.NewSplogWithConfig(&buf, "")
	require.NoError(t, err)

	eng := engine.NewEngine()
	ctx := &runtime.Context{Engine: eng, Splog: splog}

	return repl.New(ctx, strings.NewReader(script)), eng, &buf
}

func TestREPLSession(t *testing.T) {
	t.Run("builds and shows a forest", func(t *testing.T) {
		script := strings.Join([]string{
			"root Inbox",
			"child 1 Buy milk",
			"toggle 2",
			"show",
			"quit",
		}, "\n")

		r, eng, buf := newTestREPL(t, script)
		require.NoError(t, r.Run())

		require.Equal(t, 2, eng.Len())
		out := buf.String()
		require.Contains(t, out, "Created root 1")
		require.Contains(t, out, "Created node 2 under 1")
		require.Contains(t, out, "[x] Inbox (id: 1)")
		require.Contains(t, out, "  [x] Buy milk (id: 2)")
	})

	t.Run("multi-word titles join the remaining tokens", func(t *testing.T) {
		r, eng, _ := newTestREPL(t, "")
		quit, err := r.Execute("root Plan the next release")
		require.NoError(t, err)
		require.False(t, quit)

		info, err := eng.Get(1)
		require.NoError(t, err)
		require.Equal(t, "Plan the next release", info.Title)
	})

	t.Run("errors keep the session going", func(t *testing.T) {
		script := strings.Join([]string{
			"toggle 42",
			"root Inbox",
			"exit",
		}, "\n")

		r, eng, buf := newTestREPL(t, script)
		require.NoError(t, r.Run())

		// The failed toggle was reported and the next command still ran
		require.Contains(t, buf.String(), "node 42 does not exist")
		require.Equal(t, 1, eng.Len())
	})

	t.Run("stops at end of input", func(t *testing.T) {
		r, eng, _ := newTestREPL(t, "root Inbox\n")
		require.NoError(t, r.Run())
		require.Equal(t, 1, eng.Len())
	})
}

func TestREPLErrors(t *testing.T) {
	t.Run("bad ids are parse errors, not engine errors", func(t *testing.T) {
		r, _, _ := newTestREPL(t, "")

		_, err := r.Execute("toggle abc")
		require.ErrorIs(t, err, errors.ErrParse)
		require.NotErrorIs(t, err, errors.ErrNodeNotFound)
	})

	t.Run("missing ids are engine errors, not parse errors", func(t *testing.T) {
		r, _, _ := newTestREPL(t, "")

		_, err := r.Execute("toggle 9")
		require.ErrorIs(t, err, errors.ErrNodeNotFound)
		require.NotErrorIs(t, err, errors.ErrParse)
	})

	t.Run("missing arguments are parse errors", func(t *testing.T) {
		r, _, _ := newTestREPL(t, "")

		for _, line := range []string{"child", "child 1", "move 1", "toggle", "delete", "get"} {
			_, err := r.Execute(line)
			require.ErrorIs(t, err, errors.ErrParse, "line %q", line)
		}
	})

	t.Run("empty titles are rejected at the boundary", func(t *testing.T) {
		r, eng, _ := newTestREPL(t, "")

		_, err := r.Execute("root")
		require.ErrorIs(t, err, errors.ErrParse)
		require.Equal(t, 0, eng.Len())
	})

	t.Run("unknown commands are parse errors", func(t *testing.T) {
		r, _, _ := newTestREPL(t, "")

		_, err := r.Execute("frobnicate 1")
		require.ErrorIs(t, err, errors.ErrParse)
	})

	t.Run("invalid moves are reported and leave the forest intact", func(t *testing.T) {
		r, eng, _ := newTestREPL(t, "")
		_, err := r.Execute("root Inbox")
		require.NoError(t, err)
		_, err = r.Execute("child 1 Finish book")
		require.NoError(t, err)

		_, err = r.Execute("move 1 2")
		require.ErrorIs(t, err, errors.ErrInvalidMove)

		require.Equal(t, []engine.NodeID{1}, eng.Roots())
	})

	t.Run("blank lines are ignored", func(t *testing.T) {
		r, _, _ := newTestREPL(t, "")

		quit, err := r.Execute("   ")
		require.NoError(t, err)
		require.False(t, quit)
	})
}

func TestREPLQuit(t *testing.T) {
	for _, cmd := range []string{"quit", "exit"} {
		t.Run(cmd+" ends the session", func(t *testing.T) {
			r, _, _ := newTestREPL(t, "")
			quit, err := r.Execute(cmd)
			require.NoError(t, err)
			require.True(t, quit)
		})
	}
}
