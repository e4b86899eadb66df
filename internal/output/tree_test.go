package output_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"todotree.dev/todotree/internal/output"
	"todotree.dev/todotree/testhelpers"
)

func init() {
	// Pin the color profile so rendered output is stable regardless of the
	// terminal the tests run in
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestForestRenderer(t *testing.T) {
	t.Run("renders checkbox lines with two-space indentation", func(t *testing.T) {
		s := testhelpers.NewScene(t).
			Root("Inbox").
			Child("Inbox", "Buy milk").
			Child("Inbox", "Finish book").
			Child("Finish book", "Take notes").
			Root("Work").
			Toggle("Buy milk")

		r := output.NewForestRenderer(s.Engine)
		lines := r.Render(output.RenderOptions{})

		require.Equal(t, []string{
			"[ ] Inbox (id: 1)",
			"  [x] Buy milk (id: 2)",
			"  [ ] Finish book (id: 3)",
			"    [ ] Take notes (id: 4)",
			"[ ] Work (id: 5)",
		}, lines)
	})

	t.Run("marks derived completion on parents", func(t *testing.T) {
		s := testhelpers.NewScene(t).
			Root("Work").
			Child("Work", "Write report").
			Toggle("Write report")

		r := output.NewForestRenderer(s.Engine)
		lines := r.Render(output.RenderOptions{})

		require.Equal(t, []string{
			"[x] Work (id: 1)",
			"  [x] Write report (id: 2)",
		}, lines)
	})

	t.Run("respects max depth", func(t *testing.T) {
		s := testhelpers.NewScene(t).
			Root("Inbox").
			Child("Inbox", "Finish book").
			Child("Finish book", "Take notes")

		r := output.NewForestRenderer(s.Engine)
		lines := r.Render(output.RenderOptions{MaxDepth: 2})

		require.Equal(t, []string{
			"[ ] Inbox (id: 1)",
			"  [ ] Finish book (id: 2)",
		}, lines)
	})

	t.Run("can hide ids", func(t *testing.T) {
		s := testhelpers.NewScene(t).Root("Inbox")

		r := output.NewForestRenderer(s.Engine)
		lines := r.Render(output.RenderOptions{HideIDs: true})

		require.Equal(t, []string{"[ ] Inbox"}, lines)
	})

	t.Run("styled output keeps the line structure", func(t *testing.T) {
		s := testhelpers.NewScene(t).
			Root("Inbox").
			Child("Inbox", "Buy milk")

		r := output.NewForestRenderer(s.Engine)
		plain := r.Render(output.RenderOptions{})
		styled := r.Render(output.RenderOptions{Styled: true})

		// Pending nodes carry color-only styling, which the ascii
		// profile strips entirely
		require.Equal(t, plain, styled)
	})

	t.Run("renders the empty forest as nothing", func(t *testing.T) {
		s := testhelpers.NewScene(t)

		r := output.NewForestRenderer(s.Engine)
		require.Empty(t, r.Render(output.RenderOptions{}))
		require.Equal(t, "", r.RenderString(output.RenderOptions{}))
	})
}
