package demo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"todotree.dev/todotree/internal/demo"
	"todotree.dev/todotree/internal/engine"
	"todotree.dev/todotree/internal/runtime"
)

func TestSeed(t *testing.T) {
	eng := engine.NewEngine()
	ids := demo.Seed(eng)

	require.Equal(t, 8, eng.Len())
	require.Equal(t, []engine.NodeID{ids.Inbox, ids.Work, ids.Personal}, eng.Roots())

	book, err := eng.Get(ids.FinishBook)
	require.NoError(t, err)
	require.Equal(t, ids.Inbox, book.ParentID)
	require.Equal(t, []engine.NodeID{ids.TakeNotes}, book.ChildIDs)

	// Nothing is done out of the box
	for _, rootID := range eng.Roots() {
		info, err := eng.Get(rootID)
		require.NoError(t, err)
		require.False(t, info.Done)
	}
}

func TestDemoEngineFactory(t *testing.T) {
	require.NotNil(t, runtime.DemoEngineFactory)

	eng := runtime.DemoEngineFactory()
	require.Equal(t, 8, eng.Len())
}
