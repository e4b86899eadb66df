package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"todotree.dev/todotree/internal/engine"
)

// checkInvariants walks the forest from the roots and verifies, through the
// public API only, that reachability matches the index, that parent/child
// links agree, that the structure is acyclic, and that every node with
// children has done == AND(children done).
func checkInvariants(t *testing.T, eng engine.Engine) {
	t.Helper()

	visited := make(map[engine.NodeID]bool)

	var walk func(id engine.NodeID, parentID engine.NodeID)
	walk = func(id engine.NodeID, parentID engine.NodeID) {
		require.False(t, visited[id], "node %d reached twice: cycle or duplicate ownership", id)
		visited[id] = true

		info, err := eng.Get(id)
		require.NoError(t, err, "reachable node %d missing from index", id)
		require.Equal(t, parentID, info.ParentID, "node %d parent back-reference disagrees with owner", id)

		if len(info.ChildIDs) > 0 {
			all := true
			for _, childID := range info.ChildIDs {
				child, err := eng.Get(childID)
				require.NoError(t, err)
				if !child.Done {
					all = false
				}
			}
			require.Equal(t, all, info.Done, "node %d done flag not derived from children", id)
		}

		for _, childID := range info.ChildIDs {
			walk(childID, id)
		}
	}

	for _, rootID := range eng.Roots() {
		walk(rootID, engine.NoNode)
	}

	// Every indexed node was reached: index size equals the reachable set
	require.Equal(t, len(visited), eng.Len())
}

func TestInvariantsAcrossOperationSequences(t *testing.T) {
	eng := engine.NewEngine()
	checkInvariants(t, eng)

	inbox := eng.AddRoot("Inbox")
	work := eng.AddRoot("Work")
	personal := eng.AddRoot("Personal")
	checkInvariants(t, eng)

	milk, err := eng.AddChild(inbox, "Buy milk")
	require.NoError(t, err)
	book, err := eng.AddChild(inbox, "Finish book")
	require.NoError(t, err)
	report, err := eng.AddChild(work, "Write report")
	require.NoError(t, err)
	_, err = eng.AddChild(personal, "Call mom")
	require.NoError(t, err)
	notes, err := eng.AddChild(book, "Take notes")
	require.NoError(t, err)
	checkInvariants(t, eng)

	require.NoError(t, eng.Toggle(milk))
	require.NoError(t, eng.Toggle(report))
	require.NoError(t, eng.Toggle(notes))
	checkInvariants(t, eng)

	// Failed moves leave everything intact
	require.Error(t, eng.Move(inbox, notes))
	require.Error(t, eng.Move(book, book))
	checkInvariants(t, eng)

	require.NoError(t, eng.Move(book, work))
	checkInvariants(t, eng)

	require.NoError(t, eng.Delete(book))
	checkInvariants(t, eng)

	require.NoError(t, eng.Delete(inbox))
	checkInvariants(t, eng)

	// Fresh ids keep climbing after deletions
	next := eng.AddRoot("Later")
	require.Greater(t, next, notes)
	checkInvariants(t, eng)
}
