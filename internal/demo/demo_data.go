// Package demo seeds an engine with a small sample forest, used by the
// demo command and as an optional starting point for interactive sessions.
package demo

import (
	"todotree.dev/todotree/internal/engine"
	"todotree.dev/todotree/internal/runtime"
)

func init() {
	// Register the demo engine factory with the runtime package
	runtime.DemoEngineFactory = func() engine.Engine {
		eng := engine.NewEngine()
		Seed(eng)
		return eng
	}
}

// SeedIDs holds the ids of the seeded sample nodes
type SeedIDs struct {
	Inbox    engine.NodeID
	Work     engine.NodeID
	Personal engine.NodeID

	BuyMilk     engine.NodeID
	FinishBook  engine.NodeID
	WriteReport engine.NodeID
	CallMom     engine.NodeID
	TakeNotes   engine.NodeID
}

// Seed populates the engine with the sample forest: three roots with a
// handful of tasks, one of them nested two levels deep.
func Seed(eng engine.Engine) SeedIDs {
	ids := SeedIDs{}

	ids.Inbox = eng.AddRoot("Inbox")
	ids.Work = eng.AddRoot("Work")
	ids.Personal = eng.AddRoot("Personal")

	// Seeding under freshly created roots cannot fail; the ids are live.
	ids.BuyMilk, _ = eng.AddChild(ids.Inbox, "Buy milk")
	ids.FinishBook, _ = eng.AddChild(ids.Inbox, "Finish book")
	ids.WriteReport, _ = eng.AddChild(ids.Work, "Write report")
	ids.CallMom, _ = eng.AddChild(ids.Personal, "Call mom")
	ids.TakeNotes, _ = eng.AddChild(ids.FinishBook, "Take notes")

	return ids
}
