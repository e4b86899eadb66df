// Package runtime provides a context type that holds the engine and logger
// for use throughout the application. This avoids passing multiple parameters.
package runtime

import (
	"os"

	"todotree.dev/todotree/internal/engine"
	"todotree.dev/todotree/internal/output"
)

// Context provides access to engine and output for commands
type Context struct {
	Engine engine.Engine
	Splog  *output.Splog
}

// NewContext creates a new context with the given engine
func NewContext(eng engine.Engine) *Context {
	return &Context{
		Engine: eng,
		Splog:  output.NewSplog(),
	}
}

// IsDemoMode returns true if TODOTREE_DEMO environment variable is set
func IsDemoMode() bool {
	return os.Getenv("TODOTREE_DEMO") != ""
}

// DemoEngineFactory is a function that creates a pre-seeded demo engine.
// This is set by the demo package to avoid circular imports.
var DemoEngineFactory func() engine.Engine

// NewContextAuto creates a context automatically based on the environment.
// In demo mode, the engine comes up pre-seeded with the sample forest.
// Otherwise the session starts empty.
func NewContextAuto() *Context {
	if IsDemoMode() && DemoEngineFactory != nil {
		return NewContext(DemoEngineFactory())
	}
	return NewContext(engine.NewEngine())
}
