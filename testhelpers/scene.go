// Package testhelpers provides a fluent forest builder that gives tests a
// terse API for setting up named trees and referring to nodes by name.
package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"todotree.dev/todotree/internal/engine"
	"todotree.dev/todotree/internal/runtime"
)

// Scene wraps an engine and tracks the ids of nodes created through it,
// keyed by title, so tests can chain setup and look nodes up by name.
type Scene struct {
	T       *testing.T
	Engine  engine.Engine
	Context *runtime.Context
	ids     map[string]engine.NodeID
}

// NewScene creates a scene over a fresh empty engine
func NewScene(t *testing.T) *Scene {
	t.Helper()

	eng := engine.NewEngine()
	return &Scene{
		T:       t,
		Engine:  eng,
		Context: runtime.NewContext(eng),
		ids:     make(map[string]engine.NodeID),
	}
}

// Root creates a top-level node and records its id under its title
func (s *Scene) Root(title string) *Scene {
	s.T.Helper()
	s.ids[title] = s.Engine.AddRoot(title)
	return s
}

// Child creates a node under the named parent and records its id
func (s *Scene) Child(parentTitle, title string) *Scene {
	s.T.Helper()
	id, err := s.Engine.AddChild(s.ID(parentTitle), title)
	require.NoError(s.T, err)
	s.ids[title] = id
	return s
}

// Toggle flips the done flag on the named node
func (s *Scene) Toggle(title string) *Scene {
	s.T.Helper()
	require.NoError(s.T, s.Engine.Toggle(s.ID(title)))
	return s
}

// ID returns the recorded id for a title; the test fails if it was never created
func (s *Scene) ID(title string) engine.NodeID {
	s.T.Helper()
	id, ok := s.ids[title]
	require.True(s.T, ok, "no node named %q in scene", title)
	return id
}

// Get returns a snapshot of the named node
func (s *Scene) Get(title string) engine.NodeInfo {
	s.T.Helper()
	info, err := s.Engine.Get(s.ID(title))
	require.NoError(s.T, err)
	return info
}

// Done reports the done flag of the named node
func (s *Scene) Done(title string) bool {
	s.T.Helper()
	return s.Get(title).Done
}
