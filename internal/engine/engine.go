// Package engine provides the core forest state management interface and
// implementation. It owns every task node, assigns ids, maintains the
// parent/child links and the id index, and keeps completion state derived
// for all ancestors after every change.
package engine

// ForestReader provides read-only access to forest information
// Thread-safe: All methods are safe for concurrent use
type ForestReader interface {
	// Get returns a snapshot of a node
	Get(id NodeID) (NodeInfo, error)

	// Roots returns the top-level node ids in insertion order
	Roots() []NodeID

	// Children returns a node's child ids in insertion order
	Children(id NodeID) ([]NodeID, error)

	// Parent returns a node's parent id, or NoNode for a root
	Parent(id NodeID) (NodeID, error)

	// Descendants returns every node below id in preorder, excluding id itself
	Descendants(id NodeID) ([]NodeID, error)

	// Len returns the number of nodes currently attached to the forest
	Len() int
}

// ForestWriter provides write operations for forest management
// Thread-safe: All methods are safe for concurrent use
type ForestWriter interface {
	// AddRoot creates a new top-level node and returns its id
	AddRoot(title string) NodeID

	// AddChild creates a new node under parentID and returns its id
	AddChild(parentID NodeID, title string) (NodeID, error)

	// Toggle flips the done flag on a node
	Toggle(id NodeID) error

	// Delete removes a node and its entire subtree
	Delete(id NodeID) error

	// Move reparents a node under newParentID
	Move(id, newParentID NodeID) error
}

// Engine is the core interface for forest state management.
// It composes ForestReader and ForestWriter; code that only
// inspects the forest should prefer the smaller interfaces.
// Thread-safe: All methods are safe for concurrent use
type Engine interface {
	ForestReader
	ForestWriter
}
