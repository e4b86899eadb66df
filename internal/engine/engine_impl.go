package engine

import (
	"sync"

	"todotree.dev/todotree/internal/errors"
)

// node is the engine's internal representation of a task. The forest owns
// every node through forestImpl.index; parent is a non-owning back-reference
// used only for upward traversal.
type node struct {
	id       NodeID
	title    string
	done     bool
	parent   NodeID   // NoNode for roots
	children []NodeID // insertion order
}

// forestImpl is the in-memory implementation of the Engine interface
type forestImpl struct {
	roots  []NodeID         // top-level nodes, insertion order
	index  map[NodeID]*node // id -> node, exactly the attached nodes
	nextID NodeID
	mu     sync.Mutex
}

// NewEngine creates a new empty forest engine
func NewEngine() Engine {
	return &forestImpl{
		index:  make(map[NodeID]*node),
		nextID: 1,
	}
}

// allocID hands out the next id. Ids are never reused, even after deletion.
// Caller must hold the lock.
func (f *forestImpl) allocID() NodeID {
	id := f.nextID
	f.nextID++
	return id
}

// AddRoot creates a new top-level node and returns its id
func (f *forestImpl) AddRoot(title string) NodeID {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.allocID()
	f.index[id] = &node{id: id, title: title}
	f.roots = append(f.roots, id)

	return id
}

// AddChild creates a new node under parentID and returns its id.
// Adding an incomplete child can flip the parent chain back to not-done,
// so completion is re-derived upward from the parent.
func (f *forestImpl) AddChild(parentID NodeID, title string) (NodeID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	parent, ok := f.index[parentID]
	if !ok {
		return NoNode, errors.NewNodeNotFoundError(uint64(parentID))
	}

	id := f.allocID()
	f.index[id] = &node{id: id, title: title, parent: parentID}
	parent.children = append(parent.children, id)

	f.propagateFrom(parent)

	return id, nil
}

// Toggle flips the done flag on a node. This is the one place completion is
// set by caller intent; propagation then re-derives the node itself (if it
// has children) and every ancestor.
func (f *forestImpl) Toggle(id NodeID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	n, ok := f.index[id]
	if !ok {
		return errors.NewNodeNotFoundError(uint64(id))
	}

	n.done = !n.done
	f.propagateFrom(n)

	return nil
}

// Get returns a snapshot of a node
func (f *forestImpl) Get(id NodeID) (NodeInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	n, ok := f.index[id]
	if !ok {
		return NodeInfo{}, errors.NewNodeNotFoundError(uint64(id))
	}

	return f.snapshot(n), nil
}

// snapshot copies a node into a NodeInfo. Caller must hold the lock.
func (f *forestImpl) snapshot(n *node) NodeInfo {
	children := make([]NodeID, len(n.children))
	copy(children, n.children)
	return NodeInfo{
		ID:       n.id,
		Title:    n.title,
		Done:     n.done,
		ParentID: n.parent,
		ChildIDs: children,
	}
}

// Roots returns the top-level node ids in insertion order
func (f *forestImpl) Roots() []NodeID {
	f.mu.Lock()
	defer f.mu.Unlock()

	roots := make([]NodeID, len(f.roots))
	copy(roots, f.roots)
	return roots
}

// Children returns a node's child ids in insertion order
func (f *forestImpl) Children(id NodeID) ([]NodeID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	n, ok := f.index[id]
	if !ok {
		return nil, errors.NewNodeNotFoundError(uint64(id))
	}

	children := make([]NodeID, len(n.children))
	copy(children, n.children)
	return children, nil
}

// Parent returns a node's parent id, or NoNode for a root
func (f *forestImpl) Parent(id NodeID) (NodeID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	n, ok := f.index[id]
	if !ok {
		return NoNode, errors.NewNodeNotFoundError(uint64(id))
	}

	return n.parent, nil
}

// Descendants returns every node below id in preorder, excluding id itself
func (f *forestImpl) Descendants(id NodeID) ([]NodeID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	n, ok := f.index[id]
	if !ok {
		return nil, errors.NewNodeNotFoundError(uint64(id))
	}

	result := []NodeID{}
	var collect func(*node)
	collect = func(cur *node) {
		for _, childID := range cur.children {
			result = append(result, childID)
			collect(f.index[childID])
		}
	}
	collect(n)

	return result, nil
}

// Len returns the number of nodes currently attached to the forest
func (f *forestImpl) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.index)
}

// Delete removes a node and its entire subtree. The subtree leaves the
// index atomically from the caller's perspective; no partial removal is
// ever observable.
func (f *forestImpl) Delete(id NodeID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	n, ok := f.index[id]
	if !ok {
		return errors.NewNodeNotFoundError(uint64(id))
	}

	f.detach(n)

	// Removing a child can complete the parent chain. A parent left
	// childless keeps whatever done value it had; propagation never
	// overrides a node without children.
	if n.parent != NoNode {
		f.propagateFrom(f.index[n.parent])
	}

	f.unindexSubtree(n)

	return nil
}

// detach removes a node from its owner: the parent's child list, or the
// root list for top-level nodes. Caller must hold the lock.
func (f *forestImpl) detach(n *node) {
	if n.parent != NoNode {
		parent := f.index[n.parent]
		for i, childID := range parent.children {
			if childID == n.id {
				parent.children = append(parent.children[:i], parent.children[i+1:]...)
				break
			}
		}
		return
	}

	for i, rootID := range f.roots {
		if rootID == n.id {
			f.roots = append(f.roots[:i], f.roots[i+1:]...)
			break
		}
	}
}

// unindexSubtree removes a detached node and all of its descendants from
// the index. Caller must hold the lock.
func (f *forestImpl) unindexSubtree(n *node) {
	stack := []*node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, childID := range cur.children {
			stack = append(stack, f.index[childID])
		}
		delete(f.index, cur.id)
	}
}

// Move reparents a node under newParentID. The move is rejected, with no
// state change, when it would self-parent the node, when either id is
// unknown, or when the new parent lies inside the moving subtree.
func (f *forestImpl) Move(id, newParentID NodeID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if id == newParentID {
		return errors.NewInvalidMoveError(uint64(id), uint64(newParentID), "")
	}

	n, ok := f.index[id]
	if !ok {
		return errors.NewNodeNotFoundError(uint64(id))
	}
	newParent, ok := f.index[newParentID]
	if !ok {
		return errors.NewNodeNotFoundError(uint64(newParentID))
	}

	if f.subtreeContains(n, newParentID) {
		return errors.NewInvalidMoveError(uint64(id), uint64(newParentID), "target is inside the moved subtree")
	}

	// All checks passed; mutate. Detach from the old owner first and
	// re-derive the old parent chain, then attach and re-derive the new
	// one. A move can complete the old subtree and un-complete the new
	// subtree in the same call, so both passes are required.
	oldParentID := n.parent
	f.detach(n)
	if oldParentID != NoNode {
		f.propagateFrom(f.index[oldParentID])
	}

	n.parent = newParentID
	newParent.children = append(newParent.children, id)
	f.propagateFrom(newParent)

	return nil
}

// subtreeContains reports whether target is inside the subtree rooted at n,
// including n itself. Caller must hold the lock.
func (f *forestImpl) subtreeContains(n *node, target NodeID) bool {
	stack := []*node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cur.id == target {
			return true
		}
		for _, childID := range cur.children {
			stack = append(stack, f.index[childID])
		}
	}
	return false
}

// propagateFrom walks from n up to its root, recomputing done at each step:
// a node with children is done iff all of its children are done; a node
// without children keeps whatever was last set directly. The walk is
// idempotent and terminates because the structure is acyclic and each step
// strictly decreases distance to the root. Caller must hold the lock.
func (f *forestImpl) propagateFrom(n *node) {
	for {
		if len(n.children) > 0 {
			all := true
			for _, childID := range n.children {
				if !f.index[childID].done {
					all = false
					break
				}
			}
			n.done = all
		}

		if n.parent == NoNode {
			return
		}
		n = f.index[n.parent]
	}
}
