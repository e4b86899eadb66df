package engine

// NodeID identifies a node for the lifetime of the process. Ids are
// allocated from a per-forest monotonic counter and are never reused,
// even after the node is deleted.
type NodeID uint64

// NoNode is the zero NodeID. It is never allocated to a node and marks
// the absence of a parent.
const NoNode NodeID = 0

// NodeInfo is a read-only snapshot of a node. ChildIDs is a copy; callers
// may hold or modify it freely without affecting the forest.
type NodeInfo struct {
	ID       NodeID
	Title    string
	Done     bool
	ParentID NodeID // NoNode for roots
	ChildIDs []NodeID
}

// IsRoot reports whether the node has no parent.
func (n NodeInfo) IsRoot() bool {
	return n.ParentID == NoNode
}
