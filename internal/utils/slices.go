package utils

import "todotree.dev/todotree/internal/engine"

// ContainsID checks if a node id is present in a slice of ids
func ContainsID(slice []engine.NodeID, id engine.NodeID) bool {
	for _, s := range slice {
		if s == id {
			return true
		}
	}
	return false
}
