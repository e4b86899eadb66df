// Package errors provides sentinel errors and custom error types for the todotree application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNodeNotFound indicates that a node id is not present in the forest index
	ErrNodeNotFound = errors.New("node not found")

	// ErrInvalidMove indicates a move that would self-parent a node or create a cycle
	ErrInvalidMove = errors.New("invalid move")

	// ErrEmptyTitle indicates that a caller supplied an empty node title
	ErrEmptyTitle = errors.New("empty title")

	// ErrParse indicates that a command line could not be parsed
	ErrParse = errors.New("parse error")
)

// NodeNotFoundError represents an error when a node id is not in the index
type NodeNotFoundError struct {
	ID uint64
}

func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("node %d does not exist", e.ID)
}

// Is returns true if the target error is ErrNodeNotFound
func (e *NodeNotFoundError) Is(target error) bool {
	return target == ErrNodeNotFound
}

// NewNodeNotFoundError creates a new NodeNotFoundError
func NewNodeNotFoundError(id uint64) *NodeNotFoundError {
	return &NodeNotFoundError{ID: id}
}

// InvalidMoveError represents a rejected move operation
type InvalidMoveError struct {
	ID          uint64
	NewParentID uint64
	Reason      string
}

func (e *InvalidMoveError) Error() string {
	if e.ID == e.NewParentID {
		return fmt.Sprintf("cannot move node %d under itself", e.ID)
	}
	if e.Reason != "" {
		return fmt.Sprintf("cannot move node %d under node %d: %s", e.ID, e.NewParentID, e.Reason)
	}
	return fmt.Sprintf("cannot move node %d under node %d", e.ID, e.NewParentID)
}

// Is returns true if the target error is ErrInvalidMove
func (e *InvalidMoveError) Is(target error) bool {
	return target == ErrInvalidMove
}

// NewInvalidMoveError creates a new InvalidMoveError
func NewInvalidMoveError(id, newParentID uint64, reason string) *InvalidMoveError {
	return &InvalidMoveError{ID: id, NewParentID: newParentID, Reason: reason}
}

// ParseError represents a malformed command line: a bad id, a missing
// argument, or an unknown command. It is a caller-side error, reported
// distinctly from NodeNotFoundError.
type ParseError struct {
	Command string
	Message string
}

func (e *ParseError) Error() string {
	if e.Command != "" {
		return fmt.Sprintf("%s: %s", e.Command, e.Message)
	}
	return e.Message
}

// Is returns true if the target error is ErrParse
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// NewParseError creates a new ParseError
func NewParseError(command, message string) *ParseError {
	return &ParseError{Command: command, Message: message}
}
