// Package nfa implements a Thompson NFA with epsilon transitions for
// property path expressions, compiled from an ast.Node tree, plus a
// label-direction Invert operation used to implement the Inverse AST
// node.
package nfa

import (
	"errors"
	"fmt"
)

// Common NFA errors.
var (
	// ErrInvalidState indicates an invalid state ID was encountered.
	ErrInvalidState = errors.New("nfa: invalid state")

	// ErrNoFinalStates indicates an attempt to build an NFA with an
	// empty final set, violating the invariant that F is non-empty.
	ErrNoFinalStates = errors.New("nfa: final state set must be non-empty")
)

// BuildError represents an error raised while assembling an NFA via
// the Builder API.
type BuildError struct {
	Message string
	StateID StateID
}

func (e *BuildError) Error() string {
	if e.StateID != InvalidState {
		return fmt.Sprintf("nfa: build error at state %d: %s", e.StateID, e.Message)
	}
	return fmt.Sprintf("nfa: build error: %s", e.Message)
}

func (e *BuildError) Unwrap() error { return ErrInvalidState }

// CompileError wraps a compilation failure with the AST node kind that
// triggered it, for context in the top-level FindPaths error.
type CompileError struct {
	NodeKind string
	Err      error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("nfa: failed to compile %s: %v", e.NodeKind, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }
