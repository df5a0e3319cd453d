package walk

import (
	"errors"
	"fmt"
)

// ErrFrontierOverflow is returned when the BFS frontier exceeds its
// safety ceiling, guarding against pathological NFA/graph combinations
// the termination argument does not cover (e.g. a graph adapter with
// unbounded fan-out).
var ErrFrontierOverflow = errors.New("walk: frontier exceeded safety ceiling")

// ErrGraphAccess is the sentinel GraphAccessError wraps.
var ErrGraphAccess = errors.New("walk: graph access failed")

// GraphAccessError reports an adapter-layer failure encountered while
// resolving neighbors for Predicate. The explorer aborts the search and
// discards partial results when this occurs, per the propagation
// policy: graph-access errors abort the BFS and propagate.
type GraphAccessError struct {
	Predicate string
	Err       error
}

func (e *GraphAccessError) Error() string {
	return fmt.Sprintf("walk: graph access failed for predicate %q: %v", e.Predicate, e.Err)
}

func (e *GraphAccessError) Unwrap() []error {
	return []error{ErrGraphAccess, e.Err}
}
