package proppath

import "fmt"

// InvariantViolation is panicked when an NFA invariant is broken in a
// way that indicates a compiler bug rather than bad input — the
// "internal assertion" error class, which must be loud rather than
// silently swallowed or returned as a normal error.
type InvariantViolation struct {
	Component string
	Detail    string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("proppath: invariant violated in %s: %s", e.Component, e.Detail)
}

func assertInvariant(ok bool, component, detail string) {
	if !ok {
		panic(&InvariantViolation{Component: component, Detail: detail})
	}
}
