package nfa

import (
	"fmt"
	"sort"
)

// StateID uniquely identifies an NFA state within one compilation.
type StateID uint32

// InvalidState marks an uninitialized or absent state reference.
const InvalidState StateID = 0xFFFFFFFF

// Transition is one outgoing edge of a state: traverse Label, land on
// Target. Transitions are stored per-state in an insertion-ordered
// slice (never a map) so iteration order is deterministic, per spec §3.
type Transition struct {
	Label  Label
	Target StateID
}

// NFA is an immutable compiled automaton: a tuple (S, Σ, δ, s₀, F) as
// described in spec §3. It is built once via Builder.Build and never
// mutated afterward; it is safe to share across goroutines.
type NFA struct {
	transitions [][]Transition // indexed by StateID
	start       StateID
	final       map[StateID]bool
}

// Start returns the initial state s₀.
func (n *NFA) Start() StateID { return n.start }

// States returns the number of states in S.
func (n *NFA) States() int { return len(n.transitions) }

// IsFinal reports whether id is a member of F.
func (n *NFA) IsFinal(id StateID) bool { return n.final[id] }

// Finals returns the members of F in ascending StateID order.
func (n *NFA) Finals() []StateID {
	out := make([]StateID, 0, len(n.final))
	for id := range n.final {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Transitions returns the outgoing transitions of id, in the order
// they were added during compilation. Returns nil for an unknown id.
func (n *NFA) Transitions(id StateID) []Transition {
	if int(id) >= len(n.transitions) {
		return nil
	}
	return n.transitions[id]
}

func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, start: %d, finals: %v}", len(n.transitions), n.start, n.Finals())
}

// Invert returns a new NFA with the same states, initial state, and
// final states as n, but with every non-epsilon transition's direction
// flipped (spec §4.C's inversion contract). Because Label.Invert
// toggles a structured Reverse bit rather than string-prefixing,
// Invert(Invert(n)) is label-for-label identical to n — spec §8
// invariant #6 holds by construction, not by canonicalization.
func (n *NFA) Invert() *NFA {
	out := &NFA{
		transitions: make([][]Transition, len(n.transitions)),
		start:       n.start,
		final:       n.final,
	}
	for id, trs := range n.transitions {
		inverted := make([]Transition, len(trs))
		for i, tr := range trs {
			inverted[i] = Transition{Label: tr.Label.Invert(), Target: tr.Target}
		}
		out.transitions[id] = inverted
	}
	return out
}
