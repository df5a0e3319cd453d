package nfa

import "github.com/relgraph/proppath/internal/conv"

// Builder constructs an NFA incrementally. A fresh Builder has a fresh,
// monotonic state-id counter; per spec §3, state ids are unique across
// the lifetime of one compilation and are never reused.
type Builder struct {
	transitions [][]Transition
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddState allocates a fresh state with no outgoing transitions and
// returns its id.
func (b *Builder) AddState() StateID {
	id := StateID(conv.IntToUint32(len(b.transitions)))
	b.transitions = append(b.transitions, nil)
	return id
}

// AddTransition appends a labeled transition from 'from' to 'to'. The
// transition is appended to from's adjacency list, preserving
// insertion order.
func (b *Builder) AddTransition(from StateID, label Label, to StateID) error {
	if int(from) >= len(b.transitions) {
		return &BuildError{Message: "transition source state out of bounds", StateID: from}
	}
	if int(to) >= len(b.transitions) {
		return &BuildError{Message: "transition target state out of bounds", StateID: to}
	}
	b.transitions[from] = append(b.transitions[from], Transition{Label: label, Target: to})
	return nil
}

// AddEpsilon is shorthand for AddTransition(from, Eps, to).
func (b *Builder) AddEpsilon(from, to StateID) error {
	return b.AddTransition(from, Eps, to)
}

// Transitions returns the outgoing transitions recorded so far for id.
func (b *Builder) Transitions(id StateID) []Transition {
	if int(id) >= len(b.transitions) {
		return nil
	}
	return b.transitions[id]
}

// States returns the number of states allocated so far.
func (b *Builder) States() int { return len(b.transitions) }

// Append copies every state and transition of sub into b, allocating
// fresh state ids so the two state spaces never collide. It returns the
// id map from sub's original StateIDs to their new ids in b — used by
// the compiler to splice a separately-compiled (and possibly inverted)
// sub-fragment into the outer automaton being built (spec §4.D's
// Inverse rule: "compile A, then apply NFA inversion").
func (b *Builder) Append(sub *NFA) map[StateID]StateID {
	idMap := make(map[StateID]StateID, sub.States())
	for i := 0; i < sub.States(); i++ {
		idMap[StateID(i)] = b.AddState()
	}
	for i := 0; i < sub.States(); i++ {
		for _, tr := range sub.Transitions(StateID(i)) {
			// Append's own error is impossible: every id in idMap was
			// just allocated above, so bounds checks in AddTransition
			// always succeed here.
			_ = b.AddTransition(idMap[StateID(i)], tr.Label, idMap[tr.Target])
		}
	}
	return idMap
}

// Build finalizes the NFA with the given start state and final set.
// Returns ErrNoFinalStates if final is empty (spec §3: "F is non-empty").
func (b *Builder) Build(start StateID, final []StateID) (*NFA, error) {
	if len(final) == 0 {
		return nil, ErrNoFinalStates
	}
	if int(start) >= len(b.transitions) {
		return nil, &BuildError{Message: "start state out of bounds", StateID: start}
	}
	finalSet := make(map[StateID]bool, len(final))
	for _, f := range final {
		if int(f) >= len(b.transitions) {
			return nil, &BuildError{Message: "final state out of bounds", StateID: f}
		}
		finalSet[f] = true
	}
	return &NFA{
		transitions: b.transitions,
		start:       start,
		final:       finalSet,
	}, nil
}
