// Package ast defines the in-memory tree produced by parsing a property
// path expression.
//
// A tree is built bottom-up by the parser and is never mutated after
// construction: every node kind below is an immutable value once
// returned from the parser, and the compiler (package nfa) only ever
// reads it.
package ast

// Node is the common interface implemented by every path expression
// node kind. It is deliberately unexported-method-sealed so the set of
// node kinds is closed to this package.
type Node interface {
	isNode()
}

// Predicate matches a single outgoing edge labeled IRI.
type Predicate struct {
	IRI string
}

func (Predicate) isNode() {}

// Inverse traverses Child against edge direction: every non-epsilon
// transition compiled from Child is flipped to its reverse form.
type Inverse struct {
	Child Node
}

func (Inverse) isNode() {}

// Sequence matches Left then Right.
type Sequence struct {
	Left, Right Node
}

func (Sequence) isNode() {}

// Alternative matches Left or Right.
type Alternative struct {
	Left, Right Node
}

func (Alternative) isNode() {}

// ZeroOrMore matches Child zero or more times (Kleene star).
type ZeroOrMore struct {
	Child Node
}

func (ZeroOrMore) isNode() {}

// OneOrMore matches Child one or more times.
type OneOrMore struct {
	Child Node
}

func (OneOrMore) isNode() {}

// ZeroOrOne matches Child zero or one times.
type ZeroOrOne struct {
	Child Node
}

func (ZeroOrOne) isNode() {}

// Group is purely parenthetical; it carries no semantics of its own
// beyond its Child. It exists so the parser can record that an
// expression was explicitly grouped without changing how the compiler
// treats it.
type Group struct {
	Child Node
}

func (Group) isNode() {}
