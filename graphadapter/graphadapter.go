// Package graphadapter defines the minimal capability the core path
// explorer consumes from an RDF store, plus a small in-memory
// implementation suitable for tests and standalone use.
package graphadapter

import "errors"

// ErrGraphAccess wraps any failure an adapter implementation surfaces
// while resolving neighbors. The explorer returns the adapter's error
// inside a walk.GraphAccessError that still unwraps to it, and discards
// partial results.
var ErrGraphAccess = errors.New("graphadapter: graph access failed")

// Node is an opaque RDF term handle: either an IRI resource or a
// literal. Only IRI resources are walkable; literals are terminal
// observations.
type Node struct {
	IRI       string
	IsLiteral bool
	Lexical   string
}

// IsZero reports whether n is the zero Node.
func (n Node) IsZero() bool {
	return n == Node{}
}

// Key returns the identity MemoryGraph indexes a node by: the IRI for
// resources, the lexical form for literals (so two literal occurrences
// with the same text are the same destination, per spec §4.G's
// "literal destinations group by lexical form").
func (n Node) Key() string {
	if n.IsLiteral {
		return "literal:" + n.Lexical
	}
	return "iri:" + n.IRI
}

// Triple is (subject IRI, predicate IRI, object node). Objects may be
// literals.
type Triple struct {
	Subject   string
	Predicate string
	Object    Node
}

// GraphAdapter is the capability the path explorer requires of an RDF
// store. A missing node must yield an empty neighbor sequence, never
// an error.
type GraphAdapter interface {
	// ForwardNeighbors returns every object node o such that the triple
	// (node.IRI, predicate, o) exists.
	ForwardNeighbors(node Node, predicate string) ([]Node, error)

	// ReverseNeighbors returns every subject node s such that the
	// triple (s, predicate, node) exists. The returned nodes are always
	// IRI resources (a literal cannot be a subject).
	ReverseNeighbors(node Node, predicate string) ([]Node, error)

	// NodeForIRI constructs the starting-point node handle for iri.
	NodeForIRI(iri string) Node
}
