// Package walk implements the product-graph breadth-first search (the
// Path Explorer) and its post-processing (the Result Filter) that
// together turn a compiled NFA plus a graph adapter into path
// witnesses.
package walk

import "github.com/relgraph/proppath/graphadapter"

// PathWitness is a sequence (n0, (p1, n1), ..., (pk, nk)) as described
// in the data model: k is the predicate count, and len(Nodes) ==
// len(Predicates)+1 always holds.
type PathWitness struct {
	Nodes      []graphadapter.Node
	Predicates []string
}

// Len returns the predicate count k.
func (w PathWitness) Len() int {
	return len(w.Predicates)
}

// Destination returns the final node of the witness.
func (w PathWitness) Destination() graphadapter.Node {
	return w.Nodes[len(w.Nodes)-1]
}

// clone returns a copy of w sharing no backing array with it, so that
// extending one witness never mutates another derived from the same
// prefix.
func (w PathWitness) clone() PathWitness {
	nodes := make([]graphadapter.Node, len(w.Nodes))
	copy(nodes, w.Nodes)
	preds := make([]string, len(w.Predicates))
	copy(preds, w.Predicates)
	return PathWitness{Nodes: nodes, Predicates: preds}
}

// extend returns a new witness equal to w with (pred, next) appended.
// w is left untouched.
func (w PathWitness) extend(pred string, next graphadapter.Node) PathWitness {
	out := w.clone()
	out.Nodes = append(out.Nodes, next)
	out.Predicates = append(out.Predicates, pred)
	return out
}
