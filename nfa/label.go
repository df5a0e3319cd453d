package nfa

// Label is the alphabet Σ of a compiled NFA: either the reserved
// epsilon symbol, or a predicate IRI traversed forward or in reverse.
//
// Reverse-marker composition (spec §9's open question) is resolved by
// keeping predicate and direction as a structured pair instead of
// string-concatenating a "^" prefix. Invert toggles Reverse, so
// inverting twice restores the original label exactly — no
// canonicalization pass is needed to collapse a double "^^" prefix.
type Label struct {
	// Predicate is the traversed IRI. Meaningless when Epsilon is true.
	Predicate string
	// Reverse indicates the predicate is traversed against its stated
	// direction (the subject/object roles are swapped). Meaningless
	// when Epsilon is true; epsilon is never inverted.
	Reverse bool
	// Epsilon marks the reserved empty transition.
	Epsilon bool
}

// Eps is the reserved epsilon label.
var Eps = Label{Epsilon: true}

// Pred builds a forward predicate label.
func Pred(iri string) Label {
	return Label{Predicate: iri}
}

// Invert returns the label traversed in the opposite direction. Eps is
// returned unchanged: epsilon is orthogonal to direction.
func (l Label) Invert() Label {
	if l.Epsilon {
		return l
	}
	l.Reverse = !l.Reverse
	return l
}

// String renders the label the way it would appear in a parsed
// expression: "ε", "p", or "^p".
func (l Label) String() string {
	if l.Epsilon {
		return "ε"
	}
	if l.Reverse {
		return "^" + l.Predicate
	}
	return l.Predicate
}
