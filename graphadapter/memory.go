package graphadapter

// MemoryGraph is a trivial in-memory GraphAdapter backed by forward and
// reverse predicate indexes. It never returns ErrGraphAccess; it exists
// for tests and for small standalone graphs loaded by cmd/proppath.
type MemoryGraph struct {
	triples []Triple
	forward map[string]map[string][]Node // subject IRI -> predicate -> objects
	reverse map[string]map[string][]Node // object key -> predicate -> subjects
}

// NewMemoryGraph creates an empty MemoryGraph.
func NewMemoryGraph() *MemoryGraph {
	return &MemoryGraph{
		forward: make(map[string]map[string][]Node),
		reverse: make(map[string]map[string][]Node),
	}
}

// AddTriple records (subject, predicate, object). Subject is always an
// IRI; object may be a literal or an IRI resource.
func (g *MemoryGraph) AddTriple(subject, predicate string, object Node) {
	g.triples = append(g.triples, Triple{Subject: subject, Predicate: predicate, Object: object})

	fwd, ok := g.forward[subject]
	if !ok {
		fwd = make(map[string][]Node)
		g.forward[subject] = fwd
	}
	fwd[predicate] = append(fwd[predicate], object)

	subj := Node{IRI: subject}
	key := object.Key()
	rev, ok := g.reverse[key]
	if !ok {
		rev = make(map[string][]Node)
		g.reverse[key] = rev
	}
	rev[predicate] = append(rev[predicate], subj)
}

// AddLiteral is shorthand for AddTriple with a literal object.
func (g *MemoryGraph) AddLiteral(subject, predicate, lexical string) {
	g.AddTriple(subject, predicate, Node{IsLiteral: true, Lexical: lexical})
}

// Triples returns every triple added so far, in insertion order.
func (g *MemoryGraph) Triples() []Triple {
	return g.triples
}

func (g *MemoryGraph) ForwardNeighbors(node Node, predicate string) ([]Node, error) {
	if node.IsLiteral {
		return nil, nil
	}
	return g.forward[node.IRI][predicate], nil
}

func (g *MemoryGraph) ReverseNeighbors(node Node, predicate string) ([]Node, error) {
	return g.reverse[node.Key()][predicate], nil
}

func (g *MemoryGraph) NodeForIRI(iri string) Node {
	return Node{IRI: iri}
}
