package walk

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/relgraph/proppath/graphadapter"
	"github.com/relgraph/proppath/nfa"
)

// ExplorerConfig bounds the product-graph search.
type ExplorerConfig struct {
	// MaxPathLength caps predicate count per witness. Zero means
	// unlimited, subject only to FrontierSafetyCeiling.
	MaxPathLength int

	// FrontierSafetyCeiling bounds total enqueue operations across the
	// whole search, defending against pathological NFA/graph inputs.
	FrontierSafetyCeiling int
}

// DefaultExplorerConfig returns sensible defaults: no path length cap,
// a safety ceiling of 10000 enqueues.
func DefaultExplorerConfig() ExplorerConfig {
	return ExplorerConfig{MaxPathLength: 0, FrontierSafetyCeiling: 10000}
}

type searchState struct {
	node     graphadapter.Node
	nfaState nfa.StateID
	path     PathWitness
}

type visitKey struct {
	nodeKey  string
	nfaState nfa.StateID
}

// Explorer runs the product-graph breadth-first search: an
// ε-transition advances the NFA state without advancing the graph node
// or the path; a labeled transition advances both, consulting forward
// or reverse neighbors depending on the label's reverse marker.
type Explorer struct {
	config    ExplorerConfig
	graph     graphadapter.GraphAdapter
	automaton *nfa.NFA

	frontier *linkedlistqueue.Queue
	visited  map[visitKey]int
	enqueued int
}

// NewExplorer creates an Explorer over graph driven by automaton.
func NewExplorer(graph graphadapter.GraphAdapter, automaton *nfa.NFA, config ExplorerConfig) *Explorer {
	if config.FrontierSafetyCeiling <= 0 {
		config.FrontierSafetyCeiling = 10000
	}
	return &Explorer{
		config:    config,
		graph:     graph,
		automaton: automaton,
		frontier:  linkedlistqueue.New(),
		visited:   make(map[visitKey]int),
	}
}

// Run executes the search starting at startNode and returns every
// accepted path witness. Callers must not rely on emission order.
func (e *Explorer) Run(startNode graphadapter.Node) ([]PathWitness, error) {
	seed := PathWitness{Nodes: []graphadapter.Node{startNode}}
	if err := e.closure(startNode, e.automaton.Start(), seed); err != nil {
		return nil, err
	}

	var accepted []PathWitness
	for !e.frontier.Empty() {
		raw, _ := e.frontier.Dequeue()
		sigma := raw.(searchState)

		if e.automaton.IsFinal(sigma.nfaState) {
			accepted = append(accepted, sigma.path)
		}

		for _, tr := range e.automaton.Transitions(sigma.nfaState) {
			if tr.Label.Epsilon {
				if err := e.closure(sigma.node, tr.Target, sigma.path); err != nil {
					return nil, err
				}
				continue
			}
			if sigma.node.IsLiteral {
				// label != ε but n is a literal: drop this branch.
				continue
			}
			if e.config.MaxPathLength > 0 && sigma.path.Len() >= e.config.MaxPathLength {
				continue
			}
			neighbors, err := e.neighbors(sigma.node, tr.Label)
			if err != nil {
				return nil, err
			}
			for _, next := range neighbors {
				extended := sigma.path.extend(tr.Label.Predicate, next)
				if err := e.closure(next, tr.Target, extended); err != nil {
					return nil, err
				}
			}
		}
	}
	return accepted, nil
}

func (e *Explorer) neighbors(node graphadapter.Node, label nfa.Label) ([]graphadapter.Node, error) {
	var (
		out []graphadapter.Node
		err error
	)
	if label.Reverse {
		out, err = e.graph.ReverseNeighbors(node, label.Predicate)
	} else {
		out, err = e.graph.ForwardNeighbors(node, label.Predicate)
	}
	if err != nil {
		return nil, &GraphAccessError{Predicate: label.Predicate, Err: err}
	}
	return out, nil
}

// closure runs the ε-closure routine: an inner traversal over
// ε-transitions only, starting from (node, state), carrying the same
// path prefix. Every state reached joins the main frontier, subject to
// the visited-map rule. A per-call seen set guards against ε-cycles in
// the NFA, which the visited-map rule alone does not rule out within a
// single closure computation.
func (e *Explorer) closure(node graphadapter.Node, state nfa.StateID, path PathWitness) error {
	depth := path.Len()
	seen := map[nfa.StateID]bool{}
	stack := []nfa.StateID{state}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[s] {
			continue
		}
		seen[s] = true

		if !e.admit(node, s, depth) {
			continue
		}
		e.enqueued++
		if e.enqueued > e.config.FrontierSafetyCeiling {
			return ErrFrontierOverflow
		}
		e.frontier.Enqueue(searchState{node: node, nfaState: s, path: path})

		for _, tr := range e.automaton.Transitions(s) {
			if tr.Label.Epsilon {
				stack = append(stack, tr.Target)
			}
		}
	}
	return nil
}

// admit applies the visited-map rule: (n, q) -> d is recorded only if
// absent, or the new depth is <= the stored depth. The <= (not <) is
// deliberate: it preserves distinct witnesses of equal minimum length
// for the same pair, which is what makes tied shortest paths (e.g. two
// length-2 routes to the same destination) survive into the accepted
// set.
func (e *Explorer) admit(node graphadapter.Node, state nfa.StateID, depth int) bool {
	key := visitKey{nodeKey: node.Key(), nfaState: state}
	if stored, ok := e.visited[key]; ok && depth > stored {
		return false
	}
	e.visited[key] = depth
	return true
}
