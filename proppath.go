// Package proppath evaluates SPARQL-style property path expressions
// over an RDF graph, returning the actual path witnesses that satisfy
// the expression rather than just reachable endpoints.
//
// The pipeline is: parse the expression into an ast.Node tree, compile
// it into a Thompson nfa.NFA, then run a product-graph breadth-first
// search (walk.Explorer) against a graphadapter.GraphAdapter and
// dedup-and-shorten the result (walk.Filter). FindPaths wires all four
// stages together.
package proppath

import (
	"github.com/relgraph/proppath/graphadapter"
	"github.com/relgraph/proppath/nfa"
	"github.com/relgraph/proppath/parser"
	"github.com/relgraph/proppath/walk"
)

// Config configures one FindPaths call.
type Config struct {
	// MaxPathLength caps predicate count per witness. Zero means
	// unlimited, subject only to FrontierSafetyCeiling.
	MaxPathLength int

	// IncludeLiteralEndpoints controls whether paths terminating at a
	// literal object are retained in the result.
	IncludeLiteralEndpoints bool

	// FrontierSafetyCeiling bounds total BFS enqueue operations,
	// defending against pathological expression/graph combinations.
	FrontierSafetyCeiling int

	// CompilerConfig configures Thompson compilation, most notably the
	// AST recursion depth limit.
	CompilerConfig nfa.CompilerConfig
}

// DefaultConfig returns the documented defaults: unlimited path
// length, literal endpoints excluded, a 10000-enqueue safety ceiling.
func DefaultConfig() Config {
	return Config{
		MaxPathLength:           0,
		IncludeLiteralEndpoints: false,
		FrontierSafetyCeiling:   10000,
		CompilerConfig:          nfa.DefaultCompilerConfig(),
	}
}

// FindPaths evaluates expression (resolved against prefixes) starting
// at startIRI over graph, and returns every shortest-per-destination
// path witness.
//
// Parser and compiler errors are raised before any graph access, per
// the propagation policy. A graph-access error aborts the search and
// discards partial results. An empty result is a legitimate outcome,
// not an error.
func FindPaths(startIRI, expression string, prefixes map[string]string, graph graphadapter.GraphAdapter, cfg Config) ([]walk.PathWitness, error) {
	node, err := parser.Parse(expression, prefixes)
	if err != nil {
		return nil, err
	}

	compiler := nfa.NewCompiler(cfg.CompilerConfig)
	automaton, err := compiler.Compile(node)
	if err != nil {
		return nil, err
	}

	explorerConfig := walk.ExplorerConfig{
		MaxPathLength:         cfg.MaxPathLength,
		FrontierSafetyCeiling: cfg.FrontierSafetyCeiling,
	}
	explorer := walk.NewExplorer(graph, automaton, explorerConfig)

	start := graph.NodeForIRI(startIRI)
	accepted, err := explorer.Run(start)
	if err != nil {
		return nil, err
	}

	if !cfg.IncludeLiteralEndpoints {
		accepted = excludeLiteralEndpoints(accepted)
	}
	for _, w := range accepted {
		assertInvariant(len(w.Nodes) == len(w.Predicates)+1, "walk.PathWitness", "len(nodes) must equal len(predicates)+1")
	}

	return walk.Filter(accepted)
}

func excludeLiteralEndpoints(witnesses []walk.PathWitness) []walk.PathWitness {
	kept := witnesses[:0:0]
	for _, w := range witnesses {
		if w.Destination().IsLiteral {
			continue
		}
		kept = append(kept, w)
	}
	return kept
}
