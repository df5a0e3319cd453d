// Command proppath evaluates SPARQL-style property path expressions
// against a small triple graph loaded from a file, either as a single
// query or interactively.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"github.com/relgraph/proppath"
)

type prefixFlags map[string]string

func (p prefixFlags) String() string {
	var parts []string
	for k, v := range p {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

func (p prefixFlags) Set(value string) error {
	prefix, namespace, ok := strings.Cut(value, "=")
	if !ok {
		return fmt.Errorf("expected prefix=namespace, got %q", value)
	}
	p[prefix] = namespace
	return nil
}

func main() {
	graphPath := flag.String("graph", "", "path to a line-oriented triple file")
	literals := flag.Bool("literals", false, "retain paths that terminate at a literal object")
	maxLen := flag.Int("max-path-length", 0, "cap on predicate count per witness (0 = unlimited)")
	prefixes := make(prefixFlags)
	flag.Var(prefixes, "prefix", "prefix=namespace, repeatable")
	flag.Parse()

	if *graphPath == "" {
		log.Fatal("proppath: -graph is required")
	}
	f, err := os.Open(*graphPath)
	if err != nil {
		log.Fatalf("proppath: %v", err)
	}
	defer f.Close()

	graph, err := loadGraph(f)
	if err != nil {
		log.Fatalf("proppath: loading graph: %v", err)
	}

	cfg := proppath.DefaultConfig()
	cfg.IncludeLiteralEndpoints = *literals
	cfg.MaxPathLength = *maxLen

	args := flag.Args()
	if len(args) == 2 {
		results, err := proppath.FindPaths(args[0], args[1], prefixes, graph, cfg)
		if err != nil {
			log.Fatalf("proppath: %v", err)
		}
		renderRows(proppath.Rows(results))
		return
	}
	if len(args) != 0 {
		log.Fatal("proppath: expected either no positional args (REPL) or exactly <startIRI> <pathExpression>")
	}

	repl := NewREPL(graph, prefixes, cfg)
	if !repl.isInteractive() {
		pterm.Info.Println("reading queries from a non-terminal stdin")
	}
	if err := repl.RunInteractive(); err != nil {
		fmt.Println()
	}
}
