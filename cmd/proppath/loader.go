package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/relgraph/proppath/graphadapter"
)

// loadGraph reads a minimal line-oriented triple format from r:
//
//	<http://ex.org/A> <http://ex.org/knows> <http://ex.org/B>
//	<http://ex.org/A> <http://ex.org/name> "Alice"
//
// one triple per line, angle-bracketed IRIs and double-quoted literal
// objects, blank lines and lines starting with '#' ignored. This is
// deliberately not a full N-Triples parser (escaping, language tags,
// and datatypes are out of scope) — it exists to let the CLI load a
// small graph without external dependencies.
func loadGraph(r io.Reader) (*graphadapter.MemoryGraph, error) {
	g := graphadapter.NewMemoryGraph()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields, err := splitTripleLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		subject, predicate, object := unwrapIRI(fields[0]), unwrapIRI(fields[1]), fields[2]
		if strings.HasPrefix(object, `"`) {
			g.AddLiteral(subject, predicate, strings.Trim(object, `"`))
		} else {
			g.AddTriple(subject, predicate, graphadapter.Node{IRI: unwrapIRI(object)})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

func splitTripleLine(line string) ([3]string, error) {
	var out [3]string
	rest := line
	for i := 0; i < 2; i++ {
		tok, remainder, ok := nextToken(rest)
		if !ok {
			return out, fmt.Errorf("expected 3 whitespace-separated fields, got %q", line)
		}
		out[i] = tok
		rest = remainder
	}
	out[2] = strings.TrimSpace(rest)
	if out[2] == "" {
		return out, fmt.Errorf("expected 3 whitespace-separated fields, got %q", line)
	}
	return out, nil
}

func nextToken(s string) (token, rest string, ok bool) {
	s = strings.TrimLeft(s, " \t")
	idx := strings.IndexAny(s, " \t")
	if idx < 0 {
		return "", "", false
	}
	return s[:idx], s[idx:], true
}

func unwrapIRI(s string) string {
	s = strings.TrimPrefix(s, "<")
	s = strings.TrimSuffix(s, ">")
	return s
}
