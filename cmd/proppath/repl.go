package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lmorg/readline/v4"
	"github.com/pterm/pterm"
	"golang.org/x/term"

	"github.com/relgraph/proppath"
	"github.com/relgraph/proppath/graphadapter"
)

// REPL is an interactive read-eval-print loop over a loaded graph: each
// line is a "<startIRI> <expression>" query evaluated with FindPaths
// and rendered as a table.
type REPL struct {
	graph     *graphadapter.MemoryGraph
	prefixes  map[string]string
	cfg       proppath.Config
	quitWords map[string]bool
}

// NewREPL creates a REPL over graph with the given prefix map and
// FindPaths configuration.
func NewREPL(graph *graphadapter.MemoryGraph, prefixes map[string]string, cfg proppath.Config) *REPL {
	return &REPL{
		graph:     graph,
		prefixes:  prefixes,
		cfg:       cfg,
		quitWords: map[string]bool{":quit": true, ":exit": true},
	}
}

// isInteractive reports whether stdin is attached to a terminal.
func (r *REPL) isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// RunInteractive runs the loop until the user quits or EOF.
func (r *REPL) RunInteractive() error {
	rl := readline.NewInstance()
	rl.SetPrompt("proppath> ")

	for {
		line, err := rl.Readline()
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if r.quitWords[line] {
			return nil
		}
		r.evalLine(line)
	}
}

func (r *REPL) evalLine(line string) {
	startIRI, expression, ok := strings.Cut(line, " ")
	if !ok {
		pterm.Error.Println("expected \"<startIRI> <pathExpression>\"")
		return
	}
	startIRI = strings.TrimSpace(startIRI)
	expression = strings.TrimSpace(expression)

	results, err := proppath.FindPaths(startIRI, expression, r.prefixes, r.graph, r.cfg)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	if len(results) == 0 {
		pterm.Info.Println("no matching paths")
		return
	}
	renderRows(proppath.Rows(results))
}

func renderRows(rows []proppath.Row) {
	data := pterm.TableData{{"path", "step", "predicate", "node"}}
	for _, row := range rows {
		predicate := ""
		if row.Predicate != nil {
			predicate = *row.Predicate
		}
		node := row.Node.IRI
		if row.Node.IsLiteral {
			node = fmt.Sprintf("%q", row.Node.Lexical)
		}
		data = append(data, []string{
			fmt.Sprintf("%d", row.PathID),
			fmt.Sprintf("%d", row.StepIndex),
			predicate,
			node,
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Error.Println(err.Error())
	}
}
