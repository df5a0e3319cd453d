package proppath

import (
	"github.com/relgraph/proppath/graphadapter"
	"github.com/relgraph/proppath/walk"
)

// Row is one line of the row-oriented serialization contract that
// integration with query engines consumes: for witness PathID, step
// StepIndex lands on Node having been reached via Predicate (nil at
// step 0, since the origin has no incoming edge).
type Row struct {
	PathID    int
	StepIndex int
	Predicate *string
	Node      graphadapter.Node
}

// Rows flattens witnesses into the row contract: one row per step per
// witness, pathId assigned in emission order starting at 0.
func Rows(witnesses []walk.PathWitness) []Row {
	var out []Row
	for pathID, w := range witnesses {
		for i, n := range w.Nodes {
			var predicate *string
			if i > 0 {
				p := w.Predicates[i-1]
				predicate = &p
			}
			out = append(out, Row{
				PathID:    pathID,
				StepIndex: i,
				Predicate: predicate,
				Node:      n,
			})
		}
	}
	return out
}
