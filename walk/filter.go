package walk

import (
	"fmt"

	"github.com/cnf/structhash"
)

// Filter implements the dedup-and-shorten policy: group accepted paths
// by destination (literal destinations group by lexical form), keep
// only the minimum predicate count within each group, then discard
// duplicates whose entire node/predicate sequence coincides.
func Filter(accepted []PathWitness) ([]PathWitness, error) {
	groups := make(map[string][]PathWitness)
	order := make([]string, 0, len(accepted))
	for _, w := range accepted {
		key := w.Destination().Key()
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], w)
	}

	var out []PathWitness
	for _, key := range order {
		group := groups[key]
		minLen := group[0].Len()
		for _, w := range group[1:] {
			if w.Len() < minLen {
				minLen = w.Len()
			}
		}

		seen := make(map[string]bool, len(group))
		for _, w := range group {
			if w.Len() != minLen {
				continue
			}
			hash, err := witnessHash(w)
			if err != nil {
				return nil, err
			}
			if seen[hash] {
				continue
			}
			seen[hash] = true
			out = append(out, w)
		}
	}
	return out, nil
}

// witnessHash computes a deterministic dedup key over the full
// node/predicate sequence of w.
func witnessHash(w PathWitness) (string, error) {
	type hashable struct {
		Nodes      []string
		Predicates []string
	}
	h := hashable{Predicates: w.Predicates}
	for _, n := range w.Nodes {
		h.Nodes = append(h.Nodes, n.Key())
	}
	hash, err := structhash.Hash(h, 1)
	if err != nil {
		return "", fmt.Errorf("walk: hashing path witness: %w", err)
	}
	return hash, nil
}
