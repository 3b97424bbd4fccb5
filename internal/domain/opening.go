package domain

import (
	m "wordguess.dev/pkg/wordguess/internal/model"
)

// Opening walks an exported decision tree during play so that precomputed
// guesses replace the expensive early scans. A nil Opening has no guesses.
type Opening struct {
	node  map[string]any
	depth int
}

// NewOpening wraps an exported tree (see model.DecisionNode.Export).
func NewOpening(tree map[string]any) *Opening {
	if len(tree) == 0 {
		return nil
	}

	depth := 0

	for key := range tree {
		if d, ok := m.ParseGuessKey(key); ok {
			depth = d
			break
		}
	}

	return &Opening{node: tree, depth: depth}
}

// Guess returns the recommended guess at the current branch.
func (o *Opening) Guess() (m.Word, bool) {
	if o == nil {
		return "", false
	}

	guess, ok := o.node[m.GuessKey(o.depth)].(string)
	if !ok || guess == "" {
		return "", false
	}

	return m.Word(guess), true
}

// Next follows the branch for pattern. A leaf becomes an opening whose only
// guess is the solution itself.
func (o *Opening) Next(pattern m.Pattern) *Opening {
	if o == nil {
		return nil
	}

	switch child := o.node[pattern.String()].(type) {
	case string:
		return &Opening{
			node:  map[string]any{m.GuessKey(o.depth + 1): child},
			depth: o.depth + 1,
		}
	case map[string]any:
		return &Opening{node: child, depth: o.depth + 1}
	default:
		return nil
	}
}
