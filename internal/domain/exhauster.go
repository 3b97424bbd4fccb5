package domain

import (
	"context"
	"fmt"
	"log/slog"

	m "wordguess.dev/pkg/wordguess/internal/model"
)

// ExhaustOptions bounds the decision tree.
type ExhaustOptions struct {
	Depth   int // levels of guesses to record
	MinSize int // branches with fewer words are dropped
	Options int // alternatives kept on the last level
}

// NodeObserver is told about every recorded node, parents before children.
type NodeObserver func(node *m.DecisionNode)

// Exhauster builds decision trees by ranking and partitioning recursively.
type Exhauster interface {
	Exhaust(ctx context.Context, master, candidates []m.Word, opts ExhaustOptions, observe NodeObserver) (*m.DecisionNode, error)
}

type exhauster struct {
	ranker Ranker
}

// NewExhauster constructs an Exhauster on top of ranker.
func NewExhauster(ranker Ranker) Exhauster {
	return &exhauster{ranker: ranker}
}

// Exhaust returns the tree rooted at the whole candidate list, or nil when
// even the root is smaller than opts.MinSize.
func (e *exhauster) Exhaust(ctx context.Context, master, candidates []m.Word, opts ExhaustOptions, observe NodeObserver) (*m.DecisionNode, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	if observe == nil {
		observe = func(*m.DecisionNode) {}
	}

	b := &branchBuilder{
		ranker:  e.ranker,
		master:  master,
		opts:    opts,
		observe: observe,
	}

	return b.build(ctx, 0, m.Pattern{}, candidates)
}

type branchBuilder struct {
	ranker  Ranker
	master  []m.Word
	opts    ExhaustOptions
	observe NodeObserver
}

func (b *branchBuilder) build(ctx context.Context, depth int, pattern m.Pattern, words []m.Word) (*m.DecisionNode, error) {
	if len(words) < b.opts.MinSize {
		slog.Debug("dropping small branch", "pattern", pattern.String(), "size", len(words), "depth", depth)
		return nil, nil
	}

	node := &m.DecisionNode{
		Pattern: pattern,
		Depth:   depth,
		Size:    len(words),
	}

	if len(words) == 1 {
		node.Solution = words[0]
		node.SolvedAt = depth + 1

		if pattern.Solved() {
			node.SolvedAt = depth
		}

		b.observe(node)

		return node, nil
	}

	ranking, err := b.ranker.Rank(ctx, b.master, words)
	if err != nil {
		return nil, fmt.Errorf("rank branch %s at depth %d: %w", node.Label(), depth, err)
	}

	node.Guess = ranking.Best
	node.Value = ranking.Scores[0].Value

	last := depth+1 >= b.opts.Depth
	if last {
		node.Alternatives = ranking.Scores.Top(b.opts.Options)
	}

	b.observe(node)

	if last {
		return node, nil
	}

	for _, group := range ranking.Partition {
		child, err := b.build(ctx, depth+1, group.Pattern, group.Words)
		if err != nil {
			return nil, err
		}

		if child != nil {
			node.Children = append(node.Children, child)
		}
	}

	return node, nil
}
