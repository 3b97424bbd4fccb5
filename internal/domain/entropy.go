package domain

import (
	"errors"
	"fmt"
	"math"
	"slices"

	m "wordguess.dev/pkg/wordguess/internal/model"
)

// ErrUnknownPolicy is returned for a policy name with no scorer.
var ErrUnknownPolicy = errors.New("unknown scoring policy")

// Scorer turns the group sizes of a partition into a score; lower is better.
// Calling a scorer with no groups is a programming error and panics.
type Scorer interface {
	Policy() m.Policy
	Score(counts map[m.Pattern]int) float64
	ScoreSizes(sizes []int) float64
}

// NewScorer returns the scorer for policy.
func NewScorer(policy m.Policy) (Scorer, error) {
	switch policy {
	case m.PolicyExpected, "":
		return expectedScorer{}, nil
	case m.PolicyMax:
		return maxScorer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, policy)
	}
}

// expectedScorer computes sum(n*log2(n))/N: the expected log2 size of the
// group the answer falls into. It is the negated information gain plus a
// constant, so minimizing it maximizes the expected information.
type expectedScorer struct{}

func (expectedScorer) Policy() m.Policy { return m.PolicyExpected }

func (s expectedScorer) Score(counts map[m.Pattern]int) float64 {
	return s.ScoreSizes(sizesOf(counts))
}

func (expectedScorer) ScoreSizes(sizes []int) float64 {
	sorted := sortedSizes(sizes)

	total := 0
	sum := 0.0

	for _, n := range sorted {
		total += n
		sum += float64(n) * math.Log2(float64(n))
	}

	return sum / float64(total)
}

type maxScorer struct{}

func (maxScorer) Policy() m.Policy { return m.PolicyMax }

func (s maxScorer) Score(counts map[m.Pattern]int) float64 {
	return s.ScoreSizes(sizesOf(counts))
}

func (maxScorer) ScoreSizes(sizes []int) float64 {
	sorted := sortedSizes(sizes)
	return float64(sorted[len(sorted)-1])
}

func sizesOf(counts map[m.Pattern]int) []int {
	sizes := make([]int, 0, len(counts))
	for _, n := range counts {
		sizes = append(sizes, n)
	}

	return sizes
}

// sortedSizes fixes the summation order so equal partitions score identically.
func sortedSizes(sizes []int) []int {
	sorted := slices.Clone(sizes)
	slices.Sort(sorted)

	if len(sorted) == 0 || sorted[len(sorted)-1] <= 0 {
		panic("entropy: cannot score an empty partition")
	}

	if sorted[0] <= 0 {
		panic(fmt.Sprintf("entropy: invalid group size %d", sorted[0]))
	}

	return sorted
}
