package model

import "fmt"

// Policy selects how a partition is scored.
type Policy string

const (
	// PolicyExpected scores by size-weighted log2 group size (lower is better).
	PolicyExpected Policy = "expected"
	// PolicyMax scores by the largest group (lower is better).
	PolicyMax Policy = "max"
)

// Policies lists the supported policies.
func Policies() []Policy {
	return []Policy{PolicyExpected, PolicyMax}
}

// Score is one row of a score table.
type Score struct {
	Guess     Word
	Value     float64
	Candidate bool // guess is itself a remaining solution
}

func (s Score) String() string {
	return fmt.Sprintf("%s(%.2f)", s.Guess, s.Value)
}

// ScoreTable holds a score for every guess considered, ascending.
type ScoreTable []Score

// Top returns up to n leading rows.
func (t ScoreTable) Top(n int) ScoreTable {
	if n < 0 || n > len(t) {
		n = len(t)
	}

	return t[:n]
}

// Lookup returns the row for guess.
func (t ScoreTable) Lookup(guess Word) (Score, bool) {
	for _, s := range t {
		if s.Guess == guess {
			return s, true
		}
	}

	return Score{}, false
}

// Ranking is the result of scanning every guess against a candidate list.
type Ranking struct {
	Best      Word
	Partition Partition
	Scores    ScoreTable
}
