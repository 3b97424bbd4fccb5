package model

import (
	"fmt"
	"strconv"
	"strings"
)

const guessKeyPrefix = "guess:"

// GuessKey is the key under which an exported node stores its guess.
func GuessKey(depth int) string {
	return guessKeyPrefix + strconv.Itoa(depth)
}

// ParseGuessKey reports whether key is a guess key and returns its depth.
func ParseGuessKey(key string) (int, bool) {
	rest, ok := strings.CutPrefix(key, guessKeyPrefix)
	if !ok {
		return 0, false
	}

	depth, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}

	return depth, true
}

// DecisionNode is one branch of an exhaustion tree. A node is a leaf when
// Solution is set; otherwise it records the recommended Guess and, unless it
// sits on the last level, one child per feedback group.
type DecisionNode struct {
	Pattern Pattern // feedback that led here; zero length at the root
	Depth   int
	Size    int

	Solution Word
	SolvedAt int

	Guess        Word
	Value        float64
	Alternatives ScoreTable
	Children     []*DecisionNode
}

// Leaf reports whether the node holds a single solution.
func (n *DecisionNode) Leaf() bool {
	return n.Solution != ""
}

// Label names the branch for display.
func (n *DecisionNode) Label() string {
	if n.Pattern.Len() == 0 {
		return "start"
	}

	return n.Pattern.String()
}

// Walk visits n and its descendants in pre-order.
func (n *DecisionNode) Walk(fn func(node *DecisionNode) error) error {
	if n == nil {
		return nil
	}

	if err := fn(n); err != nil {
		return err
	}

	for _, child := range n.Children {
		if err := child.Walk(fn); err != nil {
			return err
		}
	}

	return nil
}

// Export converts the tree into nested maps keyed by pattern text. A leaf
// child is stored as its solution word; an internal node stores its guess
// under GuessKey(depth). A leaf at the root is exported as the guess to play.
func (n *DecisionNode) Export() map[string]any {
	if n == nil {
		return map[string]any{}
	}

	out := map[string]any{}

	if n.Leaf() {
		out[GuessKey(n.Depth)] = string(n.Solution)
		return out
	}

	out[GuessKey(n.Depth)] = string(n.Guess)

	for _, child := range n.Children {
		key := child.Pattern.String()
		if child.Leaf() {
			out[key] = string(child.Solution)
			continue
		}

		out[key] = child.Export()
	}

	return out
}

func (n *DecisionNode) String() string {
	if n.Leaf() {
		return fmt.Sprintf("%s -> %s (solved at %d)", n.Label(), n.Solution, n.SolvedAt)
	}

	return fmt.Sprintf("%s(%d) -> %s", n.Label(), n.Size, n.Guess)
}
