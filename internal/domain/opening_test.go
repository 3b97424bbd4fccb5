package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "wordguess.dev/pkg/wordguess/internal/model"
)

func TestOpening_FollowsExportedTree(t *testing.T) {
	tree := &m.DecisionNode{
		Size:  3,
		Guess: "ab",
		Children: []*m.DecisionNode{
			{Pattern: mustPattern(t, "--"), Depth: 1, Size: 2, Guess: "cd"},
			{Pattern: mustPattern(t, "w-"), Depth: 1, Size: 1, Solution: "ca", SolvedAt: 2},
		},
	}

	opening := NewOpening(tree.Export())

	guess, ok := opening.Guess()
	require.True(t, ok)
	assert.Equal(t, m.Word("ab"), guess)

	next := opening.Next(mustPattern(t, "--"))
	guess, ok = next.Guess()
	require.True(t, ok)
	assert.Equal(t, m.Word("cd"), guess)

	leaf := opening.Next(mustPattern(t, "w-"))
	guess, ok = leaf.Guess()
	require.True(t, ok)
	assert.Equal(t, m.Word("ca"), guess)

	assert.Nil(t, opening.Next(mustPattern(t, "mm")))
	assert.Nil(t, next.Next(mustPattern(t, "--")))
}

func TestOpening_PlainWord(t *testing.T) {
	opening := NewOpening(map[string]any{m.GuessKey(0): "slate"})

	guess, ok := opening.Guess()
	require.True(t, ok)
	assert.Equal(t, m.Word("slate"), guess)
	assert.Nil(t, opening.Next(mustPattern(t, "-----")))
}

func TestOpening_Empty(t *testing.T) {
	var opening *Opening

	assert.Nil(t, NewOpening(nil))

	_, ok := opening.Guess()
	assert.False(t, ok)
	assert.Nil(t, opening.Next(mustPattern(t, "--")))
}

func mustPattern(t *testing.T, text string) m.Pattern {
	t.Helper()

	p, err := m.ParsePattern(text)
	require.NoError(t, err)

	return p
}
