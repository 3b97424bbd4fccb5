package domain_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"wordguess.dev/pkg/wordguess/internal/adapter"
	"wordguess.dev/pkg/wordguess/internal/controller"
	adaptermocks "wordguess.dev/pkg/wordguess/internal/adapter/mocks"
	controllermocks "wordguess.dev/pkg/wordguess/internal/controller/mocks"
	domain "wordguess.dev/pkg/wordguess/internal/domain"
	m "wordguess.dev/pkg/wordguess/internal/model"
)

// twoLetterWords: "ab", "ba" and "ac" each split the list into singletons.
var twoLetterWords = m.Words("ab", "ba", "cd", "ac")

type workflowMocks struct {
	words *adaptermocks.MockWordListAdapter
	trees *adaptermocks.MockTreeStore
	cache *adaptermocks.MockRankingCache
	ui    *controllermocks.MockUI
}

func newWorkflowMocks(t *testing.T) workflowMocks {
	return workflowMocks{
		words: adaptermocks.NewMockWordListAdapter(t),
		trees: adaptermocks.NewMockTreeStore(t),
		cache: adaptermocks.NewMockRankingCache(t),
		ui:    controllermocks.NewMockUI(t),
	}
}

func (wm workflowMocks) workflow(opts ...domain.WorkflowOption) domain.Workflow {
	return domain.NewWorkflow(wm.words, wm.trees, wm.cache, wm.ui, opts...)
}

func solverArgs(length int) domain.SolverArgs {
	return domain.SolverArgs{
		WordListArgs: domain.WordListArgs{Words: "words.txt", Length: length},
		Policy:       m.PolicyExpected,
		Threads:      2,
	}
}

func pattern(t *testing.T, text string) m.Pattern {
	t.Helper()

	p, err := m.ParsePattern(text)
	require.NoError(t, err)

	return p
}

func TestWorkflow_Guess(t *testing.T) {
	t.Run("judges guesses until solved", func(t *testing.T) {
		wm := newWorkflowMocks(t)
		wm.words.EXPECT().Load(mock.Anything, m.Path("words.txt")).
			Return(m.Words("crane", "slate", "abide", "hi"), nil).Once()

		wm.ui.EXPECT().Prompt(mock.Anything, "1. ").Return("zzzzz", nil).Once()
		wm.ui.EXPECT().DisplayInvalidGuess(mock.Anything, m.Word("zzzzz")).Return().Once()
		wm.ui.EXPECT().Prompt(mock.Anything, "1. ").Return(" crane ", nil).Once()
		wm.ui.EXPECT().DisplayFeedback(mock.Anything, m.Word("crane"), domain.Feedback("crane", "slate")).Return().Once()
		wm.ui.EXPECT().Prompt(mock.Anything, "2. ").Return("slate", nil).Once()
		wm.ui.EXPECT().DisplayFeedback(mock.Anything, m.Word("slate"), m.AllExact(5)).Return().Once()
		wm.ui.EXPECT().DisplaySecret(mock.Anything, m.Word("slate"), 2).Return().Once()

		wf := wm.workflow(domain.WithRandom(func(n int) int {
			assert.Equal(t, 3, n)
			return 1
		}))

		err := wf.Guess(context.Background(), domain.GuessArgs{
			WordListArgs: domain.WordListArgs{Words: "words.txt", Length: 5},
		})
		assert.NoError(t, err)
	})

	t.Run("end of input reveals the secret", func(t *testing.T) {
		wm := newWorkflowMocks(t)
		wm.words.EXPECT().Load(mock.Anything, m.Path("words.txt")).Return(m.Words("crane", "slate"), nil).Once()
		wm.ui.EXPECT().Prompt(mock.Anything, "1. ").Return("", io.EOF).Once()
		wm.ui.EXPECT().DisplaySecret(mock.Anything, m.Word("crane"), 0).Return().Once()

		wf := wm.workflow(domain.WithRandom(func(int) int { return 0 }))

		err := wf.Guess(context.Background(), domain.GuessArgs{
			WordListArgs: domain.WordListArgs{Words: "words.txt", Length: 5},
		})
		assert.NoError(t, err)
	})

	t.Run("word list failure", func(t *testing.T) {
		loadErr := errors.New("missing")
		wm := newWorkflowMocks(t)
		wm.words.EXPECT().Load(mock.Anything, m.Path("words.txt")).Return(nil, loadErr).Once()

		err := wm.workflow().Guess(context.Background(), domain.GuessArgs{
			WordListArgs: domain.WordListArgs{Words: "words.txt", Length: 5},
		})
		assert.ErrorIs(t, err, loadErr)
	})

	t.Run("no words of the requested length", func(t *testing.T) {
		wm := newWorkflowMocks(t)
		wm.words.EXPECT().Load(mock.Anything, m.Path("words.txt")).Return(m.Words("crane"), nil).Once()

		err := wm.workflow().Guess(context.Background(), domain.GuessArgs{
			WordListArgs: domain.WordListArgs{Words: "words.txt", Length: 6},
		})
		assert.ErrorIs(t, err, domain.ErrNoCandidates)
	})
}

func TestWorkflow_Play(t *testing.T) {
	t.Run("recommends, narrows and finishes", func(t *testing.T) {
		wm := newWorkflowMocks(t)
		wm.words.EXPECT().Load(mock.Anything, m.Path("words.txt")).Return(twoLetterWords, nil).Once()

		wm.ui.EXPECT().Prompt(mock.Anything, "1. Enter word guess (ab): ").Return("", nil).Once()
		wm.ui.EXPECT().Prompt(mock.Anything, "1. Enter result: ").Return("xx", nil).Once()
		wm.ui.EXPECT().DisplayInvalidResult(mock.Anything, []m.Pattern{
			pattern(t, "mm"), pattern(t, "ww"), pattern(t, "--"), pattern(t, "m-"),
		}).Return().Once()
		wm.ui.EXPECT().Prompt(mock.Anything, "1. Enter result: ").Return("M-", nil).Once()
		wm.ui.EXPECT().DisplayRemaining(mock.Anything, m.Words("ac")).Return().Once()
		wm.ui.EXPECT().Prompt(mock.Anything, "2. Enter word guess (ac): ").Return("ac", nil).Once()
		wm.ui.EXPECT().Prompt(mock.Anything, "2. Enter result: ").Return("mm", nil).Once()
		wm.ui.EXPECT().DisplayRemaining(mock.Anything, m.Words("ac")).Return().Once()

		err := wm.workflow().Play(context.Background(), domain.PlayArgs{SolverArgs: solverArgs(2)})
		assert.NoError(t, err)
	})

	t.Run("re-prompts unknown guesses", func(t *testing.T) {
		wm := newWorkflowMocks(t)
		wm.words.EXPECT().Load(mock.Anything, m.Path("words.txt")).Return(twoLetterWords, nil).Once()

		wm.ui.EXPECT().Prompt(mock.Anything, "1. Enter word guess (ab): ").Return("zz", nil).Once()
		wm.ui.EXPECT().DisplayInvalidGuess(mock.Anything, m.Word("zz")).Return().Once()
		wm.ui.EXPECT().Prompt(mock.Anything, "1. Enter word guess (ab): ").Return("", io.EOF).Once()

		err := wm.workflow().Play(context.Background(), domain.PlayArgs{SolverArgs: solverArgs(2)})
		assert.NoError(t, err)
	})

	t.Run("uses the opening while it applies", func(t *testing.T) {
		wm := newWorkflowMocks(t)
		wm.words.EXPECT().Load(mock.Anything, m.Path("words.txt")).Return(twoLetterWords, nil).Once()
		wm.trees.EXPECT().Load(mock.Anything, m.Path("open.yaml")).
			Return(map[string]any{"guess:0": "cd"}, nil).Once()

		wm.ui.EXPECT().DisplayOpening(mock.Anything, m.Word("cd")).Return().Once()
		wm.ui.EXPECT().Prompt(mock.Anything, "1. Enter word guess (cd): ").Return("", nil).Once()
		wm.ui.EXPECT().Prompt(mock.Anything, "1. Enter result: ").Return("--", nil).Once()
		wm.ui.EXPECT().DisplayRemaining(mock.Anything, m.Words("ab", "ba")).Return().Once()
		wm.ui.EXPECT().Prompt(mock.Anything, "2. Enter word guess (ab): ").Return("", controller.ErrAborted).Once()

		err := wm.workflow().Play(context.Background(), domain.PlayArgs{
			SolverArgs: solverArgs(2),
			Opening:    "open.yaml",
		})
		assert.NoError(t, err)
	})

	t.Run("opening failure", func(t *testing.T) {
		loadErr := errors.New("bad tree")
		wm := newWorkflowMocks(t)
		wm.words.EXPECT().Load(mock.Anything, m.Path("words.txt")).Return(twoLetterWords, nil).Once()
		wm.trees.EXPECT().Load(mock.Anything, m.Path("open.yaml")).Return(nil, loadErr).Once()

		err := wm.workflow().Play(context.Background(), domain.PlayArgs{
			SolverArgs: solverArgs(2),
			Opening:    "open.yaml",
		})
		assert.ErrorIs(t, err, loadErr)
	})

	t.Run("unknown policy", func(t *testing.T) {
		wm := newWorkflowMocks(t)
		wm.words.EXPECT().Load(mock.Anything, m.Path("words.txt")).Return(twoLetterWords, nil).Once()

		args := solverArgs(2)
		args.Policy = "median"

		err := wm.workflow().Play(context.Background(), domain.PlayArgs{SolverArgs: args})
		assert.ErrorIs(t, err, domain.ErrUnknownPolicy)
	})
}

func TestWorkflow_Exhaust(t *testing.T) {
	t.Run("prints, diffs and saves the tree", func(t *testing.T) {
		wm := newWorkflowMocks(t)
		wm.words.EXPECT().Load(mock.Anything, m.Path("words.txt")).Return(twoLetterWords, nil).Once()

		var branches []*m.DecisionNode

		wm.ui.EXPECT().DisplayBranch(mock.Anything, mock.Anything).
			Run(func(_ context.Context, node *m.DecisionNode) {
				branches = append(branches, node)
			}).Return()

		isTree := mock.MatchedBy(func(tree map[string]any) bool {
			return tree["guess:0"] == "ab" && tree["mm"] == "ab" && tree["m-"] == "ac"
		})
		wm.trees.EXPECT().Diff(mock.Anything, m.Path("tree.yaml"), adapter.FormatYAML, isTree).Return("+guess:0: ab\n", nil).Once()
		wm.ui.EXPECT().DisplayDiff(mock.Anything, "+guess:0: ab\n").Return().Once()
		wm.trees.EXPECT().Save(mock.Anything, m.Path("tree.yaml"), adapter.FormatYAML, isTree).Return(nil).Once()

		err := wm.workflow().Exhaust(context.Background(), domain.ExhaustArgs{
			SolverArgs:     solverArgs(2),
			ExhaustOptions: domain.ExhaustOptions{Depth: 2, MinSize: 1, Options: 3},
			Output:         "tree.yaml",
			Format:         adapter.FormatYAML,
			Diff:           true,
		})
		require.NoError(t, err)

		require.Len(t, branches, 5)
		assert.Equal(t, m.Word("ab"), branches[0].Guess)
		assert.Equal(t, "start", branches[0].Label())
	})

	t.Run("without output nothing is written", func(t *testing.T) {
		wm := newWorkflowMocks(t)
		wm.words.EXPECT().Load(mock.Anything, m.Path("words.txt")).Return(twoLetterWords, nil).Once()
		wm.ui.EXPECT().DisplayBranch(mock.Anything, mock.Anything).Return().Once()

		err := wm.workflow().Exhaust(context.Background(), domain.ExhaustArgs{
			SolverArgs:     solverArgs(2),
			ExhaustOptions: domain.ExhaustOptions{Depth: 1, MinSize: 1, Options: 3},
		})
		assert.NoError(t, err)
	})

	t.Run("save failure", func(t *testing.T) {
		saveErr := errors.New("read-only")
		wm := newWorkflowMocks(t)
		wm.words.EXPECT().Load(mock.Anything, m.Path("words.txt")).Return(twoLetterWords, nil).Once()
		wm.ui.EXPECT().DisplayBranch(mock.Anything, mock.Anything).Return().Once()
		wm.trees.EXPECT().Save(mock.Anything, m.Path("tree.json"), adapter.FormatJSON, mock.Anything).Return(saveErr).Once()

		err := wm.workflow().Exhaust(context.Background(), domain.ExhaustArgs{
			SolverArgs:     solverArgs(2),
			ExhaustOptions: domain.ExhaustOptions{Depth: 1, MinSize: 1, Options: 3},
			Output:         "tree.json",
			Format:         adapter.FormatJSON,
		})
		assert.ErrorIs(t, err, saveErr)
	})
}

func TestWorkflow_Rank(t *testing.T) {
	t.Run("score table", func(t *testing.T) {
		wm := newWorkflowMocks(t)
		wm.words.EXPECT().Load(mock.Anything, m.Path("words.txt")).Return(twoLetterWords, nil).Once()
		wm.ui.EXPECT().DisplayRanking(mock.Anything, mock.MatchedBy(func(r m.Ranking) bool {
			return r.Best == "ab" && len(r.Scores) == len(twoLetterWords)
		}), 3).Return().Once()

		err := wm.workflow().Rank(context.Background(), domain.RankArgs{SolverArgs: solverArgs(2), Top: 3})
		assert.NoError(t, err)
	})

	t.Run("partition for one guess", func(t *testing.T) {
		wm := newWorkflowMocks(t)
		wm.words.EXPECT().Load(mock.Anything, m.Path("words.txt")).Return(twoLetterWords, nil).Once()
		wm.ui.EXPECT().DisplayPartition(mock.Anything, m.Word("cd"), 0.5, domain.PartitionWords("cd", twoLetterWords)).Return().Once()

		err := wm.workflow().Rank(context.Background(), domain.RankArgs{SolverArgs: solverArgs(2), Guess: "cd"})
		assert.NoError(t, err)
	})

	t.Run("guess outside the word list", func(t *testing.T) {
		wm := newWorkflowMocks(t)
		wm.words.EXPECT().Load(mock.Anything, m.Path("words.txt")).Return(twoLetterWords, nil).Once()

		err := wm.workflow().Rank(context.Background(), domain.RankArgs{SolverArgs: solverArgs(2), Guess: "zz"})
		assert.ErrorIs(t, err, domain.ErrInvalidGuess)
	})

	t.Run("separate solution list", func(t *testing.T) {
		wm := newWorkflowMocks(t)
		wm.words.EXPECT().Load(mock.Anything, m.Path("words.txt")).Return(twoLetterWords, nil).Once()
		wm.words.EXPECT().Load(mock.Anything, m.Path("solutions.txt")).Return(m.Words("ab", "ba"), nil).Once()
		wm.ui.EXPECT().DisplayRanking(mock.Anything, mock.MatchedBy(func(r m.Ranking) bool {
			return len(r.Scores) == 2 && r.Partition.Len() == 2
		}), 10).Return().Once()

		args := solverArgs(2)
		args.Solutions = "solutions.txt"

		err := wm.workflow().Rank(context.Background(), domain.RankArgs{SolverArgs: args, Top: 10})
		assert.NoError(t, err)
	})
}
