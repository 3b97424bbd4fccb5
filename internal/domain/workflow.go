package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"

	"wordguess.dev/pkg/wordguess/internal/adapter"
	"wordguess.dev/pkg/wordguess/internal/controller"
	m "wordguess.dev/pkg/wordguess/internal/model"
)

// WordListArgs locates the word lists of a run.
type WordListArgs struct {
	Words     m.Path // allowed guesses
	Solutions m.Path // possible answers; Words when empty
	Length    int
}

// SolverArgs configures ranking.
type SolverArgs struct {
	WordListArgs
	Policy   m.Policy
	Threads  int
	UseCache bool
	CacheDir m.Path
}

// GuessArgs contains the arguments for opponent mode.
type GuessArgs struct {
	WordListArgs
}

// PlayArgs contains the arguments for assisted play.
type PlayArgs struct {
	SolverArgs
	Opening m.Path
}

// ExhaustArgs contains the arguments for building a decision tree.
type ExhaustArgs struct {
	SolverArgs
	ExhaustOptions
	Output m.Path
	Format adapter.TreeFormat
	Diff   bool
}

// RankArgs contains the arguments for printing a score table or partition.
type RankArgs struct {
	SolverArgs
	Guess m.Word
	Top   int
}

// Workflow runs the command-line modes of the solver.
type Workflow interface {
	Guess(ctx context.Context, args GuessArgs) error
	Play(ctx context.Context, args PlayArgs) error
	Exhaust(ctx context.Context, args ExhaustArgs) error
	Rank(ctx context.Context, args RankArgs) error
}

// WorkflowOption configures a Workflow.
type WorkflowOption func(*workflow)

// WithRandom replaces the source used to pick secret words.
func WithRandom(intN func(n int) int) WorkflowOption {
	return func(w *workflow) {
		w.intN = intN
	}
}

type workflow struct {
	words adapter.WordListAdapter
	trees adapter.TreeStore
	cache adapter.RankingCache
	ui    controller.UI

	intN func(n int) int
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	words adapter.WordListAdapter,
	trees adapter.TreeStore,
	cache adapter.RankingCache,
	ui controller.UI,
	opts ...WorkflowOption,
) Workflow {
	w := &workflow{
		words: words,
		trees: trees,
		cache: cache,
		ui:    ui,
		intN:  rand.IntN,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Guess picks a random secret and judges the player's guesses until solved.
func (w *workflow) Guess(ctx context.Context, args GuessArgs) error {
	master, solutions, err := w.loadLists(ctx, args.WordListArgs)
	if err != nil {
		return err
	}

	session := NewSession(master, solutions)
	secret := solutions[w.intN(len(solutions))]

	slog.Info("started opponent game", "words", len(master), "solutions", len(solutions))

	for {
		input, err := w.ui.Prompt(ctx, fmt.Sprintf("%d. ", session.Turn()))
		if endOfInput(err) {
			w.ui.DisplaySecret(ctx, secret, 0)
			return nil
		}

		if err != nil {
			return fmt.Errorf("read guess: %w", err)
		}

		guess := m.Word(strings.TrimSpace(input))

		pattern, err := session.Judge(secret, guess)
		if errors.Is(err, ErrInvalidGuess) {
			w.ui.DisplayInvalidGuess(ctx, guess)
			continue
		}

		if err != nil {
			return err
		}

		w.ui.DisplayFeedback(ctx, guess, pattern)

		if pattern.Solved() {
			break
		}
	}

	w.ui.DisplaySecret(ctx, secret, session.Turn()-1)

	return nil
}

// Play recommends a guess each turn and narrows the solutions by the results
// the player reports.
func (w *workflow) Play(ctx context.Context, args PlayArgs) error {
	master, solutions, err := w.loadLists(ctx, args.WordListArgs)
	if err != nil {
		return err
	}

	ranker, err := w.newRanker(ctx, args.SolverArgs)
	if err != nil {
		return err
	}

	opening, err := w.loadOpening(ctx, args.Opening)
	if err != nil {
		return err
	}

	session := NewSession(master, solutions)

	for {
		best, err := w.recommend(ctx, ranker, session, opening)
		if err != nil {
			return err
		}

		guess, partition, err := w.readGuess(ctx, session, best)
		if endOfInput(err) {
			return nil
		}

		if err != nil {
			return err
		}

		pattern, remaining, err := w.readResult(ctx, session, partition)
		if endOfInput(err) {
			return nil
		}

		if err != nil {
			return err
		}

		slog.Debug("narrowed candidates", "guess", guess, "result", pattern.String(), "remaining", len(remaining))
		w.ui.DisplayRemaining(ctx, remaining)

		if pattern.Solved() {
			return nil
		}

		if guess != best {
			opening = nil
		}

		opening = opening.Next(pattern)
	}
}

func (w *workflow) recommend(ctx context.Context, ranker Ranker, session *Session, opening *Opening) (m.Word, error) {
	if guess, ok := opening.Guess(); ok && session.IsAllowed(guess) {
		w.ui.DisplayOpening(ctx, guess)
		return guess, nil
	}

	ranking, err := ranker.Rank(ctx, session.Master(), session.Candidates())
	if err != nil {
		slog.Error("Failed to rank guesses", "candidates", len(session.Candidates()), "error", err)
		return "", fmt.Errorf("rank guesses: %w", err)
	}

	return ranking.Best, nil
}

func (w *workflow) readGuess(ctx context.Context, session *Session, best m.Word) (m.Word, m.Partition, error) {
	for {
		input, err := w.ui.Prompt(ctx, fmt.Sprintf("%d. Enter word guess (%s): ", session.Turn(), best))
		if err != nil {
			return "", nil, err
		}

		guess := m.Word(strings.TrimSpace(input))
		if guess == "" {
			guess = best
		}

		partition, err := session.Partition(guess)
		if errors.Is(err, ErrInvalidGuess) {
			w.ui.DisplayInvalidGuess(ctx, guess)
			continue
		}

		if err != nil {
			return "", nil, err
		}

		return guess, partition, nil
	}
}

func (w *workflow) readResult(ctx context.Context, session *Session, partition m.Partition) (m.Pattern, []m.Word, error) {
	for {
		input, err := w.ui.Prompt(ctx, fmt.Sprintf("%d. Enter result: ", session.Turn()))
		if err != nil {
			return m.Pattern{}, nil, err
		}

		pattern, err := m.ParsePattern(input)
		if err == nil {
			remaining, narrowErr := session.Narrow(partition, pattern)
			if narrowErr == nil {
				return pattern, remaining, nil
			}
		}

		w.ui.DisplayInvalidResult(ctx, partition.Patterns())
	}
}

// Exhaust builds the decision tree, printing each branch, and writes it out
// when an output path is given.
func (w *workflow) Exhaust(ctx context.Context, args ExhaustArgs) error {
	master, solutions, err := w.loadLists(ctx, args.WordListArgs)
	if err != nil {
		return err
	}

	ranker, err := w.newRanker(ctx, args.SolverArgs)
	if err != nil {
		return err
	}

	tree, err := NewExhauster(ranker).Exhaust(ctx, master, solutions, args.ExhaustOptions, func(node *m.DecisionNode) {
		w.ui.DisplayBranch(ctx, node)
	})
	if err != nil {
		slog.Error("Failed to build decision tree", "error", err)
		return fmt.Errorf("exhaust: %w", err)
	}

	if tree == nil {
		slog.Warn("solution list is below the minimum branch size", "solutions", len(solutions), "min_size", args.MinSize)
	}

	if args.Output == "" {
		return nil
	}

	export := tree.Export()

	if args.Diff {
		diff, err := w.trees.Diff(ctx, args.Output, args.Format, export)
		if err != nil {
			return fmt.Errorf("diff tree: %w", err)
		}

		w.ui.DisplayDiff(ctx, diff)
	}

	if err := w.trees.Save(ctx, args.Output, args.Format, export); err != nil {
		return fmt.Errorf("save tree: %w", err)
	}

	return nil
}

// Rank prints the score table for the solutions, or the partition a single
// guess produces.
func (w *workflow) Rank(ctx context.Context, args RankArgs) error {
	master, solutions, err := w.loadLists(ctx, args.WordListArgs)
	if err != nil {
		return err
	}

	if args.Guess != "" {
		if !m.Contains(master, args.Guess) {
			return fmt.Errorf("%w: %q", ErrInvalidGuess, args.Guess)
		}

		scorer, err := NewScorer(args.Policy)
		if err != nil {
			return err
		}

		partition := PartitionWords(args.Guess, solutions)
		w.ui.DisplayPartition(ctx, args.Guess, scorer.ScoreSizes(partition.Sizes()), partition)

		return nil
	}

	ranker, err := w.newRanker(ctx, args.SolverArgs)
	if err != nil {
		return err
	}

	ranking, err := ranker.Rank(ctx, master, solutions)
	if err != nil {
		return fmt.Errorf("rank guesses: %w", err)
	}

	w.ui.DisplayRanking(ctx, ranking, args.Top)

	return nil
}

func (w *workflow) newRanker(ctx context.Context, args SolverArgs) (Ranker, error) {
	scorer, err := NewScorer(args.Policy)
	if err != nil {
		return nil, err
	}

	opts := []RankerOption{
		WithThreads(args.Threads),
		WithProgress(func(percent int) {
			w.ui.DisplayProgress(ctx, "ranking guesses", percent)
		}),
	}

	if args.UseCache && args.CacheDir != "" {
		opts = append(opts, WithCache(w.cache, args.CacheDir))
	}

	return NewRanker(scorer, opts...), nil
}

func (w *workflow) loadOpening(ctx context.Context, path m.Path) (*Opening, error) {
	if path == "" {
		return nil, nil
	}

	tree, err := w.trees.Load(ctx, path)
	if err != nil {
		slog.Error("Failed to load opening", "path", path, "error", err)
		return nil, fmt.Errorf("load opening: %w", err)
	}

	return NewOpening(tree), nil
}

// loadLists reads both word lists and drops words of the wrong length.
func (w *workflow) loadLists(ctx context.Context, args WordListArgs) ([]m.Word, []m.Word, error) {
	master, err := w.loadList(ctx, args.Words, args.Length)
	if err != nil {
		return nil, nil, err
	}

	if args.Solutions == "" || args.Solutions == args.Words {
		return master, master, nil
	}

	solutions, err := w.loadList(ctx, args.Solutions, args.Length)
	if err != nil {
		return nil, nil, err
	}

	return master, solutions, nil
}

func (w *workflow) loadList(ctx context.Context, path m.Path, length int) ([]m.Word, error) {
	words, err := w.words.Load(ctx, path)
	if err != nil {
		slog.Error("Failed to load word list", "path", path, "error", err)
		return nil, fmt.Errorf("load word list: %w", err)
	}

	kept := FilterLength(words, length)
	if dropped := len(words) - len(kept); dropped > 0 {
		slog.Info("dropped words of the wrong length", "path", path, "length", length, "dropped", dropped)
	}

	if len(kept) == 0 {
		return nil, fmt.Errorf("%w: no words of length %d in %s", ErrNoCandidates, length, path)
	}

	return kept, nil
}

// FilterLength keeps the words with exactly length letters, in order.
func FilterLength(words []m.Word, length int) []m.Word {
	kept := make([]m.Word, 0, len(words))
	for _, w := range words {
		if w.Len() == length {
			kept = append(kept, w)
		}
	}

	return kept
}

func endOfInput(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, controller.ErrAborted)
}
