// Package controller provides the user-facing input and output of the solver.
package controller

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "wordguess.dev/pkg/wordguess/internal/model"
)

// ErrAborted is returned by Prompt when the user cancels input.
var ErrAborted = errors.New("input aborted")

// UI defines how the workflow talks to the player.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// Prompt shows label and returns one line of input without its newline.
	// It returns io.EOF or ErrAborted when no more input will come.
	Prompt(ctx context.Context, label string) (string, error)

	DisplayFeedback(ctx context.Context, guess m.Word, pattern m.Pattern)
	DisplayInvalidGuess(ctx context.Context, guess m.Word)
	DisplayInvalidResult(ctx context.Context, valid []m.Pattern)
	DisplayRemaining(ctx context.Context, words []m.Word)
	DisplaySecret(ctx context.Context, secret m.Word, guesses int)
	DisplayOpening(ctx context.Context, guess m.Word)

	DisplayRanking(ctx context.Context, ranking m.Ranking, top int)
	DisplayPartition(ctx context.Context, guess m.Word, score float64, partition m.Partition)
	DisplayBranch(ctx context.Context, node *m.DecisionNode)
	DisplayDiff(ctx context.Context, diff string)

	// DisplayProgress reports a long scan; percent runs from 0 to 100.
	DisplayProgress(ctx context.Context, label string, percent int)
}

// NewUI returns the interactive TUI when interactive is set, otherwise the
// plain line-based UI.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
