package controller

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	m "wordguess.dev/pkg/wordguess/internal/model"
)

const (
	// Remaining words are listed when fewer than this many are left.
	listRemainingBelow = 10
	// Words shown per group in a partition table.
	partitionPreview = 8
	branchIndent     = "   "
)

// SimpleUI implements UI with plain lines on the cobra command's streams.
type SimpleUI struct {
	cmd    *cobra.Command
	reader *bufio.Reader

	mu  sync.Mutex
	bar *progressbar.ProgressBar
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Prompt prints label and reads one line from the command's input.
func (s *SimpleUI) Prompt(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.printf("%s", label)

	if s.reader == nil {
		s.reader = bufio.NewReader(s.cmd.InOrStdin())
	}

	line, err := s.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}

		s.printf("\n")

		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// DisplayFeedback prints the pattern for a judged guess.
func (s *SimpleUI) DisplayFeedback(ctx context.Context, _ m.Word, pattern m.Pattern) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", pattern)
}

// DisplayInvalidGuess reports a guess outside the word list.
func (s *SimpleUI) DisplayInvalidGuess(ctx context.Context, guess m.Word) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%q is not in the word list\n", guess)
}

// DisplayInvalidResult lists the results that are possible for the guess.
func (s *SimpleUI) DisplayInvalidResult(ctx context.Context, valid []m.Pattern) {
	if err := ctx.Err(); err != nil {
		return
	}

	texts := make([]string, 0, len(valid))
	for _, p := range valid {
		texts = append(texts, p.String())
	}

	s.printf("Invalid result.  Valid results are: %s\n", strings.Join(texts, " "))
}

// DisplayRemaining reports how many solutions are left, listing short lists.
func (s *SimpleUI) DisplayRemaining(ctx context.Context, words []m.Word) {
	if err := ctx.Err(); err != nil {
		return
	}

	if len(words) == 1 {
		s.printf("One possibility remaining\n")
	} else {
		s.printf("%d possibilities remaining\n", len(words))
	}

	if len(words) < listRemainingBelow {
		for _, w := range words {
			s.printf("%s\n", w)
		}
	}
}

// DisplaySecret reveals the secret word.
func (s *SimpleUI) DisplaySecret(ctx context.Context, secret m.Word, guesses int) {
	if err := ctx.Err(); err != nil {
		return
	}

	if guesses > 0 {
		s.printf("The secret word was %s (%d guesses)\n", secret, guesses)
		return
	}

	s.printf("The secret word was %s\n", secret)
}

// DisplayOpening notes that a precomputed guess is used.
func (s *SimpleUI) DisplayOpening(ctx context.Context, guess m.Word) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Opening book suggests %s\n", guess)
}

// DisplayRanking prints the leading rows of a score table.
func (s *SimpleUI) DisplayRanking(ctx context.Context, ranking m.Ranking, top int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", renderRankingTable(ranking, top))
	s.printf("Best guess: %s (%d groups over %d candidates)\n",
		ranking.Best, len(ranking.Partition), ranking.Partition.Len())
}

func renderRankingTable(ranking m.Ranking, top int) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Guess", "Score", "Candidate"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_CENTER,
	})

	rows := ranking.Scores.Top(top)
	for i, score := range rows {
		candidate := ""
		if score.Candidate {
			candidate = "yes"
		}

		table.Append([]string{fmt.Sprintf("%d", i+1), string(score.Guess), fmt.Sprintf("%.4f", score.Value), candidate})
	}

	table.SetFooter([]string{"", fmt.Sprintf("Guesses %d", len(ranking.Scores)), "", ""})
	table.Render()

	return tableBuffer.String()
}

// DisplayPartition prints the groups a guess splits the candidates into.
func (s *SimpleUI) DisplayPartition(ctx context.Context, guess m.Word, score float64, partition m.Partition) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\nGuess %s scores %.4f with %d groups\n", guess, score, len(partition))
	s.printf("%s", renderPartitionTable(partition))
}

func renderPartitionTable(partition m.Partition) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Result", "Count", "Words"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

	for _, group := range partition {
		table.Append([]string{group.Pattern.String(), fmt.Sprintf("%d", len(group.Words)), previewWords(group.Words)})
	}

	table.SetFooter([]string{"Total", fmt.Sprintf("%d", partition.Len()), ""})
	table.Render()

	return tableBuffer.String()
}

func previewWords(words []m.Word) string {
	shown := words
	if len(shown) > partitionPreview {
		shown = shown[:partitionPreview]
	}

	texts := make([]string, 0, len(shown)+1)
	for _, w := range shown {
		texts = append(texts, string(w))
	}

	if len(words) > len(shown) {
		texts = append(texts, fmt.Sprintf("... +%d", len(words)-len(shown)))
	}

	return strings.Join(texts, " ")
}

// DisplayBranch prints one line per decision-tree node, indented by depth.
func (s *SimpleUI) DisplayBranch(ctx context.Context, node *m.DecisionNode) {
	if err := ctx.Err(); err != nil {
		return
	}

	indent := strings.Repeat(branchIndent, node.Depth)

	if node.Leaf() {
		s.printf("%ssolution for %s: %s (guess %d)\n", indent, node.Label(), node.Solution, node.SolvedAt)
		return
	}

	options := node.Alternatives
	if len(options) == 0 {
		options = m.ScoreTable{{Guess: node.Guess, Value: node.Value}}
	}

	var b strings.Builder
	for _, option := range options {
		fmt.Fprintf(&b, " %s", option)
	}

	s.printf("%sbest guess for %s(%d): %s\n", indent, node.Label(), node.Size, b.String())
}

// DisplayDiff prints a unified diff of the tree output.
func (s *SimpleUI) DisplayDiff(ctx context.Context, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if diff == "" {
		s.printf("Decision tree unchanged\n")
		return
	}

	s.printf("%s", diff)
}

// DisplayProgress drives a progress bar on the error stream.
func (s *SimpleUI) DisplayProgress(ctx context.Context, label string, percent int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.bar == nil {
		s.bar = progressbar.NewOptions(100,
			progressbar.OptionSetWriter(s.cmd.ErrOrStderr()),
			progressbar.OptionSetDescription(label),
			progressbar.OptionSetWidth(30),
			progressbar.OptionClearOnFinish(),
		)
	}

	_ = s.bar.Set(percent)

	if percent >= 100 {
		_ = s.bar.Finish()
		s.bar = nil
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
