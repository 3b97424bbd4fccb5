package controller

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	m "wordguess.dev/pkg/wordguess/internal/model"
)

func newTestSimpleUI(input string) (*SimpleUI, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	return NewSimpleUI(cmd), &out, &errOut
}

func mustPattern(t *testing.T, text string) m.Pattern {
	t.Helper()

	p, err := m.ParsePattern(text)
	if err != nil {
		t.Fatalf("ParsePattern(%q) error = %v", text, err)
	}

	return p
}

func TestSimpleUI_Prompt(t *testing.T) {
	ui, out, _ := newTestSimpleUI("crane\r\nslate")
	ctx := context.Background()

	got, err := ui.Prompt(ctx, "1. ")
	if err != nil || got != "crane" {
		t.Fatalf("Prompt() = %q, %v; want crane", got, err)
	}

	got, err = ui.Prompt(ctx, "2. ")
	if err != nil || got != "slate" {
		t.Fatalf("Prompt() = %q, %v; want slate without trailing newline", got, err)
	}

	if _, err = ui.Prompt(ctx, "3. "); !errors.Is(err, io.EOF) {
		t.Fatalf("Prompt() error = %v, want io.EOF", err)
	}

	if !strings.HasPrefix(out.String(), "1. 2. 3. ") {
		t.Errorf("labels not printed in order: %q", out.String())
	}
}

func TestSimpleUI_Messages(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		show func(ui *SimpleUI)
		want []string
	}{
		{
			name: "feedback",
			show: func(ui *SimpleUI) { ui.DisplayFeedback(ctx, "emeer", mustPattern(t, "w-m--")) },
			want: []string{"w-m--\n"},
		},
		{
			name: "invalid guess",
			show: func(ui *SimpleUI) { ui.DisplayInvalidGuess(ctx, "zzzzz") },
			want: []string{`"zzzzz" is not in the word list`},
		},
		{
			name: "invalid result",
			show: func(ui *SimpleUI) {
				ui.DisplayInvalidResult(ctx, []m.Pattern{mustPattern(t, "-----"), mustPattern(t, "mmmmm")})
			},
			want: []string{"Invalid result.  Valid results are: ----- mmmmm"},
		},
		{
			name: "one remaining",
			show: func(ui *SimpleUI) { ui.DisplayRemaining(ctx, m.Words("slate")) },
			want: []string{"One possibility remaining\nslate\n"},
		},
		{
			name: "few remaining are listed",
			show: func(ui *SimpleUI) { ui.DisplayRemaining(ctx, m.Words("slate", "crane")) },
			want: []string{"2 possibilities remaining\nslate\ncrane\n"},
		},
		{
			name: "secret with guess count",
			show: func(ui *SimpleUI) { ui.DisplaySecret(ctx, "slate", 3) },
			want: []string{"The secret word was slate (3 guesses)"},
		},
		{
			name: "secret after giving up",
			show: func(ui *SimpleUI) { ui.DisplaySecret(ctx, "slate", 0) },
			want: []string{"The secret word was slate\n"},
		},
		{
			name: "opening",
			show: func(ui *SimpleUI) { ui.DisplayOpening(ctx, "slate") },
			want: []string{"Opening book suggests slate"},
		},
		{
			name: "unchanged diff",
			show: func(ui *SimpleUI) { ui.DisplayDiff(ctx, "") },
			want: []string{"Decision tree unchanged"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, out, _ := newTestSimpleUI("")
			tt.show(ui)

			for _, want := range tt.want {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output %q does not contain %q", out.String(), want)
				}
			}
		})
	}
}

func TestSimpleUI_DisplayRemaining_LongListNotPrinted(t *testing.T) {
	ui, out, _ := newTestSimpleUI("")

	words := make([]m.Word, 0, 12)
	for i := range 12 {
		words = append(words, m.Word(strings.Repeat(string(rune('a'+i)), 5)))
	}

	ui.DisplayRemaining(context.Background(), words)

	if got := out.String(); got != "12 possibilities remaining\n" {
		t.Fatalf("DisplayRemaining() = %q", got)
	}
}

func TestSimpleUI_DisplayRanking(t *testing.T) {
	ui, out, _ := newTestSimpleUI("")

	ranking := m.Ranking{
		Best: "slate",
		Partition: m.Partition{
			{Pattern: mustPattern(t, "mmmmm"), Words: m.Words("slate")},
			{Pattern: mustPattern(t, "-----"), Words: m.Words("crony")},
		},
		Scores: m.ScoreTable{
			{Guess: "slate", Value: 0, Candidate: true},
			{Guess: "crony", Value: 0, Candidate: true},
			{Guess: "audio", Value: 1},
		},
	}

	ui.DisplayRanking(context.Background(), ranking, 2)

	output := out.String()
	for _, want := range []string{"GUESS", "slate", "crony", "0.0000", "yes", "Best guess: slate (2 groups over 2 candidates)"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}

	if strings.Contains(output, "audio") {
		t.Errorf("output should stop after the top rows:\n%s", output)
	}
}

func TestSimpleUI_DisplayPartition(t *testing.T) {
	ui, out, _ := newTestSimpleUI("")

	words := m.Words("aaaaa", "bbbbb", "ccccc", "ddddd", "eeeee", "fffff", "ggggg", "hhhhh", "iiiii", "jjjjj")
	partition := m.Partition{{Pattern: mustPattern(t, "-----"), Words: words}}

	ui.DisplayPartition(context.Background(), "slate", 3.3219, partition)

	output := out.String()
	for _, want := range []string{"Guess slate scores 3.3219 with 1 groups", "-----", "aaaaa", "hhhhh", "... +2"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}

	if strings.Contains(output, "iiiii") {
		t.Errorf("partition preview should be truncated:\n%s", output)
	}
}

func TestSimpleUI_DisplayBranch(t *testing.T) {
	ui, out, _ := newTestSimpleUI("")
	ctx := context.Background()

	ui.DisplayBranch(ctx, &m.DecisionNode{Size: 2315, Guess: "roate", Value: 5.88})
	ui.DisplayBranch(ctx, &m.DecisionNode{
		Pattern: mustPattern(t, "--w--"),
		Depth:   1,
		Size:    120,
		Guess:   "lynch",
		Value:   2.1,
		Alternatives: m.ScoreTable{
			{Guess: "lynch", Value: 2.1},
			{Guess: "unlit", Value: 2.25},
		},
	})
	ui.DisplayBranch(ctx, &m.DecisionNode{Pattern: mustPattern(t, "mmmmm"), Depth: 1, Size: 1, Solution: "roate", SolvedAt: 1})

	want := "best guess for start(2315):  roate(5.88)\n" +
		"   best guess for --w--(120):  lynch(2.10) unlit(2.25)\n" +
		"   solution for mmmmm: roate (guess 1)\n"

	if got := out.String(); got != want {
		t.Fatalf("DisplayBranch() output =\n%q\nwant\n%q", got, want)
	}
}

func TestSimpleUI_DisplayProgress(t *testing.T) {
	ui, _, errOut := newTestSimpleUI("")
	ctx := context.Background()

	for _, p := range []int{0, 50, 100} {
		ui.DisplayProgress(ctx, "ranking guesses", p)
	}

	if ui.bar != nil {
		t.Fatalf("progress bar should be released once finished")
	}

	if errOut.Len() == 0 {
		t.Fatalf("progress should be drawn on the error stream")
	}
}

func TestSimpleUI_CancelledContextPrintsNothing(t *testing.T) {
	ui, out, _ := newTestSimpleUI("")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui.DisplaySecret(ctx, "slate", 1)
	ui.DisplayRemaining(ctx, m.Words("slate"))

	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}

	if _, err := ui.Prompt(ctx, "1. "); !errors.Is(err, context.Canceled) {
		t.Fatalf("Prompt() error = %v, want context.Canceled", err)
	}
}
