package controller

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	m "wordguess.dev/pkg/wordguess/internal/model"
)

const promptCharLimit = 32

var (
	tileStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	exactTile     = tileStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("2"))
	misplacedTile = tileStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3"))
	noneTile      = tileStyle.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8"))

	hintStyle = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI with Bubble Tea prompts and coloured feedback tiles.
// Everything that is not interactive is printed like SimpleUI does.
type TUI struct {
	*SimpleUI

	input  io.Reader
	output io.Writer
}

// NewTUI creates a new TUI on the command's streams.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		SimpleUI: NewSimpleUI(cmd),
		input:    cmd.InOrStdin(),
		output:   cmd.OutOrStdout(),
	}
}

// Prompt runs a one-line text input.
func (t *TUI) Prompt(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	program := tea.NewProgram(
		newPromptModel(label),
		tea.WithContext(ctx),
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
	)

	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}

	result, ok := final.(promptModel)
	if !ok || result.aborted {
		return "", ErrAborted
	}

	t.printf("%s%s\n", label, result.value)

	return result.value, nil
}

// DisplayFeedback shows the guess as coloured tiles.
func (t *TUI) DisplayFeedback(ctx context.Context, guess m.Word, pattern m.Pattern) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.printf("%s  %s\n", renderTiles(guess, pattern), hintStyle.Render(pattern.String()))
}

// renderTiles draws one tile per letter. Letters beyond the pattern length
// are drawn as misses.
func renderTiles(guess m.Word, pattern m.Pattern) string {
	letters := []rune(string(guess))
	tiles := make([]string, 0, len(letters))

	for i, letter := range letters {
		style := noneTile

		if i < pattern.Len() {
			switch pattern.At(i) {
			case m.Exact:
				style = exactTile
			case m.Misplaced:
				style = misplacedTile
			case m.None:
			}
		}

		tiles = append(tiles, style.Render(strings.ToUpper(string(letter))))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

// promptModel is the Bubble Tea model behind Prompt.
type promptModel struct {
	input   textinput.Model
	value   string
	done    bool
	aborted bool
}

func newPromptModel(label string) promptModel {
	ti := textinput.New()
	ti.Prompt = label
	ti.CharLimit = promptCharLimit
	ti.Focus()

	return promptModel{input: ti}
}

func (pm promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (pm promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // Only submit and cancel keys are handled here
		switch key.Type {
		case tea.KeyEnter:
			pm.value = strings.TrimSpace(pm.input.Value())
			pm.done = true

			return pm, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			pm.aborted = true
			return pm, tea.Quit
		case tea.KeyCtrlD:
			if pm.input.Value() == "" {
				pm.aborted = true
				return pm, tea.Quit
			}
		default:
		}
	}

	var cmd tea.Cmd

	pm.input, cmd = pm.input.Update(msg)

	return pm, cmd
}

func (pm promptModel) View() string {
	if pm.done || pm.aborted {
		return ""
	}

	return pm.input.View() + "\n" + hintStyle.Render("  enter: submit | esc: quit") + "\n"
}
