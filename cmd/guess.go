package cmd

import (
	"github.com/spf13/cobra"
	"wordguess.dev/pkg/wordguess/internal/domain"
)

// guessCmd represents the guess command.
var guessCmd = newGuessCmd()

func newGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <wordlist>",
		Short: "Guess a secret word picked from the word list",
		Long: `Pick a random secret word and judge your guesses until you find it.
Guesses outside the word list are rejected without costing a turn. End the
input (Ctrl+D) to give up and reveal the word.

` + wordListHelp,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGuess(cmd, args[0])
		},
	}
}

func runGuess(cmd *cobra.Command, wordlist string) error {
	return newWorkflow(cmd).Guess(cmd.Context(), domain.GuessArgs{
		WordListArgs: wordListArgs(wordlist),
	})
}

func init() {
	rootCmd.AddCommand(guessCmd)
}
