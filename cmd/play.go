package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"wordguess.dev/pkg/wordguess/internal/domain"
	m "wordguess.dev/pkg/wordguess/internal/model"
)

var openingFlag string

// playCmd represents the play command.
var playCmd = newPlayCmd()

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play <wordlist>",
		Short: "Get the best guess for a game you are playing elsewhere",
		Long: `Recommend a guess each turn, then read the result the game gave you
(e.g. "w-m--") and narrow down the possible answers. Press enter to take the
recommended guess. With --opening, guesses from a tree written by
"wordguess exhaust" are used while they apply.

` + wordListHelp,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return newWorkflow(cmd).Play(cmd.Context(), domain.PlayArgs{
				SolverArgs: solverArgs(args[0]),
				Opening:    m.Path(viper.GetString(openingConfigKey)),
			})
		},
	}

	configurePlayFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func configurePlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&openingFlag, openingFlagName, defaultOpening, "decision tree or single word to open with")
	bindFlagToConfig(cmd.Flags().Lookup(openingFlagName), openingConfigKey)
}
