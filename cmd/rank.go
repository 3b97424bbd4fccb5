package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"wordguess.dev/pkg/wordguess/internal/domain"
	m "wordguess.dev/pkg/wordguess/internal/model"
)

var topFlag int

// rankCmd represents the rank command.
var rankCmd = newRankCmd()

func newRankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank <wordlist> [guess]",
		Short: "Show the best opening guesses or how one guess splits the answers",
		Long: `Without a guess, print the --top guesses by score (lower is better).
With a guess, print every result it can get and the answers behind each.

` + wordListHelp,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var guess m.Word
			if len(args) > 1 {
				guess = m.Word(args[1])
			}

			return newWorkflow(cmd).Rank(cmd.Context(), domain.RankArgs{
				SolverArgs: solverArgs(args[0]),
				Guess:      guess,
				Top:        viper.GetInt(topConfigKey),
			})
		},
	}

	configureRankFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(rankCmd)
}

func configureRankFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&topFlag, topFlagName, "n", defaultTop, "number of guesses to show")
	bindFlagToConfig(cmd.Flags().Lookup(topFlagName), topConfigKey)
}
