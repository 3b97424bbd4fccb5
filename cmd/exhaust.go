package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"wordguess.dev/pkg/wordguess/internal/domain"
	m "wordguess.dev/pkg/wordguess/internal/model"
)

var (
	depthFlag   int
	optionsFlag int
	minSizeFlag int
	outputFlag  string
	formatFlag  string
	diffFlag    bool
)

// exhaustCmd represents the exhaust command.
var exhaustCmd = newExhaustCmd()

func newExhaustCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exhaust <wordlist>",
		Short: "Build a decision tree of best guesses",
		Long: `Rank the best guess for the whole word list, split the answers by the
result that guess gets and repeat for every group, down to --depth guesses.
Groups smaller than --min-size are skipped. The last level lists the best
--options guesses. One line is printed per branch; --output also writes the
tree as JSON or YAML for "wordguess play --opening".

` + wordListHelp,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := domain.ExhaustOptions{
				Depth:   viper.GetInt(depthConfigKey),
				MinSize: viper.GetInt(minSizeConfigKey),
				Options: viper.GetInt(optionsConfigKey),
			}
			if err := validateExhaust(opts); err != nil {
				return err
			}

			output := m.Path(viper.GetString(outputConfigKey))

			format, err := resolveTreeFormat(viper.GetString(formatConfigKey), output)
			if err != nil {
				return err
			}

			return newWorkflow(cmd).Exhaust(cmd.Context(), domain.ExhaustArgs{
				SolverArgs:     solverArgs(args[0]),
				ExhaustOptions: opts,
				Output:         output,
				Format:         format,
				Diff:           diffFlag,
			})
		},
	}

	configureExhaustFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(exhaustCmd)
}

func configureExhaustFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&depthFlag, depthFlagName, "d", defaultDepth, "number of guesses to plan")
	bindFlagToConfig(cmd.Flags().Lookup(depthFlagName), depthConfigKey)

	cmd.Flags().IntVarP(&optionsFlag, optionsFlagName, "n", defaultOptions, "alternatives listed on the last level")
	bindFlagToConfig(cmd.Flags().Lookup(optionsFlagName), optionsConfigKey)

	cmd.Flags().IntVarP(&minSizeFlag, minSizeFlagName, "m", defaultMinSize, "skip groups with fewer words")
	bindFlagToConfig(cmd.Flags().Lookup(minSizeFlagName), minSizeConfigKey)

	cmd.Flags().StringVarP(&outputFlag, outputFlagName, "o", defaultOutput, "write the tree to this file")
	bindFlagToConfig(cmd.Flags().Lookup(outputFlagName), outputConfigKey)

	cmd.Flags().StringVar(&formatFlag, formatFlagName, defaultFormat, "tree format: json or yaml (default: by output extension)")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), formatConfigKey)

	cmd.Flags().BoolVar(&diffFlag, diffFlagName, false, "show changes against the existing output file")
}
