// Package cmd provides the root command and CLI setup for wordguess.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"wordguess.dev/pkg/wordguess/internal/adapter"
	"wordguess.dev/pkg/wordguess/internal/controller"
	"wordguess.dev/pkg/wordguess/internal/domain"
	m "wordguess.dev/pkg/wordguess/internal/model"
)

var wordListAdapter adapter.WordListAdapter
var treeStore adapter.TreeStore
var rankingCache adapter.RankingCache

// newWorkflow builds the workflow for a command once its flags are parsed,
// so the UI writes to that command's streams.
var newWorkflow = func(cmd *cobra.Command) domain.Workflow {
	ui := controller.NewUI(cmd, viper.GetBool(tuiConfigKey) && controller.IsTTY(os.Stdout))
	return domain.NewWorkflow(wordListAdapter, treeStore, rankingCache, ui)
}

var (
	solutionsFlag string
	lengthFlag    int
	policyFlag    string
	parallelFlag  int
	noCacheFlag   bool
	cacheDirFlag  string
	tuiFlag       bool
	verboseFlag   bool
	logFileFlag   string
)

func init() {
	// Initialize shared dependencies.
	wordListAdapter = adapter.NewLocalWordListAdapter()
	treeStore = adapter.NewLocalTreeStore()
	rankingCache = adapter.NewGobRankingCache()
}

const wordListHelp = `Word lists hold one word per line. Words whose length differs from
--length are ignored. Unless --solutions names a separate list of possible
answers, every word of the list may be the answer.`

const rootLongDescription = `Wordguess plays and solves Wordle-style word games. Each guess is scored
against a hidden word: 'm' marks a letter in the right place, 'w' a letter
that is in the word elsewhere, '-' a letter that is not (e.g. "w-m--").

Given only a word list, wordguess picks a secret word and judges your guesses.
The solver ranks every allowed guess by how evenly it splits the remaining
answers and can precompute a whole decision tree.

` + wordListHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wordguess [wordlist]",
		Short: "Wordle-style word game and solver",
		Long:  rootLongDescription,
		Args:  cobra.MaximumNArgs(1),
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			return validateSolver(viper.GetInt(lengthConfigKey), viper.GetString(policyConfigKey), viper.GetInt(parallelConfigKey))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			return runGuess(cmd, args[0])
		},
		SilenceUsage: true,
	}
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&solutionsFlag, solutionsFlagName, "s", defaultSolutions, "list of possible answers (default: the word list)")
	bindFlagToConfig(flags.Lookup(solutionsFlagName), solutionsConfigKey)

	flags.IntVarP(&lengthFlag, lengthFlagName, "l", defaultLength, "word length")
	bindFlagToConfig(flags.Lookup(lengthFlagName), lengthConfigKey)

	flags.StringVar(&policyFlag, policyFlagName, defaultPolicy, "guess scoring policy: expected or max")
	bindFlagToConfig(flags.Lookup(policyFlagName), policyConfigKey)

	flags.IntVarP(&parallelFlag, parallelFlagName, "p", defaultParallel, "number of parallel workers for ranking")
	bindFlagToConfig(flags.Lookup(parallelFlagName), parallelConfigKey)

	flags.BoolVar(&noCacheFlag, noCacheFlagName, defaultNoCache, "disable the ranking cache")
	bindFlagToConfig(flags.Lookup(noCacheFlagName), noCacheFlagName)

	flags.StringVar(&cacheDirFlag, cacheDirFlagName, defaultCacheDir, "directory for cached rankings")
	bindFlagToConfig(flags.Lookup(cacheDirFlagName), cacheDirConfigKey)

	flags.BoolVar(&tuiFlag, tuiFlagName, defaultTUI, "use the interactive terminal UI")
	bindFlagToConfig(flags.Lookup(tuiFlagName), tuiConfigKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "log file")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func wordListArgs(wordlist string) domain.WordListArgs {
	return domain.WordListArgs{
		Words:     m.Path(wordlist),
		Solutions: m.Path(viper.GetString(solutionsConfigKey)),
		Length:    viper.GetInt(lengthConfigKey),
	}
}

func solverArgs(wordlist string) domain.SolverArgs {
	return domain.SolverArgs{
		WordListArgs: wordListArgs(wordlist),
		Policy:       m.Policy(viper.GetString(policyConfigKey)),
		Threads:      viper.GetInt(parallelConfigKey),
		UseCache:     !viper.GetBool(noCacheFlagName),
		CacheDir:     m.Path(viper.GetString(cacheDirConfigKey)),
	}
}
