package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	"wordguess.dev/pkg/wordguess/internal/adapter"
	"wordguess.dev/pkg/wordguess/internal/domain"
	m "wordguess.dev/pkg/wordguess/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "wordguess"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	solutionsFlagName = "solutions"
	lengthFlagName    = "length"
	policyFlagName    = "policy"
	parallelFlagName  = "parallel"
	noCacheFlagName   = "no-cache"
	cacheDirFlagName  = "cache-dir"
	tuiFlagName       = "tui"
	verboseFlagName   = "verbose"
	logFileFlagName   = "log-file"

	depthFlagName   = "depth"
	optionsFlagName = "options"
	minSizeFlagName = "min-size"
	outputFlagName  = "output"
	formatFlagName  = "format"
	diffFlagName    = "diff"
	openingFlagName = "opening"
	topFlagName     = "top"

	solutionsConfigKey = "words.solutions"
	lengthConfigKey    = "words.length"
	policyConfigKey    = "solver.policy"
	parallelConfigKey  = "solver.parallel"
	cacheDirConfigKey  = "cache.dir"
	tuiConfigKey       = "ui.tui"

	depthConfigKey   = "exhaust.depth"
	optionsConfigKey = "exhaust.options"
	minSizeConfigKey = "exhaust.min_size"
	outputConfigKey  = "exhaust.output"
	formatConfigKey  = "exhaust.format"
	openingConfigKey = "play.opening"
	topConfigKey     = "rank.top"

	defaultSolutions = ""
	defaultLength    = m.DefaultWordLength
	defaultPolicy    = string(m.PolicyExpected)
	defaultNoCache   = false
	defaultCacheDir  = ".wordguess-cache"
	defaultTUI       = false

	defaultDepth   = 2
	defaultOptions = 5
	defaultMinSize = 100
	defaultOutput  = ""
	defaultFormat  = ""
	defaultOpening = ""
	defaultTop     = 10

	envPrefix = "WORDGUESS"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".wordguess.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var defaultParallel = runtime.NumCPU()

var errInvalidSetting = errors.New("invalid setting")

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(solutionsConfigKey, defaultSolutions)
	viper.SetDefault(lengthConfigKey, defaultLength)
	viper.SetDefault(policyConfigKey, defaultPolicy)
	viper.SetDefault(parallelConfigKey, defaultParallel)
	viper.SetDefault(noCacheFlagName, defaultNoCache)
	viper.SetDefault(cacheDirConfigKey, defaultCacheDir)
	viper.SetDefault(tuiConfigKey, defaultTUI)

	viper.SetDefault(depthConfigKey, defaultDepth)
	viper.SetDefault(optionsConfigKey, defaultOptions)
	viper.SetDefault(minSizeConfigKey, defaultMinSize)
	viper.SetDefault(outputConfigKey, defaultOutput)
	viper.SetDefault(formatConfigKey, defaultFormat)
	viper.SetDefault(openingConfigKey, defaultOpening)
	viper.SetDefault(topConfigKey, defaultTop)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// validateSolver rejects settings shared by every solving command.
func validateSolver(length int, policy string, parallel int) error {
	if length < 1 || length > m.MaxWordLength {
		return fmt.Errorf("%w: --%s must be between 1 and %d, got %d", errInvalidSetting, lengthFlagName, m.MaxWordLength, length)
	}

	if _, err := domain.NewScorer(m.Policy(policy)); err != nil {
		return fmt.Errorf("--%s: %w", policyFlagName, err)
	}

	if parallel < 1 {
		return fmt.Errorf("%w: --%s must be at least 1, got %d", errInvalidSetting, parallelFlagName, parallel)
	}

	return nil
}

// validateExhaust rejects tree bounds that cannot produce a tree.
func validateExhaust(opts domain.ExhaustOptions) error {
	for _, setting := range []struct {
		flag  string
		value int
	}{
		{flag: depthFlagName, value: opts.Depth},
		{flag: optionsFlagName, value: opts.Options},
		{flag: minSizeFlagName, value: opts.MinSize},
	} {
		if setting.value < 1 {
			return fmt.Errorf("%w: --%s must be at least 1, got %d", errInvalidSetting, setting.flag, setting.value)
		}
	}

	return nil
}

// resolveTreeFormat picks the output format. Without an explicit format the
// output file extension decides, JSON otherwise.
func resolveTreeFormat(name string, output m.Path) (adapter.TreeFormat, error) {
	if strings.TrimSpace(name) == "" {
		switch strings.ToLower(filepath.Ext(string(output))) {
		case ".yaml", ".yml":
			return adapter.FormatYAML, nil
		default:
			return adapter.FormatJSON, nil
		}
	}

	return adapter.ParseTreeFormat(name)
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
