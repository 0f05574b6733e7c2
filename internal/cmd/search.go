package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/proudmuslim-dev/pgrep/internal/config"
	"github.com/proudmuslim-dev/pgrep/internal/display"
	"github.com/proudmuslim-dev/pgrep/internal/loader"
	"github.com/proudmuslim-dev/pgrep/internal/logger"
	"github.com/proudmuslim-dev/pgrep/internal/search"
)

// runSearch resolves configuration, loads the source, searches it and prints
// the matches. Every failure is reported on stderr and returned as *ExitError.
func runSearch(cmd *cobra.Command, args []string, lookupEnv config.LookupEnv) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	colorFlag, _ := cmd.Flags().GetString("color")
	mode, err := display.ParseColorMode(colorFlag)
	if err != nil {
		return fail(display.NewReporter(stderr, display.ColorAuto), ExitFailure, err, "Problem parsing arguments: %v", err)
	}
	reporter := display.NewReporter(stderr, mode)

	// Arguments are checked before any file is touched.
	cfg, err := config.Resolve(args, lookupEnv)
	if err != nil {
		return fail(reporter, ExitFailure, err, "Problem parsing arguments: %v", err)
	}

	settings, err := loadSettings(cmd, lookupEnv)
	if err != nil {
		return fail(reporter, ExitFailure, err, "Problem loading settings: %v", err)
	}
	if !cmd.Flags().Changed("color") {
		mode, _ = display.ParseColorMode(settings.Color)
		reporter = display.NewReporter(stderr, mode)
	}

	log, closeLog, err := newLogger(stderr, settings)
	if err != nil {
		return fail(reporter, ExitFailure, err, "Problem loading settings: %v", err)
	}
	defer closeLog()

	if _, envSet := lookupEnv(config.CaseInsensitiveEnv); envSet && cmd.Flags().Changed("case-sensitive") {
		reporter.Warn(fmt.Sprintf("%s is set but --case-sensitive takes precedence", config.CaseInsensitiveEnv))
	}

	cfg = settings.Apply(cfg)
	log.LogDebug(fmt.Sprintf("resolved %s", cfg))

	text, err := loader.Load(cfg.Source)
	if err != nil {
		log.LogInfo(fmt.Sprintf("load: %v", err))
		return fail(reporter, ExitFailure, err, "%s", loadMessage(cfg.Source, err))
	}

	result, err := search.NewEngine(log).Search(cfg, text)
	switch {
	case errors.Is(err, search.ErrNoMatches):
		return fail(reporter, ExitNoMatches, err, "Pattern '%s' is not present in file '%s'.", cfg.Query, cfg.Source)
	case err != nil:
		var patternErr *search.PatternError
		if errors.As(err, &patternErr) {
			return fail(reporter, ExitFailure, err, "Invalid pattern '%s': %v", patternErr.Query, patternErr.Err)
		}
		return fail(reporter, ExitFailure, err, "%v", err)
	}

	return printMatches(stdout, result)
}

// loadSettings layers the settings file, the environment and CLI flags.
func loadSettings(cmd *cobra.Command, lookupEnv config.LookupEnv) (*config.Settings, error) {
	configFlag, _ := cmd.Flags().GetString("config")
	path, err := config.SettingsPath(configFlag, lookupEnv)
	if err != nil {
		return nil, err
	}

	settings, err := config.LoadSettings(path)
	if err != nil {
		return nil, err
	}
	settings.MergeWithEnv(lookupEnv)

	if cmd.Flags().Changed("ignore-case") && cmd.Flags().Changed("case-sensitive") {
		return nil, fmt.Errorf("cannot use --ignore-case and --case-sensitive together")
	}

	var ignoreCasePtr *bool
	if cmd.Flags().Changed("ignore-case") {
		v, _ := cmd.Flags().GetBool("ignore-case")
		ignoreCasePtr = &v
	} else if cmd.Flags().Changed("case-sensitive") {
		v, _ := cmd.Flags().GetBool("case-sensitive")
		v = !v
		ignoreCasePtr = &v
	}

	var fixedStringsPtr *bool
	if cmd.Flags().Changed("fixed-strings") {
		v, _ := cmd.Flags().GetBool("fixed-strings")
		fixedStringsPtr = &v
	}

	var logLevelPtr *string
	if cmd.Flags().Changed("log-level") {
		v, _ := cmd.Flags().GetString("log-level")
		logLevelPtr = &v
	} else if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		v := "debug"
		logLevelPtr = &v
	}

	var logFilePtr *string
	if cmd.Flags().Changed("log-file") {
		v, _ := cmd.Flags().GetString("log-file")
		logFilePtr = &v
	}

	var colorPtr *string
	if cmd.Flags().Changed("color") {
		v, _ := cmd.Flags().GetString("color")
		colorPtr = &v
	}

	settings.MergeWithFlags(ignoreCasePtr, fixedStringsPtr, logLevelPtr, logFilePtr, colorPtr)

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// newLogger builds the stderr logger and, if configured, the file logger.
// The returned func closes any opened file.
func newLogger(stderr io.Writer, settings *config.Settings) (logger.Logger, func(), error) {
	console := logger.NewConsoleLogger(stderr, settings.LogLevel)
	if settings.LogFile == "" {
		return console, func() {}, nil
	}

	file, err := logger.NewFileLogger(logger.DefaultFileConfig(settings.LogFile), settings.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return logger.NewMultiLogger(console, file), func() { file.Close() }, nil
}

// loadMessage renders the diagnostic for a failed source load.
func loadMessage(path string, err error) string {
	switch {
	case errors.Is(err, loader.ErrFileNotFound):
		return fmt.Sprintf("File '%s' not found, exiting...", path)
	case errors.Is(err, loader.ErrPermissionDenied):
		return fmt.Sprintf("Missing permissions to open file '%s'.", path)
	default:
		cause := err
		var loadErr *loader.LoadError
		if errors.As(err, &loadErr) && loadErr.Err != nil {
			cause = loadErr.Err
		}
		return fmt.Sprintf("Problem reading file '%s': %v", path, cause)
	}
}

// printMatches writes one "<line>: <text>" line per match in ascending order.
func printMatches(out io.Writer, result *search.Result) error {
	for _, m := range result.Matches() {
		if _, err := fmt.Fprintf(out, "%d: %s\n", m.Line, m.Text); err != nil {
			return &ExitError{Code: ExitFailure, Err: fmt.Errorf("write output: %w", err)}
		}
	}
	return nil
}

// fail reports a diagnostic and wraps err with its exit code.
func fail(reporter display.Reporter, code int, err error, format string, a ...interface{}) error {
	reporter.Error(fmt.Sprintf(format, a...))
	return &ExitError{Code: code, Err: err, Reported: true}
}
