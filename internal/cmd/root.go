package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/proudmuslim-dev/pgrep/internal/config"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for pgrep
func NewRootCommand() *cobra.Command {
	return newRootCommand(os.LookupEnv)
}

func newRootCommand(lookupEnv config.LookupEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pgrep [flags] <query> <file>",
		Short: "Search a file for lines matching a pattern",
		Long: `pgrep scans a file line by line and prints every line that matches
the query, prefixed with its line number.

The query is a regular expression unless --fixed-strings is given.
Matching is case-sensitive by default. It becomes case-insensitive when
the CASE_INSENSITIVE environment variable is present (any value), when
ignore_case is set in the settings file, or with --ignore-case.
--case-sensitive overrides all of these.

Settings are read from --config, $PGREP_CONFIG, or
$XDG_CONFIG_HOME/pgrep/config.yaml (YAML, or TOML for *.toml files).

Exit code: 0 if a line matched, 1 if nothing matched, 2 on error

Examples:
  pgrep 'fn main' src/main.rs
  pgrep -F 'a.c' notes.txt
  CASE_INSENSITIVE=1 pgrep hello greeting.txt
  pgrep '\b\w{13}\b' words.txt`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, lookupEnv)
		},
		// Silence usage and errors; diagnostics are written by runSearch
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().String("config", "", "Path to settings file (default: $PGREP_CONFIG or ~/.config/pgrep/config.yaml)")
	cmd.Flags().BoolP("ignore-case", "i", false, "Match case-insensitively")
	cmd.Flags().BoolP("case-sensitive", "s", false, "Match case-sensitively (overrides CASE_INSENSITIVE and settings)")
	cmd.Flags().BoolP("fixed-strings", "F", false, "Treat the query as literal text, not a regular expression")
	cmd.Flags().String("log-level", "", "Log verbosity on stderr (trace, debug, info, warn, error)")
	cmd.Flags().String("log-file", "", "Also write logs to this file (rotated)")
	cmd.Flags().String("color", "", "Colour diagnostics: auto, always, never")
	cmd.Flags().BoolP("verbose", "v", false, "Shorthand for --log-level debug")

	return cmd
}
