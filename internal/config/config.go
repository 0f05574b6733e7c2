package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/proudmuslim-dev/pgrep/internal/display"
	"github.com/proudmuslim-dev/pgrep/internal/logger"
	"github.com/proudmuslim-dev/pgrep/internal/search"
)

// Settings represents pgrep's persistent options
type Settings struct {
	// IgnoreCase makes matching case-insensitive
	IgnoreCase bool `yaml:"ignore_case" toml:"ignore_case"`

	// FixedStrings treats the query as literal text instead of a regular expression
	FixedStrings bool `yaml:"fixed_strings" toml:"fixed_strings"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level" toml:"log_level"`

	// LogFile is an optional path for a rotating log file
	LogFile string `yaml:"log_file" toml:"log_file"`

	// Color controls diagnostic colouring (auto, always, never)
	Color string `yaml:"color" toml:"color"`
}

// DefaultSettings returns Settings with sensible default values
func DefaultSettings() *Settings {
	return &Settings{
		IgnoreCase:   false,
		FixedStrings: false,
		LogLevel:     "warn",
		LogFile:      "",
		Color:        string(display.ColorAuto),
	}
}

// LoadSettings loads settings from the specified file path.
// If the file doesn't exist, returns default settings without error.
// If the file exists but is malformed, returns an error.
// Files ending in .toml are decoded as TOML, everything else as YAML.
func LoadSettings(path string) (*Settings, error) {
	cfg := DefaultSettings()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	// Decode into a map first so keys present in the file override defaults
	// even when they hold a zero value.
	raw := make(map[string]interface{})
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse settings file: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse settings file: %w", err)
		}
	}

	if err := applyRaw(cfg, raw); err != nil {
		return nil, fmt.Errorf("invalid settings file %s: %w", path, err)
	}
	return cfg, nil
}

func applyRaw(cfg *Settings, raw map[string]interface{}) error {
	for key, value := range raw {
		switch key {
		case "ignore_case":
			b, ok := value.(bool)
			if !ok {
				return fmt.Errorf("ignore_case must be a boolean, got %v", value)
			}
			cfg.IgnoreCase = b
		case "fixed_strings":
			b, ok := value.(bool)
			if !ok {
				return fmt.Errorf("fixed_strings must be a boolean, got %v", value)
			}
			cfg.FixedStrings = b
		case "log_level":
			s, ok := value.(string)
			if !ok {
				return fmt.Errorf("log_level must be a string, got %v", value)
			}
			cfg.LogLevel = s
		case "log_file":
			s, ok := value.(string)
			if !ok {
				return fmt.Errorf("log_file must be a string, got %v", value)
			}
			cfg.LogFile = s
		case "color":
			s, ok := value.(string)
			if !ok {
				return fmt.Errorf("color must be a string, got %v", value)
			}
			cfg.Color = s
		default:
			return fmt.Errorf("unknown key %q", key)
		}
	}
	return nil
}

// MergeWithFlags merges CLI flags into the settings.
// Non-nil flag values override settings values.
func (s *Settings) MergeWithFlags(ignoreCase *bool, fixedStrings *bool, logLevel *string, logFile *string, color *string) {
	if ignoreCase != nil {
		s.IgnoreCase = *ignoreCase
	}
	if fixedStrings != nil {
		s.FixedStrings = *fixedStrings
	}
	if logLevel != nil {
		s.LogLevel = *logLevel
	}
	if logFile != nil {
		s.LogFile = *logFile
	}
	if color != nil {
		s.Color = *color
	}
}

// Validate validates the settings values
func (s *Settings) Validate() error {
	if !logger.ValidLevel(s.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", s.LogLevel)
	}
	if _, err := display.ParseColorMode(s.Color); err != nil {
		return err
	}
	return nil
}

// MergeWithEnv applies the CASE_INSENSITIVE toggle. It sits between the
// settings file and CLI flags in precedence.
func (s *Settings) MergeWithEnv(lookupEnv LookupEnv) {
	if lookupEnv == nil {
		return
	}
	if _, ok := lookupEnv(CaseInsensitiveEnv); ok {
		s.IgnoreCase = true
	}
}

// Apply folds the fully merged settings into a resolved search configuration.
func (s *Settings) Apply(cfg search.Config) search.Config {
	cfg.IgnoreCase = s.IgnoreCase
	if s.FixedStrings {
		cfg.Mode = search.ModeSubstring
	} else {
		cfg.Mode = search.ModePattern
	}
	return cfg
}
