package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brettbedarf/shellsim/internal/util"
	"gopkg.in/yaml.v3"
)

// CLI verbosity values accepted in overrides; they are clamped to this range
const (
	ErrorVerbose = iota + 1
	WarnVerbose
	InfoVerbose
	DebugVerbose
	TraceVerbose
)

// Default configuration constants. See [Config] for field descriptions.
const (
	DefaultLogLvl = util.WarnLevel

	// DefaultPromptFormat mirrors a bash prompt showing the cwd
	DefaultPromptFormat = "[%s]$ "

	DefaultColor = true

	// DefaultHomeDir is the initial cwd of a session seeded with the default tree
	DefaultHomeDir = "/home/student"

	// DefaultSeedFile empty means the built-in seed tree is used
	DefaultSeedFile = ""
)

// Config contains runtime configuration values for a shell session.
type Config struct {
	PromptOptions
	LogLvl   util.LogLevel // Internal log level (Default warn)
	HomeDir  string        // Initial working directory; falls back to "/" if missing from the tree
	SeedFile string        // YAML or JSON seed tree file (Default built-in tree)
}

// ConfigOverride uses pointer fields to distinguish between unset and zero values
// when loading partial configuration. See [Config] for field descriptions.
type ConfigOverride struct {
	// LogLvl is a CLI style verbosity between 1 (error) and 5 (trace)
	LogLvl   *int    `yaml:"verbose,omitempty" json:"verbose,omitempty"`
	Prompt   *string `yaml:"prompt,omitempty" json:"prompt,omitempty"`
	Color    *bool   `yaml:"color,omitempty" json:"color,omitempty"`
	HomeDir  *string `yaml:"home_dir,omitempty" json:"home_dir,omitempty"`
	SeedFile *string `yaml:"seed_file,omitempty" json:"seed_file,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		PromptOptions: PromptOptions{
			Format: DefaultPromptFormat,
			Color:  DefaultColor,
		},
		LogLvl:   DefaultLogLvl,
		HomeDir:  DefaultHomeDir,
		SeedFile: DefaultSeedFile,
	}
}

// NewConfig creates a default Config with override applied; override may be nil
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// VerbosityToLogLevel converts a 1..5 CLI verbosity into a [util.LogLevel],
// clamping out of range values.
func VerbosityToLogLevel(verbose int) util.LogLevel {
	verbose = max(ErrorVerbose, min(verbose, TraceVerbose))
	logLvls := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
	return logLvls[verbose-1]
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.LogLvl != nil {
		c.LogLvl = VerbosityToLogLevel(*override.LogLvl)
	}
	if override.Prompt != nil {
		c.Format = *override.Prompt
	}
	if override.Color != nil {
		c.Color = *override.Color
	}
	if override.HomeDir != nil {
		c.HomeDir = *override.HomeDir
	}
	if override.SeedFile != nil {
		c.SeedFile = *override.SeedFile
	}
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	// seed files are relative to the config file that names them
	if override.SeedFile != nil && *override.SeedFile != "" && !filepath.IsAbs(*override.SeedFile) {
		override.SeedFile = util.Pointer(filepath.Join(filepath.Dir(path), *override.SeedFile))
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
// This is a convenience function that combines NewDefaultConfig, LoadConfigOverrideFile, and Merge.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Merge(override)
	return cfg, nil
}
