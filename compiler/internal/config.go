package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	ModeConsole = "console"
	ModeFile    = "file"
)

// Config holds the settings of one compiler run.
type Config struct {
	// Mode selects where diagnostics go: console prints them, file appends
	// them to <name>.err.
	Mode string `toml:"mode" yaml:"mode"`
	// Recovery is the panic mode strategy of the parser: line or statement.
	Recovery   string `toml:"recovery" yaml:"recovery"`
	DumpTokens bool   `toml:"dump_tokens" yaml:"dump_tokens"`
	DumpTables bool   `toml:"dump_tables" yaml:"dump_tables"`
	// OutputDir receives the .dyd, .err, .var and .pro files. Empty means
	// next to the source file.
	OutputDir string `toml:"output_dir" yaml:"output_dir"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	Color     bool   `toml:"color" yaml:"color"`
}

type ConfigFormat int

const (
	FormatTOML ConfigFormat = iota
	FormatYAML
)

func (f ConfigFormat) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	default:
		return "toml"
	}
}

func DefaultConfig() *Config {
	return &Config{
		Mode:       ModeConsole,
		Recovery:   RecoverySkipLine,
		DumpTokens: true,
		LogLevel:   "info",
	}
}

// LoadConfig reads a TOML or YAML file, picked by extension, on top of the
// defaults.
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := ParseConfig(content, detectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

func ParseConfig(content []byte, format ConfigFormat) (*Config, error) {
	cfg := DefaultConfig()
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		if _, err := toml.Decode(string(content), cfg); err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func detectFormat(path string) ConfigFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func (c *Config) Validate() error {
	switch c.Mode {
	case ModeConsole, ModeFile:
	default:
		return fmt.Errorf("invalid mode %q: expected %q or %q", c.Mode, ModeConsole, ModeFile)
	}
	if _, err := RecoveryByName(c.Recovery); err != nil {
		return err
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
