// Package config loads the run configuration of the brewin command from
// brewin.yml.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no -config flag is given. Its absence is not an
// error.
const DefaultPath = "brewin.yml"

// UI modes.
const (
	UIPlain = "plain"
	UITUI   = "tui"
	UIAuto  = "auto"
)

// Config holds the settings of one run.
type Config struct {
	// Entry is the function execution starts at. Defaults to "main".
	Entry string `yaml:"entry"`

	// Trace enables per-instruction trace logging and overrides LogLevel.
	Trace bool `yaml:"trace"`

	// LogLevel is one of trace, debug, info, warn, error, disabled.
	// Defaults to "warn".
	LogLevel string `yaml:"log_level"`

	// UI selects the frontend: plain, tui or auto. Defaults to "plain".
	UI string `yaml:"ui"`

	// Inputs are answers queued for input calls before stdin is read.
	Inputs []string `yaml:"inputs"`
}

// ValidationError aggregates configuration validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

var levels = map[string]zerolog.Level{
	"trace":    zerolog.TraceLevel,
	"debug":    zerolog.DebugLevel,
	"info":     zerolog.InfoLevel,
	"warn":     zerolog.WarnLevel,
	"error":    zerolog.ErrorLevel,
	"disabled": zerolog.Disabled,
}

// Default returns a configuration with every default applied.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads and validates a configuration file. A missing file yields an
// error matching os.ErrNotExist.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()
	cfg, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses YAML configuration. Unknown keys are rejected and an empty
// document yields the defaults.
func Decode(r io.Reader) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var cfg Config
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var issues []string
	if strings.ContainsAny(c.Entry, " \t\r\n") {
		issues = append(issues, fmt.Sprintf("entry %q must be a single function name", c.Entry))
	}
	if _, ok := levels[c.LogLevel]; !ok {
		issues = append(issues, fmt.Sprintf("log_level %q must be one of trace, debug, info, warn, error, disabled", c.LogLevel))
	}
	switch c.UI {
	case UIPlain, UITUI, UIAuto:
	default:
		issues = append(issues, fmt.Sprintf("ui %q must be plain, tui or auto", c.UI))
	}
	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Entry == "" {
		c.Entry = "main"
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if c.UI == "" {
		c.UI = UIPlain
	}
}

// Level returns the effective log level. Trace wins over LogLevel.
func (c *Config) Level() zerolog.Level {
	if c.Trace {
		return zerolog.TraceLevel
	}
	if lvl, ok := levels[c.LogLevel]; ok {
		return lvl
	}
	return zerolog.WarnLevel
}
