package cliconfig

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/curtail/internal/input"
	"github.com/bft-labs/curtail/pkg/curtail"
	"github.com/bft-labs/curtail/pkg/size"
)

// DefaultSize is the size limit used when none is given.
const DefaultSize = "16K"

// ErrMissingLogFile is returned by Validate when no target file was given.
var ErrMissingLogFile = errors.New("missing LOG_FILE argument")

// Config holds CLI configuration for curtail.
type Config struct {
	LogFile string
	Size    string
	Input   string

	Follow    bool
	Truncate  bool
	ChunkSize int

	Strategy     string
	StatsFile    string
	LogLevel     string
	PollInterval time.Duration

	// Derived by Validate.
	SizeBytes     int64
	StrategyValue curtail.Strategy
	Level         zerolog.Level
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Size:         DefaultSize,
		ChunkSize:    input.DefaultChunkSize,
		Strategy:     string(curtail.StrategyAuto),
		LogLevel:     "info",
		PollInterval: input.DefaultPollInterval,
	}
}

// Validate checks the configuration and fills in the derived fields.
func (c *Config) Validate() error {
	if c.LogFile == "" {
		return ErrMissingLogFile
	}

	n, err := size.Parse(c.Size)
	if err != nil {
		return fmt.Errorf("parse size: %w", err)
	}
	c.SizeBytes = n

	if c.StrategyValue, err = curtail.ParseStrategy(c.Strategy); err != nil {
		return err
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Level, err = zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive")
	}
	if c.Follow && c.Input == "" {
		return fmt.Errorf("--follow requires --input")
	}
	if c.Input != "" && c.Input == c.LogFile {
		return fmt.Errorf("input and log file must differ")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive")
	}
	return nil
}

// configSetter applies values from a lower precedence source unless the
// corresponding flag was set explicitly.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setIntFromString is setInt for environment variables.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	s.setInt(flag, i, dst)
	return nil
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
