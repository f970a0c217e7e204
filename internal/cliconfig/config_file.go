package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig is the TOML form of Config. Durations are strings.
type FileConfig struct {
	Size         string `toml:"size"`
	Input        string `toml:"input"`
	Follow       *bool  `toml:"follow"`
	Truncate     *bool  `toml:"truncate"`
	ChunkSize    int    `toml:"chunk_size"`
	Strategy     string `toml:"strategy"`
	StatsFile    string `toml:"stats_file"`
	LogLevel     string `toml:"log_level"`
	PollInterval string `toml:"poll_interval"`
}

// LoadFileConfig reads and parses a TOML config file.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.curtail/config.toml, or "" without a home directory.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".curtail", "config.toml")
	}
	return ""
}

// ApplyFileConfig copies file values into cfg, skipping flags in changed.
// The log file itself is always a positional argument and has no file key.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("size", fc.Size, &cfg.Size)
	s.setString("input", fc.Input, &cfg.Input)
	s.setString("strategy", fc.Strategy, &cfg.Strategy)
	s.setString("stats-file", fc.StatsFile, &cfg.StatsFile)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setInt("chunk-size", fc.ChunkSize, &cfg.ChunkSize)

	s.setBool("follow", fc.Follow, &cfg.Follow)
	s.setBool("truncate", fc.Truncate, &cfg.Truncate)

	return s.setDuration("poll-interval", fc.PollInterval, &cfg.PollInterval)
}

// FileExists reports whether p exists.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
