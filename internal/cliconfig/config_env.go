package cliconfig

import "os"

// ApplyEnvConfig applies CURTAIL_* environment variables, skipping flags
// in changed. It fails on malformed numbers or durations.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("size", os.Getenv("CURTAIL_SIZE"), &cfg.Size)
	s.setString("input", os.Getenv("CURTAIL_INPUT"), &cfg.Input)
	s.setString("strategy", os.Getenv("CURTAIL_STRATEGY"), &cfg.Strategy)
	s.setString("stats-file", os.Getenv("CURTAIL_STATS_FILE"), &cfg.StatsFile)
	s.setString("log-level", os.Getenv("CURTAIL_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setIntFromString("chunk-size", os.Getenv("CURTAIL_CHUNK_SIZE"), &cfg.ChunkSize); err != nil {
		return err
	}
	if err := s.setDuration("poll-interval", os.Getenv("CURTAIL_POLL_INTERVAL"), &cfg.PollInterval); err != nil {
		return err
	}

	s.setBoolFromString("follow", os.Getenv("CURTAIL_FOLLOW"), &cfg.Follow)
	s.setBoolFromString("truncate", os.Getenv("CURTAIL_TRUNCATE"), &cfg.Truncate)

	return nil
}
