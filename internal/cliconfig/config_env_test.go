package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"CURTAIL_SIZE":          "4M",
				"CURTAIL_INPUT":         "/tmp/in",
				"CURTAIL_FOLLOW":        "true",
				"CURTAIL_TRUNCATE":      "1",
				"CURTAIL_CHUNK_SIZE":    "2048",
				"CURTAIL_STRATEGY":      "copy",
				"CURTAIL_STATS_FILE":    "/tmp/stats.json",
				"CURTAIL_LOG_LEVEL":     "error",
				"CURTAIL_POLL_INTERVAL": "10s",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				Size:         "4M",
				Input:        "/tmp/in",
				Follow:       true,
				Truncate:     true,
				ChunkSize:    2048,
				Strategy:     "copy",
				StatsFile:    "/tmp/stats.json",
				LogLevel:     "error",
				PollInterval: 10 * time.Second,
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"CURTAIL_SIZE":   "4M",
				"CURTAIL_FOLLOW": "true",
			},
			changed:  map[string]bool{"size": true},
			initial:  Config{Size: "1K"},
			expected: Config{Size: "1K", Follow: true},
		},
		{
			name:     "false bool overrides",
			envVars:  map[string]string{"CURTAIL_TRUNCATE": "false"},
			changed:  map[string]bool{},
			initial:  Config{Truncate: true},
			expected: Config{Truncate: false},
		},
		{
			name:     "non-positive chunk size ignored",
			envVars:  map[string]string{"CURTAIL_CHUNK_SIZE": "0"},
			changed:  map[string]bool{},
			initial:  Config{ChunkSize: 1024},
			expected: Config{ChunkSize: 1024},
		},
		{
			name:    "returns error for invalid duration",
			envVars: map[string]string{"CURTAIL_POLL_INTERVAL": "not-a-duration"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:    "returns error for invalid int",
			envVars: map[string]string{"CURTAIL_CHUNK_SIZE": "big"},
			changed: map[string]bool{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyEnvConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if cfg != tt.expected {
				t.Errorf("ApplyEnvConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

// Integration test: precedence order (CLI > Env > File)
func TestConfigPrecedence(t *testing.T) {
	trueVal := true

	fileConf := FileConfig{
		Size:     "1M",
		Strategy: "copy",
		Follow:   &trueVal,
	}

	t.Setenv("CURTAIL_SIZE", "2M")
	t.Setenv("CURTAIL_STRATEGY", "collapse")
	t.Setenv("CURTAIL_INPUT", "/env/in")

	changed := map[string]bool{"size": true}
	cfg := Config{Size: "64K"}

	if err := ApplyFileConfig(&cfg, fileConf, changed); err != nil {
		t.Fatalf("ApplyFileConfig failed: %v", err)
	}
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig failed: %v", err)
	}

	if cfg.Size != "64K" {
		t.Errorf("Size = %v, want 64K (CLI should win)", cfg.Size)
	}
	if cfg.Strategy != "collapse" {
		t.Errorf("Strategy = %v, want collapse (env should override file)", cfg.Strategy)
	}
	if cfg.Input != "/env/in" {
		t.Errorf("Input = %v, want /env/in (env should set)", cfg.Input)
	}
	if !cfg.Follow {
		t.Errorf("Follow = false, want true (file should set)")
	}
}
