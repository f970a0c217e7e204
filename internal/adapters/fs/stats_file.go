// Package fs persists writer statistics on the local filesystem.
package fs

import (
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"

	"github.com/bft-labs/curtail/pkg/curtail"
)

// Report is the document written to the stats file.
type Report struct {
	LogFile   string        `json:"log_file"`
	Capacity  int64         `json:"capacity"`
	BlockSize int64         `json:"block_size"`
	Stats     curtail.Stats `json:"stats"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// StatsFile stores a Report as JSON at a fixed path.
type StatsFile struct {
	path string
}

// NewStatsFile returns a StatsFile writing to path.
func NewStatsFile(path string) *StatsFile {
	return &StatsFile{path: path}
}

// Save writes r atomically: temp file first, then rename.
func (s *StatsFile) Save(r Report) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Path returns the stats file location.
func (s *StatsFile) Path() string {
	return s.path
}
