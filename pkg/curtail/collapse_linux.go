//go:build linux

package curtail

import (
	"os"

	"golang.org/x/sys/unix"
)

// FallocateCollapser removes the head of a file with
// fallocate(FALLOC_FL_COLLAPSE_RANGE). The kernel rejects misaligned
// ranges, ranges covering the whole file and filesystems without extent
// support; those errors are returned unchanged.
type FallocateCollapser struct {
	f *os.File
}

// NewFallocateCollapser returns a range collapse based Collapser for f.
func NewFallocateCollapser(f *os.File) *FallocateCollapser {
	return &FallocateCollapser{f: f}
}

func newFallocateCollapser(f *os.File) (Collapser, error) {
	return NewFallocateCollapser(f), nil
}

// Collapse removes [0, length) from the file.
func (c *FallocateCollapser) Collapse(length int64) error {
	return unix.Fallocate(int(c.f.Fd()), unix.FALLOC_FL_COLLAPSE_RANGE, 0, length)
}
