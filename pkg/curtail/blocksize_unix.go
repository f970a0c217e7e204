//go:build unix

package curtail

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// BlockSize returns the preferred I/O block size of the filesystem that
// holds path, as reported by stat(2).
func BlockSize(path string) (int64, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrBlockSizeQuery, path, err)
	}
	blk := int64(st.Blksize)
	if blk <= 0 {
		return 0, fmt.Errorf("%w: %s: invalid block size %d", ErrBlockSizeQuery, path, blk)
	}
	return blk, nil
}
