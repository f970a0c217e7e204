//go:build !unix

package curtail

import (
	"fmt"
	"os"
)

// DefaultBlockSize is assumed where stat(2) does not report one.
const DefaultBlockSize = 4096

// BlockSize returns DefaultBlockSize once path is known to exist.
func BlockSize(path string) (int64, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrBlockSizeQuery, path, err)
	}
	return DefaultBlockSize, nil
}
