//go:build !linux

package curtail

import (
	"fmt"
	"os"
	"runtime"
)

func newFallocateCollapser(*os.File) (Collapser, error) {
	return nil, fmt.Errorf("%w: range collapse on %s", ErrUnsupported, runtime.GOOS)
}
