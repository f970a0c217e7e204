package curtail

import (
	"errors"
	"fmt"
	"io"
)

// Collapser removes a prefix of a file: bytes [0, length) disappear, the
// remaining data moves to offset zero and the file shrinks by length.
//
// length must be positive and strictly smaller than the file. Range
// collapse additionally requires length to be a multiple of the filesystem
// block size. A Collapser makes no promise about the file cursor afterwards.
type Collapser interface {
	Collapse(length int64) error
}

// CollapseFunc adapts a function to the Collapser interface.
type CollapseFunc func(length int64) error

// Collapse calls f(length).
func (f CollapseFunc) Collapse(length int64) error { return f(length) }

// RandomAccessFile is what the copy fallback needs from a file.
// *os.File satisfies it as long as it was not opened with O_APPEND.
type RandomAccessFile interface {
	io.ReaderAt
	io.WriterAt
	io.Seeker
	Truncate(size int64) error
}

var errBadRange = errors.New("range must be positive and smaller than the file")

const copyBufferSize = 64 << 10

// CopyCollapser implements Collapser by shifting the file contents down
// and truncating. It costs O(file size) but works on any filesystem.
type CopyCollapser struct {
	f   RandomAccessFile
	buf []byte
}

// NewCopyCollapser returns a copy based Collapser for f.
func NewCopyCollapser(f RandomAccessFile) *CopyCollapser {
	return &CopyCollapser{f: f}
}

// Collapse shifts [length, size) to offset zero and truncates the tail.
func (c *CopyCollapser) Collapse(length int64) error {
	size, err := c.f.Seek(0, io.SeekEnd)
	if err != nil {
		return err
	}
	if length <= 0 || length >= size {
		return fmt.Errorf("collapse %d of %d bytes: %w", length, size, errBadRange)
	}

	if c.buf == nil {
		c.buf = make([]byte, copyBufferSize)
	}
	for off := length; off < size; {
		n, err := c.f.ReadAt(c.buf, off)
		if n > 0 {
			if _, werr := c.f.WriteAt(c.buf[:n], off-length); werr != nil {
				return werr
			}
			off += int64(n)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}
	return c.f.Truncate(size - length)
}
