package curtail

import (
	"fmt"
	"io"
	"os"

	"github.com/bft-labs/curtail/pkg/log"
)

// File is the handle a Writer appends to. *os.File satisfies it.
type File interface {
	io.Writer
	io.Seeker
	Truncate(size int64) error
}

// Writer appends to a file while keeping it within a fixed capacity.
type Writer struct {
	file      File
	collapser Collapser
	capacity  int64
	blockSize int64
	logger    log.Logger
	closer    io.Closer
	stats     Stats
}

// NewWriter returns a Writer appending to f at its current position.
// requested is rounded per EffectiveCapacity. c must remove the head of
// the same file f refers to.
func NewWriter(f File, c Collapser, requested, blockSize int64, opts ...Option) (*Writer, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("%w: block size %d", ErrInvalidConfig, blockSize)
	}
	if requested < 0 {
		return nil, fmt.Errorf("%w: capacity %d", ErrInvalidConfig, requested)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Writer{
		file:      f,
		collapser: c,
		capacity:  EffectiveCapacity(requested, blockSize),
		blockSize: blockSize,
		logger:    o.logger,
	}, nil
}

// Open opens or creates the file at path and returns a Writer positioned
// at its end. The Writer owns the file; Close releases it.
func Open(path string, requested int64, opts ...Option) (*Writer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// O_RDWR rather than O_WRONLY: the copy fallback reads the file back.
	flag := os.O_RDWR | os.O_CREATE
	if o.truncate {
		flag |= os.O_TRUNC
	}
	f, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileOpen, err)
	}

	w, err := newFileWriter(f, path, requested, o, opts)
	if err != nil {
		f.Close()
		return nil, err
	}
	return w, nil
}

func newFileWriter(f *os.File, path string, requested int64, o options, opts []Option) (*Writer, error) {
	blk, err := BlockSize(path)
	if err != nil {
		return nil, err
	}
	c, err := newCollapser(f, o.strategy)
	if err != nil {
		return nil, err
	}
	end, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: seek to end: %w", ErrFileOpen, err)
	}

	w, err := NewWriter(f, c, requested, blk, opts...)
	if err != nil {
		return nil, err
	}
	w.closer = f
	w.stats.Size = end
	return w, nil
}

// Capacity returns the effective capacity in bytes.
func (w *Writer) Capacity() int64 { return w.capacity }

// BlockSize returns the block size collapses are aligned to.
func (w *Writer) BlockSize() int64 { return w.blockSize }

// Stats returns a snapshot of the writer counters.
func (w *Writer) Stats() Stats { return w.stats }

// Write appends p, first collapsing as much of the file head as needed to
// keep the file within capacity. Either all of p is written or an error is
// returned. If the collapse fails nothing is written.
//
// A chunk that does not fit next to any block-aligned remainder of the
// current file replaces the file: the file is truncated, p is written and
// the head of p itself is collapsed.
func (w *Writer) Write(p []byte) (int, error) {
	pos, err := w.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("%w: read position: %w", ErrWrite, err)
	}

	n := int64(len(p))
	target := Decide(pos, n, w.capacity, w.blockSize)
	switch {
	case target == 0:
	case target < pos:
		if pos, err = w.collapse(target); err != nil {
			return 0, err
		}
	default:
		return w.replace(p, pos)
	}
	return w.append(p, pos)
}

func (w *Writer) replace(p []byte, pos int64) (int, error) {
	if pos > 0 {
		if err := w.file.Truncate(0); err != nil {
			return 0, fmt.Errorf("%w: truncate: %w", ErrCollapseFailed, err)
		}
		if _, err := w.file.Seek(0, io.SeekStart); err != nil {
			return 0, fmt.Errorf("%w: seek to start: %w", ErrCollapseFailed, err)
		}
		w.stats.Resets++
		w.stats.BytesCollapsed += pos
		w.stats.Size = 0
		w.logger.Warn("chunk exceeds free capacity, dropping whole log",
			log.Int64("dropped", pos), log.Int64("chunk", int64(len(p))), log.Int64("capacity", w.capacity))
	}

	written, err := w.append(p, 0)
	if err != nil {
		return written, err
	}
	if t := Decide(0, int64(len(p)), w.capacity, w.blockSize); t > 0 {
		if _, err := w.collapse(t); err != nil {
			return written, err
		}
	}
	return written, nil
}

// collapse removes length bytes from the head and returns the new end of file.
func (w *Writer) collapse(length int64) (int64, error) {
	if err := w.collapser.Collapse(length); err != nil {
		return 0, fmt.Errorf("%w: %d bytes: %w", ErrCollapseFailed, length, err)
	}
	end, err := w.file.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("%w: seek to end: %w", ErrCollapseFailed, err)
	}
	w.stats.Collapses++
	w.stats.BytesCollapsed += length
	w.stats.Size = end
	w.logger.Debug("collapsed log head", log.Int64("bytes", length), log.Int64("size", end))
	return end, nil
}

func (w *Writer) append(p []byte, pos int64) (int, error) {
	n, err := w.file.Write(p)
	w.stats.BytesWritten += int64(n)
	w.stats.Size = pos + int64(n)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return n, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	w.stats.Writes++
	return n, nil
}

// Close closes the file if the Writer was created by Open.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}
	err := w.closer.Close()
	w.closer = nil
	return err
}
