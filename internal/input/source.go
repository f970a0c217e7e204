package input

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// DefaultChunkSize is the read buffer size used when none is configured.
const DefaultChunkSize = 1024

// Source yields chunks of an input stream.
type Source interface {
	// Next returns the next chunk. The slice is only valid until the
	// following call. io.EOF marks the end of the stream.
	Next(ctx context.Context) ([]byte, error)
}

// ReaderSource reads fixed-size chunks from an io.Reader.
type ReaderSource struct {
	r   io.Reader
	buf []byte
}

// NewReaderSource returns a Source reading up to chunkSize bytes at a time
// from r. chunkSize <= 0 selects DefaultChunkSize.
func NewReaderSource(r io.Reader, chunkSize int) *ReaderSource {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &ReaderSource{r: r, buf: make([]byte, chunkSize)}
}

// Next blocks in Read; ctx is only checked between reads. Cancelling ctx
// ends the stream with io.EOF.
func (s *ReaderSource) Next(ctx context.Context) ([]byte, error) {
	for {
		if ctx.Err() != nil {
			return nil, io.EOF
		}
		n, err := s.r.Read(s.buf)
		if n > 0 {
			return s.buf[:n], nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Pump copies src into w until the stream ends or ctx is cancelled.
// It returns the number of bytes written. End of stream is not an error.
func Pump(ctx context.Context, src Source, w io.Writer) (int64, error) {
	var total int64
	for {
		chunk, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, err
		}
		n, err := w.Write(chunk)
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("write chunk: %w", err)
		}
	}
}
