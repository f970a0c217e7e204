package input

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderSource_Chunks(t *testing.T) {
	src := NewReaderSource(strings.NewReader(strings.Repeat("x", 2500)), 1024)
	ctx := context.Background()

	var sizes []int
	for {
		chunk, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		sizes = append(sizes, len(chunk))
	}
	assert.Equal(t, []int{1024, 1024, 452}, sizes)
}

func TestReaderSource_DefaultChunkSize(t *testing.T) {
	src := NewReaderSource(strings.NewReader(""), 0)
	assert.Len(t, src.buf, DefaultChunkSize)
}

func TestReaderSource_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewReaderSource(strings.NewReader("data"), 0).Next(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestPump(t *testing.T) {
	input := strings.Repeat("0123456789", 500)
	var out bytes.Buffer

	n, err := Pump(context.Background(), NewReaderSource(iotest.OneByteReader(strings.NewReader(input)), 64), &out)
	require.NoError(t, err)
	assert.Equal(t, int64(len(input)), n)
	assert.Equal(t, input, out.String())
}

func TestPump_ReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Pump(context.Background(), NewReaderSource(iotest.ErrReader(boom), 0), io.Discard)
	assert.ErrorIs(t, err, boom)
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestPump_WriteError(t *testing.T) {
	boom := errors.New("collapse failed")
	n, err := Pump(context.Background(), NewReaderSource(strings.NewReader("abc"), 0), failingWriter{boom})
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, n)
}
