package curtail

import (
	"errors"
	"io"
)

// memFile is an in-memory File and RandomAccessFile.
type memFile struct {
	data []byte
	pos  int64

	// failWriteAfter makes Write accept only that many bytes when >= 0.
	failWriteAfter int
}

func newMemFile(data []byte) *memFile {
	return &memFile{data: append([]byte(nil), data...), failWriteAfter: -1}
}

func (m *memFile) Write(p []byte) (int, error) {
	if m.failWriteAfter >= 0 && len(p) > m.failWriteAfter {
		p = p[:m.failWriteAfter]
		n, _ := m.WriteAt(p, m.pos)
		m.pos += int64(n)
		return n, errors.New("disk full")
	}
	n, err := m.WriteAt(p, m.pos)
	m.pos += int64(n)
	return n, err
}

func (m *memFile) WriteAt(p []byte, off int64) (int, error) {
	if end := off + int64(len(p)); end > int64(len(m.data)) {
		m.data = append(m.data, make([]byte, end-int64(len(m.data)))...)
	}
	return copy(m.data[off:], p), nil
}

func (m *memFile) ReadAt(p []byte, off int64) (int, error) {
	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (m *memFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		m.pos = offset
	case io.SeekCurrent:
		m.pos += offset
	case io.SeekEnd:
		m.pos = int64(len(m.data)) + offset
	}
	return m.pos, nil
}

func (m *memFile) Truncate(size int64) error {
	if size < int64(len(m.data)) {
		m.data = m.data[:size]
	}
	return nil
}

// recordingCollapser wraps a Collapser and remembers every request.
type recordingCollapser struct {
	next  Collapser
	calls []int64
}

func (r *recordingCollapser) Collapse(length int64) error {
	r.calls = append(r.calls, length)
	return r.next.Collapse(length)
}
