package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultPollInterval bounds how long FollowSource sleeps without an
// fsnotify event before checking the file again.
const DefaultPollInterval = time.Second

// FollowSource tails a file. At end of file it waits for the file to grow
// instead of reporting io.EOF; the stream only ends when ctx is cancelled.
type FollowSource struct {
	path    string
	f       *os.File
	watcher *fsnotify.Watcher
	buf     []byte
	poll    time.Duration
}

// NewFollowSource opens path for reading from its beginning.
// Close must be called to release the watcher.
func NewFollowSource(path string, chunkSize int, poll time.Duration) (*FollowSource, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if poll <= 0 {
		poll = DefaultPollInterval
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		f.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	return &FollowSource{
		path:    path,
		f:       f,
		watcher: watcher,
		buf:     make([]byte, chunkSize),
		poll:    poll,
	}, nil
}

// Next returns the next chunk, waiting for new data at end of file.
// Cancelling ctx, or removing or renaming the file, ends the stream with
// io.EOF.
func (s *FollowSource) Next(ctx context.Context) ([]byte, error) {
	for {
		n, err := s.f.Read(s.buf)
		if n > 0 {
			return s.buf[:n], nil
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if err := s.wait(ctx); err != nil {
			return nil, err
		}
	}
}

func (s *FollowSource) wait(ctx context.Context) error {
	timer := time.NewTimer(s.poll)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return io.EOF
		case <-timer.C:
			return nil
		case event, ok := <-s.watcher.Events:
			if !ok {
				return io.EOF
			}
			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				return io.EOF
			}
			if event.Op&fsnotify.Write != 0 {
				return nil
			}
			// inotify holds back the remove event while we keep the file
			// open and reports the unlink as a chmod.
			if event.Op&fsnotify.Chmod != 0 && s.gone() {
				return io.EOF
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return io.EOF
			}
			return fmt.Errorf("watch input: %w", err)
		}
	}
}

func (s *FollowSource) gone() bool {
	_, err := os.Stat(s.path)
	return errors.Is(err, os.ErrNotExist)
}

// Close stops watching and closes the file.
func (s *FollowSource) Close() error {
	werr := s.watcher.Close()
	ferr := s.f.Close()
	return errors.Join(werr, ferr)
}
