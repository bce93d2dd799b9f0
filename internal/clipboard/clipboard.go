// Package clipboard writes images to the system clipboard. Support depends on
// the platform and session (no X11 or Wayland display means no clipboard), so
// callers probe Available before writing.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	sysclip "golang.design/x/clipboard"

	"github.com/ytget/hog-gallery/internal/assets"
)

// ErrUnavailable is returned when the environment has no usable clipboard
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer defines the clipboard capability used by card activation.
type Writer interface {
	// Available reports whether the clipboard can be written at all
	Available() bool
	// WriteImage puts data, tagged with contentType, on the clipboard
	WriteImage(ctx context.Context, contentType string, data []byte) error
}

// System is the clipboard of the desktop session
type System struct {
	once    sync.Once
	initErr error

	mu      sync.Mutex
	changed <-chan struct{}
}

// NewSystem returns a Writer backed by the session clipboard
func NewSystem() *System {
	return &System{}
}

// Available initializes the clipboard on first use and reports the result
func (s *System) Available() bool {
	s.once.Do(func() {
		if err := sysclip.Init(); err != nil {
			s.initErr = fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	})
	return s.initErr == nil
}

// WriteImage converts data to PNG when needed and writes it.
func (s *System) WriteImage(ctx context.Context, contentType string, data []byte) error {
	if !s.Available() {
		return s.initErr
	}

	encoded, err := assets.ToPNG(&assets.Asset{ContentType: contentType, Data: data})
	if err != nil {
		return fmt.Errorf("failed to prepare clipboard image: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	changed := sysclip.Write(sysclip.FmtImage, encoded)

	s.mu.Lock()
	s.changed = changed
	s.mu.Unlock()
	return nil
}

// Changed returns a channel that fires once another application replaces
// the image from the last WriteImage. It is nil before the first write.
// On X11 the image is served by this process, so a short-lived caller can
// wait on it to keep the image pasteable.
func (s *System) Changed() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.changed
}

// Unavailable is a Writer for environments without a clipboard
type Unavailable struct{}

// Available always reports false
func (Unavailable) Available() bool { return false }

// WriteImage always fails with ErrUnavailable
func (Unavailable) WriteImage(context.Context, string, []byte) error { return ErrUnavailable }
