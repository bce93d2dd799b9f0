// Package notify shows short-lived messages on a single surface.
package notify

import (
	"sync"
	"time"
)

// DefaultDuration is how long a message stays visible after the last call
const DefaultDuration = 2 * time.Second

// Surface is the widget a notification is drawn on
type Surface interface {
	Show(message string)
	Hide()
}

// Notifier owns one hide timer. Every Notify call replaces the text and
// re-arms the timer, so the surface hides exactly one duration after the
// most recent call.
type Notifier struct {
	surface  Surface
	duration time.Duration

	mu         sync.Mutex
	timer      *time.Timer
	generation uint64
}

// NewNotifier creates a notifier for surface. A non-positive duration falls
// back to DefaultDuration.
func NewNotifier(surface Surface, duration time.Duration) *Notifier {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Notifier{surface: surface, duration: duration}
}

// Notify shows message and schedules the surface to hide
func (n *Notifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.generation++
	gen := n.generation

	if n.timer != nil {
		n.timer.Stop()
	}

	n.surface.Show(message)
	n.timer = time.AfterFunc(n.duration, func() { n.expire(gen) })
}

// Stop cancels a pending hide and hides the surface now
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.generation++
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.surface.Hide()
}

// expire hides the surface unless a newer message arrived after gen was armed.
// A stopped timer may still have its func running, hence the generation check.
func (n *Notifier) expire(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if gen != n.generation {
		return
	}
	n.timer = nil
	n.surface.Hide()
}
