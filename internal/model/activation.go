package model

import (
	"time"
)

// Activation represents one click on a card: fetch the image, then copy it
// or fall back to saving it.
type Activation struct {
	ID          string
	Filename    string
	Status      ActivationStatus
	ContentType string    // content type reported for the fetched bytes
	Size        int64     // fetched size in bytes, 0 if the fetch failed
	OutputPath  string    // where the download fallback saved the file
	LastError   string    // last error message if any
	StartedAt   time.Time // when the activation started
	FinishedAt  time.Time // when the activation reached a terminal state
}

// NewActivation creates a pending activation for filename
func NewActivation(id, filename string) *Activation {
	return &Activation{
		ID:        id,
		Filename:  filename,
		Status:    ActivationPending,
		StartedAt: time.Now(),
	}
}

// GetDisplayTitle returns the display name of the activated image
func (a *Activation) GetDisplayTitle() string {
	return DisplayName(a.Filename)
}

// Duration returns how long the activation took, or 0 while unfinished
func (a *Activation) Duration() time.Duration {
	if a.FinishedAt.IsZero() {
		return 0
	}
	return a.FinishedAt.Sub(a.StartedAt)
}
