package download

import (
	"context"

	"github.com/ytget/hog-gallery/internal/assets"
	"github.com/ytget/hog-gallery/internal/model"
)

// Activator defines the interface for the activation service.
type Activator interface {
	SetUpdateCallback(func(*model.Activation))
	Activate(filename string) *model.Activation
	Process(ctx context.Context, filename string) *model.Activation
	GetActivation(id string) (*model.Activation, bool)
	GetAllActivations() []*model.Activation

	// SetDownloadDirectory sets where the download fallback saves files
	SetDownloadDirectory(dir string)
}

// Fetcher returns the bytes of an asset by filename.
type Fetcher interface {
	Fetch(ctx context.Context, filename string) (*assets.Asset, error)
}

// Notifier shows the single confirmation of a finished activation.
type Notifier interface {
	Notify(message string)
}
