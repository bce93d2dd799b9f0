package catalog

import "context"

// Loader defines the interface for the catalog loader.
type Loader interface {
	// Load returns the ordered filenames, or an empty slice on any failure.
	Load(ctx context.Context) []string
}
