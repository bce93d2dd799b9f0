package ui

import (
	"context"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ytget/hog-gallery/internal/assets"
	"github.com/ytget/hog-gallery/internal/download"
	"github.com/ytget/hog-gallery/internal/logging"
)

// ThumbnailCache decodes and downscales card images in the background and
// keeps the results for the lifetime of the window. The catalog is loaded
// once, so entries are never evicted.
type ThumbnailCache struct {
	fetcher   download.Fetcher
	maxPixels int
	workers   int
	logger    *zap.Logger

	mu    sync.RWMutex
	cache map[string]fyne.Resource
}

// NewThumbnailCache creates a cache that loads at most workers images at a
// time and scales them to fit maxPixels.
func NewThumbnailCache(fetcher download.Fetcher, maxPixels, workers int, logger *zap.Logger) *ThumbnailCache {
	if workers < 1 {
		workers = 1
	}
	return &ThumbnailCache{
		fetcher:   fetcher,
		maxPixels: maxPixels,
		workers:   workers,
		logger:    logging.OrNop(logger).Named("thumbnails"),
		cache:     make(map[string]fyne.Resource),
	}
}

// Get returns a cached thumbnail
func (tc *ThumbnailCache) Get(filename string) (fyne.Resource, bool) {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	res, ok := tc.cache[filename]
	return res, ok
}

// Len returns the number of cached thumbnails
func (tc *ThumbnailCache) Len() int {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return len(tc.cache)
}

// LoadAll loads every filename not yet cached and calls onReady from a
// worker goroutine as each one finishes. A broken image is logged and
// skipped; only cancellation of ctx makes LoadAll return an error.
func (tc *ThumbnailCache) LoadAll(ctx context.Context, filenames []string, onReady func(filename string, res fyne.Resource)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(tc.workers)

	for _, filename := range filenames {
		if _, ok := tc.Get(filename); ok {
			continue
		}
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			res, err := tc.load(gctx, filename)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				tc.logger.Debug("Thumbnail skipped", zap.String("filename", filename), zap.Error(err))
				return nil
			}

			tc.mu.Lock()
			tc.cache[filename] = res
			tc.mu.Unlock()

			if onReady != nil {
				onReady(filename, res)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func (tc *ThumbnailCache) load(ctx context.Context, filename string) (fyne.Resource, error) {
	asset, err := tc.fetcher.Fetch(ctx, filename)
	if err != nil {
		return nil, err
	}

	data, err := assets.Thumbnail(asset.Data, tc.maxPixels)
	if err != nil {
		return nil, fmt.Errorf("failed to build thumbnail for %s: %w", filename, err)
	}

	return fyne.NewStaticResource("thumb-"+filename+".png", data), nil
}
