package download

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/hog-gallery/internal/assets"
	"github.com/ytget/hog-gallery/internal/clipboard"
	"github.com/ytget/hog-gallery/internal/logging"
	"github.com/ytget/hog-gallery/internal/model"
	"github.com/ytget/hog-gallery/internal/platform"
)

// MaxHistory is how many finished activations are kept for inspection
const MaxHistory = 100

// ActivationIDPrefix prefixes every activation ID
const ActivationIDPrefix = "activation-"

// Service runs card activations.
//
// Activations are fire-and-forget and never cancelled: Activate runs each one
// on a background context, so neither a new click nor a search keystroke
// stops a fetch in flight. Activations share no state besides the notifier,
// and their confirmations may interleave in any order.
//
// A save needs the image bytes, so when the fallback cannot fetch or write
// them the activation ends as Failed with "Download failed" instead of
// "Downloaded!". Each activation still shows exactly one confirmation.
type Service struct {
	fetcher   Fetcher
	clipboard clipboard.Writer
	notifier  Notifier
	logger    *zap.Logger

	mu          sync.RWMutex
	activations map[string]*model.Activation
	order       []string
	downloadDir string
	onUpdate    func(*model.Activation) // callback for UI updates

	// serializes picking a free name and renaming into it
	saveMu sync.Mutex
}

// NewService creates a new activation service
func NewService(downloadDir string, fetcher Fetcher, clip clipboard.Writer, notifier Notifier, logger *zap.Logger) *Service {
	if clip == nil {
		clip = clipboard.Unavailable{}
	}
	return &Service{
		fetcher:     fetcher,
		clipboard:   clip,
		notifier:    notifier,
		logger:      logging.OrNop(logger).Named("download"),
		activations: make(map[string]*model.Activation),
		downloadDir: downloadDir,
	}
}

// SetUpdateCallback sets the callback function for activation updates.
// The callback receives a snapshot and may be called from any goroutine.
func (s *Service) SetUpdateCallback(callback func(*model.Activation)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetDownloadDirectory sets the download directory
func (s *Service) SetDownloadDirectory(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.downloadDir = dir
}

// DownloadDirectory returns the directory the download fallback writes to
func (s *Service) DownloadDirectory() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.downloadDir
}

// Activate starts an activation for filename in the background and returns
// a snapshot of it in its pending state.
func (s *Service) Activate(filename string) *model.Activation {
	a := s.register(filename)
	snapshot := s.snapshot(a)

	go s.run(context.Background(), a)

	return snapshot
}

// Process runs an activation to completion on the caller's goroutine
func (s *Service) Process(ctx context.Context, filename string) *model.Activation {
	a := s.register(filename)
	s.run(ctx, a)
	return s.snapshot(a)
}

// GetActivation returns a snapshot of an activation by ID
func (s *Service) GetActivation(id string) (*model.Activation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, exists := s.activations[id]
	if !exists {
		return nil, false
	}
	copied := *a
	return &copied, true
}

// GetAllActivations returns snapshots of the tracked activations, oldest first
func (s *Service) GetAllActivations() []*model.Activation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activations := make([]*model.Activation, 0, len(s.order))
	for _, id := range s.order {
		copied := *s.activations[id]
		activations = append(activations, &copied)
	}
	return activations
}

// register creates and tracks a pending activation
func (s *Service) register(filename string) *model.Activation {
	a := model.NewActivation(generateActivationID(), filename)

	s.mu.Lock()
	s.activations[a.ID] = a
	s.order = append(s.order, a.ID)
	s.mu.Unlock()

	s.logger.Debug("Activation registered", zap.String("id", a.ID), zap.String("filename", filename))
	return a
}

// run drives one activation: fetch, then clipboard, then download fallback
func (s *Service) run(ctx context.Context, a *model.Activation) {
	s.setStatus(a, model.ActivationFetching)

	asset, err := s.fetcher.Fetch(ctx, a.Filename)
	if err != nil {
		s.logger.Warn("Image fetch failed, falling back to download",
			zap.String("id", a.ID), zap.String("filename", a.Filename), zap.Error(err))
		s.recordError(a, err)
		s.fallback(ctx, a, nil)
		return
	}

	s.mu.Lock()
	a.ContentType = asset.ContentType
	a.Size = asset.Size()
	s.mu.Unlock()

	if s.clipboard.Available() {
		s.setStatus(a, model.ActivationCopying)

		err := s.clipboard.WriteImage(ctx, asset.ContentType, asset.Data)
		if err == nil {
			s.finish(a, model.ActivationCopied, "")
			return
		}

		s.logger.Warn("Clipboard write failed, falling back to download",
			zap.String("id", a.ID), zap.String("filename", a.Filename), zap.Error(err))
		s.recordError(a, err)
	} else {
		s.logger.Debug("Clipboard unavailable, falling back to download", zap.String("id", a.ID))
	}

	s.fallback(ctx, a, asset)
}

// fallback saves the asset under its original filename. A failed fetch gets
// one more attempt here, the same way a browser download re-requests the
// resource.
func (s *Service) fallback(ctx context.Context, a *model.Activation, asset *assets.Asset) {
	s.setStatus(a, model.ActivationSaving)

	if asset == nil {
		var err error
		asset, err = s.fetcher.Fetch(ctx, a.Filename)
		if err != nil {
			s.logger.Error("Download failed", zap.String("id", a.ID), zap.String("filename", a.Filename), zap.Error(err))
			s.finish(a, model.ActivationFailed, err.Error())
			return
		}

		s.mu.Lock()
		a.ContentType = asset.ContentType
		a.Size = asset.Size()
		s.mu.Unlock()
	}

	outputPath, err := s.save(asset)
	if err != nil {
		s.logger.Error("Download failed", zap.String("id", a.ID), zap.String("filename", a.Filename), zap.Error(err))
		s.finish(a, model.ActivationFailed, err.Error())
		return
	}

	s.mu.Lock()
	a.OutputPath = outputPath
	s.mu.Unlock()

	s.finish(a, model.ActivationDownloaded, "")
}

// save writes the asset into the download directory without clobbering an
// existing file of the same name.
func (s *Service) save(asset *assets.Asset) (string, error) {
	dir := s.DownloadDirectory()
	if dir == "" {
		return "", fmt.Errorf("download directory is not configured")
	}
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".hog-*.part")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(asset.Data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write %s: %w", asset.Filename, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", asset.Filename, err)
	}

	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	target, err := platform.UniqueFilePath(dir, filepath.Base(asset.Filename))
	if err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("failed to move %s into place: %w", asset.Filename, err)
	}

	return target, nil
}

// setStatus moves an activation to a non-terminal status
func (s *Service) setStatus(a *model.Activation, status model.ActivationStatus) {
	s.mu.Lock()
	a.Status = status
	s.mu.Unlock()

	s.notifyUpdate(a)
}

// recordError keeps the latest recoverable error on the activation
func (s *Service) recordError(a *model.Activation, err error) {
	s.mu.Lock()
	a.LastError = err.Error()
	s.mu.Unlock()
}

// finish moves an activation to a terminal status and shows its one
// confirmation.
func (s *Service) finish(a *model.Activation, status model.ActivationStatus, lastError string) {
	s.mu.Lock()
	a.Status = status
	a.FinishedAt = time.Now()
	if lastError != "" {
		a.LastError = lastError
	}
	s.pruneLocked()
	s.mu.Unlock()

	s.logger.Info("Activation finished",
		zap.String("id", a.ID),
		zap.String("filename", a.Filename),
		zap.Stringer("status", status),
		zap.String("output", a.OutputPath),
		zap.Duration("took", a.FinishedAt.Sub(a.StartedAt)))

	if s.notifier != nil {
		s.notifier.Notify(status.Message())
	}
	s.notifyUpdate(a)
}

// pruneLocked drops the oldest finished activations beyond MaxHistory
func (s *Service) pruneLocked() {
	excess := len(s.order) - MaxHistory
	if excess <= 0 {
		return
	}

	kept := s.order[:0]
	for _, id := range s.order {
		if excess > 0 && s.activations[id].Status.IsFinished() {
			delete(s.activations, id)
			excess--
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
}

// snapshot copies an activation under the lock
func (s *Service) snapshot(a *model.Activation) *model.Activation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	copied := *a
	return &copied
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(a *model.Activation) {
	s.mu.RLock()
	callback := s.onUpdate
	copied := *a
	s.mu.RUnlock()

	if callback != nil {
		callback(&copied)
	}
}

// generateActivationID generates a unique activation ID
func generateActivationID() string {
	return ActivationIDPrefix + uuid.NewString()
}
