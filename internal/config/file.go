package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ytget/hog-gallery/internal/assets"
	"github.com/ytget/hog-gallery/internal/catalog"
	"github.com/ytget/hog-gallery/internal/notify"
	"github.com/ytget/hog-gallery/internal/platform"
)

// DefaultConfigFile is read from the working directory when present
const DefaultConfigFile = "hog-gallery.yaml"

// Thumbnail defaults
const (
	DefaultThumbnailSize    = 160
	DefaultThumbnailWorkers = 4
	MaxThumbnailWorkers     = 16
)

// Config is the gallery configuration resolved from defaults, the YAML file
// and command-line flags.
type Config struct {
	// Index is the catalog location, a URL or a file path
	Index string `yaml:"index"`
	// Assets is the image folder, a base URL or a directory
	Assets string `yaml:"assets"`
	// DownloadDir receives images when copying is not possible
	DownloadDir string `yaml:"download_dir"`

	ToastDuration    time.Duration `yaml:"toast_duration"`
	ThumbnailSize    int           `yaml:"thumbnail_size"`
	ThumbnailWorkers int           `yaml:"thumbnail_workers"`
}

// Default returns the built-in configuration
func Default() *Config {
	downloadDir, err := platform.GetHomeDownloadsDir()
	if err != nil {
		downloadDir = FallbackDownloadDir
	}
	return &Config{
		Index:            catalog.DefaultIndex,
		Assets:           assets.DefaultFolder,
		DownloadDir:      downloadDir,
		ToastDuration:    notify.DefaultDuration,
		ThumbnailSize:    DefaultThumbnailSize,
		ThumbnailWorkers: DefaultThumbnailWorkers,
	}
}

// Load reads path over the defaults. A missing file is an error only when
// required is set; otherwise the defaults are returned.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize restores defaults for values the file blanked out and clamps
// the rest.
func (c *Config) normalize() {
	defaults := Default()

	if c.Index == "" {
		c.Index = defaults.Index
	}
	if c.Assets == "" {
		c.Assets = defaults.Assets
	}
	if c.DownloadDir == "" {
		c.DownloadDir = defaults.DownloadDir
	}
	if c.ToastDuration <= 0 {
		c.ToastDuration = defaults.ToastDuration
	}
	if c.ThumbnailSize <= 0 {
		c.ThumbnailSize = defaults.ThumbnailSize
	}
	if c.ThumbnailWorkers < 1 {
		c.ThumbnailWorkers = 1
	}
	if c.ThumbnailWorkers > MaxThumbnailWorkers {
		c.ThumbnailWorkers = MaxThumbnailWorkers
	}
}
