package main

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/hog-gallery/internal/assets"
	"github.com/ytget/hog-gallery/internal/catalog"
	"github.com/ytget/hog-gallery/internal/clipboard"
	"github.com/ytget/hog-gallery/internal/config"
	"github.com/ytget/hog-gallery/internal/download"
	"github.com/ytget/hog-gallery/internal/notify"
	"github.com/ytget/hog-gallery/internal/platform"
	"github.com/ytget/hog-gallery/internal/ui"
)

// runGUI opens the gallery window and blocks until it is closed
func runGUI(cmd *cobra.Command, args []string) error {
	logger.Info("Hog Gallery starting", zap.String("version", version))

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewGalleryTheme())

	window := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// A flag overrides the stored preference; the config file only seeds it
	settings := config.NewSettings(myApp)
	settings.Seed(cfg)
	if downloadDir != "" {
		settings.SetDownloadDirectory(downloadDir)
	}
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		logger.Warn("Failed to ensure downloads dir", zap.String("dir", downloadsDir), zap.Error(err))
	}

	fetcher := assets.NewFetcher(cfg.Assets, httpClient)

	toast := ui.NewToast()
	notifier := notify.NewNotifier(toast, cfg.ToastDuration)
	defer notifier.Stop()

	activations := download.NewService(downloadsDir, fetcher, clipboard.NewSystem(), notifier, logger)

	root := ui.NewRootUI(window, ui.Deps{
		Settings:    settings,
		Loader:      catalog.NewService(cfg.Index, httpClient, logger),
		Activations: activations,
		Thumbnails:  ui.NewThumbnailCache(fetcher, cfg.ThumbnailSize, cfg.ThumbnailWorkers, logger),
		Toast:       toast,
		AssetBase:   cfg.Assets,
		Logger:      logger,
	})

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	window.SetOnClosed(root.Stop)
	go root.Start(ctx)

	window.ShowAndRun()
	return nil
}
