package main

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/hog-gallery/internal/assets"
	"github.com/ytget/hog-gallery/internal/clipboard"
	"github.com/ytget/hog-gallery/internal/download"
	"github.com/ytget/hog-gallery/internal/model"
)

var (
	noClipboard   bool
	holdClipboard bool
)

// copyCmd runs one card activation without the window
var copyCmd = &cobra.Command{
	Use:   "copy <filename>",
	Short: "Copy one image to the clipboard, or save it if that fails",
	Long: `Fetches the image from the asset folder and copies it to the clipboard.
When the clipboard is unavailable, the copy fails or --no-clipboard is set,
the image is saved to the download directory instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runCopy,
}

// lineNotifier prints each confirmation on its own line
type lineNotifier struct {
	w io.Writer
}

func (n lineNotifier) Notify(message string) {
	fmt.Fprintln(n.w, message)
}

func runCopy(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var clip clipboard.Writer = clipboard.Unavailable{}
	var system *clipboard.System
	if !noClipboard {
		system = clipboard.NewSystem()
		clip = system
	}

	fetcher := assets.NewFetcher(cfg.Assets, httpClient)
	svc := download.NewService(cfg.DownloadDir, fetcher, clip, lineNotifier{w: out}, logger)

	a := svc.Process(cmd.Context(), args[0])
	switch a.Status {
	case model.ActivationCopied:
		fmt.Fprintf(out, "%s (%s, %s)\n", a.Filename, a.ContentType, humanize.Bytes(uint64(a.Size)))
		if holdClipboard && system != nil {
			waitForClipboardChange(cmd.Context(), system)
		}
	case model.ActivationDownloaded:
		fmt.Fprintf(out, "%s (%s)\n", a.OutputPath, humanize.Bytes(uint64(a.Size)))
	default:
		return fmt.Errorf("%s: %s", a.Filename, a.LastError)
	}
	return nil
}

func waitForClipboardChange(ctx context.Context, system *clipboard.System) {
	changed := system.Changed()
	if changed == nil {
		return
	}
	logger.Info("Holding clipboard until it changes")
	select {
	case <-changed:
	case <-ctx.Done():
		logger.Debug("Stopped holding clipboard", zap.Error(ctx.Err()))
	}
}
