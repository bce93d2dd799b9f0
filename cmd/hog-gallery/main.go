package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/hog-gallery/internal/config"
	"github.com/ytget/hog-gallery/internal/logging"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.hog-gallery"
	AppName = "Hog Gallery"

	WindowWidth  = 960
	WindowHeight = 720
)

var (
	// Global flags
	configPath  string
	indexSource string
	assetBase   string
	downloadDir string
	verbose     bool

	// Resolved in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger

	httpClient = &http.Client{}
)

// rootCmd opens the gallery window
var rootCmd = &cobra.Command{
	Use:   "hog-gallery",
	Short: "Browse hog images and copy them to the clipboard",
	Long: `Hog Gallery shows every image listed in the catalog as a card.
Type to filter, press / to jump to the search field and Escape to clear it.
Clicking a card copies the image to the clipboard, or saves it to the
downloads folder when the clipboard is not available.

Run without a subcommand to open the window.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = resolveConfig(cmd)
		if err != nil {
			return err
		}

		logger.Debug("Configuration resolved",
			zap.String("index", cfg.Index),
			zap.String("assets", cfg.Assets),
			zap.String("download_dir", cfg.DownloadDir))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runGUI,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigFile, "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&indexSource, "index", "", "catalog location, URL or file (default from config)")
	rootCmd.PersistentFlags().StringVar(&assetBase, "assets", "", "image folder, base URL or directory (default from config)")
	rootCmd.PersistentFlags().StringVar(&downloadDir, "download-dir", "", "where images are saved when copying is not possible")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	copyCmd.Flags().BoolVar(&noClipboard, "no-clipboard", false, "always save to the download directory")
	copyCmd.Flags().BoolVar(&holdClipboard, "hold", false, "keep serving the copied image until another app takes the clipboard over")

	rootCmd.AddCommand(listCmd, copyCmd)
}

// resolveConfig layers the config file and the command-line flags over the
// built-in defaults. An explicitly passed --config must exist.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	c, err := config.Load(configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return nil, err
	}

	if indexSource != "" {
		c.Index = indexSource
	}
	if assetBase != "" {
		c.Assets = assetBase
	}
	if downloadDir != "" {
		c.DownloadDir = downloadDir
	}
	return c, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
