package ui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/hog-gallery/internal/catalog"
	"github.com/ytget/hog-gallery/internal/config"
	"github.com/ytget/hog-gallery/internal/download"
	"github.com/ytget/hog-gallery/internal/gallery"
	"github.com/ytget/hog-gallery/internal/logging"
	"github.com/ytget/hog-gallery/internal/model"
	"github.com/ytget/hog-gallery/internal/platform"
)

// Deps are the services the window is wired to
type Deps struct {
	Settings    *config.Settings
	Loader      catalog.Loader
	Activations download.Activator
	// Thumbnails is optional; without it cards keep the placeholder icon
	Thumbnails *ThumbnailCache
	// Toast must be the surface the activation notifier draws on
	Toast     *Toast
	AssetBase string
	Logger    *zap.Logger
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	controller   *gallery.Controller
	activations  download.Activator
	thumbnails   *ThumbnailCache
	toast        *Toast
	logger       *zap.Logger

	search     *SearchEntry
	grid       *fyne.Container
	noResults  *widget.Label
	countLabel *widget.Label

	// cards currently on the grid by filename; touched on the UI goroutine only
	cards map[string][]*HogCard

	mu           sync.Mutex
	lastDownload string
	cancelLoads  context.CancelFunc
}

// NewRootUI creates and initializes the main UI. The grid stays empty until
// Start loads the catalog.
func NewRootUI(window fyne.Window, deps Deps) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(deps.Settings.GetLanguage())

	toast := deps.Toast
	if toast == nil {
		toast = NewToast()
	}
	toast.setLocalization(localization)

	ui := &RootUI{
		window:       window,
		settings:     deps.Settings,
		localization: localization,
		activations:  deps.Activations,
		thumbnails:   deps.Thumbnails,
		toast:        toast,
		logger:       logging.OrNop(deps.Logger).Named("ui"),
		cards:        make(map[string][]*HogCard),
	}
	ui.controller = gallery.NewController(deps.Loader, deps.Activations, ui, deps.AssetBase, deps.Logger)

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Track downloads for the "reveal last download" menu item
	ui.activations.SetUpdateCallback(ui.onActivationUpdate)

	ui.setupUI()
	return ui
}

// Controller returns the gallery controller behind the window
func (ui *RootUI) Controller() *gallery.Controller {
	return ui.controller
}

// Start loads the catalog, renders every card and begins loading
// thumbnails in the background. It blocks until the catalog is loaded.
func (ui *RootUI) Start(ctx context.Context) {
	ui.controller.Init(ctx)

	if ui.thumbnails == nil {
		return
	}

	loadCtx, cancel := context.WithCancel(ctx)
	ui.mu.Lock()
	ui.cancelLoads = cancel
	ui.mu.Unlock()

	filenames := ui.controller.Catalog()
	go func() {
		defer cancel()
		err := ui.thumbnails.LoadAll(loadCtx, filenames, ui.onThumbnailReady)
		if err != nil && !errors.Is(err, context.Canceled) {
			ui.logger.Warn("Thumbnail loading stopped", zap.Error(err))
			return
		}
		ui.logger.Debug("Thumbnails loaded", zap.Int("count", ui.thumbnails.Len()))
	}()
}

// Stop cancels background thumbnail loading. In-flight activations are not
// affected.
func (ui *RootUI) Stop() {
	ui.mu.Lock()
	cancel := ui.cancelLoads
	ui.cancelLoads = nil
	ui.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.search = NewSearchEntry()
	ui.search.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))
	ui.search.OnChanged = func(query string) {
		ui.controller.Filter(query)
	}
	ui.search.onEscape = func() {
		ui.handleKey(gallery.KeyClearSearch)
	}

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	folderBtn := widget.NewButton(IconFolder, ui.onOpenDownloads)
	folderBtn.Importance = widget.LowImportance

	ui.countLabel = widget.NewLabel("")

	left := container.NewHBox(settingsBtn, folderBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, settingsBtn, folderBtn)
	}
	topPanel := container.NewBorder(nil, nil, left, ui.countLabel, ui.search)

	ui.grid = container.NewGridWrap(fyne.NewSize(CardWidth, CardHeight))

	ui.noResults = widget.NewLabel(ui.localization.GetText(KeyNoResults))
	ui.noResults.Alignment = fyne.TextAlignCenter
	ui.noResults.Hide()

	center := container.NewStack(
		container.NewVScroll(ui.grid),
		container.NewCenter(ui.noResults),
	)

	content := container.NewBorder(
		topPanel,             // top
		ui.toast.Container(), // bottom
		nil,                  // left
		nil,                  // right
		center,               // center
	)
	ui.window.SetContent(content)

	// "/" and Escape work anywhere in the window. While the search field has
	// focus it receives the keys itself.
	ui.window.Canvas().SetOnTypedRune(func(r rune) {
		if string(r) == gallery.KeyFocusSearch {
			ui.handleKey(gallery.KeyFocusSearch)
		}
	})
	ui.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			ui.handleKey(gallery.KeyClearSearch)
		}
	})

	ui.logger.Debug("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	openDownloadsItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpenDownloads), ui.onOpenDownloads)
	revealItem := fyne.NewMenuItem(ui.localization.GetText(KeyRevealLastDownload), ui.onRevealLastDownload)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(code)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, openDownloadsItem, revealItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// ShowCards replaces the grid contents
func (ui *RootUI) ShowCards(cards []model.Card) {
	fyne.Do(func() {
		objects := make([]fyne.CanvasObject, 0, len(cards))
		ui.cards = make(map[string][]*HogCard, len(cards))

		for _, card := range cards {
			var thumb fyne.Resource
			if ui.thumbnails != nil {
				thumb, _ = ui.thumbnails.Get(card.Filename)
			}
			hc := NewHogCard(card, thumb, ui.onCardTapped)
			ui.cards[card.Filename] = append(ui.cards[card.Filename], hc)
			objects = append(objects, hc)
		}

		ui.grid.Objects = objects
		ui.grid.Refresh()
		ui.updateCount(len(cards))
		ui.logger.Debug("Cards rendered", zap.Int("count", len(cards)))
	})
}

// SetNoResults toggles the "no results" indicator
func (ui *RootUI) SetNoResults(visible bool) {
	fyne.Do(func() {
		if visible {
			ui.noResults.Show()
		} else {
			ui.noResults.Hide()
		}
	})
}

// handleKey applies a keyboard shortcut to the search field
func (ui *RootUI) handleKey(key string) {
	c := ui.window.Canvas()
	focused := c.Focused() == fyne.Focusable(ui.search)

	if key == gallery.KeyClearSearch {
		// OnChanged re-renders, leaving the controller nothing to reset
		ui.search.SetText("")
	}

	switch ui.controller.HandleKey(key, focused) {
	case gallery.KeyActionFocusSearch:
		c.Focus(ui.search)
	case gallery.KeyActionClearSearch:
		c.Unfocus()
	}
}

func (ui *RootUI) onCardTapped(filename string) {
	ui.controller.Activate(filename)
}

// onThumbnailReady runs on a loader goroutine
func (ui *RootUI) onThumbnailReady(filename string, res fyne.Resource) {
	fyne.Do(func() {
		for _, hc := range ui.cards[filename] {
			hc.SetThumbnail(res)
		}
	})
}

// onActivationUpdate receives activation snapshots from the download service
func (ui *RootUI) onActivationUpdate(a *model.Activation) {
	if a == nil || !a.Status.IsFinished() {
		return
	}

	ui.logger.Debug("Activation finished",
		zap.String("id", a.ID),
		zap.String("filename", a.Filename),
		zap.Stringer("status", a.Status),
		zap.Duration("duration", a.Duration()))

	if a.Status == model.ActivationDownloaded && a.OutputPath != "" {
		ui.mu.Lock()
		ui.lastDownload = a.OutputPath
		ui.mu.Unlock()
	}
}

// LastDownload returns the path of the most recent saved image
func (ui *RootUI) LastDownload() string {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	return ui.lastDownload
}

func (ui *RootUI) updateCount(shown int) {
	total := len(ui.controller.Catalog())
	ui.countLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyGalleryCount), shown, total))
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

func (ui *RootUI) onSettingsSaved(downloadDir, language string) {
	if err := platform.CreateDirectoryIfNotExists(downloadDir); err != nil {
		ui.logger.Warn("Failed to create download directory", zap.String("dir", downloadDir), zap.Error(err))
	}
	ui.activations.SetDownloadDirectory(downloadDir)

	if language != ui.localization.GetCurrentLanguage() {
		ui.onLanguageChange(language)
	}
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.search.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))
	ui.noResults.SetText(ui.localization.GetText(KeyNoResults))
	ui.updateCount(len(ui.grid.Objects))
}

func (ui *RootUI) onOpenDownloads() {
	dir := ui.settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		ui.logger.Warn("Failed to create download directory", zap.String("dir", dir), zap.Error(err))
	}
	if err := platform.OpenDirectory(dir); err != nil {
		ui.logger.Error("Failed to open download directory", zap.String("dir", dir), zap.Error(err))
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFolder), err), ui.window)
	}
}

func (ui *RootUI) onRevealLastDownload() {
	path := ui.LastDownload()
	if path == "" {
		dialog.ShowInformation(ui.localization.GetText(KeyRevealLastDownload), ui.localization.GetText(KeyNothingDownloaded), ui.window)
		return
	}
	if err := platform.OpenFileInManager(path); err != nil {
		ui.logger.Error("Failed to reveal file", zap.String("path", path), zap.Error(err))
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFolder), err), ui.window)
	}
}
