package ui

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ytget/hog-gallery/internal/assets"
	"github.com/ytget/hog-gallery/internal/config"
	"github.com/ytget/hog-gallery/internal/model"
)

type fakeLoader struct {
	filenames []string
}

func (l *fakeLoader) Load(context.Context) []string {
	return l.filenames
}

type fakeActivations struct {
	mu        sync.Mutex
	activated []string
	dir       string
	onUpdate  func(*model.Activation)
}

func (f *fakeActivations) SetUpdateCallback(cb func(*model.Activation)) { f.onUpdate = cb }

func (f *fakeActivations) Activate(filename string) *model.Activation {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.activated = append(f.activated, filename)
	return model.NewActivation("activation-test", filename)
}

func (f *fakeActivations) Process(_ context.Context, filename string) *model.Activation {
	return f.Activate(filename)
}

func (f *fakeActivations) GetActivation(string) (*model.Activation, bool) { return nil, false }

func (f *fakeActivations) GetAllActivations() []*model.Activation { return nil }

func (f *fakeActivations) SetDownloadDirectory(dir string) { f.dir = dir }

func (f *fakeActivations) Activated() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.activated...)
}

type fakeFetcher struct {
	assets map[string]*assets.Asset
}

func (f *fakeFetcher) Fetch(_ context.Context, filename string) (*assets.Asset, error) {
	if a, ok := f.assets[filename]; ok {
		return a, nil
	}
	return nil, assets.ErrNotFound
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 233, G: 30, B: 99, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

var testCatalog = []string{
	"20240101-120000-alpha-transparent.png",
	"beta-v2.gif",
	"gamma.webp",
}

func newTestUI(t *testing.T, filenames []string) (*RootUI, *fakeActivations, fyne.Window) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	w := app.NewWindow("test")
	t.Cleanup(w.Close)

	activations := &fakeActivations{}
	root := NewRootUI(w, Deps{
		Settings:    config.NewSettings(app),
		Loader:      &fakeLoader{filenames: filenames},
		Activations: activations,
		AssetBase:   "all-the-hogs",
		Logger:      zaptest.NewLogger(t),
	})
	return root, activations, w
}

func gridFilenames(root *RootUI) []string {
	names := make([]string, 0, len(root.grid.Objects))
	for _, obj := range root.grid.Objects {
		names = append(names, obj.(*HogCard).Card().Filename)
	}
	return names
}

func TestRootUI_StartRendersCatalog(t *testing.T) {
	root, _, _ := newTestUI(t, testCatalog)
	root.Start(context.Background())

	require.Eventually(t, func() bool { return len(root.grid.Objects) == len(testCatalog) }, time.Second, 10*time.Millisecond)
	assert.Equal(t, testCatalog, gridFilenames(root))
	assert.False(t, root.noResults.Visible())

	first := root.grid.Objects[0].(*HogCard)
	assert.Equal(t, "alpha", first.Card().DisplayName)
	assert.Equal(t, "all-the-hogs/20240101-120000-alpha-transparent.png", first.Card().AssetPath)
}

func TestRootUI_EmptyCatalogShowsNoResults(t *testing.T) {
	root, _, _ := newTestUI(t, nil)
	root.Start(context.Background())

	require.Eventually(t, func() bool { return root.noResults.Visible() }, time.Second, 10*time.Millisecond)
	assert.Empty(t, root.grid.Objects)
}

func TestRootUI_TypingFilters(t *testing.T) {
	root, _, _ := newTestUI(t, testCatalog)
	root.Start(context.Background())

	test.Type(root.search, "BETA")
	require.Eventually(t, func() bool { return len(root.grid.Objects) == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"beta-v2.gif"}, gridFilenames(root))
	assert.False(t, root.noResults.Visible())

	root.search.SetText("zzz")
	require.Eventually(t, func() bool { return root.noResults.Visible() }, time.Second, 10*time.Millisecond)
	assert.Empty(t, root.grid.Objects)
	assert.Equal(t, "zzz", root.Controller().Query())
}

func TestRootUI_EscapeClearsSearch(t *testing.T) {
	root, _, w := newTestUI(t, testCatalog)
	root.Start(context.Background())

	w.Canvas().Focus(root.search)
	test.Type(root.search, "gamma")
	require.Eventually(t, func() bool { return len(root.grid.Objects) == 1 }, time.Second, 10*time.Millisecond)

	root.search.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})

	assert.Equal(t, "", root.search.Text)
	assert.Nil(t, w.Canvas().Focused())
	assert.Equal(t, "", root.Controller().Query())
	require.Eventually(t, func() bool { return len(root.grid.Objects) == len(testCatalog) }, time.Second, 10*time.Millisecond)
}

func TestRootUI_EscapeRendersOnce(t *testing.T) {
	app := test.NewApp()
	t.Cleanup(app.Quit)
	w := app.NewWindow("test")
	t.Cleanup(w.Close)

	core, logs := observer.New(zapcore.DebugLevel)
	root := NewRootUI(w, Deps{
		Settings:    config.NewSettings(app),
		Loader:      &fakeLoader{filenames: testCatalog},
		Activations: &fakeActivations{},
		AssetBase:   "all-the-hogs",
		Logger:      zap.New(core),
	})
	root.Start(context.Background())

	rendered := func() int { return logs.FilterMessage("Cards rendered").Len() }

	w.Canvas().Focus(root.search)
	test.Type(root.search, "beta")
	require.Eventually(t, func() bool { return len(root.grid.Objects) == 1 }, time.Second, 10*time.Millisecond)
	before := rendered()

	root.search.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	require.Eventually(t, func() bool { return len(root.grid.Objects) == len(testCatalog) }, time.Second, 10*time.Millisecond)
	assert.Equal(t, before+1, rendered())

	// nothing to reset
	root.handleKey("Escape")
	assert.Equal(t, before+1, rendered())
}

func TestRootUI_SlashFocusesSearch(t *testing.T) {
	root, _, w := newTestUI(t, testCatalog)
	root.Start(context.Background())

	require.Nil(t, w.Canvas().Focused())
	root.handleKey("/")
	assert.Equal(t, fyne.Focusable(root.search), w.Canvas().Focused())
	assert.Equal(t, "", root.search.Text)
}

func TestRootUI_TapActivatesCard(t *testing.T) {
	root, activations, _ := newTestUI(t, testCatalog)
	root.Start(context.Background())
	require.Eventually(t, func() bool { return len(root.grid.Objects) == len(testCatalog) }, time.Second, 10*time.Millisecond)

	test.Tap(root.grid.Objects[1].(*HogCard))
	test.Tap(root.grid.Objects[1].(*HogCard))

	assert.Equal(t, []string{"beta-v2.gif", "beta-v2.gif"}, activations.Activated())
}

func TestRootUI_TracksLastDownload(t *testing.T) {
	root, activations, _ := newTestUI(t, testCatalog)
	require.NotNil(t, activations.onUpdate)
	assert.Empty(t, root.LastDownload())

	running := model.NewActivation("a", "beta-v2.gif")
	running.Status = model.ActivationSaving
	activations.onUpdate(running)
	assert.Empty(t, root.LastDownload())

	done := model.NewActivation("b", "beta-v2.gif")
	done.Status = model.ActivationDownloaded
	done.OutputPath = "/tmp/beta-v2.gif"
	activations.onUpdate(done)
	assert.Equal(t, "/tmp/beta-v2.gif", root.LastDownload())

	copied := model.NewActivation("c", "gamma.webp")
	copied.Status = model.ActivationCopied
	activations.onUpdate(copied)
	assert.Equal(t, "/tmp/beta-v2.gif", root.LastDownload())
}

func TestRootUI_SettingsSavedUpdatesServices(t *testing.T) {
	root, activations, w := newTestUI(t, testCatalog)
	dir := t.TempDir()

	root.onSettingsSaved(dir, "pt")

	assert.Equal(t, dir, activations.dir)
	assert.Equal(t, "pt", root.localization.GetCurrentLanguage())
	assert.Equal(t, "pt", root.settings.GetLanguage())
	assert.Equal(t, "Galeria de Hogs", w.Title())
}

func TestRootUI_ThumbnailsReplacePlaceholders(t *testing.T) {
	app := test.NewApp()
	t.Cleanup(app.Quit)
	w := app.NewWindow("test")
	t.Cleanup(w.Close)

	fetcher := &fakeFetcher{assets: map[string]*assets.Asset{
		"beta-v2.gif": {Filename: "beta-v2.gif", ContentType: "image/png", Data: pngBytes(t, 64, 32)},
	}}
	root := NewRootUI(w, Deps{
		Settings:    config.NewSettings(app),
		Loader:      &fakeLoader{filenames: testCatalog},
		Activations: &fakeActivations{},
		Thumbnails:  NewThumbnailCache(fetcher, 16, 2, zaptest.NewLogger(t)),
		AssetBase:   "all-the-hogs",
		Logger:      zaptest.NewLogger(t),
	})
	root.Start(context.Background())
	t.Cleanup(root.Stop)

	require.Eventually(t, func() bool {
		_, ok := root.thumbnails.Get("beta-v2.gif")
		return ok
	}, time.Second, 10*time.Millisecond)

	res, _ := root.thumbnails.Get("beta-v2.gif")
	require.Eventually(t, func() bool {
		return root.grid.Objects[1].(*HogCard).image.Resource == res
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, PlaceholderResource(), root.grid.Objects[0].(*HogCard).image.Resource)
}

func TestToast_ShowTranslatesAndHides(t *testing.T) {
	test.NewApp()

	toast := NewToast()
	assert.False(t, toast.Visible())

	l := NewLocalization()
	l.SetLanguage("ru")
	toast.setLocalization(l)

	toast.Show(model.MessageCopied)
	require.Eventually(t, toast.Visible, time.Second, 10*time.Millisecond)
	assert.Equal(t, "Скопировано в буфер обмена!", toast.Text())

	toast.Show("custom")
	require.Eventually(t, func() bool { return toast.Text() == "custom" }, time.Second, 10*time.Millisecond)

	toast.Hide()
	require.Eventually(t, func() bool { return !toast.Visible() }, time.Second, 10*time.Millisecond)
}

func TestHogCard_Tapped(t *testing.T) {
	test.NewApp()

	var got []string
	card := NewHogCard(model.NewCard("all-the-hogs", "hog-v3.png"), nil, func(filename string) {
		got = append(got, filename)
	})

	test.Tap(card)
	assert.Equal(t, []string{"hog-v3.png"}, got)
	assert.Equal(t, PlaceholderResource(), card.image.Resource)

	card.SetThumbnail(nil)
	assert.Equal(t, PlaceholderResource(), card.image.Resource)
}

func TestThumbnailCache_LoadAll(t *testing.T) {
	fetcher := &fakeFetcher{assets: map[string]*assets.Asset{
		"a.png":    {Filename: "a.png", ContentType: "image/png", Data: pngBytes(t, 40, 20)},
		"b.png":    {Filename: "b.png", ContentType: "image/png", Data: pngBytes(t, 8, 8)},
		"junk.png": {Filename: "junk.png", ContentType: "image/png", Data: []byte("not an image")},
	}}
	cache := NewThumbnailCache(fetcher, 10, 0, zaptest.NewLogger(t))

	var mu sync.Mutex
	ready := map[string]fyne.Resource{}
	err := cache.LoadAll(context.Background(), []string{"a.png", "missing.png", "junk.png", "b.png"}, func(name string, res fyne.Resource) {
		mu.Lock()
		defer mu.Unlock()
		ready[name] = res
	})
	require.NoError(t, err)

	assert.Len(t, ready, 2)
	assert.Equal(t, 2, cache.Len())

	res, ok := cache.Get("a.png")
	require.True(t, ok)
	img, err := png.Decode(bytes.NewReader(res.Content()))
	require.NoError(t, err)
	assert.Equal(t, image.Pt(10, 5), img.Bounds().Size())

	// cached entries are not fetched again
	calls := 0
	err = cache.LoadAll(context.Background(), []string{"a.png", "b.png"}, func(string, fyne.Resource) { calls++ })
	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestThumbnailCache_Cancelled(t *testing.T) {
	fetcher := &fakeFetcher{assets: map[string]*assets.Asset{}}
	cache := NewThumbnailCache(fetcher, 10, 1, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := cache.LoadAll(ctx, []string{"a.png"}, nil)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, cache.Len())
}

func TestLocalization(t *testing.T) {
	l := NewLocalization()
	assert.Equal(t, "en", l.GetCurrentLanguage())
	assert.Equal(t, "Hog Gallery", l.GetText(KeyAppTitle))
	assert.Equal(t, model.MessageDownloaded, l.TranslateMessage(model.MessageDownloaded))

	l.SetLanguage("pt")
	assert.Equal(t, "Baixado!", l.TranslateMessage(model.MessageDownloaded))
	assert.Equal(t, "Falha no download", l.TranslateMessage(model.MessageDownloadFailed))
	assert.Equal(t, "anything else", l.TranslateMessage("anything else"))

	l.SetLanguage("xx")
	assert.Equal(t, "pt", l.GetCurrentLanguage())

	l.SetLanguage("system")
	assert.Equal(t, "en", l.GetCurrentLanguage())
	assert.Equal(t, "missing_key", l.GetText("missing_key"))

	for code := range l.GetAvailableLanguages() {
		l.SetLanguage(code)
		for _, key := range []string{KeyCopied, KeyDownloaded, KeyDownloadFailed, KeySearchPlaceholder, KeyNoResults} {
			assert.NotEqual(t, key, l.GetText(key), "language %s key %s", code, key)
		}
	}
}
