package gallery

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ytget/hog-gallery/internal/model"
)

type staticLoader struct {
	filenames []string
	calls     int
}

func (l *staticLoader) Load(context.Context) []string {
	l.calls++
	return l.filenames
}

type recordingView struct {
	renders   [][]model.Card
	noResults []bool
}

func (v *recordingView) ShowCards(cards []model.Card) {
	v.renders = append(v.renders, cards)
}

func (v *recordingView) SetNoResults(visible bool) {
	v.noResults = append(v.noResults, visible)
}

func (v *recordingView) last() ([]model.Card, bool) {
	return v.renders[len(v.renders)-1], v.noResults[len(v.noResults)-1]
}

type recordingActivator struct {
	mu        sync.Mutex
	filenames []string
}

func (a *recordingActivator) Activate(filename string) *model.Activation {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.filenames = append(a.filenames, filename)
	return model.NewActivation("activation-test", filename)
}

func filenames(cards []model.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Filename)
	}
	return out
}

func newController(t *testing.T, catalog []string) (*Controller, *recordingView, *recordingActivator, *staticLoader) {
	loader := &staticLoader{filenames: catalog}
	view := &recordingView{}
	activator := &recordingActivator{}
	c := NewController(loader, activator, view, "all-the-hogs", zaptest.NewLogger(t))
	return c, view, activator, loader
}

func TestInit_RendersEverything(t *testing.T) {
	c, view, _, loader := newController(t, scenarioCatalog)

	cards := c.Init(context.Background())

	assert.Equal(t, 1, loader.calls)
	assert.Equal(t, scenarioCatalog, filenames(cards))
	shown, noResults := view.last()
	assert.Equal(t, cards, shown)
	assert.False(t, noResults)
	assert.Equal(t, scenarioCatalog, c.Catalog())
}

func TestInit_FailedLoad(t *testing.T) {
	c, view, _, _ := newController(t, nil)

	var cards []model.Card
	require.NotPanics(t, func() {
		cards = c.Init(context.Background())
	})

	assert.Empty(t, cards)
	assert.NotNil(t, c.Catalog())
	shown, noResults := view.last()
	assert.Empty(t, shown)
	assert.True(t, noResults)
}

func TestFilter_UpdatesView(t *testing.T) {
	c, view, _, _ := newController(t, scenarioCatalog)
	c.Init(context.Background())

	cards := c.Filter("alp")
	assert.Equal(t, []string{"20240101-000000-Alpha.png"}, filenames(cards))
	_, noResults := view.last()
	assert.False(t, noResults)
	assert.Equal(t, "alp", c.Query())

	cards = c.Filter("v2")
	assert.Equal(t, []string{"Beta-v2.jpg"}, filenames(cards))

	cards = c.Filter("zzz")
	assert.Empty(t, cards)
	shown, noResults := view.last()
	assert.Empty(t, shown)
	assert.True(t, noResults)

	assert.Len(t, view.renders, 4, "every filter replaces the grid")
}

func TestController_NilView(t *testing.T) {
	c := NewController(&staticLoader{filenames: scenarioCatalog}, &recordingActivator{}, nil, "", nil)
	cards := c.Init(context.Background())
	assert.Len(t, cards, 2)
}

func TestActivate_Forwards(t *testing.T) {
	c, _, activator, _ := newController(t, scenarioCatalog)
	c.Init(context.Background())

	a := c.Activate("Beta-v2.jpg")
	assert.Equal(t, "Beta-v2.jpg", a.Filename)
	assert.Equal(t, []string{"Beta-v2.jpg"}, activator.filenames)
}

func TestHandleKey(t *testing.T) {
	c, view, _, _ := newController(t, scenarioCatalog)
	c.Init(context.Background())
	c.Filter("zzz")

	assert.Equal(t, KeyActionFocusSearch, c.HandleKey("/", false))
	assert.Equal(t, KeyIgnored, c.HandleKey("/", true))
	assert.Equal(t, KeyIgnored, c.HandleKey("a", false))

	assert.Equal(t, KeyActionClearSearch, c.HandleKey("Escape", true))
	assert.Equal(t, "", c.Query())
	shown, noResults := view.last()
	assert.Equal(t, scenarioCatalog, filenames(shown))
	assert.False(t, noResults)
}

func TestHandleKey_EscapeWithEmptyQueryDoesNotRender(t *testing.T) {
	c, view, _, _ := newController(t, scenarioCatalog)
	c.Init(context.Background())
	renders := len(view.renders)

	assert.Equal(t, KeyActionClearSearch, c.HandleKey("Escape", false))
	assert.Len(t, view.renders, renders)

	c.Filter("alpha")
	assert.Equal(t, KeyActionClearSearch, c.HandleKey("Escape", true))
	assert.Len(t, view.renders, renders+2)
}

func TestKeyAction_String(t *testing.T) {
	assert.Equal(t, "Ignored", KeyIgnored.String())
	assert.Equal(t, "FocusSearch", KeyActionFocusSearch.String())
	assert.Equal(t, "ClearSearch", KeyActionClearSearch.String())
	assert.Equal(t, "Unknown", KeyAction(99).String())
}
