// Package gallery holds the gallery controller: it owns the loaded catalog,
// turns search queries into card lists for a View, and forwards card clicks
// to the activation service.
package gallery

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/ytget/hog-gallery/internal/catalog"
	"github.com/ytget/hog-gallery/internal/logging"
	"github.com/ytget/hog-gallery/internal/model"
)

// View receives render results. Every call to ShowCards replaces the whole
// grid.
type View interface {
	ShowCards(cards []model.Card)
	SetNoResults(visible bool)
}

// Activator starts the copy-or-download action for a clicked card.
type Activator interface {
	Activate(filename string) *model.Activation
}

// Controller owns the catalog and the current query
type Controller struct {
	loader    catalog.Loader
	activator Activator
	view      View
	assetBase string
	logger    *zap.Logger

	mu      sync.RWMutex
	catalog []string
	query   string
}

// NewController creates a controller. The catalog stays empty until Init.
func NewController(loader catalog.Loader, activator Activator, view View, assetBase string, logger *zap.Logger) *Controller {
	return &Controller{
		loader:    loader,
		activator: activator,
		view:      view,
		assetBase: assetBase,
		logger:    logging.OrNop(logger).Named("gallery"),
		catalog:   []string{},
	}
}

// Init loads the catalog once and renders every card. A failed load leaves
// an empty gallery.
func (c *Controller) Init(ctx context.Context) []model.Card {
	filenames := c.loader.Load(ctx)
	if filenames == nil {
		filenames = []string{}
	}

	c.mu.Lock()
	c.catalog = filenames
	c.query = ""
	c.mu.Unlock()

	c.logger.Debug("Catalog ready", zap.Int("count", len(filenames)))
	return c.Filter("")
}

// Catalog returns a copy of the loaded filenames
func (c *Controller) Catalog() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	filenames := make([]string, len(c.catalog))
	copy(filenames, c.catalog)
	return filenames
}

// Query returns the query of the last render
func (c *Controller) Query() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.query
}

// Filter renders the cards matching query and replaces the view contents.
// The "no results" indicator is shown iff nothing matched.
func (c *Controller) Filter(query string) []model.Card {
	c.mu.Lock()
	c.query = query
	cards := Render(c.assetBase, c.catalog, query)
	c.mu.Unlock()

	if c.view != nil {
		c.view.SetNoResults(len(cards) == 0)
		c.view.ShowCards(cards)
	}
	return cards
}

// Activate forwards a card click to the activation service
func (c *Controller) Activate(filename string) *model.Activation {
	c.logger.Debug("Card activated", zap.String("filename", filename))
	return c.activator.Activate(filename)
}
