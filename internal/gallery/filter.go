package gallery

import (
	"github.com/ytget/hog-gallery/internal/model"
)

// Filter returns the filenames whose display name or raw filename contains
// query, ignoring case and surrounding whitespace. Catalog order is kept and
// an empty query matches everything.
func Filter(catalog []string, query string) []string {
	normalized := model.NormalizeQuery(query)

	filtered := make([]string, 0, len(catalog))
	for _, filename := range catalog {
		if model.Matches(filename, normalized) {
			filtered = append(filtered, filename)
		}
	}
	return filtered
}

// Render filters catalog by query and builds a card for every match.
func Render(assetBase string, catalog []string, query string) []model.Card {
	filtered := Filter(catalog, query)

	cards := make([]model.Card, 0, len(filtered))
	for _, filename := range filtered {
		cards = append(cards, model.NewCard(assetBase, filename))
	}
	return cards
}
