package model

import (
	"strings"
)

// Card is the view model for one image in the grid. Cards are rebuilt on
// every filter pass and never stored.
type Card struct {
	Filename    string
	DisplayName string
	AssetPath   string
}

// NewCard builds a card for filename served from assetBase
func NewCard(assetBase, filename string) Card {
	return Card{
		Filename:    filename,
		DisplayName: DisplayName(filename),
		AssetPath:   AssetPath(assetBase, filename),
	}
}

// AssetPath joins the asset folder (directory or URL) and a filename with a
// single forward slash.
func AssetPath(assetBase, filename string) string {
	if assetBase == "" {
		return filename
	}
	return strings.TrimRight(assetBase, "/") + "/" + filename
}

// Matches reports whether the card's filename or display name contains the
// already-normalized query.
func Matches(filename, normalizedQuery string) bool {
	if normalizedQuery == "" {
		return true
	}
	if strings.Contains(strings.ToLower(DisplayName(filename)), normalizedQuery) {
		return true
	}
	return strings.Contains(strings.ToLower(filename), normalizedQuery)
}

// NormalizeQuery trims surrounding whitespace and lowercases a search query
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
