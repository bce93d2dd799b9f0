package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "hog-gallery.png"
)

// LoadLogoResource loads the logo from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// PlaceholderResource is drawn on a card until its thumbnail is ready
func PlaceholderResource() fyne.Resource {
	return theme.FileImageIcon()
}
