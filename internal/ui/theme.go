package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// GalleryTheme is the default theme with a pink accent and tighter padding
// around the cards
type GalleryTheme struct{}

// NewGalleryTheme creates a new gallery theme
func NewGalleryTheme() fyne.Theme {
	return &GalleryTheme{}
}

// Color returns theme colors
func (t *GalleryTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 233, G: 30, B: 99, A: 255} // hog pink
	case theme.ColorNameFocus:
		return color.RGBA{R: 233, G: 30, B: 99, A: 128}
	case theme.ColorNameHover:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 24}
		}
		return color.RGBA{R: 233, G: 30, B: 99, A: 24}
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 24, G: 20, B: 22, A: 255}
		}
		return color.RGBA{R: 253, G: 246, B: 248, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *GalleryTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *GalleryTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *GalleryTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputRadius, theme.SizeNameSelectionRadius:
		return CardCornerSize
	}

	return theme.DefaultTheme().Size(name)
}
