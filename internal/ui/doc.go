// Package ui contains the Fyne-based desktop user interface for the gallery.
// It lays out the search field, the card grid and the toast, forwards key
// presses and card taps to the gallery controller, and hosts the settings
// dialog. All UI strings are localized via Localization.
package ui
