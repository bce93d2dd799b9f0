package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toast is the single notification surface at the bottom of the window.
// Show and Hide may be called from any goroutine.
type Toast struct {
	localization *Localization

	label     *widget.Label
	container *fyne.Container
}

// NewToast creates a hidden toast
func NewToast() *Toast {
	t := &Toast{}

	t.label = widget.NewLabel("")
	t.label.Alignment = fyne.TextAlignCenter
	t.label.TextStyle = fyne.TextStyle{Bold: true}

	background := canvas.NewRectangle(theme.Color(theme.ColorNameOverlayBackground))
	background.CornerRadius = CardCornerSize
	background.StrokeColor = theme.Color(theme.ColorNamePrimary)
	background.StrokeWidth = 1
	background.SetMinSize(fyne.NewSize(ToastMinWidth, 0))

	t.container = container.NewCenter(container.NewStack(background, container.NewPadded(t.label)))
	t.container.Hide()
	return t
}

// Container returns the canvas object to place in the layout
func (t *Toast) Container() fyne.CanvasObject {
	return t.container
}

// Text returns the current message
func (t *Toast) Text() string {
	return t.label.Text
}

// Visible reports whether the toast is shown
func (t *Toast) Visible() bool {
	return t.container.Visible()
}

// Show sets message on the surface and makes it visible
func (t *Toast) Show(message string) {
	fyne.Do(func() {
		if t.localization != nil {
			message = t.localization.TranslateMessage(message)
		}
		t.label.SetText(message)
		t.container.Show()
		t.container.Refresh()
	})
}

// Hide hides the surface
func (t *Toast) Hide() {
	fyne.Do(func() {
		t.container.Hide()
	})
}

// setLocalization must be called on the UI goroutine
func (t *Toast) setLocalization(l *Localization) {
	t.localization = l
}
