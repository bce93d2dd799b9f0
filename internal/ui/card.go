package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/hog-gallery/internal/model"
)

// HogCard is one clickable tile in the gallery grid: the image thumbnail
// with its display name underneath.
type HogCard struct {
	widget.BaseWidget

	card  model.Card
	onTap func(filename string)

	background *canvas.Rectangle
	image      *canvas.Image
	label      *widget.Label
	hovered    bool
}

// NewHogCard creates a card. thumb may be nil, in which case a placeholder
// icon is shown until SetThumbnail is called.
func NewHogCard(card model.Card, thumb fyne.Resource, onTap func(filename string)) *HogCard {
	if thumb == nil {
		thumb = PlaceholderResource()
	}

	c := &HogCard{
		card:  card,
		onTap: onTap,
	}

	c.background = canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	c.background.CornerRadius = CardCornerSize

	c.image = canvas.NewImageFromResource(thumb)
	c.image.FillMode = canvas.ImageFillContain
	c.image.SetMinSize(fyne.NewSize(CardImageSize, CardImageSize))

	c.label = widget.NewLabel(card.DisplayName)
	c.label.Alignment = fyne.TextAlignCenter
	c.label.Truncation = fyne.TextTruncateEllipsis

	c.ExtendBaseWidget(c)
	return c
}

// Card returns the card this tile renders
func (c *HogCard) Card() model.Card {
	return c.card
}

// SetThumbnail replaces the placeholder with a loaded thumbnail
func (c *HogCard) SetThumbnail(res fyne.Resource) {
	if res == nil {
		return
	}
	c.image.Resource = res
	c.image.Refresh()
}

// Tapped activates the card
func (c *HogCard) Tapped(*fyne.PointEvent) {
	if c.onTap != nil {
		c.onTap(c.card.Filename)
	}
}

// Cursor shows a pointer over the card
func (c *HogCard) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// MouseIn highlights the card
func (c *HogCard) MouseIn(*desktop.MouseEvent) {
	c.hovered = true
	c.Refresh()
}

// MouseMoved is required by desktop.Hoverable
func (c *HogCard) MouseMoved(*desktop.MouseEvent) {}

// MouseOut removes the highlight
func (c *HogCard) MouseOut() {
	c.hovered = false
	c.Refresh()
}

// CreateRenderer builds the card layout
func (c *HogCard) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewBorder(nil, c.label, nil, nil, c.image)
	return &hogCardRenderer{
		card:    c,
		objects: []fyne.CanvasObject{c.background, container.NewPadded(content)},
	}
}

type hogCardRenderer struct {
	card    *HogCard
	objects []fyne.CanvasObject
}

func (r *hogCardRenderer) Layout(size fyne.Size) {
	for _, o := range r.objects {
		o.Move(fyne.NewPos(0, 0))
		o.Resize(size)
	}
}

func (r *hogCardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(CardWidth, CardHeight)
}

func (r *hogCardRenderer) Refresh() {
	if r.card.hovered {
		r.card.background.FillColor = theme.Color(theme.ColorNameHover)
	} else {
		r.card.background.FillColor = theme.Color(theme.ColorNameInputBackground)
	}
	r.card.background.Refresh()
	r.card.label.SetText(r.card.card.DisplayName)
}

func (r *hogCardRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *hogCardRenderer) Destroy() {}
