//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	overlayX = 20
	overlayY = 20
)

// Overlay draws the key help on top of the simulation. H toggles it.
type Overlay struct {
	face    font.Face
	lines   []string
	visible bool
}

// NewOverlay constructs a visible overlay. A nil face falls back to the
// built-in 7x13 bitmap font.
func NewOverlay(face font.Face, lines []string) *Overlay {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &Overlay{face: face, lines: lines, visible: true}
}

// Visible reports whether the overlay is drawn.
func (o *Overlay) Visible() bool { return o.visible }

// Toggle flips the overlay visibility.
func (o *Overlay) Toggle() { o.visible = !o.visible }

// Update allows the overlay to update internal state.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.Toggle()
	}
}

// Draw renders the help lines onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible || len(o.lines) == 0 {
		return
	}
	lineHeight := o.face.Metrics().Height.Ceil()
	ascent := o.face.Metrics().Ascent.Ceil()
	for i, line := range o.lines {
		y := overlayY + ascent + i*lineHeight
		text.Draw(screen, line, o.face, overlayX+1, y+1, color.Black)
		text.Draw(screen, line, o.face, overlayX, y, color.White)
	}
}
