// Package term draws the fire in a terminal with tcell. Every terminal row
// shows two fire rows using the upper half block glyph.
package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	halfBlock = '▀'
	glyphRamp = " .:-=+*#%@"
)

// Renderer maps intensities onto terminal cells.
type Renderer struct {
	colors []tcell.Color
	glyphs []rune
	mono   bool
}

// NewRenderer precomputes terminal colors for the palette. In mono mode the
// fire is drawn with ASCII glyphs picked by the perceived lightness of each
// palette entry instead of colors.
func NewRenderer(palette []color.RGBA, mono bool) *Renderer {
	r := &Renderer{
		colors: make([]tcell.Color, len(palette)),
		glyphs: make([]rune, len(palette)),
		mono:   mono,
	}
	ramp := []rune(glyphRamp)
	for i, c := range palette {
		r.colors[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
		r.glyphs[i] = ramp[lightnessIndex(c, len(ramp))]
	}
	return r
}

// lightnessIndex buckets the CIE L* of c into n steps.
func lightnessIndex(c color.RGBA, n int) int {
	cf, _ := colorful.MakeColor(c)
	l, _, _ := cf.Lab()
	idx := int(l*float64(n-1) + 0.5)
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

// Rows returns how many terminal rows a fire of height h occupies.
func Rows(h int) int { return (h + 1) / 2 }

// Draw paints a w*h intensity grid at the top-left corner of screen.
func (r *Renderer) Draw(screen tcell.Screen, cells []uint8, w, h int) {
	if len(cells) != w*h || len(r.colors) == 0 {
		return
	}
	sw, sh := screen.Size()
	for ty := 0; ty < Rows(h) && ty < sh; ty++ {
		upperY := ty * 2
		lowerY := upperY + 1
		for x := 0; x < w && x < sw; x++ {
			upper := r.index(cells[upperY*w+x])
			lower := 0
			if lowerY < h {
				lower = r.index(cells[lowerY*w+x])
			}
			if r.mono {
				screen.SetContent(x, ty, r.glyphs[max(upper, lower)], nil, tcell.StyleDefault)
				continue
			}
			style := tcell.StyleDefault.Foreground(r.colors[upper]).Background(r.colors[lower])
			screen.SetContent(x, ty, halfBlock, nil, style)
		}
	}
}

// DrawText writes lines starting at (x, y), clipped to the screen.
func DrawText(screen tcell.Screen, x, y int, lines []string, style tcell.Style) {
	sw, sh := screen.Size()
	for i, line := range lines {
		row := y + i
		if row < 0 || row >= sh {
			continue
		}
		col := x
		for _, ch := range line {
			if col >= sw {
				break
			}
			screen.SetContent(col, row, ch, nil, style)
			col++
		}
	}
}

func (r *Renderer) index(v uint8) int {
	idx := int(v)
	if idx >= len(r.colors) {
		idx = len(r.colors) - 1
	}
	return idx
}
