package fire

import (
	"errors"
	"fmt"
	"log"

	"doomfire/internal/core"
)

var (
	// ErrInvalidDimension reports a non-positive grid width or height.
	ErrInvalidDimension = errors.New("fire: invalid grid dimension")
	// ErrNotInitialized reports an operation on a grid that was never
	// allocated or whose source row was never seeded.
	ErrNotInitialized = errors.New("fire: grid not initialized")
	// ErrIndexOutOfRange reports an intensity outside the palette.
	ErrIndexOutOfRange = errors.New("fire: index out of range")
)

// Grid stores fire intensities in row-major order. The bottom row is the fire
// source; every other row is derived from the row beneath it.
type Grid struct {
	w, h  int
	cells []uint8

	seeded      bool
	clampLogged bool
}

// New allocates a zeroed grid with the given dimensions.
func New(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, w, h)
	}
	return &Grid{w: w, h: h, cells: make([]uint8, w*h)}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Cells exposes the backing slice. Renderers must treat it as read-only.
func (g *Grid) Cells() []uint8 { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return x + g.w*y }

// At returns the intensity stored at (x, y).
func (g *Grid) At(x, y int) int { return int(g.cells[g.Index(x, y)]) }

// Set stores an intensity at (x, y), clamped to [0, MaxIntensity].
func (g *Grid) Set(x, y, v int) {
	g.cells[g.Index(x, y)] = clampIntensity(v)
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = 0
	}
}

// SeedSource sets every cell of the bottom row to MaxIntensity.
func (g *Grid) SeedSource() {
	row := g.sourceRow()
	for i := range row {
		row[i] = MaxIntensity
	}
	g.seeded = true
}

// Reset clears the grid and reseeds the source row in place.
func (g *Grid) Reset() {
	g.Clear()
	g.SeedSource()
}

// SourceMean returns the average intensity of the bottom row.
func (g *Grid) SourceMean() float64 {
	row := g.sourceRow()
	if len(row) == 0 {
		return 0
	}
	sum := 0
	for _, v := range row {
		sum += int(v)
	}
	return float64(sum) / float64(len(row))
}

// Propagate advances the fire by one tick. Cells are visited in raster order
// and written back into the same buffer, so a cell may read a neighbour that
// was already updated during this pass. The bottom row is never touched.
//
// With WindRight the destination may spill past the end of its row into the
// next one; it is clamped so it never reaches the source row.
func (g *Grid) Propagate(wind Wind, rng core.Rand) error {
	if err := g.ready(); err != nil {
		return err
	}
	total := len(g.cells)
	last := total - g.w - 1
	for i := 0; i < total; i++ {
		below := i + g.w
		if below >= total {
			break
		}
		decay := rng.IntRange(0, 2)
		v := int(g.cells[below]) - decay
		if v < 0 {
			v = 0
		}

		dst := i
		switch wind {
		case WindLeft:
			dst = max(i-decay, 0)
		case WindRight:
			dst = i + decay
			if dst > last {
				g.logClamp(dst, last)
				dst = last
			}
		}
		g.cells[dst] = uint8(v)
	}
	return nil
}

func (g *Grid) ready() error {
	if g == nil || len(g.cells) == 0 {
		return ErrNotInitialized
	}
	if !g.seeded {
		return fmt.Errorf("%w: source row not seeded", ErrNotInitialized)
	}
	return nil
}

func (g *Grid) sourceRow() []uint8 {
	if len(g.cells) < g.w {
		return nil
	}
	return g.cells[len(g.cells)-g.w:]
}

func (g *Grid) logClamp(dst, last int) {
	if g.clampLogged {
		return
	}
	g.clampLogged = true
	log.Printf("fire: wind destination %d past the last non-source cell, clamped to %d", dst, last)
}

func clampIntensity(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > MaxIntensity {
		return MaxIntensity
	}
	return uint8(v)
}
