package render

import (
	"fmt"
	"image"
	"image/color"
)

// PaletteImage renders a w*h grid of cells into an RGBA image, drawing every
// cell as a cellSize x cellSize square.
func PaletteImage(cells []uint8, w, h int, palette []color.RGBA, cellSize int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 || len(cells) != w*h {
		return nil, fmt.Errorf("render: %d cells do not form a %dx%d grid", len(cells), w, h)
	}
	if cellSize <= 0 {
		cellSize = 1
	}

	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)

	img := image.NewRGBA(image.Rect(0, 0, w*cellSize, h*cellSize))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src := buf[4*(y*w+x) : 4*(y*w+x)+4]
			for dy := 0; dy < cellSize; dy++ {
				row := img.PixOffset(x*cellSize, y*cellSize+dy)
				for dx := 0; dx < cellSize; dx++ {
					copy(img.Pix[row+4*dx:row+4*dx+4], src)
				}
			}
		}
	}
	return img, nil
}
