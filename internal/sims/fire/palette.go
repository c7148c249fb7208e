package fire

import (
	"fmt"
	"image/color"
)

// MaxIntensity is the hottest cell value and the last palette index.
const MaxIntensity = 36

// firePaletteHex is the classic ramp from near black through red, orange and
// yellow to white.
var firePaletteHex = [MaxIntensity + 1]uint32{
	0x070707, 0x1F0707, 0x2F0F07, 0x470F07, 0x571707, 0x671F07, 0x771F07, 0x8F2707,
	0x9F2F07, 0xAF3F07, 0xBF4707, 0xC74707, 0xDF4F07, 0xDF5707, 0xDF5707, 0xD75F07,
	0xD75F07, 0xD7670F, 0xCF6F0F, 0xCF770F, 0xCF7F0F, 0xCF8717, 0xC78717, 0xC78F17,
	0xC7971F, 0xBF9F1F, 0xBF9F1F, 0xBFA727, 0xBFA727, 0xBFAF2F, 0xB7AF2F, 0xB7B72F,
	0xB7B737, 0xCFCF6F, 0xDFDF9F, 0xEFEFC7, 0xFFFFFF,
}

var firePalette = buildFirePalette()

func buildFirePalette() []color.RGBA {
	palette := make([]color.RGBA, len(firePaletteHex))
	for i, hex := range firePaletteHex {
		palette[i] = color.RGBA{
			R: uint8(hex >> 16),
			G: uint8(hex >> 8),
			B: uint8(hex),
			A: 0xff,
		}
	}
	return palette
}

// ColorFor returns the palette entry for an intensity in [0, MaxIntensity].
func ColorFor(intensity int) (color.RGBA, error) {
	if intensity < 0 || intensity > MaxIntensity {
		return color.RGBA{}, fmt.Errorf("%w: intensity %d outside [0,%d]", ErrIndexOutOfRange, intensity, MaxIntensity)
	}
	return firePalette[intensity], nil
}

// Palette returns a copy of the fire palette indexed by intensity.
func Palette() []color.RGBA {
	out := make([]color.RGBA, len(firePalette))
	copy(out, firePalette)
	return out
}
