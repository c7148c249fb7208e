package fire

import (
	"fmt"
	"strings"
)

// Wind selects the horizontal drift applied while heat rises.
type Wind uint8

const (
	WindNone Wind = iota
	WindLeft
	WindRight
)

// String returns the lower-case name used by flags and status text.
func (w Wind) String() string {
	switch w {
	case WindNone:
		return "none"
	case WindLeft:
		return "left"
	case WindRight:
		return "right"
	default:
		return fmt.Sprintf("wind(%d)", uint8(w))
	}
}

// ParseWind converts a flag value into a Wind.
func ParseWind(s string) (Wind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "n", "off":
		return WindNone, nil
	case "left", "l":
		return WindLeft, nil
	case "right", "r":
		return WindRight, nil
	}
	return WindNone, fmt.Errorf("fire: unknown wind %q", s)
}

// Offset maps the wind onto -1 (left), 0 (none) and 1 (right).
func (w Wind) Offset() int {
	switch w {
	case WindLeft:
		return -1
	case WindRight:
		return 1
	default:
		return 0
	}
}

func windFromOffset(v int) Wind {
	switch {
	case v < 0:
		return WindLeft
	case v > 0:
		return WindRight
	default:
		return WindNone
	}
}
