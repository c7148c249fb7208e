package fire

import "strconv"

// Config controls the fire simulation dimensions and initial state.
type Config struct {
	Width  int
	Height int

	Seed int64
	Wind Wind
}

// DefaultConfig returns an 800x480 backbuffer divided into 5 pixel cells.
func DefaultConfig() Config {
	return Config{Width: 160, Height: 96, Seed: 42, Wind: WindRight}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["wind"]; ok {
		if parsed, err := ParseWind(v); err == nil {
			c.Wind = parsed
		}
	}
	return c
}
