package app

import (
	"flag"
	"fmt"

	"doomfire/internal/sims/fire"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	CellSize int
	TPS      int
	SimTPS   int
	Seed     int64
	Wind     string
	HUD      int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    800,
		Height:   480,
		CellSize: 5,
		TPS:      60,
		SimTPS:   60,
		Seed:     42,
		Wind:     fire.WindRight.String(),
		HUD:      0,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "size of a fire cell in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second (input polling and drawing)")
	fs.IntVar(&c.SimTPS, "sim-tps", c.SimTPS, "fire ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random stream")
	fs.StringVar(&c.Wind, "wind", c.Wind, "initial wind: none, left or right")
	fs.IntVar(&c.HUD, "hud", c.HUD, "width of the status panel in pixels (0 hides it)")
}

// SimConfig derives the fire grid from the window size and cell size.
func (c *Config) SimConfig() (fire.Config, error) {
	if c.CellSize <= 0 {
		return fire.Config{}, fmt.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	wind, err := fire.ParseWind(c.Wind)
	if err != nil {
		return fire.Config{}, err
	}
	return fire.Config{
		Width:  c.Width / c.CellSize,
		Height: c.Height / c.CellSize,
		Seed:   c.Seed,
		Wind:   wind,
	}, nil
}
