package term

import (
	"flag"
	"fmt"

	"doomfire/internal/sims/fire"
)

// Config represents the command-line parameters for the terminal shell.
type Config struct {
	FPS    int
	SimTPS int
	Seed   int64
	Wind   string
	Mono   bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{FPS: 30, SimTPS: 30, Seed: 42, Wind: fire.WindRight.String()}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.FPS, "fps", c.FPS, "redraws per second")
	fs.IntVar(&c.SimTPS, "sim-tps", c.SimTPS, "fire ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random stream")
	fs.StringVar(&c.Wind, "wind", c.Wind, "initial wind: none, left or right")
	fs.BoolVar(&c.Mono, "mono", c.Mono, "draw with ASCII glyphs instead of colors")
}

// SimConfig sizes the fire to a cols x rows terminal, two fire rows per
// terminal row.
func (c *Config) SimConfig(cols, rows int) (fire.Config, error) {
	wind, err := fire.ParseWind(c.Wind)
	if err != nil {
		return fire.Config{}, err
	}
	if cols <= 0 || rows <= 0 {
		return fire.Config{}, fmt.Errorf("%w: terminal is %dx%d", fire.ErrInvalidDimension, cols, rows)
	}
	return fire.Config{Width: cols, Height: rows * 2, Seed: c.Seed, Wind: wind}, nil
}
