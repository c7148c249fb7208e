package fire

import (
	"image/color"
	"log"

	"doomfire/internal/core"
)

var _ core.Sim = (*Sim)(nil)

// Sim adapts a Grid and its Controller to the core.Sim contract used by the
// shells.
type Sim struct {
	cfg  Config
	grid *Grid
	ctrl *Controller
	rng  *core.RNG
}

// NewSim builds a seeded fire from cfg.
func NewSim(cfg Config) (*Sim, error) {
	grid, err := New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	grid.SeedSource()
	rng := core.NewRNG(cfg.Seed)
	ctrl := NewController(grid, rng)
	ctrl.SetWind(cfg.Wind)
	return &Sim{cfg: cfg, grid: grid, ctrl: ctrl, rng: rng}, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "fire" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.grid.Width(), H: s.grid.Height()} }

// Cells exposes the intensity buffer.
func (s *Sim) Cells() []uint8 { return s.grid.Cells() }

// Palette exposes the colors used to render intensities.
func (s *Sim) Palette() []color.RGBA { return Palette() }

// Controller exposes the wind and source controls.
func (s *Sim) Controller() *Controller { return s.ctrl }

// Seed returns the seed the stream was last restarted from.
func (s *Sim) Seed() int64 { return s.cfg.Seed }

// Reset restarts the fire from a freshly seeded source row and the configured
// wind. A zero seed reuses the configured one.
func (s *Sim) Reset(seed int64) {
	if seed != 0 {
		s.cfg.Seed = seed
	}
	s.rng.Seed(s.cfg.Seed)
	s.grid.Reset()
	s.ctrl.SetWind(s.cfg.Wind)
}

// Step advances the fire by one tick.
func (s *Sim) Step() {
	if err := s.ctrl.Tick(); err != nil {
		log.Printf("fire: step: %v", err)
	}
}

// Apply forwards a command to the controller.
func (s *Sim) Apply(cmd Command) error {
	return s.ctrl.Apply(cmd)
}
