//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"doomfire/internal/core"
	"doomfire/internal/input"
	"doomfire/internal/render"
	"doomfire/internal/sims/fire"
	"doomfire/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// commandBindings fire on key release. Order sets precedence when several
// keys are released in the same frame.
var commandBindings = []input.Binding[ebiten.Key, fire.Command]{
	{Key: ebiten.KeyN, Command: fire.CommandWindNone},
	{Key: ebiten.KeyArrowLeft, Command: fire.CommandWindLeft},
	{Key: ebiten.KeyArrowRight, Command: fire.CommandWindRight},
	{Key: ebiten.KeyArrowUp, Command: fire.CommandIncreaseSource},
	{Key: ebiten.KeyArrowDown, Command: fire.CommandDecreaseSource},
}

var commandKeys = input.Keys(commandBindings)

// Game adapts the fire simulation to the ebiten.Game interface.
type Game struct {
	sim     *fire.Sim
	palette []color.RGBA
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	keys    *input.Edges[ebiten.Key]
	clock   *core.FixedStep

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim *fire.Sim, cfg *Config) *Game {
	size := sim.Size()
	hud := ui.NewHUD(sim, cfg.HUD, nil)
	hudWidth := 0
	if hud != nil {
		hudWidth = cfg.HUD
	}
	return &Game{
		sim:      sim,
		palette:  sim.Palette(),
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(nil, ui.HelpLines),
		hud:      hud,
		keys:     input.NewEdges[ebiten.Key](),
		clock:    core.NewFixedStep(cfg.SimTPS),
		scale:    cfg.CellSize,
		hudWidth: hudWidth,
		seed:     sim.Seed(),
	}
}

// Reset restarts the fire with the provided seed.
func (g *Game) Reset(seed int64) {
	g.sim.Reset(seed)
	g.seed = g.sim.Seed()
	g.tickOnce = false
	g.clock.Reset()
}

// Update polls input and advances the simulation at its own tick rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.clock.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPeriod) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	g.overlay.Update()

	g.keys.Update(commandKeys, ebiten.IsKeyPressed)
	if cmd, ok := input.FirstReleased(g.keys, commandBindings); ok {
		if err := g.sim.Apply(cmd); err != nil {
			return fmt.Errorf("apply %v: %w", cmd, err)
		}
	}
	g.hud.Update(g.viewWidth())

	switch {
	case g.tickOnce:
		g.sim.Step()
		g.tickOnce = false
	case !g.paused && g.clock.ShouldStep():
		g.sim.Step()
	}
	return nil
}

// Draw renders the current fire, the help overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.viewWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}

func (g *Game) viewWidth() int { return g.sim.Size().W * g.scale }
