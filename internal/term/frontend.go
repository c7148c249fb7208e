package term

import (
	"fmt"
	"time"

	"doomfire/internal/core"
	"doomfire/internal/sims/fire"
	"doomfire/internal/ui"

	"github.com/gdamore/tcell/v2"
)

// Frontend runs the fire in a tcell screen. The grid size is fixed when the
// frontend is built; resizes only resync the terminal.
type Frontend struct {
	screen   tcell.Screen
	sim      *fire.Sim
	renderer *Renderer
	clock    *core.FixedStep
	frame    time.Duration

	paused   bool
	tickOnce bool
	showHelp bool

	textStyle tcell.Style
}

// NewFrontend wires a simulation to an initialised screen.
func NewFrontend(screen tcell.Screen, sim *fire.Sim, renderer *Renderer, cfg *Config) *Frontend {
	fps := cfg.FPS
	if fps <= 0 {
		fps = 30
	}
	return &Frontend{
		screen:    screen,
		sim:       sim,
		renderer:  renderer,
		clock:     core.NewFixedStep(cfg.SimTPS),
		frame:     time.Second / time.Duration(fps),
		showHelp:  true,
		textStyle: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	}
}

// HandleKey applies a key event and reports whether the user asked to quit.
func (f *Frontend) HandleKey(ev *tcell.EventKey) (bool, error) {
	if cmd, ok := commandFor(ev); ok {
		if err := f.sim.Apply(cmd); err != nil {
			return false, fmt.Errorf("apply %v: %w", cmd, err)
		}
		return false, nil
	}
	switch actionFor(ev) {
	case actionQuit:
		return true, nil
	case actionPause:
		f.paused = !f.paused
		f.clock.Reset()
	case actionStep:
		f.tickOnce = true
	case actionReset:
		f.reset(f.sim.Seed())
	case actionReseed:
		f.reset(time.Now().UnixNano())
	case actionHelp:
		f.showHelp = !f.showHelp
	}
	return false, nil
}

func (f *Frontend) reset(seed int64) {
	f.sim.Reset(seed)
	f.tickOnce = false
	f.clock.Reset()
}

// Advance steps the fire when a tick is due.
func (f *Frontend) Advance() {
	switch {
	case f.tickOnce:
		f.sim.Step()
		f.tickOnce = false
	case !f.paused && f.clock.ShouldStep():
		f.sim.Step()
	}
}

// Draw renders the fire and, when enabled, the help and status lines.
func (f *Frontend) Draw() {
	size := f.sim.Size()
	f.renderer.Draw(f.screen, f.sim.Cells(), size.W, size.H)
	if f.showHelp {
		ctrl := f.sim.Controller()
		status := fmt.Sprintf("WIND %s  SOURCE %.1f", ctrl.Wind(), ctrl.Grid().SourceMean())
		if f.paused {
			status += "  PAUSED"
		}
		lines := append(append([]string(nil), ui.HelpLines...), status)
		DrawText(f.screen, 1, 0, lines, f.textStyle)
	}
	f.screen.Show()
}

// Run polls terminal events and redraws at the configured frame rate until
// the user quits.
func (f *Frontend) Run() error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(f.frame)
	defer ticker.Stop()

	f.Draw()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				f.screen.Sync()
			case *tcell.EventKey:
				quit, err := f.HandleKey(ev)
				if err != nil {
					return err
				}
				if quit {
					return nil
				}
			}
		case <-ticker.C:
			f.Advance()
			f.Draw()
		}
	}
}
