package term

import (
	"slices"
	"testing"

	"doomfire/internal/sims/fire"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func newSim(t *testing.T, w, h int) *fire.Sim {
	t.Helper()
	sim, err := fire.NewSim(fire.Config{Width: w, Height: h, Seed: 11, Wind: fire.WindRight})
	if err != nil {
		t.Fatal(err)
	}
	return sim
}

func TestRendererDrawsTwoRowsPerCell(t *testing.T) {
	screen := newScreen(t, 8, 4)
	sim := newSim(t, 8, 8)
	r := NewRenderer(fire.Palette(), false)

	r.Draw(screen, sim.Cells(), 8, 8)

	dark, _ := fire.ColorFor(0)
	white, _ := fire.ColorFor(fire.MaxIntensity)
	darkColor := tcell.NewRGBColor(int32(dark.R), int32(dark.G), int32(dark.B))
	whiteColor := tcell.NewRGBColor(int32(white.R), int32(white.G), int32(white.B))

	for x := 0; x < 8; x++ {
		mainc, _, style, _ := screen.GetContent(x, 3)
		if mainc != halfBlock {
			t.Fatalf("cell (%d,3) = %q, want half block", x, mainc)
		}
		fg, bg, _ := style.Decompose()
		if fg != darkColor || bg != whiteColor {
			t.Fatalf("cell (%d,3) fg/bg = %v/%v, want dark over white", x, fg, bg)
		}

		_, _, style, _ = screen.GetContent(x, 0)
		fg, bg, _ = style.Decompose()
		if fg != darkColor || bg != darkColor {
			t.Fatalf("cell (%d,0) fg/bg = %v/%v, want dark", x, fg, bg)
		}
	}
}

func TestRendererOddHeightPadsLastRow(t *testing.T) {
	screen := newScreen(t, 4, 3)
	sim := newSim(t, 4, 5)
	r := NewRenderer(fire.Palette(), false)
	if Rows(5) != 3 {
		t.Fatalf("Rows(5) = %d, want 3", Rows(5))
	}

	r.Draw(screen, sim.Cells(), 4, 5)

	white, _ := fire.ColorFor(fire.MaxIntensity)
	whiteColor := tcell.NewRGBColor(int32(white.R), int32(white.G), int32(white.B))
	_, _, style, _ := screen.GetContent(0, 2)
	fg, _, _ := style.Decompose()
	if fg != whiteColor {
		t.Fatalf("source row should be drawn in the upper half of the last row, got %v", fg)
	}
}

func TestMonoRendererUsesLightnessRamp(t *testing.T) {
	screen := newScreen(t, 4, 2)
	sim := newSim(t, 4, 4)
	r := NewRenderer(fire.Palette(), true)

	r.Draw(screen, sim.Cells(), 4, 4)

	if mainc, _, _, _ := screen.GetContent(0, 0); mainc != ' ' {
		t.Fatalf("cold cell glyph = %q, want space", mainc)
	}
	if mainc, _, _, _ := screen.GetContent(0, 1); mainc != '@' {
		t.Fatalf("source cell glyph = %q, want '@'", mainc)
	}

	ramp := []rune(glyphRamp)
	prev := 0
	for i := 0; i <= fire.MaxIntensity; i += 6 {
		idx := slices.Index(ramp, r.glyphs[i])
		if idx < 0 {
			t.Fatalf("glyph %q not in ramp", r.glyphs[i])
		}
		if i > 0 && idx < prev {
			t.Fatalf("glyph for intensity %d is darker than for %d", i, i-6)
		}
		prev = idx
	}
}

func TestHandleKeyAppliesCommands(t *testing.T) {
	screen := newScreen(t, 16, 6)
	sim := newSim(t, 16, 12)
	f := NewFrontend(screen, sim, NewRenderer(fire.Palette(), false), NewConfig())

	press := func(k tcell.Key, r rune) bool {
		t.Helper()
		quit, err := f.HandleKey(tcell.NewEventKey(k, r, tcell.ModNone))
		if err != nil {
			t.Fatal(err)
		}
		return quit
	}

	press(tcell.KeyLeft, 0)
	if sim.Controller().Wind() != fire.WindLeft {
		t.Fatalf("wind = %v, want left", sim.Controller().Wind())
	}
	press(tcell.KeyRune, 'n')
	if sim.Controller().Wind() != fire.WindNone {
		t.Fatalf("wind = %v, want none", sim.Controller().Wind())
	}
	press(tcell.KeyRight, 0)
	if sim.Controller().Wind() != fire.WindRight {
		t.Fatalf("wind = %v, want right", sim.Controller().Wind())
	}

	press(tcell.KeyDown, 0)
	if mean := sim.Controller().Grid().SourceMean(); mean >= fire.MaxIntensity {
		t.Fatalf("source mean = %v after decrease, want below %d", mean, fire.MaxIntensity)
	}
	press(tcell.KeyUp, 0)

	if press(tcell.KeyRune, 'h') || f.showHelp {
		t.Fatal("h should hide the help without quitting")
	}
	if !press(tcell.KeyEscape, 0) {
		t.Fatal("escape should quit")
	}
	if !press(tcell.KeyRune, 'q') {
		t.Fatal("q should quit")
	}
}

func TestPausedFrontendStepsOnlyOnRequest(t *testing.T) {
	screen := newScreen(t, 6, 3)
	sim := newSim(t, 6, 6)
	f := NewFrontend(screen, sim, NewRenderer(fire.Palette(), false), NewConfig())
	fresh := append([]uint8(nil), sim.Cells()...)

	if _, err := f.HandleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)); err != nil {
		t.Fatal(err)
	}
	f.Advance()
	if !slices.Equal(fresh, sim.Cells()) {
		t.Fatal("paused frontend advanced the fire")
	}

	if _, err := f.HandleKey(tcell.NewEventKey(tcell.KeyRune, '.', tcell.ModNone)); err != nil {
		t.Fatal(err)
	}
	f.Advance()
	grid := sim.Controller().Grid()
	heat := 0
	for x := 0; x < grid.Width(); x++ {
		heat += grid.At(x, 4)
	}
	if heat == 0 {
		t.Fatal("single step should carry heat into the row above the source")
	}

	if _, err := f.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(fresh, sim.Cells()) {
		t.Fatal("reset should restore the seeded grid")
	}
	f.Draw()
}

func TestConfigSimConfig(t *testing.T) {
	cfg := NewConfig()
	simCfg, err := cfg.SimConfig(80, 24)
	if err != nil {
		t.Fatal(err)
	}
	if simCfg.Width != 80 || simCfg.Height != 48 || simCfg.Wind != fire.WindRight {
		t.Fatalf("SimConfig = %+v, want 80x48 right", simCfg)
	}
	if _, err := cfg.SimConfig(0, 24); err == nil {
		t.Fatal("expected an error for an empty terminal")
	}
	cfg.Wind = "north"
	if _, err := cfg.SimConfig(80, 24); err == nil {
		t.Fatal("expected an error for an unknown wind")
	}
}
