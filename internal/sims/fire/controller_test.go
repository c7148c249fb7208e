package fire

import (
	"errors"
	"testing"
)

func TestControllerDefaultsToRightWind(t *testing.T) {
	ctrl := NewController(mustGrid(t, 3, 3), fixedRand(0))
	if ctrl.Wind() != WindRight {
		t.Fatalf("initial wind = %v, want right", ctrl.Wind())
	}
}

func TestDecreaseSourceScenario(t *testing.T) {
	g := mustGrid(t, 5, 3)
	rng := fixedRand(13)
	ctrl := NewController(g, rng)

	if err := ctrl.DecreaseSource(); err != nil {
		t.Fatal(err)
	}
	for x := 0; x < 5; x++ {
		if got := g.At(x, 2); got != 23 {
			t.Fatalf("source cell %d = %d, want 23", x, got)
		}
		if got := g.At(x, 1); got != 0 {
			t.Fatalf("non-source cell (%d,1) changed to %d", x, got)
		}
	}
	for _, b := range rng.bounds {
		if b != [2]int{0, 13} {
			t.Fatalf("source decay drawn from %v, want [0 13]", b)
		}
	}
}

func TestDecreaseSourceFloorsAtZero(t *testing.T) {
	g := mustGrid(t, 3, 2)
	g.Set(0, 1, 5)
	g.Set(1, 1, 0)
	rng := fixedRand(13)
	ctrl := NewController(g, rng)

	if err := ctrl.DecreaseSource(); err != nil {
		t.Fatal(err)
	}
	if g.At(0, 1) != 0 || g.At(1, 1) != 0 || g.At(2, 1) != 23 {
		t.Fatalf("source row = %v, want [0 0 23]", rowOf(g, 1))
	}
	if rng.calls != 2 {
		t.Fatalf("expected the zero cell to be skipped without a draw, got %d draws", rng.calls)
	}
}

func TestIncreaseSourceCapsAtMax(t *testing.T) {
	g := mustGrid(t, 4, 2)
	g.Set(0, 1, 30)
	g.Set(1, 1, 0)
	g.Set(2, 1, 23)
	rng := fixedRand(13)
	ctrl := NewController(g, rng)

	if err := ctrl.IncreaseSource(); err != nil {
		t.Fatal(err)
	}
	want := []int{36, 13, 36, 36}
	for x, w := range want {
		if got := g.At(x, 1); got != w {
			t.Fatalf("source cell %d = %d, want %d", x, got, w)
		}
	}
	if rng.calls != 3 {
		t.Fatalf("expected the saturated cell to be skipped without a draw, got %d draws", rng.calls)
	}
}

func TestSourceAdjustmentsAreNoopsAtBounds(t *testing.T) {
	g := mustGrid(t, 6, 2)
	rng := fixedRand(7)
	ctrl := NewController(g, rng)

	if err := ctrl.IncreaseSource(); err != nil {
		t.Fatal(err)
	}
	if rng.calls != 0 || g.SourceMean() != MaxIntensity {
		t.Fatalf("increase on a full source drew %d values, mean %v", rng.calls, g.SourceMean())
	}

	for x := 0; x < 6; x++ {
		g.Set(x, 1, 0)
	}
	if err := ctrl.DecreaseSource(); err != nil {
		t.Fatal(err)
	}
	if rng.calls != 0 || g.SourceMean() != 0 {
		t.Fatalf("decrease on an empty source drew %d values, mean %v", rng.calls, g.SourceMean())
	}
}

func TestSourceAdjustmentsRequireSeededGrid(t *testing.T) {
	g, err := New(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	ctrl := NewController(g, fixedRand(1))
	if err := ctrl.IncreaseSource(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("IncreaseSource error = %v, want ErrNotInitialized", err)
	}
	if err := ctrl.DecreaseSource(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("DecreaseSource error = %v, want ErrNotInitialized", err)
	}
	if err := ctrl.Tick(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Tick error = %v, want ErrNotInitialized", err)
	}

	empty := NewController(nil, fixedRand(1))
	if err := empty.Tick(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Tick without grid error = %v, want ErrNotInitialized", err)
	}
	if err := empty.IncreaseSource(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("IncreaseSource without grid error = %v, want ErrNotInitialized", err)
	}
}

func TestApplyDispatchesCommands(t *testing.T) {
	g := mustGrid(t, 4, 3)
	ctrl := NewController(g, fixedRand(13))

	for _, tc := range []struct {
		cmd  Command
		wind Wind
	}{
		{CommandWindNone, WindNone},
		{CommandWindLeft, WindLeft},
		{CommandWindRight, WindRight},
	} {
		if err := ctrl.Apply(tc.cmd); err != nil {
			t.Fatalf("Apply(%v): %v", tc.cmd, err)
		}
		if ctrl.Wind() != tc.wind {
			t.Fatalf("after %v wind = %v, want %v", tc.cmd, ctrl.Wind(), tc.wind)
		}
	}

	if err := ctrl.Apply(CommandDecreaseSource); err != nil {
		t.Fatal(err)
	}
	if g.SourceMean() != 23 {
		t.Fatalf("after decrease source mean = %v, want 23", g.SourceMean())
	}
	if err := ctrl.Apply(CommandIncreaseSource); err != nil {
		t.Fatal(err)
	}
	if g.SourceMean() != MaxIntensity {
		t.Fatalf("after increase source mean = %v, want %d", g.SourceMean(), MaxIntensity)
	}

	if err := ctrl.Apply(Command(0)); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("Apply(0) error = %v, want ErrUnknownCommand", err)
	}
	if ctrl.Wind() != WindRight {
		t.Fatal("rejected command must not change the wind")
	}
}

func TestTickUsesCurrentWind(t *testing.T) {
	g := mustGrid(t, 4, 3)
	ctrl := NewController(g, fixedRand(2))
	ctrl.SetWind(WindLeft)
	if err := ctrl.Tick(); err != nil {
		t.Fatal(err)
	}

	ref := mustGrid(t, 4, 3)
	if err := ref.Propagate(WindLeft, fixedRand(2)); err != nil {
		t.Fatal(err)
	}
	for i, v := range ref.Cells() {
		if g.Cells()[i] != v {
			t.Fatalf("cell %d = %d, want %d", i, g.Cells()[i], v)
		}
	}
}

func TestCommandString(t *testing.T) {
	if CommandIncreaseSource.String() != "increase-source" {
		t.Fatalf("unexpected name %q", CommandIncreaseSource.String())
	}
	if Command(42).String() != "command(42)" {
		t.Fatalf("unexpected name %q", Command(42).String())
	}
}
