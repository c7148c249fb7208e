package input

import "testing"

type frameKeys map[string]bool

func (f frameKeys) pressed(k string) bool { return f[k] }

func TestReleasedFiresOnceOnKeyUp(t *testing.T) {
	e := NewEdges[string]()
	keys := []string{"up"}

	frames := []frameKeys{
		{},
		{"up": true},
		{"up": true},
		{"up": true},
		{},
		{},
	}
	var released, pressed []int
	for i, f := range frames {
		e.Update(keys, f.pressed)
		if e.Released("up") {
			released = append(released, i)
		}
		if e.Pressed("up") {
			pressed = append(pressed, i)
		}
	}
	if len(released) != 1 || released[0] != 4 {
		t.Fatalf("release edges at frames %v, want [4]", released)
	}
	if len(pressed) != 1 || pressed[0] != 1 {
		t.Fatalf("press edges at frames %v, want [1]", pressed)
	}
}

func TestHeldKeyIsDownWithoutEdges(t *testing.T) {
	e := NewEdges[string]()
	keys := []string{"left"}
	held := frameKeys{"left": true}

	e.Update(keys, held.pressed)
	for i := 0; i < 5; i++ {
		e.Update(keys, held.pressed)
		if !e.Down("left") {
			t.Fatal("held key should report down")
		}
		if e.Pressed("left") || e.Released("left") {
			t.Fatalf("frame %d: held key produced an edge", i)
		}
	}
}

func TestUntrackedKeysAreIgnored(t *testing.T) {
	e := NewEdges[string]()
	e.Update([]string{"a"}, frameKeys{"a": true, "b": true}.pressed)
	if e.Down("b") {
		t.Fatal("keys outside the tracked set must not be sampled")
	}
}

func TestFirstReleasedPrecedence(t *testing.T) {
	bindings := []Binding[string, int]{
		{Key: "n", Command: 1},
		{Key: "left", Command: 2},
		{Key: "right", Command: 3},
	}
	keys := Keys(bindings)
	if len(keys) != 3 || keys[0] != "n" || keys[2] != "right" {
		t.Fatalf("Keys = %v", keys)
	}

	e := NewEdges[string]()
	e.Update(keys, frameKeys{"left": true, "right": true}.pressed)
	if _, ok := FirstReleased(e, bindings); ok {
		t.Fatal("no key released yet")
	}

	e.Update(keys, frameKeys{}.pressed)
	cmd, ok := FirstReleased(e, bindings)
	if !ok || cmd != 2 {
		t.Fatalf("FirstReleased = %d, %v; want 2, true", cmd, ok)
	}

	e.Update(keys, frameKeys{}.pressed)
	if _, ok := FirstReleased(e, bindings); ok {
		t.Fatal("release must fire only on the edge frame")
	}
}
