package fire

import "testing"

// scriptedRand replays a fixed sequence of draws, cycling when exhausted, and
// records the bounds of every request.
type scriptedRand struct {
	values []int
	calls  int
	bounds [][2]int
}

func fixedRand(v int) *scriptedRand { return &scriptedRand{values: []int{v}} }

func (s *scriptedRand) IntRange(lo, hi int) int {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	s.bounds = append(s.bounds, [2]int{lo, hi})
	return v
}

func mustGrid(t *testing.T, w, h int) *Grid {
	t.Helper()
	g, err := New(w, h)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", w, h, err)
	}
	g.SeedSource()
	return g
}

func rowOf(g *Grid, y int) []int {
	row := make([]int, g.Width())
	for x := range row {
		row[x] = g.At(x, y)
	}
	return row
}
