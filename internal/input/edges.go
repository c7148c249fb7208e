// Package input turns per-frame key states into discrete press and release
// events, independent of how often the simulation itself ticks.
package input

// Edges compares the key states seen in the previous frame with the current
// one. K is the shell's key type (ebiten.Key, tcell.Key, ...).
type Edges[K comparable] struct {
	prev map[K]bool
	cur  map[K]bool
}

// NewEdges returns a detector with every key released.
func NewEdges[K comparable]() *Edges[K] {
	return &Edges[K]{prev: map[K]bool{}, cur: map[K]bool{}}
}

// Update samples the given keys for a new frame.
func (e *Edges[K]) Update(keys []K, pressed func(K) bool) {
	e.prev, e.cur = e.cur, e.prev
	clear(e.cur)
	for _, k := range keys {
		if pressed(k) {
			e.cur[k] = true
		}
	}
}

// Down reports whether k is held in the current frame.
func (e *Edges[K]) Down(k K) bool { return e.cur[k] }

// Pressed reports whether k went down in the current frame.
func (e *Edges[K]) Pressed(k K) bool { return !e.prev[k] && e.cur[k] }

// Released reports whether k went up in the current frame.
func (e *Edges[K]) Released(k K) bool { return e.prev[k] && !e.cur[k] }

// Binding maps a key to the command it triggers on release.
type Binding[K comparable, C any] struct {
	Key     K
	Command C
}

// Keys lists the keys referenced by bindings, in order.
func Keys[K comparable, C any](bindings []Binding[K, C]) []K {
	keys := make([]K, len(bindings))
	for i, b := range bindings {
		keys[i] = b.Key
	}
	return keys
}

// FirstReleased returns the command of the first binding whose key was
// released this frame. Earlier bindings take precedence, so at most one
// command fires per frame.
func FirstReleased[K comparable, C any](e *Edges[K], bindings []Binding[K, C]) (C, bool) {
	for _, b := range bindings {
		if e.Released(b.Key) {
			return b.Command, true
		}
	}
	var zero C
	return zero, false
}
