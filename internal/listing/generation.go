package listing

import "sync/atomic"

// Generation numbers asynchronous loads so that a result arriving after a
// reload or teardown can be recognised and dropped.
type Generation struct {
	id atomic.Uint64
}

// Begin starts a new load and returns its id. Any earlier id stops being
// current.
func (g *Generation) Begin() uint64 {
	return g.id.Add(1)
}

// Cancel invalidates the in-flight load, if any.
func (g *Generation) Cancel() {
	g.id.Add(1)
}

// Current reports whether id belongs to the most recent load and may still
// be applied.
func (g *Generation) Current(id uint64) bool {
	return id != 0 && g.id.Load() == id
}
