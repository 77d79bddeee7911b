// Package geometry builds and validates the solid-cell mask consumed by the
// simulation engine. Masks are constructed once at setup from an implicit
// predicate over grid coordinates and are read-only afterwards; this package
// has no dependency on sim.
package geometry

// Mask marks solid (obstacle or wall) cells over a W×H grid, row-major.
type Mask struct {
	W, H  int
	solid []bool
}

// New returns an all-fluid mask over a w×h grid.
func New(w, h int) *Mask {
	return &Mask{W: w, H: h, solid: make([]bool, w*h)}
}

// FromFunc evaluates pred at every cell and marks the cells where it holds
// as solid. This is the hook for user-supplied implicit surfaces.
func FromFunc(w, h int, pred func(x, y int) bool) *Mask {
	m := New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if pred(x, y) {
				m.solid[y*w+x] = true
			}
		}
	}
	return m
}

// Solid reports whether (x, y) is a solid cell.
func (m *Mask) Solid(x, y int) bool {
	return m.solid[y*m.W+x]
}

// SetSolid marks or clears a single cell. Intended for setup only; the
// engine treats masks as immutable once a simulation starts.
func (m *Mask) SetSolid(x, y int, v bool) {
	m.solid[y*m.W+x] = v
}

// Raw exposes the row-major solid flags for renderers and writers.
func (m *Mask) Raw() []bool {
	return m.solid
}

// CountSolid returns the number of solid cells.
func (m *Mask) CountSolid() int {
	n := 0
	for _, s := range m.solid {
		if s {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	c := New(m.W, m.H)
	copy(c.solid, m.solid)
	return c
}

// Circle marks the disk of radius r centered at (cx, cy) as solid.
func Circle(w, h int, cx, cy, r float64) *Mask {
	return FromFunc(w, h, func(x, y int) bool {
		dx := float64(x) - cx
		dy := float64(y) - cy
		return dx*dx+dy*dy < r*r
	})
}

// Ellipse marks the axis-aligned ellipse with semi-axes (a, b) centered at
// (cx, cy) as solid.
func Ellipse(w, h int, cx, cy, a, b float64) *Mask {
	return FromFunc(w, h, func(x, y int) bool {
		dx := (float64(x) - cx) / a
		dy := (float64(y) - cy) / b
		return dx*dx+dy*dy < 1
	})
}

// Rect marks the axis-aligned rectangle of extent rw×rh centered at
// (cx, cy) as solid.
func Rect(w, h int, cx, cy, rw, rh float64) *Mask {
	return FromFunc(w, h, func(x, y int) bool {
		dx := float64(x) - cx
		dy := float64(y) - cy
		return dx > -rw/2 && dx < rw/2 && dy > -rh/2 && dy < rh/2
	})
}
