package sim

// Grid holds the fixed domain dimensions. It is created once at setup and
// never mutated.
type Grid struct {
	W int // downstream extent
	H int // cross-channel extent
}

// Cells returns the number of lattice sites.
func (g Grid) Cells() int {
	return g.W * g.H
}

// Idx maps (x, y) to the row-major cell index. Coordinates are validated at
// configuration time, not per access.
func (g Grid) Idx(x, y int) int {
	return y*g.W + x
}

// Field is a distribution field: one population per cell per direction,
// stored flat as (y*W + x)*Q + i. Two Fields are double-buffered by the
// Simulator; stage code never aliases them across the per-step swap.
type Field struct {
	grid Grid
	data []float64
}

// NewField allocates a zeroed distribution field over g.
func NewField(g Grid) *Field {
	return &Field{grid: g, data: make([]float64, g.Cells()*Q)}
}

// At returns the population moving in direction i at (x, y).
func (f *Field) At(x, y, i int) float64 {
	return f.data[(y*f.grid.W+x)*Q+i]
}

// Set stores the population moving in direction i at (x, y).
func (f *Field) Set(x, y, i int, v float64) {
	f.data[(y*f.grid.W+x)*Q+i] = v
}

// cell returns the Q-length population slice for (x, y).
func (f *Field) cell(x, y int) []float64 {
	base := (y*f.grid.W + x) * Q
	return f.data[base : base+Q : base+Q]
}

// Data exposes the raw backing slice, row-major by cell then direction.
func (f *Field) Data() []float64 {
	return f.data
}

// CopyFrom copies src's populations into f. The fields must share a grid.
func (f *Field) CopyFrom(src *Field) {
	copy(f.data, src.data)
}

// Macro holds the derived per-cell density and velocity. It is recomputed
// from a Field every step and is never an independent source of truth.
type Macro struct {
	grid Grid
	Rho  []float64 // density per cell
	Ux   []float64 // downstream velocity per cell
	Uy   []float64 // cross-channel velocity per cell
}

// NewMacro allocates macroscopic storage over g.
func NewMacro(g Grid) *Macro {
	n := g.Cells()
	return &Macro{
		grid: g,
		Rho:  make([]float64, n),
		Ux:   make([]float64, n),
		Uy:   make([]float64, n),
	}
}

// Speed fills dst with the velocity magnitude per cell and returns it.
// A nil dst allocates a fresh slice.
func (m *Macro) Speed(dst []float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(m.Rho))
	}
	for i := range m.Rho {
		dst[i] = speed(m.Ux[i], m.Uy[i])
	}
	return dst
}
