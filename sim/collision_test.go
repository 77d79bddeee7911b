package sim

import (
	"math"
	"testing"

	"github.com/lbm-sim/lbm-sim/sim/geometry"
)

func TestCollide_EquilibriumIsAFixedPoint(t *testing.T) {
	// GIVEN a field already at its own equilibrium
	g := Grid{W: 6, H: 5}
	f := NewField(g)
	var eq [Q]float64
	EquilibriumCell(1.0, 0.04, 0.01, &eq)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			copy(f.cell(x, y), eq[:])
		}
	}
	m := NewMacro(g)
	Extract(f, m)
	feq := NewField(g)
	ComputeEquilibrium(m, feq)

	// WHEN collision is applied
	dst := NewField(g)
	Collide(f, feq, dst, 1/0.6, geometry.New(g.W, g.H))

	// THEN the distribution is unchanged within tolerance
	for i, v := range dst.Data() {
		if math.Abs(v-f.Data()[i]) > 1e-13 {
			t.Fatalf("entry %d moved: got %v, want %v", i, v, f.Data()[i])
		}
	}
}

func TestCollide_UnitOmegaLandsOnEquilibrium(t *testing.T) {
	// GIVEN a field away from equilibrium
	g := Grid{W: 2, H: 2}
	f := NewField(g)
	for i := range f.Data() {
		f.Data()[i] = 0.1 + 0.01*float64(i%Q)
	}
	m := NewMacro(g)
	Extract(f, m)
	feq := NewField(g)
	ComputeEquilibrium(m, feq)

	// WHEN collision runs with omega = 1 (tau = 1)
	dst := NewField(g)
	Collide(f, feq, dst, 1.0, geometry.New(g.W, g.H))

	// THEN the result is exactly the equilibrium field
	for i, v := range dst.Data() {
		if math.Abs(v-feq.Data()[i]) > 1e-15 {
			t.Fatalf("entry %d: got %v, want %v", i, v, feq.Data()[i])
		}
	}
}

func TestCollide_RelaxesTowardEquilibrium(t *testing.T) {
	// GIVEN a single off-equilibrium cell
	g := Grid{W: 1, H: 1}
	f := NewField(g)
	vals := [Q]float64{0.05, 0.15, 0.02, 0.13, 0.40, 0.09, 0.04, 0.10, 0.02}
	copy(f.cell(0, 0), vals[:])
	m := NewMacro(g)
	Extract(f, m)
	feq := NewField(g)
	ComputeEquilibrium(m, feq)

	// WHEN collision runs with omega = 1/tau for tau = 0.8
	omega := 1 / 0.8
	dst := NewField(g)
	Collide(f, feq, dst, omega, geometry.New(1, 1))

	// THEN each population moved the BGK fraction of its distance to feq
	for i := 0; i < Q; i++ {
		want := vals[i] - omega*(vals[i]-feq.At(0, 0, i))
		if math.Abs(dst.At(0, 0, i)-want) > 1e-15 {
			t.Errorf("direction %d: got %v, want %v", i, dst.At(0, 0, i), want)
		}
	}
}

func TestCollide_SolidCellsPassThrough(t *testing.T) {
	// GIVEN a mask with one solid cell
	g := Grid{W: 3, H: 1}
	mask := geometry.New(g.W, g.H)
	mask.SetSolid(1, 0, true)

	f := NewField(g)
	for i := range f.Data() {
		f.Data()[i] = float64(i + 1)
	}
	feq := NewField(g) // all zeros, to make any relaxation visible

	// WHEN collision runs
	dst := NewField(g)
	Collide(f, feq, dst, 1.0, mask)

	// THEN the solid cell's populations are copied through untouched
	for i := 0; i < Q; i++ {
		if dst.At(1, 0, i) != f.At(1, 0, i) {
			t.Errorf("solid cell dir %d: got %v, want %v", i, dst.At(1, 0, i), f.At(1, 0, i))
		}
	}
	// AND fluid cells were relaxed
	if dst.At(0, 0, 0) == f.At(0, 0, 0) {
		t.Error("fluid cell was not relaxed")
	}
}
