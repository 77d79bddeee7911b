package sim

import (
	"math"
	"testing"
)

func TestLattice_WeightsSumToOne(t *testing.T) {
	// GIVEN the D2Q9 weight set
	sum := 0.0
	for _, w := range Weights {
		sum += w
	}

	// THEN the weights form a partition of unity
	if math.Abs(sum-1) > 1e-15 {
		t.Errorf("weights sum: got %v, want 1", sum)
	}
}

func TestLattice_OppositeReversesDirections(t *testing.T) {
	// GIVEN every direction i
	for i := 0; i < Q; i++ {
		o := Opposite(i)

		// THEN direction opp(i) points exactly the reverse way
		if Cx[o] != -Cx[i] || Cy[o] != -Cy[i] {
			t.Errorf("direction %d: opposite %d is (%d,%d), want (%d,%d)",
				i, o, Cx[o], Cy[o], -Cx[i], -Cy[i])
		}
		// AND opposite is an involution
		if Opposite(o) != i {
			t.Errorf("Opposite(Opposite(%d)) = %d, want %d", i, Opposite(o), i)
		}
	}

	// AND the rest direction is self-opposite
	if Opposite(4) != 4 || Cx[4] != 0 || Cy[4] != 0 {
		t.Errorf("rest direction: got index %d vector (%d,%d)", Opposite(4), Cx[4], Cy[4])
	}
}

func TestLattice_ZeroNetMomentumAtRest(t *testing.T) {
	// GIVEN the weighted direction set
	var mx, my float64
	for i := 0; i < Q; i++ {
		mx += Weights[i] * float64(Cx[i])
		my += Weights[i] * float64(Cy[i])
	}

	// THEN the first weighted moment vanishes
	if math.Abs(mx) > 1e-15 || math.Abs(my) > 1e-15 {
		t.Errorf("net momentum: got (%v, %v), want (0, 0)", mx, my)
	}
}

func TestLattice_SecondOrderIsotropy(t *testing.T) {
	// GIVEN the weighted second moments sum_i w_i c_i c_j
	var mxx, myy, mxy float64
	for i := 0; i < Q; i++ {
		mxx += Weights[i] * float64(Cx[i]) * float64(Cx[i])
		myy += Weights[i] * float64(Cy[i]) * float64(Cy[i])
		mxy += Weights[i] * float64(Cx[i]) * float64(Cy[i])
	}

	// THEN they equal Cs2 * identity
	if math.Abs(mxx-Cs2) > 1e-15 || math.Abs(myy-Cs2) > 1e-15 {
		t.Errorf("diagonal second moments: got (%v, %v), want %v", mxx, myy, Cs2)
	}
	if math.Abs(mxy) > 1e-15 {
		t.Errorf("off-diagonal second moment: got %v, want 0", mxy)
	}
}

func TestLattice_DirectionGroupsPartitionByCx(t *testing.T) {
	// GIVEN the inlet/outlet direction groups
	for _, i := range downstreamDirs {
		if Cx[i] != 1 {
			t.Errorf("downstream direction %d has cx=%d", i, Cx[i])
		}
	}
	for _, i := range transverseDirs {
		if Cx[i] != 0 {
			t.Errorf("transverse direction %d has cx=%d", i, Cx[i])
		}
	}
	for _, i := range upstreamDirs {
		if Cx[i] != -1 {
			t.Errorf("upstream direction %d has cx=%d", i, Cx[i])
		}
	}
}
