package sim

import "math"

// Q is the number of discrete velocities in the D2Q9 lattice.
const Q = 9

// Cs2 is the squared lattice speed of sound (1/3 in lattice units).
const Cs2 = 1.0 / 3.0

// MaxMach is the Mach number beyond which the second-order equilibrium
// expansion stops being a faithful approximation. Inflow speeds are
// rejected above this bound at configuration time, and runtime excursions
// past it count toward the instability tolerance.
const MaxMach = 0.4

var (
	// Cs is the lattice speed of sound.
	Cs = math.Sqrt(Cs2)

	// SpeedLimit is the largest velocity magnitude (in lattice units) the
	// method is trusted at: MaxMach * Cs.
	SpeedLimit = MaxMach * Cs
)

// Discrete velocity set. Index i and index 8-i point opposite ways, with
// the rest direction (4) self-opposite. x grows downstream, y across the
// channel. Directions 0..2 move downstream (cx=+1), 3..5 are transverse
// (cx=0), 6..8 move upstream (cx=-1); the boundary handler relies on that
// grouping at the inlet and outlet columns.
var (
	Cx = [Q]int{1, 1, 1, 0, 0, 0, -1, -1, -1}
	Cy = [Q]int{1, 0, -1, 1, 0, -1, 1, 0, -1}

	// Weights is the quadrature weight per direction; the weights sum to 1.
	Weights = [Q]float64{
		1.0 / 36, 1.0 / 9, 1.0 / 36,
		1.0 / 9, 4.0 / 9, 1.0 / 9,
		1.0 / 36, 1.0 / 9, 1.0 / 36,
	}
)

// Direction groups by downstream velocity component, used by the inlet and
// outlet conditions.
var (
	downstreamDirs = [3]int{0, 1, 2} // cx = +1
	transverseDirs = [3]int{3, 4, 5} // cx = 0
	upstreamDirs   = [3]int{6, 7, 8} // cx = -1
)

// Opposite returns the index of the direction pointing the reverse way.
func Opposite(i int) int {
	return Q - 1 - i
}
