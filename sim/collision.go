package sim

import "github.com/lbm-sim/lbm-sim/sim/geometry"

// Collide relaxes src toward feq at rate omega, writing the post-collision
// populations into dst: f' = f - omega (f - feq). Purely local per cell and
// direction. Solid cells are copied through unchanged; bounce-back
// overwrites them in the same step, so relaxing them would be wasted work.
func Collide(src, feq, dst *Field, omega float64, mask *geometry.Mask) {
	g := src.grid
	parallelRows(0, g.H, func(y int) {
		for x := 0; x < g.W; x++ {
			in := src.cell(x, y)
			out := dst.cell(x, y)
			if mask != nil && mask.Solid(x, y) {
				copy(out, in)
				continue
			}
			eq := feq.cell(x, y)
			for i := 0; i < Q; i++ {
				out[i] = in[i] - omega*(in[i]-eq[i])
			}
		}
	})
}
