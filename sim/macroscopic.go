package sim

import "math"

// Extract recomputes density and velocity from f into m:
// rho = sum_i f_i and u = sum_i f_i c_i / rho, per cell. Stability checks
// happen separately in the Simulator so that Extract stays a pure map;
// cells with rho == 0 get zero velocity here and are flagged there.
func Extract(f *Field, m *Macro) {
	g := f.grid
	parallelRows(0, g.H, func(y int) {
		for x := 0; x < g.W; x++ {
			c := f.cell(x, y)
			rho := c[0] + c[1] + c[2] + c[3] + c[4] + c[5] + c[6] + c[7] + c[8]
			ux := c[0] + c[1] + c[2] - c[6] - c[7] - c[8]
			uy := c[0] - c[2] + c[3] - c[5] + c[6] - c[8]
			idx := g.Idx(x, y)
			m.Rho[idx] = rho
			if rho != 0 {
				m.Ux[idx] = ux / rho
				m.Uy[idx] = uy / rho
			} else {
				m.Ux[idx] = 0
				m.Uy[idx] = 0
			}
		}
	})
}

func speed(ux, uy float64) float64 {
	return math.Sqrt(ux*ux + uy*uy)
}
