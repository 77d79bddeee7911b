package sim

// EquilibriumCell computes the nine equilibrium populations for a cell with
// density rho and velocity (ux, uy), using the second-order expansion of the
// Maxwell–Boltzmann distribution:
//
//	feq_i = rho w_i (1 + 3 c_i·u + 4.5 (c_i·u)^2 - 1.5 u·u)
//
// Pure function; valid only while |u|/Cs stays below MaxMach.
func EquilibriumCell(rho, ux, uy float64, out *[Q]float64) {
	usq := 1.5 * (ux*ux + uy*uy)
	for i := 0; i < Q; i++ {
		cu := 3 * (float64(Cx[i])*ux + float64(Cy[i])*uy)
		out[i] = rho * Weights[i] * (1 + cu + 0.5*cu*cu - usq)
	}
}

// ComputeEquilibrium fills feq from the macroscopic field, cell by cell.
func ComputeEquilibrium(m *Macro, feq *Field) {
	g := feq.grid
	parallelRows(0, g.H, func(y int) {
		var eq [Q]float64
		for x := 0; x < g.W; x++ {
			idx := g.Idx(x, y)
			EquilibriumCell(m.Rho[idx], m.Ux[idx], m.Uy[idx], &eq)
			copy(feq.cell(x, y), eq[:])
		}
	})
}
