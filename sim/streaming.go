package sim

// Stream propagates post-collision populations to their neighbors:
// dst(x, y, i) = src(x - cx_i, y - cy_i, i), with periodic wrapping at the
// domain border. This is the only operator with spatial coupling; it reads
// exclusively from src and writes exclusively to dst. Border entries owned
// by a non-periodic boundary are overwritten by the boundary pass of the
// following step.
func Stream(src, dst *Field) {
	g := src.grid
	parallelRows(0, g.H, func(y int) {
		for i := 0; i < Q; i++ {
			sy := y - Cy[i]
			if sy < 0 {
				sy += g.H
			} else if sy >= g.H {
				sy -= g.H
			}
			for x := 0; x < g.W; x++ {
				sx := x - Cx[i]
				if sx < 0 {
					sx += g.W
				} else if sx >= g.W {
					sx -= g.W
				}
				dst.Set(x, y, i, src.At(sx, sy, i))
			}
		}
	})
}
