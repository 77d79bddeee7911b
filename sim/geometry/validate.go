package geometry

import (
	"errors"
	"fmt"
)

// Geometry errors are configuration errors: they are surfaced before a
// simulation starts, never mid-run.
var (
	ErrAllSolid   = errors.New("obstacle mask marks the entire domain solid")
	ErrNoFlowPath = errors.New("no connected fluid path from inlet to outlet")
)

// Validate checks that the mask matches the grid dimensions, leaves some
// fluid, and keeps at least one 4-connected fluid path from the inlet
// column (x=0) to the outlet column (x=W-1).
func Validate(m *Mask, w, h int) error {
	if m.W != w || m.H != h {
		return fmt.Errorf("mask is %dx%d, grid is %dx%d", m.W, m.H, w, h)
	}
	if m.CountSolid() == m.W*m.H {
		return ErrAllSolid
	}
	if !hasFlowPath(m) {
		return ErrNoFlowPath
	}
	return nil
}

// hasFlowPath runs a BFS over fluid cells from the inlet column and reports
// whether the outlet column is reachable.
func hasFlowPath(m *Mask) bool {
	seen := make([]bool, m.W*m.H)
	var queue []int
	for y := 0; y < m.H; y++ {
		if !m.Solid(0, y) {
			idx := y * m.W
			seen[idx] = true
			queue = append(queue, idx)
		}
	}
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		x, y := idx%m.W, idx/m.W
		if x == m.W-1 {
			return true
		}
		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := x+d[0], y+d[1]
			if nx < 0 || nx >= m.W || ny < 0 || ny >= m.H {
				continue
			}
			nidx := ny*m.W + nx
			if !seen[nidx] && !m.Solid(nx, ny) {
				seen[nidx] = true
				queue = append(queue, nidx)
			}
		}
	}
	return false
}
