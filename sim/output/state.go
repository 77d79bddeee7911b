package output

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
)

// latticeCs2 is the squared lattice speed of sound, duplicated here so the
// writer stays free of a sim dependency.
const latticeCs2 = 1.0 / 3.0

// WriteState writes the final flow state, one line per cell:
// x, y, ux, uy, |u|, pressure, solid flag. Solid cells report zero velocity
// and the reference pressure.
func WriteState(w io.Writer, width, height int, rho, ux, uy []float64, solid []bool) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			var vx, vy, speed, pressure float64
			flag := 0
			if solid[idx] {
				flag = 1
				pressure = latticeCs2
			} else {
				vx, vy = ux[idx], uy[idx]
				speed = math.Sqrt(vx*vx + vy*vy)
				pressure = rho[idx] * latticeCs2
			}
			if _, err := fmt.Fprintf(bw, "%d %d %.12E %.12E %.12E %.12E %d\n",
				x, y, vx, vy, speed, pressure, flag); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// WriteStateFile is WriteState to a freshly created file at path.
func WriteStateFile(path string, width, height int, rho, ux, uy []float64, solid []bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteState(f, width, height, rho, ux, uy, solid)
}
