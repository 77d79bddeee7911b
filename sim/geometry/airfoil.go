package geometry

import "math"

// Airfoil marks a NACA 4-digit profile as solid. The chord spans chord
// cells starting at leading-edge cell (lx, ly); camber m, camber position p,
// and thickness t are the usual NACA fractions (e.g. 0.02, 0.4, 0.12).
func Airfoil(w, h int, lx, ly, chord, m, p, t float64) *Mask {
	return FromFunc(w, h, func(x, y int) bool {
		if chord <= 0 {
			return false
		}
		xn := (float64(x) - lx) / chord
		yn := (float64(y) - ly) / chord
		if xn < 0 || xn > 1 {
			return false
		}

		// Camber line and slope.
		var yc, dycdx float64
		if p > 0 && xn < p {
			yc = (m / (p * p)) * (2*p*xn - xn*xn)
			dycdx = (2 * m / (p * p)) * (p - xn)
		} else {
			yc = (m / ((1 - p) * (1 - p))) * ((1 - 2*p) + 2*p*xn - xn*xn)
			dycdx = (2 * m / ((1 - p) * (1 - p))) * (p - xn)
		}
		theta := math.Atan(dycdx)

		// NACA 00xx thickness distribution.
		yt := 5 * t * (0.2969*math.Sqrt(xn) -
			0.1260*xn -
			0.3516*xn*xn +
			0.2843*xn*xn*xn -
			0.1015*xn*xn*xn*xn)

		yUpper := yc + yt*math.Cos(theta)
		yLower := yc - yt*math.Cos(theta)
		return yn >= yLower && yn <= yUpper
	})
}
