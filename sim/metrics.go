package sim

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Metrics aggregates per-run statistics about the flow field for final
// reporting. Useful for judging convergence and debugging behavior over
// time; everything here is derived from the macroscopic field.
type Metrics struct {
	StepsCompleted int     // steps executed so far
	TotalMass      float64 // density summed over the whole grid
	MeanSpeed      float64 // mean |u| over fluid cells
	MaxSpeed       float64 // max |u| over fluid cells
	FluidCells     int     // number of non-solid cells

	speed []float64 // scratch, reused across steps
}

// observe refreshes the aggregates from the current macroscopic field.
func (m *Metrics) observe(mac *Macro, solid []bool, step int) {
	m.StepsCompleted = step
	m.TotalMass = floats.Sum(mac.Rho)
	m.speed = mac.Speed(m.speed)

	var sum float64
	m.MaxSpeed = 0
	m.FluidCells = 0
	for i, s := range m.speed {
		if solid[i] {
			continue
		}
		sum += s
		if s > m.MaxSpeed {
			m.MaxSpeed = s
		}
		m.FluidCells++
	}
	if m.FluidCells > 0 {
		m.MeanSpeed = sum / float64(m.FluidCells)
	}
}

// Reynolds returns the Reynolds number realized by the current mean speed,
// a characteristic length, and the viscosity implied by tau.
func (m *Metrics) Reynolds(charLength, tau float64) float64 {
	nu := (2*tau - 1) / 6
	if nu == 0 {
		return 0
	}
	return m.MeanSpeed * charLength / nu
}

// Print displays the aggregated metrics at the end of a run.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Steps completed : %d\n", m.StepsCompleted)
	fmt.Printf("Total mass      : %.6f\n", m.TotalMass)
	fmt.Printf("Mean speed      : %.6f\n", m.MeanSpeed)
	fmt.Printf("Max speed       : %.6f\n", m.MaxSpeed)
	fmt.Printf("Fluid cells     : %d\n", m.FluidCells)
}
