package sim

import "fmt"

// ConfigError reports an invalid parameter detected before a simulation is
// built. It never occurs mid-run.
type ConfigError struct {
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Msg)
}

// InstabilityError reports a numerical breakdown: non-positive density,
// non-finite values, or too many cells past the velocity stability bound.
// It carries the offending cell and step index; values are never clamped,
// since clamping would mask a modeling bug.
type InstabilityError struct {
	Step   int
	X, Y   int
	Rho    float64
	Speed  float64
	Reason string
}

func (e *InstabilityError) Error() string {
	return fmt.Sprintf("instability at step %d, cell (%d,%d): %s (rho=%g, |u|=%g)",
		e.Step, e.X, e.Y, e.Reason, e.Rho, e.Speed)
}
