package sim

import "fmt"

// WallMode selects the lateral (top/bottom) boundary treatment.
const (
	WallsPeriodic   = "periodic"
	WallsBounceBack = "bounce-back"
)

var validWallModes = map[string]bool{
	"": true, WallsPeriodic: true, WallsBounceBack: true,
}

// Config holds the physical and numerical parameters fixed at
// initialization. Either Tau is given directly, or it is derived from a
// target Reynolds number and a characteristic length (typically the
// obstacle radius) via nu = u L / Re, tau = 3 nu + 1/2.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	InflowVelocity float64 `yaml:"inflow_velocity"`         // uLB, lattice units
	Perturbation   float64 `yaml:"perturbation,omitempty"`  // relative sinusoidal inlet perturbation
	Reynolds       float64 `yaml:"reynolds,omitempty"`      // target Reynolds number
	CharLength     float64 `yaml:"char_length,omitempty"`   // characteristic length, cells
	Tau            float64 `yaml:"tau,omitempty"`           // relaxation time; overrides Reynolds when set

	Steps     int    `yaml:"steps"`
	RampSteps int    `yaml:"ramp_steps,omitempty"` // inlet ramp-up steps; 0 starts impulsively
	Walls     string `yaml:"walls,omitempty"`      // periodic (default) | bounce-back

	// InstabilityTolerance is the number of cells per step allowed past the
	// velocity stability bound before the run is declared Failed.
	InstabilityTolerance int `yaml:"instability_tolerance,omitempty"`

	// ProgressEvery is the step cadence of Run's progress log lines
	// (0 disables them).
	ProgressEvery int `yaml:"progress_every,omitempty"`
}

// RelaxationTime resolves the effective relaxation time from Tau or from
// the Reynolds parameters. It does not range-check the result; Validate
// does.
func (c *Config) RelaxationTime() (float64, error) {
	if c.Tau != 0 {
		return c.Tau, nil
	}
	if c.Reynolds <= 0 {
		return 0, &ConfigError{Field: "reynolds", Msg: "must be > 0 when tau is not set"}
	}
	if c.CharLength <= 0 {
		return 0, &ConfigError{Field: "char_length", Msg: "must be > 0 when tau is not set"}
	}
	nu := c.InflowVelocity * c.CharLength / c.Reynolds
	return 3*nu + 0.5, nil
}

// Validate checks every parameter against the stability constraints. A
// failing config never enters the Running state.
func (c *Config) Validate() error {
	if c.Width < 3 || c.Height < 3 {
		return &ConfigError{Field: "width/height", Msg: fmt.Sprintf("grid must be at least 3x3, got %dx%d", c.Width, c.Height)}
	}
	if c.Steps < 0 {
		return &ConfigError{Field: "steps", Msg: fmt.Sprintf("must be >= 0, got %d", c.Steps)}
	}
	if c.RampSteps < 0 {
		return &ConfigError{Field: "ramp_steps", Msg: fmt.Sprintf("must be >= 0, got %d", c.RampSteps)}
	}
	if c.InflowVelocity < 0 {
		return &ConfigError{Field: "inflow_velocity", Msg: fmt.Sprintf("must be >= 0, got %g", c.InflowVelocity)}
	}
	if c.InflowVelocity >= SpeedLimit {
		return &ConfigError{Field: "inflow_velocity", Msg: fmt.Sprintf(
			"%g exceeds the stability bound %.4g (Mach %.1f)", c.InflowVelocity, SpeedLimit, MaxMach)}
	}
	if !validWallModes[c.Walls] {
		return &ConfigError{Field: "walls", Msg: fmt.Sprintf("unknown mode %q", c.Walls)}
	}
	if c.InstabilityTolerance < 0 {
		return &ConfigError{Field: "instability_tolerance", Msg: "must be >= 0"}
	}
	tau, err := c.RelaxationTime()
	if err != nil {
		return err
	}
	if tau <= 0.5 {
		return &ConfigError{Field: "tau", Msg: fmt.Sprintf(
			"%.6g is outside the stable range (must be > 0.5); lower the Reynolds number or refine the grid", tau)}
	}
	return nil
}
