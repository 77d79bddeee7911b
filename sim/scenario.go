package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lbm-sim/lbm-sim/sim/geometry"
)

// Scenario is the top-level run description loaded from a YAML file: the
// engine configuration, the obstacle, and the optional output consumers.
type Scenario struct {
	Sim      Config        `yaml:"sim"`
	Obstacle geometry.Spec `yaml:"obstacle,omitempty"`
	Output   OutputSpec    `yaml:"output,omitempty"`
}

// OutputSpec names the external consumers of the macroscopic field. The
// engine itself never touches these paths.
type OutputSpec struct {
	GIFPath       string `yaml:"gif_path,omitempty"`
	CSVPath       string `yaml:"csv_path,omitempty"`
	StepsPerFrame int    `yaml:"steps_per_frame,omitempty"` // default 100
	GIFDelay      int    `yaml:"gif_delay,omitempty"`       // hundredths of a second per frame
	Scale         int    `yaml:"scale,omitempty"`           // pixels per cell
}

// Normalize fills unset scenario fields with their defaults: the obstacle's
// characteristic length when a Reynolds-derived relaxation time needs one,
// and the rendering cadence.
func (sc *Scenario) Normalize() {
	if sc.Sim.Tau == 0 && sc.Sim.CharLength == 0 {
		sc.Sim.CharLength = sc.Obstacle.CharacteristicLength()
	}
	if sc.Output.StepsPerFrame <= 0 {
		sc.Output.StepsPerFrame = 100
	}
	if sc.Output.GIFDelay <= 0 {
		sc.Output.GIFDelay = 2
	}
	if sc.Output.Scale <= 0 {
		sc.Output.Scale = 2
	}
}

// Validate checks the scenario end to end: obstacle type, engine
// configuration, and the built mask's geometry.
func (sc *Scenario) Validate() error {
	if err := sc.Obstacle.Validate(); err != nil {
		return err
	}
	if err := sc.Sim.Validate(); err != nil {
		return err
	}
	mask, err := geometry.Build(sc.Obstacle, sc.Sim.Width, sc.Sim.Height)
	if err != nil {
		return err
	}
	return geometry.Validate(mask, sc.Sim.Width, sc.Sim.Height)
}

// LoadScenario reads and normalizes a scenario file. Validation is left to
// the caller so that flag overrides can be applied first.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	sc.Normalize()
	return &sc, nil
}
