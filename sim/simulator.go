package sim

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lbm-sim/lbm-sim/sim/geometry"
)

// State is the lifecycle phase of a Simulator.
type State int

const (
	StateInitialized State = iota
	StateRunning
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Simulator is the timestep driver. It owns the distribution buffers, the
// obstacle mask, and the run lifecycle; stages never hold a buffer across
// the per-step swap. No transition leaves Failed.
type Simulator struct {
	Config  Config
	Grid    Grid
	Metrics *Metrics

	mask    *geometry.Mask // walls folded in when the bounce-back mode is on
	tau     float64
	omega   float64
	profile []float64 // prescribed inlet ux per row, at full inflow speed
	ramp    []float64 // scratch for the scaled profile during ramp-up

	// cur holds the current distribution, post the post-collision scratch,
	// next the streaming target. cur and next swap exactly once per step.
	cur, post, next *Field
	macro           *Macro
	feq             *Field

	state   State
	stepIdx int
	lastErr error
	stop    atomic.Bool
}

// NewSimulator validates the configuration and geometry, initializes the
// distribution field at equilibrium for the inflow profile, and returns a
// driver in the Initialized state. The supplied mask is cloned; the caller
// keeps ownership of its copy.
func NewSimulator(cfg Config, mask *geometry.Mask) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tau, err := cfg.RelaxationTime()
	if err != nil {
		return nil, err
	}

	g := Grid{W: cfg.Width, H: cfg.Height}
	if mask == nil {
		mask = geometry.New(g.W, g.H)
	}
	mask = mask.Clone()
	if cfg.Walls == WallsBounceBack {
		for x := 0; x < g.W; x++ {
			mask.SetSolid(x, 0, true)
			mask.SetSolid(x, g.H-1, true)
		}
	}
	if err := geometry.Validate(mask, g.W, g.H); err != nil {
		return nil, err
	}

	s := &Simulator{
		Config:  cfg,
		Grid:    g,
		Metrics: &Metrics{},
		mask:    mask,
		tau:     tau,
		omega:   1 / tau,
		profile: inflowProfile(cfg),
		cur:     NewField(g),
		post:    NewField(g),
		next:    NewField(g),
		macro:   NewMacro(g),
		feq:     NewField(g),
		state:   StateInitialized,
	}
	s.initDistribution()
	return s, nil
}

// inflowProfile builds the prescribed inlet velocity per row: the uniform
// inflow speed with a slight sinusoidal perturbation to trigger the wake
// instability.
func inflowProfile(cfg Config) []float64 {
	profile := make([]float64, cfg.Height)
	ly := float64(cfg.Height - 1)
	for y := range profile {
		profile[y] = cfg.InflowVelocity *
			(1 + cfg.Perturbation*math.Sin(float64(y)/ly*2*math.Pi))
	}
	return profile
}

// rampFactor returns the fraction of the configured inflow speed applied
// at the current step. A RampSteps of n raises the inlet linearly over the
// first n steps; starting impulsively at full speed launches a pressure
// wave through the whole domain.
func (s *Simulator) rampFactor() float64 {
	if s.Config.RampSteps <= 0 {
		return 1
	}
	f := float64(s.stepIdx+1) / float64(s.Config.RampSteps)
	if f > 1 {
		f = 1
	}
	return f
}

// inletProfile returns the prescribed inlet velocities for the current
// step, scaled down while the ramp-up is in progress.
func (s *Simulator) inletProfile() []float64 {
	f := s.rampFactor()
	if f >= 1 {
		return s.profile
	}
	if s.ramp == nil {
		s.ramp = make([]float64, len(s.profile))
	}
	for i, v := range s.profile {
		s.ramp[i] = v * f
	}
	return s.ramp
}

// initDistribution sets every cell to the equilibrium of unit density and
// the first step's inlet velocity, so the run starts without a velocity
// jump at the inlet.
func (s *Simulator) initDistribution() {
	var eq [Q]float64
	f := s.rampFactor()
	for y := 0; y < s.Grid.H; y++ {
		EquilibriumCell(1.0, s.profile[y]*f, 0, &eq)
		for x := 0; x < s.Grid.W; x++ {
			copy(s.cur.cell(x, y), eq[:])
		}
	}
}

// Step executes one timestep: outflow correction, macroscopic extraction
// with stability checks, Zou–He inflow, equilibrium, collision, bounce-back,
// streaming, and the buffer swap. It returns the instability error that
// moved the driver to Failed, if any.
func (s *Simulator) Step() error {
	switch s.state {
	case StateCompleted, StateFailed:
		return fmt.Errorf("cannot step a %s simulation", s.state)
	}
	s.state = StateRunning

	applyOutflow(s.cur, s.mask)
	Extract(s.cur, s.macro)
	if err := s.checkStability(); err != nil {
		s.fail(err)
		return err
	}
	applyInflowMacro(s.cur, s.macro, s.inletProfile(), s.mask)
	ComputeEquilibrium(s.macro, s.feq)
	applyZouHeInflow(s.cur, s.feq, s.mask)
	Collide(s.cur, s.feq, s.post, s.omega, s.mask)
	applyBounceBack(s.cur, s.post, s.mask)
	Stream(s.post, s.next)
	s.cur, s.next = s.next, s.cur

	s.stepIdx++
	s.Metrics.observe(s.macro, s.mask.Raw(), s.stepIdx)
	if s.Config.Steps > 0 && s.stepIdx >= s.Config.Steps {
		s.state = StateCompleted
	}
	return nil
}

// StepN executes up to n steps, stopping early on completion or failure.
func (s *Simulator) StepN(n int) error {
	for i := 0; i < n && s.state != StateCompleted; i++ {
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Run steps to completion. Cancellation is cooperative: the context and any
// pending Stop request are checked between steps, never mid-stage, so the
// buffers are always left consistent. A Steps value of 0 runs until the
// context is cancelled or Stop is called.
func (s *Simulator) Run(ctx context.Context) error {
	s.stop.Store(false)
	for s.state != StateCompleted {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.stop.Load() {
			logrus.Infof("[step %06d] stop requested, pausing run", s.stepIdx)
			return nil
		}
		if err := s.Step(); err != nil {
			return err
		}
		if s.Config.ProgressEvery > 0 && s.stepIdx%s.Config.ProgressEvery == 0 {
			logrus.Infof("[step %06d] mass=%.4f meanU=%.5f maxU=%.5f",
				s.stepIdx, s.Metrics.TotalMass, s.Metrics.MeanSpeed, s.Metrics.MaxSpeed)
		}
	}
	return nil
}

// Stop requests that a concurrent Run return after the step in progress.
// The simulation stays Running and can be resumed with another Run or Step.
// Stop is the only method safe to call from another goroutine; everything
// else belongs to the driving goroutine.
func (s *Simulator) Stop() {
	s.stop.Store(true)
}

// checkStability scans the freshly extracted macroscopic field. Non-finite
// or non-positive densities fail immediately; velocity magnitudes past the
// stability bound are tolerated up to the configured number of cells per
// step.
func (s *Simulator) checkStability() error {
	solid := s.mask.Raw()
	overLimit := 0
	limitSq := SpeedLimit * SpeedLimit
	for y := 0; y < s.Grid.H; y++ {
		for x := 0; x < s.Grid.W; x++ {
			idx := s.Grid.Idx(x, y)
			if solid[idx] {
				continue
			}
			rho, ux, uy := s.macro.Rho[idx], s.macro.Ux[idx], s.macro.Uy[idx]
			switch {
			case math.IsNaN(rho) || math.IsInf(rho, 0) || math.IsNaN(ux) || math.IsNaN(uy):
				return &InstabilityError{Step: s.stepIdx, X: x, Y: y,
					Rho: rho, Speed: speed(ux, uy), Reason: "non-finite value"}
			case rho <= 0:
				return &InstabilityError{Step: s.stepIdx, X: x, Y: y,
					Rho: rho, Speed: speed(ux, uy), Reason: "non-positive density"}
			case ux*ux+uy*uy >= limitSq:
				overLimit++
				if overLimit > s.Config.InstabilityTolerance {
					return &InstabilityError{Step: s.stepIdx, X: x, Y: y,
						Rho: rho, Speed: speed(ux, uy), Reason: "velocity beyond stability bound"}
				}
			}
		}
	}
	return nil
}

func (s *Simulator) fail(err error) {
	s.state = StateFailed
	s.lastErr = err
	logrus.Errorf("simulation failed: %v", err)
}

// State returns the current lifecycle phase.
func (s *Simulator) State() State { return s.state }

// StepIndex returns the number of completed steps.
func (s *Simulator) StepIndex() int { return s.stepIdx }

// Err returns the instability that moved the driver to Failed, or nil.
func (s *Simulator) Err() error { return s.lastErr }

// Tau returns the effective relaxation time.
func (s *Simulator) Tau() float64 { return s.tau }

// Macro returns the macroscopic field of the current step for external
// consumers (renderers, writers, metrics loggers). Read-only by contract.
func (s *Simulator) Macro() *Macro { return s.macro }

// Mask returns the effective solid mask, with lateral walls folded in when
// the bounce-back wall mode is active. Read-only by contract.
func (s *Simulator) Mask() *geometry.Mask { return s.mask }
