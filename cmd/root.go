package cmd

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lbm-sim/lbm-sim/sim"
	"github.com/lbm-sim/lbm-sim/sim/geometry"
	"github.com/lbm-sim/lbm-sim/sim/output"
)

var (
	// CLI flags for the engine configuration
	scenarioPath   string  // YAML scenario file; overrides the individual flags below
	logLevel       string  // Log verbosity level
	width          int     // Grid width (downstream extent)
	height         int     // Grid height (cross-channel extent)
	steps          int     // Number of timesteps to run
	rampSteps      int     // Inlet ramp-up steps (0 starts impulsively)
	inflowVelocity float64 // Inlet speed in lattice units
	perturbation   float64 // Relative sinusoidal inlet perturbation
	reynolds       float64 // Target Reynolds number (used when tau is 0)
	tau            float64 // Relaxation time; overrides reynolds when set
	walls          string  // Lateral wall mode (periodic, bounce-back)
	progressEvery  int     // Step cadence of progress log lines

	// CLI flags for the obstacle
	obstacleType string  // Obstacle shape (none, circle, ellipse, rect, airfoil)
	obstacleCX   float64 // Obstacle center x
	obstacleCY   float64 // Obstacle center y
	obstacleR    float64 // Circle radius

	// CLI flags for output consumers
	gifPath       string // Animated GIF of the speed field ("" disables)
	csvPath       string // Final-state dump ("" disables)
	stepsPerFrame int    // Timesteps between rendered frames
	renderScale   int    // Pixels per cell in rendered frames
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "lbm-sim",
	Short: "D2Q9 lattice Boltzmann flow simulator",
}

// buildScenario resolves the effective scenario from the YAML file or, in
// its absence, from the individual flags.
func buildScenario() (*sim.Scenario, error) {
	if scenarioPath != "" {
		return sim.LoadScenario(scenarioPath)
	}
	sc := &sim.Scenario{
		Sim: sim.Config{
			Width:          width,
			Height:         height,
			InflowVelocity: inflowVelocity,
			Perturbation:   perturbation,
			Reynolds:       reynolds,
			Tau:            tau,
			Steps:          steps,
			RampSteps:      rampSteps,
			Walls:          walls,
			ProgressEvery:  progressEvery,
		},
		Obstacle: geometry.Spec{
			Type: obstacleType,
			CX:   obstacleCX,
			CY:   obstacleCY,
			R:    obstacleR,
		},
		Output: sim.OutputSpec{
			GIFPath:       gifPath,
			CSVPath:       csvPath,
			StepsPerFrame: stepsPerFrame,
			Scale:         renderScale,
		},
	}
	sc.Normalize()
	return sc, nil
}

// runCmd executes the simulation using parameters from the scenario or CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the flow simulation",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		sc, err := buildScenario()
		if err != nil {
			logrus.Fatalf("Unable to load scenario: %v", err)
		}
		if err := sc.Validate(); err != nil {
			logrus.Fatalf("Invalid scenario: %v", err)
		}

		mask, err := geometry.Build(sc.Obstacle, sc.Sim.Width, sc.Sim.Height)
		if err != nil {
			logrus.Fatalf("Unable to build obstacle: %v", err)
		}

		s, err := sim.NewSimulator(sc.Sim, mask)
		if err != nil {
			logrus.Fatalf("Unable to initialize simulation: %v", err)
		}
		logrus.Infof("Starting %dx%d simulation: %d steps, tau=%.4f, inflow=%.4f, obstacle=%s",
			sc.Sim.Width, sc.Sim.Height, sc.Sim.Steps, s.Tau(), sc.Sim.InflowVelocity, sc.Obstacle.Type)

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()
		go func() {
			<-ctx.Done()
			s.Stop()
		}()

		startTime := time.Now()
		if err := runScenario(ctx, s, sc); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Infof("Simulation finished in %s (state: %s)", time.Since(startTime), s.State())

		s.Metrics.Print()
		if sc.Sim.CharLength > 0 {
			logrus.Infof("Realized Reynolds number: %.2f", s.Metrics.Reynolds(sc.Sim.CharLength, s.Tau()))
		}

		if sc.Output.CSVPath != "" {
			m := s.Macro()
			if err := output.WriteStateFile(sc.Output.CSVPath, sc.Sim.Width, sc.Sim.Height,
				m.Rho, m.Ux, m.Uy, s.Mask().Raw()); err != nil {
				logrus.Fatalf("Unable to write final state: %v", err)
			}
			logrus.Infof("Final state written to %s", sc.Output.CSVPath)
		}
	},
}

// runScenario drives the step loop, capturing a frame every StepsPerFrame
// steps when a GIF path is configured.
func runScenario(ctx context.Context, s *sim.Simulator, sc *sim.Scenario) error {
	if sc.Output.GIFPath == "" {
		return s.Run(ctx)
	}

	norm := 3 * sc.Sim.InflowVelocity
	if norm == 0 {
		norm = 1.0 / 3
	}
	r := output.NewRenderer(sc.Sim.Width, sc.Sim.Height, sc.Output.Scale, sc.Output.GIFDelay, norm)

	var speed []float64
	for s.State() != sim.StateCompleted {
		if err := ctx.Err(); err != nil {
			break
		}
		if err := s.StepN(sc.Output.StepsPerFrame); err != nil {
			return err
		}
		speed = s.Macro().Speed(speed)
		r.AddFrame(speed, s.Mask().Raw())
		logrus.Debugf("[step %06d] captured frame %d", s.StepIndex(), r.FrameCount())
	}

	if err := r.SaveGIF(sc.Output.GIFPath); err != nil {
		return err
	}
	logrus.Infof("Wrote %d frames to %s", r.FrameCount(), sc.Output.GIFPath)
	return nil
}

// validateCmd checks a scenario without running it
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a scenario file without running it",
	Run: func(cmd *cobra.Command, args []string) {
		if scenarioPath == "" {
			logrus.Fatalf("validate requires --scenario")
		}
		sc, err := sim.LoadScenario(scenarioPath)
		if err != nil {
			logrus.Fatalf("Unable to load scenario: %v", err)
		}
		if err := sc.Validate(); err != nil {
			logrus.Fatalf("Invalid scenario: %v", err)
		}
		logrus.Infof("Scenario %s is valid", scenarioPath)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file (overrides individual flags)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// engine configs
	runCmd.Flags().IntVar(&width, "width", 420, "Grid width in cells")
	runCmd.Flags().IntVar(&height, "height", 180, "Grid height in cells")
	runCmd.Flags().IntVar(&steps, "steps", 20000, "Number of timesteps")
	runCmd.Flags().IntVar(&rampSteps, "ramp-steps", 200, "Steps over which the inlet ramps up from zero (0 starts impulsively)")
	runCmd.Flags().Float64Var(&inflowVelocity, "inflow-velocity", 0.04, "Inlet speed in lattice units")
	runCmd.Flags().Float64Var(&perturbation, "perturbation", 1e-4, "Relative sinusoidal inlet perturbation")
	runCmd.Flags().Float64Var(&reynolds, "reynolds", 220, "Target Reynolds number")
	runCmd.Flags().Float64Var(&tau, "tau", 0, "Relaxation time (overrides --reynolds when set)")
	runCmd.Flags().StringVar(&walls, "walls", "periodic", "Lateral wall mode (periodic, bounce-back)")
	runCmd.Flags().IntVar(&progressEvery, "progress-every", 1000, "Steps between progress log lines (0 disables)")

	// obstacle configs
	runCmd.Flags().StringVar(&obstacleType, "obstacle", "circle", "Obstacle shape (none, circle, ellipse, rect, airfoil)")
	runCmd.Flags().Float64Var(&obstacleCX, "cx", 105, "Obstacle center x")
	runCmd.Flags().Float64Var(&obstacleCY, "cy", 90, "Obstacle center y")
	runCmd.Flags().Float64Var(&obstacleR, "r", 20, "Circle obstacle radius")

	// output configs
	runCmd.Flags().StringVar(&gifPath, "gif", "", "Animated GIF output path (empty disables rendering)")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "Final-state output path (empty disables)")
	runCmd.Flags().IntVar(&stepsPerFrame, "steps-per-frame", 100, "Timesteps between rendered frames")
	runCmd.Flags().IntVar(&renderScale, "scale", 2, "Pixels per cell in rendered frames")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
}
