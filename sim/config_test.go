package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	return Config{
		Width:          100,
		Height:         40,
		InflowVelocity: 0.04,
		Reynolds:       100,
		CharLength:     8,
		Steps:          100,
	}
}

func TestConfigValidate_AcceptsReferenceCase(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate_RejectsBadParameters(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tiny grid", func(c *Config) { c.Width = 2 }},
		{"negative steps", func(c *Config) { c.Steps = -1 }},
		{"negative ramp steps", func(c *Config) { c.RampSteps = -5 }},
		{"negative inflow", func(c *Config) { c.InflowVelocity = -0.1 }},
		{"inflow beyond stability bound", func(c *Config) { c.InflowVelocity = 0.5 }},
		{"unknown wall mode", func(c *Config) { c.Walls = "slippery" }},
		{"negative tolerance", func(c *Config) { c.InstabilityTolerance = -1 }},
		{"tau at stability limit", func(c *Config) { c.Tau = 0.5 }},
		{"tau below stability limit", func(c *Config) { c.Tau = 0.3 }},
		{"no tau and no reynolds", func(c *Config) { c.Reynolds = 0 }},
		{"no tau and no char length", func(c *Config) { c.CharLength = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a configuration error, got nil")
			}
			var cerr *ConfigError
			assert.ErrorAs(t, err, &cerr)
		})
	}
}

func TestRelaxationTime_DerivedFromReynolds(t *testing.T) {
	// GIVEN the reference flow: u=0.04, L=8, Re=100
	cfg := validConfig()

	// WHEN the relaxation time is resolved
	tau, err := cfg.RelaxationTime()

	// THEN tau = 3 u L / Re + 1/2
	assert.NoError(t, err)
	assert.InDelta(t, 3*0.04*8/100+0.5, tau, 1e-15)
}

func TestRelaxationTime_DirectTauWins(t *testing.T) {
	// GIVEN both tau and Reynolds parameters
	cfg := validConfig()
	cfg.Tau = 0.9

	// WHEN the relaxation time is resolved
	tau, err := cfg.RelaxationTime()

	// THEN the explicit tau is used as-is
	assert.NoError(t, err)
	assert.Equal(t, 0.9, tau)
}

func TestConfigValidate_UnstableReynoldsCombination(t *testing.T) {
	// GIVEN a Reynolds/length combination that would push tau to the limit:
	// nu -> 0 as Re -> inf, so tau -> 0.5 from above; the derived tau is
	// only rejected once it actually hits the bound
	cfg := validConfig()
	cfg.Reynolds = 1e18

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected a configuration error for tau at the stability limit")
	}
}
