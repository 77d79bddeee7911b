// Package sim provides the core D2Q9 lattice Boltzmann engine.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - lattice.go: the D2Q9 direction set, weights, and stability constants
//   - grid.go: the flat distribution field and macroscopic field layouts
//   - simulator.go: the timestep driver, buffer ownership, and state machine
//
// # Architecture
//
// The per-step cycle follows the classic flow-around-a-cylinder formulation:
// outflow correction, macroscopic extraction, Zou–He inflow, equilibrium,
// BGK collision, obstacle bounce-back, then streaming into the next buffer.
// Every stage except streaming is local to a cell; streaming reads only the
// post-collision buffer and writes only the next buffer. The Simulator is
// the sole owner of the buffers and the only place they are swapped.
//
// Obstacle geometry lives in sim/geometry; renderers and state writers that
// consume the macroscopic output live in sim/output. The core performs no
// file I/O.
package sim
