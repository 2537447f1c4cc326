// Package problems provides reference ODE right-hand sides used by
// the CLI and the test suite.
//
// Each problem implements [ode.System]; some also implement
// [ode.Hamiltonian] to expose a conserved energy for drift checks.
// Decay carries its closed-form solution for accuracy checks.
package problems
