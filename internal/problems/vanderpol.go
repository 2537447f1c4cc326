package problems

import "github.com/BanaanKiamanesh/Shilling/internal/ode"

// VanDerPol implements the Van der Pol oscillator.
// State: [x, y] where y = dx/dt
// Equations:
//
//	dx/dt = y
//	dy/dt = mu(1 - x^2)y - x
type VanDerPol struct {
	mu float64 // Nonlinearity parameter
}

func NewVanDerPol() *VanDerPol {
	return &VanDerPol{mu: 1.0}
}

func (v *VanDerPol) Dim() int { return 2 }

func (v *VanDerPol) Derive(_ float64, s ode.State) ode.State {
	x, y := s[0], s[1]
	return ode.State{y, v.mu*(1-x*x)*y - x}
}

func (v *VanDerPol) DefaultState() ode.State { return ode.State{2.0, 0.0} }
