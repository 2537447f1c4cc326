package problems

import (
	"math"

	"github.com/BanaanKiamanesh/Shilling/internal/ode"
)

// Decay is the scalar exponential decay y' = -lambda*y, the canonical
// convergence test problem: y(t) = y0 * exp(-lambda*t).
type Decay struct{ lambda float64 }

func NewDecay() *Decay { return &Decay{1.0} }

func (d *Decay) Dim() int { return 1 }

func (d *Decay) Derive(_ float64, y ode.State) ode.State {
	return ode.State{-d.lambda * y[0]}
}

func (d *Decay) DefaultState() ode.State { return ode.State{1.0} }

// Exact evaluates the closed-form solution from y0 at time t.
func (d *Decay) Exact(t, y0 float64) float64 {
	return y0 * math.Exp(-d.lambda*t)
}
