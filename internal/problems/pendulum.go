package problems

import (
	"math"

	"github.com/BanaanKiamanesh/Shilling/internal/ode"
)

// Pendulum is the undriven nonlinear pendulum.
// State: [theta, omega].
type Pendulum struct {
	g, l float64
}

func NewPendulum() *Pendulum { return &Pendulum{9.81, 1.0} }

func (p *Pendulum) Dim() int { return 2 }

func (p *Pendulum) Derive(_ float64, y ode.State) ode.State {
	return ode.State{y[1], -(p.g / p.l) * math.Sin(y[0])}
}

func (p *Pendulum) DefaultState() ode.State { return ode.State{0.5, 0.0} }

func (p *Pendulum) Energy(y ode.State) float64 {
	return 0.5*y[1]*y[1] + (p.g/p.l)*(1-math.Cos(y[0]))
}
