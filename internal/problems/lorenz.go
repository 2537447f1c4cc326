package problems

import "github.com/BanaanKiamanesh/Shilling/internal/ode"

type Lorenz struct{ sigma, rho, beta float64 }

func NewLorenz() *Lorenz { return &Lorenz{10.0, 28.0, 8.0 / 3.0} }

func (l *Lorenz) Dim() int { return 3 }

// Derive calculates the Lorenz attractor derivatives.
func (l *Lorenz) Derive(_ float64, y ode.State) ode.State {
	return ode.State{
		l.sigma * (y[1] - y[0]),
		y[0]*(l.rho-y[2]) - y[1],
		y[0]*y[1] - l.beta*y[2],
	}
}

func (l *Lorenz) DefaultState() ode.State { return ode.State{1.0, 1.0, 1.0} }
