package problems

import "github.com/BanaanKiamanesh/Shilling/internal/ode"

// Oscillator is the undamped harmonic oscillator.
// State: [x, v] with x'' = -omega^2 x; energy (x'^2 + omega^2 x^2)/2
// is conserved exactly by the true flow.
type Oscillator struct{ omega float64 }

func NewOscillator() *Oscillator { return &Oscillator{1.0} }

func (o *Oscillator) Dim() int { return 2 }

func (o *Oscillator) Derive(_ float64, y ode.State) ode.State {
	return ode.State{y[1], -o.omega * o.omega * y[0]}
}

func (o *Oscillator) DefaultState() ode.State { return ode.State{1.0, 0.0} }

func (o *Oscillator) Energy(y ode.State) float64 {
	return 0.5 * (y[1]*y[1] + o.omega*o.omega*y[0]*y[0])
}
