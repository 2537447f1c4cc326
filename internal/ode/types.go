package ode

import "math"

// DefaultStep is the step size applied by config loaders and the CLI
// when none is given. The integration driver itself requires an
// explicit positive step.
const DefaultStep = 0.01

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

// Func is the derivative function contract: pure, no retained state
// across calls, returning a vector of the same dimension as y.
type Func func(t float64, y State) State

// System is a catalogued right-hand side. Its Derive method is
// directly assignable to a Func.
type System interface {
	Derive(t float64, y State) State
	Dim() int
}

// Hamiltonian is implemented by systems with a conserved energy,
// used to monitor integration drift.
type Hamiltonian interface {
	Energy(y State) float64
}

// Trajectory is the ordered (time, state) history of one run: one
// sample per completed step plus the initial condition at index 0.
// The buffer is sized exactly once up front and every slot is written
// exactly once, in increasing time order.
type Trajectory struct {
	Times  []float64
	States []State
}

func NewTrajectory(n int) *Trajectory {
	return &Trajectory{
		Times:  make([]float64, n),
		States: make([]State, n),
	}
}

func (tr *Trajectory) Set(i int, t float64, y State) {
	tr.Times[i] = t
	tr.States[i] = y
}

func (tr *Trajectory) Len() int { return len(tr.Times) }

func (tr *Trajectory) At(i int) (float64, State) {
	return tr.Times[i], tr.States[i]
}

func (tr *Trajectory) Final() (float64, State) {
	return tr.At(tr.Len() - 1)
}

// Component extracts one state dimension across all samples, in the
// shape plotting helpers consume.
func (tr *Trajectory) Component(j int) []float64 {
	out := make([]float64, tr.Len())
	for i, s := range tr.States {
		out[i] = s[j]
	}
	return out
}

// Truncate drops samples at index n and beyond, used when a run stops
// early. The retained prefix stays valid.
func (tr *Trajectory) Truncate(n int) *Trajectory {
	if n > tr.Len() {
		n = tr.Len()
	}
	tr.Times = tr.Times[:n]
	tr.States = tr.States[:n]
	return tr
}
