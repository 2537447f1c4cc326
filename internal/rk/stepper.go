package rk

import (
	"fmt"

	"github.com/BanaanKiamanesh/Shilling/internal/ode"
	"github.com/BanaanKiamanesh/Shilling/internal/tableau"
)

// Stepper advances a state by single steps of one method. Scratch
// registers are sized on first use and reused, so one Stepper
// performs no per-step allocation beyond the returned state.
type Stepper struct {
	tb *tableau.Tableau
	f  ode.Func

	k       []ode.State // full storage: one register per stage
	regs    []ode.State // convex storage
	state   ode.State   // low storage register pair
	delta   ode.State
	scratch ode.State
}

func NewStepper(tb *tableau.Tableau, f ode.Func) *Stepper {
	return &Stepper{tb: tb, f: f}
}

func (s *Stepper) ensure(n int) {
	if len(s.scratch) == n {
		return
	}
	s.scratch = make(ode.State, n)
	s.state = make(ode.State, n)
	s.delta = make(ode.State, n)
	switch s.tb.Storage {
	case tableau.Full:
		s.k = make([]ode.State, s.tb.Stages)
		for i := range s.k {
			s.k[i] = make(ode.State, n)
		}
	case tableau.Convex:
		s.regs = make([]ode.State, s.tb.Stages+1)
		for i := range s.regs {
			s.regs[i] = make(ode.State, n)
		}
	}
}

// Step advances (t, y) by one step of size h and returns the new
// state in a fresh vector. y is never mutated; stages are evaluated
// in ascending index with exactly Stages derivative calls.
func (s *Stepper) Step(t, h float64, y ode.State) (ode.State, error) {
	s.ensure(len(y))
	switch s.tb.Storage {
	case tableau.LowStorage:
		return s.stepLowStorage(t, h, y)
	case tableau.Convex:
		return s.stepConvex(t, h, y)
	default:
		return s.stepFull(t, h, y)
	}
}

// stepFull computes k[i] = f(t + c[i]h, y + h*sum_{j<i} a[i][j]k[j])
// and combines y' = y + h*sum b[i]k[i], summing in tableau order.
func (s *Stepper) stepFull(t, h float64, y ode.State) (ode.State, error) {
	tb := s.tb
	n := len(y)
	for i := 0; i < tb.Stages; i++ {
		copy(s.scratch, y)
		for j := 0; j < i; j++ {
			aij := tb.A[i][j]
			if aij == 0 {
				continue
			}
			kj := s.k[j]
			for d := 0; d < n; d++ {
				s.scratch[d] += h * aij * kj[d]
			}
		}
		dy, err := s.derive(t+tb.C[i]*h, s.scratch, n)
		if err != nil {
			return nil, err
		}
		copy(s.k[i], dy)
	}
	out := y.Clone()
	for i := 0; i < tb.Stages; i++ {
		bi := tb.B[i]
		if bi == 0 {
			continue
		}
		ki := s.k[i]
		for d := 0; d < n; d++ {
			out[d] += h * bi * ki[d]
		}
	}
	return out, nil
}

// stepLowStorage runs the 2N recurrence: delta = alpha[i]*delta + h*k,
// state += beta[i]*delta. alpha[0] = 0 resets delta on entry.
func (s *Stepper) stepLowStorage(t, h float64, y ode.State) (ode.State, error) {
	tb := s.tb
	n := len(y)
	copy(s.state, y)
	for i := 0; i < tb.Stages; i++ {
		dy, err := s.derive(t+tb.C[i]*h, s.state, n)
		if err != nil {
			return nil, err
		}
		ai, bi := tb.Alpha[i], tb.Beta[i]
		for d := 0; d < n; d++ {
			s.delta[d] = ai*s.delta[d] + h*dy[d]
			s.state[d] += bi * s.delta[d]
		}
	}
	return s.state.Clone(), nil
}

// stepConvex runs the Shu-Osher recurrence: each register is a convex
// combination of earlier registers plus b[i]*h*f of the previous one.
func (s *Stepper) stepConvex(t, h float64, y ode.State) (ode.State, error) {
	tb := s.tb
	n := len(y)
	copy(s.regs[0], y)
	for i := 1; i <= tb.Stages; i++ {
		dy, err := s.derive(t+tb.C[i-1]*h, s.regs[i-1], n)
		if err != nil {
			return nil, err
		}
		bi := tb.B[i-1]
		ri := s.regs[i]
		for d := 0; d < n; d++ {
			ri[d] = bi * h * dy[d]
		}
		for k, c := range tb.A[i-1] {
			if c == 0 {
				continue
			}
			rk := s.regs[k]
			for d := 0; d < n; d++ {
				ri[d] += c * rk[d]
			}
		}
	}
	return s.regs[tb.Stages].Clone(), nil
}

func (s *Stepper) derive(t float64, y ode.State, n int) (ode.State, error) {
	dy := s.f(t, y)
	if len(dy) != n {
		return nil, fmt.Errorf("%w: got %d, want %d", ode.ErrDimensionMismatch, len(dy), n)
	}
	return dy, nil
}
