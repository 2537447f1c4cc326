package tableau

import (
	"fmt"
	"math"

	"github.com/BanaanKiamanesh/Shilling/internal/ode"
)

// Storage selects the register strategy a tableau is written for.
type Storage int

const (
	// Full retains all stage derivatives simultaneously.
	Full Storage = iota
	// LowStorage retains two state-sized registers regardless of the
	// stage count (Williamson 2N recurrence).
	LowStorage
	// Convex is the Shu-Osher form: each register a convex combination
	// of earlier registers plus one scaled derivative term.
	Convex
)

func (s Storage) String() string {
	switch s {
	case Full:
		return "full"
	case LowStorage:
		return "low-storage"
	case Convex:
		return "convex"
	}
	return "unknown"
}

// consistencyTol is the relative tolerance for the structural
// invariants c[i] == sum(a[i][...]) and sum(b) == 1.
const consistencyTol = 1e-12

// Tableau describes one explicit Runge-Kutta method. Order is
// metadata only; the engine is driven by the coefficient arrays.
//
// Full storage: A is strictly lower triangular (row i holds the i
// coefficients a[i][0..i-1]), B the combination weights, C the stage
// time fractions.
//
// Low storage: Alpha, Beta and C drive the 2N recurrence
//
//	delta = alpha[i]*delta + h*f(t+c[i]*h, state)
//	state = state + beta[i]*delta
//
// Convex storage: row i of A holds the convex weights over registers
// u[0..i], B[i] scales the derivative of the previous register, C[i]
// is its evaluation time fraction. Register 0 is the incoming state;
// the last register is the result.
type Tableau struct {
	Name      string
	Order     int
	Stages    int
	Registers int
	Storage   Storage

	A [][]float64
	B []float64
	C []float64

	Alpha []float64
	Beta  []float64

	// CFL is the SSP step-size coefficient relative to forward Euler,
	// metadata only: exceeding it forfeits the stability guarantee but
	// is not an error.
	CFL float64
}

// Validate checks the structural invariants of the tableau. A failure
// is a configuration error wrapping ode.ErrInvalidTableau; it never
// depends on runtime state.
func (tb *Tableau) Validate() error {
	if tb.Stages < 1 {
		return tb.invalid("stage count %d", tb.Stages)
	}
	if tb.Order < 1 {
		return tb.invalid("order %d", tb.Order)
	}
	switch tb.Storage {
	case Full:
		return tb.validateFull()
	case LowStorage:
		return tb.validateLowStorage()
	case Convex:
		return tb.validateConvex()
	}
	return tb.invalid("unknown storage kind %d", int(tb.Storage))
}

func (tb *Tableau) validateFull() error {
	s := tb.Stages
	if len(tb.A) != s || len(tb.B) != s || len(tb.C) != s {
		return tb.invalid("coefficient arrays must have %d rows", s)
	}
	for i := 0; i < s; i++ {
		if len(tb.A[i]) != i {
			return tb.invalid("row %d of a has %d entries, want %d (strictly lower triangular)", i, len(tb.A[i]), i)
		}
		sum := 0.0
		for _, a := range tb.A[i] {
			sum += a
		}
		if !closeTo(sum, tb.C[i]) {
			return tb.invalid("c[%d]=%.17g does not match row sum %.17g", i, tb.C[i], sum)
		}
	}
	wsum := 0.0
	for _, b := range tb.B {
		wsum += b
	}
	if !closeTo(wsum, 1.0) {
		return tb.invalid("weights sum to %.17g, want 1", wsum)
	}
	return nil
}

func (tb *Tableau) validateLowStorage() error {
	s := tb.Stages
	if len(tb.Alpha) != s || len(tb.Beta) != s || len(tb.C) != s {
		return tb.invalid("alpha/beta/c must each have %d entries", s)
	}
	if tb.Alpha[0] != 0 {
		return tb.invalid("alpha[0]=%.17g, want 0", tb.Alpha[0])
	}
	return nil
}

func (tb *Tableau) validateConvex() error {
	s := tb.Stages
	if len(tb.A) != s || len(tb.B) != s || len(tb.C) != s {
		return tb.invalid("coefficient arrays must have %d rows", s)
	}
	for i := 0; i < s; i++ {
		if len(tb.A[i]) != i+1 {
			return tb.invalid("row %d of a has %d entries, want %d", i, len(tb.A[i]), i+1)
		}
		sum := 0.0
		for _, a := range tb.A[i] {
			sum += a
		}
		if !closeTo(sum, 1.0) {
			return tb.invalid("row %d is not a convex combination (sum %.17g)", i, sum)
		}
	}
	return nil
}

func (tb *Tableau) invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ode.ErrInvalidTableau, tb.Name, fmt.Sprintf(format, args...))
}

func closeTo(got, want float64) bool {
	scale := math.Max(math.Abs(want), 1.0)
	return math.Abs(got-want) <= consistencyTol*scale
}
