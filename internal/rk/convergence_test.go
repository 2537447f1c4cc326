package rk

import (
	"context"
	"math"
	"testing"

	"github.com/BanaanKiamanesh/Shilling/internal/ode"
	"github.com/BanaanKiamanesh/Shilling/internal/tableau"
)

// globalError integrates y' = -y over [0, 1] and returns the error of
// the last on-horizon sample against exp(-t).
func globalError(t *testing.T, name string, h float64) float64 {
	t.Helper()
	tb, err := tableau.Get(name)
	if err != nil {
		t.Fatal(err)
	}
	traj, err := Integrate(context.Background(), tb, decay, 0, 1, ode.State{1}, h)
	if err != nil {
		t.Fatal(err)
	}
	tf, y := traj.Final()
	return math.Abs(y[0] - math.Exp(-tf))
}

// nonlinearError integrates y' = -y^2, y(0)=1 over [0, 1], whose exact
// solution is 1/(1+t). Unlike the linear problem it exercises the full
// order conditions, not just the stability polynomial.
func nonlinearError(t *testing.T, name string, h float64) float64 {
	t.Helper()
	tb, err := tableau.Get(name)
	if err != nil {
		t.Fatal(err)
	}
	riccati := func(_ float64, y ode.State) ode.State {
		return ode.State{-y[0] * y[0]}
	}
	traj, err := Integrate(context.Background(), tb, riccati, 0, 1, ode.State{1}, h)
	if err != nil {
		t.Fatal(err)
	}
	tf, y := traj.Final()
	return math.Abs(y[0] - 1/(1+tf))
}

// Halving h must shrink the global error by about 2^order. The full
// two-sided band applies to methods whose stage count equals their
// order: their linear stability polynomial is the truncated
// exponential, so the leading error term cannot degenerate.
func TestConvergenceOrderExact(t *testing.T) {
	cases := []struct {
		method string
		order  int
	}{
		{"euler", 1},
		{"midpoint", 2},
		{"heun2", 2},
		{"ralston2", 2},
		{"kutta3", 3},
		{"heun3", 3},
		{"ralston3", 3},
		{"rk4", 4},
		{"three-eighths", 4},
		{"gill4", 4},
	}
	for _, tc := range cases {
		coarse := globalError(t, tc.method, 0.1)
		fine := globalError(t, tc.method, 0.05)
		if fine == 0 {
			t.Fatalf("%s: error underflowed the measurement", tc.method)
		}
		ratio := coarse / fine
		factor := math.Pow(2, float64(tc.order))
		if ratio < factor*0.5 || ratio > factor*2 {
			t.Errorf("%s: error ratio %.2f outside [%.1f, %.1f] for order %d",
				tc.method, ratio, factor*0.5, factor*2, tc.order)
		}
	}
}

// Methods with spare stages can converge faster than their design
// order on specific problems, so only the lower bound is asserted:
// halving h shrinks the error by at least ~2^order.
func TestConvergenceOrderAtLeast(t *testing.T) {
	cases := []struct {
		method string
		order  int
		h      float64
	}{
		{"fehlberg4", 4, 0.1},
		{"fehlberg5", 5, 0.2},
		{"cash-karp5", 5, 0.2},
		{"dormand-prince5", 5, 0.2},
		{"butcher6", 6, 0.2},
		{"williamson3", 3, 0.1},
		{"carpenter-kennedy4", 4, 0.1},
		{"ssprk2", 2, 0.1},
		{"ssprk3", 3, 0.1},
		{"ssprk43", 3, 0.1},
	}
	for _, tc := range cases {
		coarse := nonlinearError(t, tc.method, tc.h)
		fine := nonlinearError(t, tc.method, tc.h/2)
		if fine == 0 {
			continue // already at the rounding floor
		}
		ratio := coarse / fine
		factor := math.Pow(2, float64(tc.order))
		if ratio < factor*0.5 {
			t.Errorf("%s: error ratio %.2f below %.1f for order %d",
				tc.method, ratio, factor*0.5, tc.order)
		}
	}
}

// The very high-order methods run out of float64 before a ratio test
// is meaningful; assert raw accuracy instead.
func TestHighOrderAccuracy(t *testing.T) {
	for _, name := range []string{"fehlberg7", "fehlberg8", "cooper-verner8"} {
		if err := nonlinearError(t, name, 0.05); err > 1e-11 {
			t.Errorf("%s: error %.3g at h=0.05, want < 1e-11", name, err)
		}
	}
}
