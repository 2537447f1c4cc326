package rk

import (
	"context"
	"fmt"
	"math"

	"github.com/BanaanKiamanesh/Shilling/internal/ode"
	"github.com/BanaanKiamanesh/Shilling/internal/tableau"
)

// Integrate advances y' = f(t, y) from (t0, y0) to the horizon tf in
// fixed steps of size h and returns the full trajectory, initial
// condition included.
//
// The step count is ceil((tf-t0)/h), so when h does not divide the
// span the final sample overshoots tf by less than one step; the loop
// crosses the horizon rather than landing on it. The trajectory
// buffer is sized once up front and every slot written exactly once.
//
// A non-finite state after any step stops the run: the trajectory up
// to the last valid sample is returned together with a *ode.StepError
// wrapping ode.ErrUnstable. Between steps the context is checked,
// which is the only suspension point of a run.
func Integrate(ctx context.Context, tb *tableau.Tableau, f ode.Func, t0, tf float64, y0 ode.State, h float64) (*ode.Trajectory, error) {
	if tf <= t0 {
		return nil, fmt.Errorf("%w: [%g, %g]", ode.ErrInvalidTimeSpan, t0, tf)
	}
	if h <= 0 {
		return nil, fmt.Errorf("%w: %g", ode.ErrInvalidStepSize, h)
	}
	if err := tb.Validate(); err != nil {
		return nil, err
	}

	steps := int(math.Ceil((tf - t0) / h))
	traj := ode.NewTrajectory(steps + 1)
	y := y0.Clone()
	traj.Set(0, t0, y.Clone())

	st := NewStepper(tb, f)
	for i := 1; i <= steps; i++ {
		select {
		case <-ctx.Done():
			return traj.Truncate(i), ctx.Err()
		default:
		}

		t := t0 + h*float64(i-1)
		next, err := st.Step(t, h, y)
		if err != nil {
			return traj.Truncate(i), &ode.StepError{Step: i, Time: t, State: y, Wrapped: err}
		}
		if !next.IsValid() {
			return traj.Truncate(i), &ode.StepError{Step: i, Time: t, State: y, Wrapped: ode.ErrUnstable}
		}
		y = next
		traj.Set(i, t0+h*float64(i), y)
	}
	return traj, nil
}

// IntegrateSystem binds a catalogued system's derivative.
func IntegrateSystem(ctx context.Context, tb *tableau.Tableau, sys ode.System, t0, tf float64, y0 ode.State, h float64) (*ode.Trajectory, error) {
	return Integrate(ctx, tb, sys.Derive, t0, tf, y0, h)
}
