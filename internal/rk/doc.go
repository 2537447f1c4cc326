// Package rk implements the tableau-driven explicit Runge-Kutta
// stepping engine and the fixed-step integration driver.
//
// One [Stepper] serves every catalogued method: it dispatches on the
// tableau's storage kind (full-stage, low-storage 2N, or Shu-Osher
// convex) and reuses its stage registers across steps. The driver
// [Integrate] advances a derivative function from t0 to tf in exact
// multiples of h, accumulating the trajectory into a buffer sized
// once up front.
//
//	tb, _ := tableau.Get("rk4")
//	traj, err := rk.Integrate(ctx, tb, f, 0, 1, ode.State{1}, 0.1)
//
// Steppers are not safe for concurrent use; for parallel fan-out over
// initial conditions use [Ensemble], which gives each run its own
// stepper and shares only the immutable tableau.
package rk
