// Package ode provides the core vocabulary for fixed-step integration
// of first-order ordinary differential equation systems y' = f(t, y):
//
//   - [State]: vector representing the working state y
//   - [Func]: the user-supplied derivative function f(t, y)
//   - [System]: interface for catalogued ODE right-hand sides
//   - [Trajectory]: the (time, state) history of one integration run
//
// The package holds no global state. A Trajectory is owned by the
// caller once an integration returns and is never mutated afterwards.
//
// # Errors
//
// Failures split into three families, all fail-fast:
//
//   - configuration errors (bad time span, step size, or tableau),
//     detected before any stepping begins
//   - numeric divergence ([ErrUnstable]), detected after the step that
//     produced a non-finite state and reported through [StepError]
//     with the failing step index and the last valid state
//   - user-function faults ([ErrDimensionMismatch]), propagated
//     unchanged with no corrective action
package ode
