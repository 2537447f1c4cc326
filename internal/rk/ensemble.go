package rk

import (
	"context"
	"sync"

	"github.com/BanaanKiamanesh/Shilling/internal/ode"
	"github.com/BanaanKiamanesh/Shilling/internal/tableau"
)

// Ensemble integrates many initial conditions of the same system
// concurrently. Runs share only the immutable tableau; each gets its
// own stepper, so fan-out is safe by construction.
type Ensemble struct {
	tb *tableau.Tableau
	f  ode.Func
}

func NewEnsemble(tb *tableau.Tableau, f ode.Func) *Ensemble {
	return &Ensemble{tb: tb, f: f}
}

// Run returns one trajectory per initial condition, in input order.
// The first error encountered is returned; completed trajectories are
// still handed back so partial results remain inspectable.
func (e *Ensemble) Run(ctx context.Context, inits []ode.State, t0, tf, h float64) ([]*ode.Trajectory, error) {
	results := make([]*ode.Trajectory, len(inits))
	errs := make([]error, len(inits))

	var wg sync.WaitGroup
	for i, y0 := range inits {
		wg.Add(1)
		go func(idx int, y0 ode.State) {
			defer wg.Done()
			results[idx], errs[idx] = Integrate(ctx, e.tb, e.f, t0, tf, y0, h)
		}(i, y0)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
