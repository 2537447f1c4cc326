package problems

import (
	"fmt"
	"sort"

	"github.com/BanaanKiamanesh/Shilling/internal/ode"
)

// Defaulter is implemented by every catalogued problem, providing a
// sensible initial condition for demos.
type Defaulter interface {
	ode.System
	DefaultState() ode.State
}

var problems = map[string]func() Defaulter{
	"decay":      func() Defaulter { return NewDecay() },
	"oscillator": func() Defaulter { return NewOscillator() },
	"lorenz":     func() Defaulter { return NewLorenz() },
	"vanderpol":  func() Defaulter { return NewVanDerPol() },
	"pendulum":   func() Defaulter { return NewPendulum() },
}

// Get constructs a problem by name.
func Get(name string) (Defaulter, error) {
	ctor, ok := problems[name]
	if !ok {
		return nil, fmt.Errorf("unknown problem %q", name)
	}
	return ctor(), nil
}

// Names lists the catalogued problems alphabetically.
func Names() []string {
	names := make([]string, 0, len(problems))
	for name := range problems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
