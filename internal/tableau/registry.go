package tableau

import (
	"fmt"
	"sort"

	"github.com/BanaanKiamanesh/Shilling/internal/ode"
)

var catalogue = map[string]*Tableau{}

// register validates a tableau and adds it to the catalogue. Called
// from package init only; a bad transcription must fail loudly rather
// than integrate at the wrong order.
func register(tb *Tableau) *Tableau {
	if err := tb.Validate(); err != nil {
		panic(err)
	}
	if _, dup := catalogue[tb.Name]; dup {
		panic(fmt.Sprintf("tableau: duplicate method %q", tb.Name))
	}
	if tb.Registers == 0 {
		tb.Registers = tb.Stages
	}
	catalogue[tb.Name] = tb
	return tb
}

// Get looks up a catalogued method by name.
func Get(name string) (*Tableau, error) {
	tb, ok := catalogue[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ode.ErrUnknownMethod, name)
	}
	return tb, nil
}

// Names lists the catalogued methods, sorted by order then name.
func Names() []string {
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := catalogue[names[i]], catalogue[names[j]]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.Name < b.Name
	})
	return names
}
