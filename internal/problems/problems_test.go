package problems

import (
	"math"
	"testing"

	"github.com/BanaanKiamanesh/Shilling/internal/ode"
)

func TestCatalogueDimensionsAgree(t *testing.T) {
	for _, name := range Names() {
		p, err := Get(name)
		if err != nil {
			t.Fatal(err)
		}
		y0 := p.DefaultState()
		if len(y0) != p.Dim() {
			t.Errorf("%s: default state has %d components, Dim() = %d", name, len(y0), p.Dim())
		}
		dy := p.Derive(0, y0)
		if len(dy) != p.Dim() {
			t.Errorf("%s: derivative has %d components, Dim() = %d", name, len(dy), p.Dim())
		}
		if !dy.IsValid() {
			t.Errorf("%s: derivative at default state is not finite", name)
		}
	}
}

func TestGetUnknownProblem(t *testing.T) {
	if _, err := Get("three-body"); err == nil {
		t.Fatal("expected error for uncatalogued problem")
	}
}

func TestDecayExact(t *testing.T) {
	d := NewDecay()
	if got := d.Exact(0, 3.0); got != 3.0 {
		t.Errorf("Exact(0, 3) = %g, want 3", got)
	}
	want := 2.0 * math.Exp(-1)
	if got := d.Exact(1, 2.0); math.Abs(got-want) > 1e-15 {
		t.Errorf("Exact(1, 2) = %g, want %g", got, want)
	}
	dy := d.Derive(0, ode.State{4.0})
	if dy[0] != -4.0 {
		t.Errorf("Derive = %g, want -4", dy[0])
	}
}

func TestOscillatorEnergy(t *testing.T) {
	o := NewOscillator()
	if e := o.Energy(ode.State{1, 0}); math.Abs(e-0.5) > 1e-15 {
		t.Errorf("Energy(1, 0) = %g, want 0.5", e)
	}
	// Same energy anywhere on the unit circle in phase space.
	th := 0.7
	e := o.Energy(ode.State{math.Cos(th), -math.Sin(th)})
	if math.Abs(e-0.5) > 1e-15 {
		t.Errorf("Energy on orbit = %g, want 0.5", e)
	}
}

func TestPendulumEnergyAtRest(t *testing.T) {
	p := NewPendulum()
	if e := p.Energy(ode.State{0, 0}); e != 0 {
		t.Errorf("Energy at stable equilibrium = %g, want 0", e)
	}
	dy := p.Derive(0, ode.State{0, 0})
	if dy[0] != 0 || dy[1] != 0 {
		t.Errorf("equilibrium should be a fixed point, got %v", dy)
	}
}

func TestLorenzFixedPoint(t *testing.T) {
	l := NewLorenz()
	dy := l.Derive(0, ode.State{0, 0, 0})
	for i, v := range dy {
		if v != 0 {
			t.Errorf("origin should be a fixed point, component %d = %g", i, v)
		}
	}
}

func TestVanDerPolDerivative(t *testing.T) {
	v := NewVanDerPol()
	dy := v.Derive(0, ode.State{2, 0})
	if dy[0] != 0 || dy[1] != -2 {
		t.Errorf("Derive(2, 0) = %v, want [0 -2]", dy)
	}
}
