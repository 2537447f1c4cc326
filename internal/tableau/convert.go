package tableau

import "fmt"

// ToFull expands a low-storage or convex recurrence into the
// equivalent Butcher (a, b, c) form by accumulating the stage
// derivative coefficients symbolically. The result advances the state
// identically up to rounding, and validating it cross-checks the
// recurrence transcription against the published stage times.
func (tb *Tableau) ToFull() (*Tableau, error) {
	switch tb.Storage {
	case Full:
		return tb, nil
	case LowStorage:
		return tb.lowStorageToFull(), nil
	case Convex:
		return tb.convexToFull(), nil
	}
	return nil, tb.invalid("unknown storage kind %d", int(tb.Storage))
}

// lowStorageToFull unrolls delta = alpha[i]*delta + h*k[i],
// state += beta[i]*delta into per-stage weights over k[0..i].
func (tb *Tableau) lowStorageToFull() *Tableau {
	s := tb.Stages
	a := make([][]float64, s)
	dcoef := make([]float64, s)
	ycoef := make([]float64, s)
	for i := 0; i < s; i++ {
		a[i] = append([]float64(nil), ycoef[:i]...)
		for m := 0; m < i; m++ {
			dcoef[m] *= tb.Alpha[i]
		}
		dcoef[i] = 1
		for m := 0; m <= i; m++ {
			ycoef[m] += tb.Beta[i] * dcoef[m]
		}
	}
	return &Tableau{
		Name:    fmt.Sprintf("%s (butcher form)", tb.Name),
		Order:   tb.Order,
		Stages:  s,
		Storage: Full,
		A:       a,
		B:       append([]float64(nil), ycoef...),
		C:       append([]float64(nil), tb.C...),
	}
}

// convexToFull expands each register as y0 plus a weighted sum of the
// stage derivatives. Row sums of the convex form are 1, so the y0
// coefficient stays 1 throughout and the remainder is the Butcher row.
func (tb *Tableau) convexToFull() *Tableau {
	s := tb.Stages
	w := make([][]float64, s+1)
	w[0] = []float64{}
	for i := 1; i <= s; i++ {
		wi := make([]float64, i)
		for k, c := range tb.A[i-1] {
			if c == 0 {
				continue
			}
			for m, v := range w[k] {
				wi[m] += c * v
			}
		}
		wi[i-1] += tb.B[i-1]
		w[i] = wi
	}
	a := make([][]float64, s)
	for i := 0; i < s; i++ {
		a[i] = append([]float64(nil), w[i]...)
	}
	return &Tableau{
		Name:    fmt.Sprintf("%s (butcher form)", tb.Name),
		Order:   tb.Order,
		Stages:  s,
		Storage: Full,
		A:       a,
		B:       append([]float64(nil), w[s]...),
		C:       append([]float64(nil), tb.C...),
	}
}
