package tableau

// Strong-stability-preserving methods in their published Shu-Osher
// form. Row i of A holds the convex weights over registers u[0..i],
// B[i] scales h*f of the previous register. CFL records the step-size
// coefficient relative to forward Euler under which the SSP property
// holds; the engine does not enforce it.
// References: Shu & Osher, J. Comp. Phys. 77 (1988); Gottlieb, Shu &
// Tadmor, SIAM Review 43 (2001); Kraaijevanger, BIT 31 (1991).

var SSPRK2 = register(&Tableau{
	Name:      "ssprk2",
	Order:     2,
	Stages:    2,
	Registers: 2,
	Storage:   Convex,
	CFL:       1,
	A: [][]float64{
		{1},
		{frac(1, 2), frac(1, 2)},
	},
	B: []float64{1, frac(1, 2)},
	C: []float64{0, 1},
})

var SSPRK3 = register(&Tableau{
	Name:      "ssprk3",
	Order:     3,
	Stages:    3,
	Registers: 2,
	Storage:   Convex,
	CFL:       1,
	A: [][]float64{
		{1},
		{frac(3, 4), frac(1, 4)},
		{frac(1, 3), 0, frac(2, 3)},
	},
	B: []float64{1, frac(1, 4), frac(2, 3)},
	C: []float64{0, 1, frac(1, 2)},
})

// SSPRK43 trades one extra stage for a doubled SSP step-size bound.
var SSPRK43 = register(&Tableau{
	Name:      "ssprk43",
	Order:     3,
	Stages:    4,
	Registers: 2,
	Storage:   Convex,
	CFL:       2,
	A: [][]float64{
		{1},
		{0, 1},
		{frac(2, 3), 0, frac(1, 3)},
		{0, 0, 0, 1},
	},
	B: []float64{frac(1, 2), frac(1, 2), frac(1, 6), frac(1, 2)},
	C: []float64{0, frac(1, 2), 1, frac(1, 2)},
})
