package tableau

// Classic fixed-step methods of orders 1 through 4, in Butcher form.
// References: Butcher, "Numerical Methods for Ordinary Differential
// Equations"; Ralston & Rabinowitz, "A First Course in Numerical
// Analysis".

var Euler = register(&Tableau{
	Name:    "euler",
	Order:   1,
	Stages:  1,
	Storage: Full,
	A:       [][]float64{{}},
	B:       []float64{1},
	C:       []float64{0},
})

var Midpoint = register(&Tableau{
	Name:    "midpoint",
	Order:   2,
	Stages:  2,
	Storage: Full,
	A: [][]float64{
		{},
		{1.0 / 2.0},
	},
	B: []float64{0, 1},
	C: []float64{0, 1.0 / 2.0},
})

var Heun2 = register(&Tableau{
	Name:    "heun2",
	Order:   2,
	Stages:  2,
	Storage: Full,
	A: [][]float64{
		{},
		{1},
	},
	B: []float64{1.0 / 2.0, 1.0 / 2.0},
	C: []float64{0, 1},
})

// Ralston2 minimizes the local truncation error bound among 2-stage
// second-order methods.
var Ralston2 = register(&Tableau{
	Name:    "ralston2",
	Order:   2,
	Stages:  2,
	Storage: Full,
	A: [][]float64{
		{},
		{2.0 / 3.0},
	},
	B: []float64{1.0 / 4.0, 3.0 / 4.0},
	C: []float64{0, 2.0 / 3.0},
})

var Kutta3 = register(&Tableau{
	Name:    "kutta3",
	Order:   3,
	Stages:  3,
	Storage: Full,
	A: [][]float64{
		{},
		{1.0 / 2.0},
		{-1, 2},
	},
	B: []float64{1.0 / 6.0, 2.0 / 3.0, 1.0 / 6.0},
	C: []float64{0, 1.0 / 2.0, 1},
})

var Heun3 = register(&Tableau{
	Name:    "heun3",
	Order:   3,
	Stages:  3,
	Storage: Full,
	A: [][]float64{
		{},
		{1.0 / 3.0},
		{0, 2.0 / 3.0},
	},
	B: []float64{1.0 / 4.0, 0, 3.0 / 4.0},
	C: []float64{0, 1.0 / 3.0, 2.0 / 3.0},
})

var Ralston3 = register(&Tableau{
	Name:    "ralston3",
	Order:   3,
	Stages:  3,
	Storage: Full,
	A: [][]float64{
		{},
		{1.0 / 2.0},
		{0, 3.0 / 4.0},
	},
	B: []float64{2.0 / 9.0, 1.0 / 3.0, 4.0 / 9.0},
	C: []float64{0, 1.0 / 2.0, 3.0 / 4.0},
})

// RK4 is the classic 4-stage fourth-order method.
var RK4 = register(&Tableau{
	Name:    "rk4",
	Order:   4,
	Stages:  4,
	Storage: Full,
	A: [][]float64{
		{},
		{1.0 / 2.0},
		{0, 1.0 / 2.0},
		{0, 0, 1},
	},
	B: []float64{1.0 / 6.0, 1.0 / 3.0, 1.0 / 3.0, 1.0 / 6.0},
	C: []float64{0, 1.0 / 2.0, 1.0 / 2.0, 1},
})

var ThreeEighths = register(&Tableau{
	Name:    "three-eighths",
	Order:   4,
	Stages:  4,
	Storage: Full,
	A: [][]float64{
		{},
		{1.0 / 3.0},
		{-1.0 / 3.0, 1},
		{1, -1, 1},
	},
	B: []float64{1.0 / 8.0, 3.0 / 8.0, 3.0 / 8.0, 1.0 / 8.0},
	C: []float64{0, 1.0 / 3.0, 2.0 / 3.0, 1},
})

// Gill4 reduces the storage of the classic method through sqrt(2)
// coefficients (Gill 1951).
var Gill4 = register(&Tableau{
	Name:    "gill4",
	Order:   4,
	Stages:  4,
	Storage: Full,
	A: [][]float64{
		{},
		{1.0 / 2.0},
		{radical(-1, 1, 2, 2), radical(2, -1, 2, 2)},
		{0, radical(0, -1, 2, 2), radical(2, 1, 2, 2)},
	},
	B: []float64{1.0 / 6.0, radical(2, -1, 2, 6), radical(2, 1, 2, 6), 1.0 / 6.0},
	C: []float64{0, 1.0 / 2.0, 1.0 / 2.0, 1},
})
