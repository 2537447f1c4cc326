package tableau

// 2N low-storage schemes: two state-sized registers regardless of the
// stage count. The alpha/beta coefficients are derived specifically
// for the recurrence and are not interchangeable with Butcher a/b.
// References: Williamson, J. Comp. Phys. 35 (1980); Carpenter &
// Kennedy, NASA TM-109112 (1994).

var Williamson3 = register(&Tableau{
	Name:      "williamson3",
	Order:     3,
	Stages:    3,
	Registers: 2,
	Storage:   LowStorage,
	Alpha:     []float64{0, frac(-5, 9), frac(-153, 128)},
	Beta:      []float64{frac(1, 3), frac(15, 16), frac(8, 15)},
	C:         []float64{0, frac(1, 3), frac(3, 4)},
})

var CarpenterKennedy4 = register(&Tableau{
	Name:      "carpenter-kennedy4",
	Order:     4,
	Stages:    5,
	Registers: 2,
	Storage:   LowStorage,
	Alpha: []float64{
		0,
		frac(-567301805773, 1357537059087),
		frac(-2404267990393, 2016746695238),
		frac(-3550918686646, 2091501179385),
		frac(-1275806237668, 842570457699),
	},
	Beta: []float64{
		frac(1432997174477, 9575080441755),
		frac(5161836677717, 13612068292357),
		frac(1720146321549, 2090206949498),
		frac(3134564353537, 4481467310338),
		frac(2277821191437, 14882151754819),
	},
	C: []float64{
		0,
		frac(1432997174477, 9575080441755),
		frac(2526269341429, 6820363962896),
		frac(2006345519317, 3224310063776),
		frac(2802321613138, 2924317926251),
	},
})
