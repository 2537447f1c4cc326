package tableau

// High-order methods, 7 to 13 stages. The Fehlberg 7(8) pair shares
// one 13-stage matrix; Cooper-Verner is published in radicals of 21.
// References: Butcher, J. Austral. Math. Soc. 4 (1964); Fehlberg,
// NASA TR R-287 (1968); Cooper & Verner, SIAM J. Numer. Anal. 9
// (1972).

var Butcher6 = register(&Tableau{
	Name:    "butcher6",
	Order:   6,
	Stages:  7,
	Storage: Full,
	A: [][]float64{
		{},
		{frac(1, 3)},
		{0, frac(2, 3)},
		{frac(1, 12), frac(1, 3), frac(-1, 12)},
		{frac(-1, 16), frac(9, 8), frac(-3, 16), frac(-3, 8)},
		{0, frac(9, 8), frac(-3, 8), frac(-3, 4), frac(1, 2)},
		{frac(9, 44), frac(-9, 11), frac(63, 44), frac(18, 11), 0, frac(-16, 11)},
	},
	B: []float64{frac(11, 120), 0, frac(27, 40), frac(27, 40), frac(-4, 15), frac(-4, 15), frac(11, 120)},
	C: []float64{0, frac(1, 3), frac(2, 3), frac(1, 3), frac(1, 2), frac(1, 2), 1},
})

var fehlberg78A = [][]float64{
	{},
	{frac(2, 27)},
	{frac(1, 36), frac(1, 12)},
	{frac(1, 24), 0, frac(1, 8)},
	{frac(5, 12), 0, frac(-25, 16), frac(25, 16)},
	{frac(1, 20), 0, 0, frac(1, 4), frac(1, 5)},
	{frac(-25, 108), 0, 0, frac(125, 108), frac(-65, 27), frac(125, 54)},
	{frac(31, 300), 0, 0, 0, frac(61, 225), frac(-2, 9), frac(13, 900)},
	{2, 0, 0, frac(-53, 6), frac(704, 45), frac(-107, 9), frac(67, 90), 3},
	{frac(-91, 108), 0, 0, frac(23, 108), frac(-976, 135), frac(311, 54), frac(-19, 60), frac(17, 6), frac(-1, 12)},
	{frac(2383, 4100), 0, 0, frac(-341, 164), frac(4496, 1025), frac(-301, 82), frac(2133, 4100), frac(45, 82), frac(45, 164), frac(18, 41)},
	{frac(3, 205), 0, 0, 0, 0, frac(-6, 41), frac(-3, 205), frac(-3, 41), frac(3, 41), frac(6, 41), 0},
	{frac(-1777, 4100), 0, 0, frac(-341, 164), frac(4496, 1025), frac(-289, 82), frac(2193, 4100), frac(51, 82), frac(33, 164), frac(12, 41), 0, 1},
}

var fehlberg78C = []float64{
	0, frac(2, 27), frac(1, 9), frac(1, 6), frac(5, 12), frac(1, 2),
	frac(5, 6), frac(1, 6), frac(2, 3), frac(1, 3), 1, 0, 1,
}

var Fehlberg7 = register(&Tableau{
	Name:    "fehlberg7",
	Order:   7,
	Stages:  13,
	Storage: Full,
	A:       fehlberg78A,
	B: []float64{
		frac(41, 840), 0, 0, 0, 0, frac(34, 105),
		frac(9, 35), frac(9, 35), frac(9, 280), frac(9, 280), frac(41, 840), 0, 0,
	},
	C: fehlberg78C,
})

var Fehlberg8 = register(&Tableau{
	Name:    "fehlberg8",
	Order:   8,
	Stages:  13,
	Storage: Full,
	A:       fehlberg78A,
	B: []float64{
		0, 0, 0, 0, 0, frac(34, 105),
		frac(9, 35), frac(9, 35), frac(9, 280), frac(9, 280), 0, frac(41, 840), frac(41, 840),
	},
	C: fehlberg78C,
})

// CooperVerner8 is the 11-stage eighth-order method with sqrt(21)
// coefficients, evaluated at extended precision before truncation.
var CooperVerner8 = register(&Tableau{
	Name:    "cooper-verner8",
	Order:   8,
	Stages:  11,
	Storage: Full,
	A: [][]float64{
		{},
		{frac(1, 2)},
		{frac(1, 4), frac(1, 4)},
		{frac(1, 7), radical(-7, -3, 21, 98), radical(21, 5, 21, 49)},
		{radical(11, 1, 21, 84), 0, radical(18, 4, 21, 63), radical(21, -1, 21, 252)},
		{radical(5, 1, 21, 48), 0, radical(9, 1, 21, 36), radical(-231, 14, 21, 360), radical(63, -7, 21, 80)},
		{radical(10, -1, 21, 42), 0, radical(-432, 92, 21, 315), radical(633, -145, 21, 90), radical(-504, 115, 21, 70), radical(63, -13, 21, 35)},
		{frac(1, 14), 0, 0, 0, radical(14, -3, 21, 126), radical(13, -3, 21, 63), frac(1, 9)},
		{frac(1, 32), 0, 0, 0, radical(91, -21, 21, 576), frac(11, 72), radical(-385, -75, 21, 1152), radical(63, 13, 21, 128)},
		{frac(1, 14), 0, 0, 0, frac(1, 9), radical(-733, -147, 21, 2205), radical(515, 111, 21, 504), radical(-51, -11, 21, 56), radical(132, 28, 21, 245)},
		{0, 0, 0, 0, radical(-42, 7, 21, 18), radical(-18, 28, 21, 45), radical(-273, -53, 21, 72), radical(301, 53, 21, 72), radical(28, -28, 21, 45), radical(49, -7, 21, 18)},
	},
	B: []float64{
		frac(1, 20), 0, 0, 0, 0, 0, 0,
		frac(49, 180), frac(16, 45), frac(49, 180), frac(1, 20),
	},
	C: []float64{
		0, frac(1, 2), frac(1, 2), radical(7, 1, 21, 14), radical(7, 1, 21, 14), frac(1, 2),
		radical(7, -1, 21, 14), radical(7, -1, 21, 14), frac(1, 2), radical(7, 1, 21, 14), 1,
	},
})
