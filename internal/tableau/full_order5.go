package tableau

// Six- and seven-stage methods of orders 4 and 5. The Fehlberg pair
// shares one stage matrix; each member is catalogued as its own
// fixed-step method.
// References: Fehlberg, NASA TR R-315 (1969); Cash & Karp, ACM TOMS
// 16 (1990); Dormand & Prince, J. Comp. Appl. Math. 6 (1980).

var fehlbergA = [][]float64{
	{},
	{frac(1, 4)},
	{frac(3, 32), frac(9, 32)},
	{frac(1932, 2197), frac(-7200, 2197), frac(7296, 2197)},
	{frac(439, 216), -8, frac(3680, 513), frac(-845, 4104)},
	{frac(-8, 27), 2, frac(-3544, 2565), frac(1859, 4104), frac(-11, 40)},
}

var fehlbergC = []float64{0, frac(1, 4), frac(3, 8), frac(12, 13), 1, frac(1, 2)}

var Fehlberg4 = register(&Tableau{
	Name:    "fehlberg4",
	Order:   4,
	Stages:  6,
	Storage: Full,
	A:       fehlbergA,
	B:       []float64{frac(25, 216), 0, frac(1408, 2565), frac(2197, 4104), frac(-1, 5), 0},
	C:       fehlbergC,
})

var Fehlberg5 = register(&Tableau{
	Name:    "fehlberg5",
	Order:   5,
	Stages:  6,
	Storage: Full,
	A:       fehlbergA,
	B:       []float64{frac(16, 135), 0, frac(6656, 12825), frac(28561, 56430), frac(-9, 50), frac(2, 55)},
	C:       fehlbergC,
})

var CashKarp5 = register(&Tableau{
	Name:    "cash-karp5",
	Order:   5,
	Stages:  6,
	Storage: Full,
	A: [][]float64{
		{},
		{frac(1, 5)},
		{frac(3, 40), frac(9, 40)},
		{frac(3, 10), frac(-9, 10), frac(6, 5)},
		{frac(-11, 54), frac(5, 2), frac(-70, 27), frac(35, 27)},
		{frac(1631, 55296), frac(175, 512), frac(575, 13824), frac(44275, 110592), frac(253, 4096)},
	},
	B: []float64{frac(37, 378), 0, frac(250, 621), frac(125, 594), 0, frac(512, 1771)},
	C: []float64{0, frac(1, 5), frac(3, 10), frac(3, 5), 1, frac(7, 8)},
})

// DormandPrince5 is the seven-stage fifth-order formula behind ode45,
// run here at fixed step with its order-5 weights.
var DormandPrince5 = register(&Tableau{
	Name:    "dormand-prince5",
	Order:   5,
	Stages:  7,
	Storage: Full,
	A: [][]float64{
		{},
		{frac(1, 5)},
		{frac(3, 40), frac(9, 40)},
		{frac(44, 45), frac(-56, 15), frac(32, 9)},
		{frac(19372, 6561), frac(-25360, 2187), frac(64448, 6561), frac(-212, 729)},
		{frac(9017, 3168), frac(-355, 33), frac(46732, 5247), frac(49, 176), frac(-5103, 18656)},
		{frac(35, 384), 0, frac(500, 1113), frac(125, 192), frac(-2187, 6784), frac(11, 84)},
	},
	B: []float64{frac(35, 384), 0, frac(500, 1113), frac(125, 192), frac(-2187, 6784), frac(11, 84), 0},
	C: []float64{0, frac(1, 5), frac(3, 10), frac(4, 5), frac(8, 9), 1, 1},
})
