package tableau

import (
	"fmt"
	"math/big"
)

// Published coefficients are rationals, small radicals, or decimal
// expansions given to 80+ significant digits. All of them are
// evaluated at coeffPrec bits and rounded to float64 exactly once, so
// no precision is lost before the truncation to working precision.
const coeffPrec = 256

// dec parses a decimal coefficient string at extended precision.
// Panics on malformed input: coefficient tables are static data, a
// bad string is a programming error, not a runtime condition.
func dec(s string) float64 {
	f, _, err := big.ParseFloat(s, 10, coeffPrec, big.ToNearestEven)
	if err != nil {
		panic(fmt.Sprintf("tableau: bad coefficient literal %q: %v", s, err))
	}
	v, _ := f.Float64()
	return v
}

// frac evaluates the exact rational p/q, correctly rounded.
func frac(p, q int64) float64 {
	v, _ := big.NewRat(p, q).Float64()
	return v
}

// radical evaluates (p + q*sqrt(n)) / den at extended precision, the
// form the algebraic tableaux (Gill sqrt 2, Cooper-Verner sqrt 21)
// are published in.
func radical(p, q, n, den int64) float64 {
	root := new(big.Float).SetPrec(coeffPrec).SetInt64(n)
	root.Sqrt(root)
	term := new(big.Float).SetPrec(coeffPrec).SetInt64(q)
	term.Mul(term, root)
	num := new(big.Float).SetPrec(coeffPrec).SetInt64(p)
	num.Add(num, term)
	num.Quo(num, new(big.Float).SetPrec(coeffPrec).SetInt64(den))
	v, _ := num.Float64()
	return v
}
