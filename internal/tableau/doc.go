// Package tableau holds the declarative descriptions of the catalogued
// explicit Runge-Kutta methods.
//
// A [Tableau] is a pure, inert data record constructed once and never
// mutated during integration. Three storage kinds exist:
//
//   - [Full]: the Butcher form (a, b, c), one register per stage
//   - [LowStorage]: Williamson 2N form (alpha, beta, c), two registers
//   - [Convex]: Shu-Osher form used by SSP methods, a small fixed
//     number of registers
//
// Every catalogued tableau is validated at registration: the stage
// time fractions must equal the row sums of a, the weights must sum
// to one, and the low-storage recurrence must open with alpha[0] = 0.
// Published transcriptions carry no independent consistency check, so
// validation here is the safety net.
//
// Coefficients given in the literature as high-precision decimals,
// exact rationals, or small radicals are evaluated in 256-bit
// [math/big] arithmetic and truncated to float64 exactly once, at
// construction. The stepping engine only ever sees float64.
package tableau
