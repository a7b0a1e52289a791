// Package rational provides the exact numeric type used throughout
// gophersimplex.
//
// Q is a thin wrapper around math/big.Rat. No arithmetic performed by this
// package ever rounds or overflows: numerators and denominators grow as
// needed. Callers that need a decimal or float approximation for display
// purposes should convert explicitly with Float64.
package rational
