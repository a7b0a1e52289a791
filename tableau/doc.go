// Package tableau implements the sparse rational matrix used by the
// simplex package to store the system's basic-row equations.
//
// A Tableau is indexed both by row and by column: each non-zero cell is
// reachable either by iterating a row or by iterating a column, which is
// what the pivot operation (package simplex) needs to eliminate a column
// while inverting a row. Cells are backed by a single allocation per
// non-zero entry, shared between the row index and the column index, so a
// mutation made while iterating one axis is immediately visible on the
// other.
package tableau
