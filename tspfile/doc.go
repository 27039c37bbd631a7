// Package tspfile loads town-to-town distance matrices from text sources.
//
// Two formats are supported:
//
//   - Plain matrix: a full n×n adjacency matrix, columns separated by
//     whitespace, rows by newlines, weights parsed as float64 and required to
//     be finite and ≥ 0. Blank lines are ignored. See ParseMatrix.
//
//   - TSPLIB explicit: the subset of the TSPLIB format used by ATSP instance
//     files - a DIMENSION header followed by an EDGE_WEIGHT_SECTION whose
//     values fill the matrix row by row regardless of line breaks, terminated
//     by EOF. See ParseTSPLIB.
//
// The package performs no interpretation of the weights: offsets, symmetry
// and solver configuration are the caller's concern (see package aco).
//
// All failures are sentinel errors wrapped with fmt so callers can use
// errors.Is while still seeing the offending row/token in the message.
package tspfile
