// Package tspfile_test - parsing coverage for both supported formats.
package tspfile_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/lukedodd/ant-tsp/tspfile"
)

// TestParseMatrix_Valid parses a well-formed 3×3 matrix with mixed spacing
// and a blank line.
func TestParseMatrix_Valid(t *testing.T) {
	src := "0 5 2\n\n5\t0  3\n2 3 0\n"

	m, err := tspfile.ParseMatrix(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseMatrix error: %v", err)
	}
	want := [][]float64{{0, 5, 2}, {5, 0, 3}, {2, 3, 0}}
	for i := range want {
		for j := range want[i] {
			if m[i][j] != want[i][j] {
				t.Errorf("m[%d][%d] = %v; want %v", i, j, m[i][j], want[i][j])
			}
		}
	}
}

// TestParseMatrix_Errors verifies each sentinel is reachable and wrapped.
func TestParseMatrix_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"Empty", "", tspfile.ErrEmptyInput},
		{"OnlyBlankLines", "\n  \n\t\n", tspfile.ErrEmptyInput},
		{"Ragged", "0 1\n1\n", tspfile.ErrRagged},
		{"Rectangular", "0 1 2\n1 0 2\n", tspfile.ErrNotSquare},
		{"BadToken", "0 x\n1 0\n", tspfile.ErrBadNumber},
		{"InfWeight", "0 +Inf\n1 0\n", tspfile.ErrBadNumber},
		{"Negative", "0 -4\n4 0\n", tspfile.ErrNegative},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tspfile.ParseMatrix(strings.NewReader(tc.src))
			if !errors.Is(err, tc.err) {
				t.Errorf("ParseMatrix error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestParseTSPLIB_Valid parses a minimal explicit-matrix TSPLIB instance,
// including values spread unevenly across lines.
func TestParseTSPLIB_Valid(t *testing.T) {
	src := strings.Join([]string{
		"NAME: br3",
		"TYPE: ATSP",
		"DIMENSION: 3",
		"EDGE_WEIGHT_TYPE: EXPLICIT",
		"EDGE_WEIGHT_FORMAT: FULL_MATRIX",
		"EDGE_WEIGHT_SECTION",
		"0 5",
		"2 5 0 3",
		"2 3 0",
		"EOF",
	}, "\n")

	name, m, err := tspfile.ParseTSPLIB(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseTSPLIB error: %v", err)
	}
	if name != "br3" {
		t.Errorf("name = %q; want %q", name, "br3")
	}
	if len(m) != 3 || m[1][2] != 3 || m[2][0] != 2 {
		t.Errorf("unexpected matrix: %v", m)
	}
}

// TestParseTSPLIB_Errors verifies header and section failures.
func TestParseTSPLIB_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"NoDimension", "NAME: x\nEDGE_WEIGHT_SECTION\n0 1 1 0\nEOF\n", tspfile.ErrBadDimension},
		{"BadDimension", "DIMENSION: two\nEDGE_WEIGHT_SECTION\nEOF\n", tspfile.ErrBadDimension},
		{"NoSection", "DIMENSION: 2\nEOF\n", tspfile.ErrMissingSection},
		{"ShortSection", "DIMENSION: 2\nEDGE_WEIGHT_SECTION\n0 1 1\nEOF\n", tspfile.ErrShortSection},
		{"BadValue", "DIMENSION: 2\nEDGE_WEIGHT_SECTION\n0 1 oops 0\nEOF\n", tspfile.ErrBadNumber},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := tspfile.ParseTSPLIB(strings.NewReader(tc.src))
			if !errors.Is(err, tc.err) {
				t.Errorf("ParseTSPLIB error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestLoadMatrix_MissingFile keeps the os error visible through the wrapper.
func TestLoadMatrix_MissingFile(t *testing.T) {
	if _, err := tspfile.LoadMatrix("definitely/not/here.txt"); err == nil {
		t.Fatal("LoadMatrix on a missing file must fail")
	}
}
