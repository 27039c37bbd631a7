package tspfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrEmptyInput indicates the source contained no matrix rows at all.
	ErrEmptyInput = errors.New("tspfile: input contains no matrix data")
	// ErrRagged indicates a row whose width differs from the matrix order.
	ErrRagged = errors.New("tspfile: all rows must have the same length")
	// ErrNotSquare indicates a row count different from the column count.
	ErrNotSquare = errors.New("tspfile: matrix must be square")
	// ErrBadNumber indicates a token that does not parse as a finite float64.
	ErrBadNumber = errors.New("tspfile: weight is not a finite number")
	// ErrNegative indicates a negative weight.
	ErrNegative = errors.New("tspfile: weights must be non-negative")
	// ErrBadDimension indicates a missing or malformed TSPLIB DIMENSION header.
	ErrBadDimension = errors.New("tspfile: missing or invalid DIMENSION header")
	// ErrMissingSection indicates a TSPLIB file without an EDGE_WEIGHT_SECTION.
	ErrMissingSection = errors.New("tspfile: missing EDGE_WEIGHT_SECTION")
	// ErrShortSection indicates an EDGE_WEIGHT_SECTION with too few values.
	ErrShortSection = errors.New("tspfile: EDGE_WEIGHT_SECTION does not fill the matrix")
)

// ParseMatrix reads a full adjacency matrix: one row per line, columns
// separated by whitespace, blank lines skipped. Every row must have exactly
// as many columns as there are rows.
//
// Complexity: O(n²) time and space.
func ParseMatrix(r io.Reader) ([][]float64, error) {
	var (
		scanner = bufio.NewScanner(r)
		matrix  [][]float64
		lineNo  int
	)
	// Rows can be long for large instances; lift the default token limit.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue // blank or whitespace-only line
		}

		row, err := parseRow(fields, lineNo)
		if err != nil {
			return nil, err
		}
		matrix = append(matrix, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("tspfile: reading input: %w", err)
	}

	return checkShape(matrix)
}

// LoadMatrix is the file-path convenience wrapper around ParseMatrix.
func LoadMatrix(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tspfile: %w", err)
	}
	defer f.Close()

	return ParseMatrix(f)
}

// ParseTSPLIB reads a TSPLIB instance with an explicit edge-weight matrix
// (EDGE_WEIGHT_TYPE: EXPLICIT, EDGE_WEIGHT_FORMAT: FULL_MATRIX). The NAME
// header, when present, is returned alongside the matrix. Values inside
// EDGE_WEIGHT_SECTION fill the matrix row by row and may be broken across
// lines arbitrarily; parsing stops at EOF or end of input.
//
// Complexity: O(n²) time and space.
func ParseTSPLIB(r io.Reader) (name string, matrix [][]float64, err error) {
	var (
		scanner   = bufio.NewScanner(r)
		dimension = -1
		inSection bool
		values    []float64
	)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, "EOF") {
			break
		}

		switch {
		case strings.HasPrefix(line, "NAME"):
			name = headerValue(line)

		case strings.HasPrefix(line, "DIMENSION"):
			dimension, err = strconv.Atoi(headerValue(line))
			if err != nil || dimension < 1 {
				return "", nil, ErrBadDimension
			}

		case strings.HasPrefix(line, "EDGE_WEIGHT_SECTION"):
			inSection = true

		case inSection:
			for _, tok := range strings.Fields(line) {
				w, perr := parseWeight(tok)
				if perr != nil {
					return "", nil, fmt.Errorf("%w: %q", perr, tok)
				}
				values = append(values, w)
			}
		}
	}
	if err = scanner.Err(); err != nil {
		return "", nil, fmt.Errorf("tspfile: reading input: %w", err)
	}

	if dimension < 1 {
		return "", nil, ErrBadDimension
	}
	if !inSection {
		return "", nil, ErrMissingSection
	}
	if len(values) < dimension*dimension {
		return "", nil, fmt.Errorf("%w: have %d values, need %d",
			ErrShortSection, len(values), dimension*dimension)
	}

	matrix = make([][]float64, dimension)
	for i := 0; i < dimension; i++ {
		matrix[i] = values[i*dimension : (i+1)*dimension]
	}

	return name, matrix, nil
}

// LoadTSPLIB is the file-path convenience wrapper around ParseTSPLIB.
func LoadTSPLIB(path string) (string, [][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("tspfile: %w", err)
	}
	defer f.Close()

	return ParseTSPLIB(f)
}

// parseRow converts one line's fields into a matrix row.
func parseRow(fields []string, lineNo int) ([]float64, error) {
	row := make([]float64, len(fields))
	for i, tok := range fields {
		w, err := parseWeight(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d, %q", err, lineNo, tok)
		}
		row[i] = w
	}

	return row, nil
}

// parseWeight parses a single weight token with the package's value rules.
func parseWeight(tok string) (float64, error) {
	w, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, ErrBadNumber
	}
	if w < 0 {
		return 0, ErrNegative
	}

	return w, nil
}

// headerValue extracts the value of a "KEY : value" TSPLIB header line.
func headerValue(line string) string {
	if _, after, found := strings.Cut(line, ":"); found {
		return strings.TrimSpace(after)
	}

	return ""
}

// checkShape enforces the square, non-ragged contract after a plain parse.
func checkShape(matrix [][]float64) ([][]float64, error) {
	n := len(matrix)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	for i, row := range matrix {
		if len(row) != len(matrix[0]) {
			return nil, fmt.Errorf("%w: row %d has %d columns, row 1 has %d",
				ErrRagged, i+1, len(row), len(matrix[0]))
		}
	}
	if len(matrix[0]) != n {
		return nil, fmt.Errorf("%w: %d rows × %d columns", ErrNotSquare, n, len(matrix[0]))
	}

	return matrix, nil
}
