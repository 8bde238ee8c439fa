// SPDX-License-Identifier: MIT
// Package textio reads matrices and vectors from plain text and writes them
// back for terminal output.
//
// Input format:
//   - one matrix row per line;
//   - entries separated by whitespace and/or commas;
//   - '#' starts a comment running to end of line; blank lines are ignored.
//
// Output format:
//   - a label line, then one bracketed row per line with fixed precision.
package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/linalg/matrix"
)

// ErrEmptyInput is returned when no data rows remain after stripping
// comments and blank lines.
var ErrEmptyInput = errors.New("textio: no data rows")

const commentMark = "#"

// ReadMatrixFile opens path and parses it with ReadMatrix.
func ReadMatrixFile(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("textio: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadMatrix(f)
}

// ParseMatrix parses a matrix held in a string.
func ParseMatrix(s string) (*matrix.Dense, error) {
	return ReadMatrix(strings.NewReader(s))
}

// ReadMatrix parses rows from r until EOF.
// Errors:
//   - ErrEmptyInput if nothing but comments/blank lines was read.
//   - a line-numbered error wrapping strconv.ErrSyntax for a bad number.
//   - matrix.ErrDimensionMismatch (wrapped) for ragged rows.
//   - matrix.ErrNaNInf (wrapped) for non-finite entries.
func ReadMatrix(r io.Reader) (*matrix.Dense, error) {
	var (
		rows   [][]float64
		lineNo int
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if idx := strings.Index(line, commentMark); idx != -1 {
			line = line[:idx]
		}
		fields := splitFields(line)
		if len(fields) == 0 {
			continue
		}

		row, err := parseFields(fields)
		if err != nil {
			return nil, fmt.Errorf("textio: line %d: %w", lineNo, err)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("textio: line %d: %d entries, want %d: %w",
				lineNo, len(row), len(rows[0]), matrix.ErrDimensionMismatch)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("textio: read: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("textio: %w", err)
	}

	return m, nil
}

// ParseVector parses "b1,b2,..." (commas and/or whitespace).
func ParseVector(s string) ([]float64, error) {
	fields := splitFields(s)
	if len(fields) == 0 {
		return nil, ErrEmptyInput
	}
	v, err := parseFields(fields)
	if err != nil {
		return nil, fmt.Errorf("textio: vector: %w", err)
	}

	return v, nil
}

// splitFields treats commas as whitespace.
func splitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\r'
	})
}

func parseFields(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// WriteMatrix prints label, then m row by row with prec digits after the point.
// A nil m, including a nil *matrix.Dense, prints "<none>" under the label.
func WriteMatrix(w io.Writer, label string, m matrix.Matrix, prec int) error {
	var b strings.Builder
	b.WriteString(label)
	b.WriteString(":\n")
	if d, ok := m.(*matrix.Dense); m == nil || (ok && d == nil) {
		b.WriteString("  <none>\n")
		_, err := io.WriteString(w, b.String())

		return err
	}
	for i := 0; i < m.Rows(); i++ {
		b.WriteString("  [")
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(formatFloat(v, prec))
		}
		b.WriteString("]\n")
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// WriteVector prints "label: [v0 v1 ...]".
func WriteVector(w io.Writer, label string, v []float64, prec int) error {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = formatFloat(x, prec)
	}
	_, err := fmt.Fprintf(w, "%s: [%s]\n", label, strings.Join(parts, " "))

	return err
}

// WriteScalar prints "label: v".
func WriteScalar(w io.Writer, label string, v float64, prec int) error {
	_, err := fmt.Fprintf(w, "%s: %s\n", label, formatFloat(v, prec))

	return err
}

// formatFloat uses fixed notation (shortest form when prec < 0).
// Values that round to zero never print a sign.
func formatFloat(v float64, prec int) string {
	var s string
	if prec < 0 {
		s = strconv.FormatFloat(v, 'g', -1, 64)
	} else {
		s = strconv.FormatFloat(v, 'f', prec, 64)
	}
	if strings.HasPrefix(s, "-") && strings.Trim(s, "-0.") == "" {
		s = s[1:]
	}

	return s
}
