package spectrum

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a spectrum from line-oriented text. Each non-blank line holds
// either a single intensity or an "index value" pair; the last field of the
// line is taken as the intensity. Fields may be separated by blanks, tabs,
// commas or semicolons.
//
// The first unreadable line aborts parsing with a *ParseError and no
// partial spectrum is returned.
func Parse(r io.Reader) (Spectrum, error) {
	_, y, err := scan(r, false)
	return y, err
}

// ParseString is Parse for in-memory text.
func ParseString(text string) (Spectrum, error) {
	return Parse(strings.NewReader(text))
}

// ParseXY reads like Parse but also returns the first column, which must then
// be numeric. Lines with a single field use the zero-based data-line index
// as x.
func ParseXY(r io.Reader) (x []float64, y Spectrum, err error) {
	return scan(r, true)
}

// scan reads data lines; withX also parses the leading column of
// multi-field lines.
func scan(r io.Reader, withX bool) (x []float64, y Spectrum, err error) {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.FieldsFunc(line, isSeparator)
		if len(fields) == 0 {
			return nil, nil, &ParseError{Line: lineNo, Text: line}
		}

		v, err := strconv.ParseFloat(fields[len(fields)-1], 64)
		if err != nil {
			return nil, nil, &ParseError{Line: lineNo, Text: line, Err: err}
		}

		xv := float64(len(y))
		if withX && len(fields) > 1 {
			xv, err = strconv.ParseFloat(fields[0], 64)
			if err != nil {
				return nil, nil, &ParseError{Line: lineNo, Text: line, Err: err}
			}
		}

		x = append(x, xv)
		y = append(y, v)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("spectrum: read: %w", err)
	}
	if len(y) == 0 {
		return nil, nil, ErrEmpty
	}
	return x, y, nil
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', ',', ';', '\r':
		return true
	}
	return false
}
