package instance

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/towercover/grid"
)

// headerFields is the number of single-value lines before the city list.
const headerFields = 4

// line is one non-empty, comment-stripped input line with its 1-based line number.
type line struct {
	no     int
	fields []string
}

// readLines strips comments and blank lines from r.
// Complexity: O(len(input)).
func readLines(r io.Reader) ([]line, error) {
	var (
		out []line
		no  int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		no++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		out = append(out, line{no: no, fields: fields})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// Parse reads an instance in the text format described in the package doc.
//
// Contracts:
//   - exactly N city lines must follow the four header lines;
//   - every header line holds one value, every city line two integers.
//
// Errors: ErrMalformed wrapped with the offending line number; I/O errors as-is.
// Parse does not call Validate.
//
// Complexity: O(len(input)).
func Parse(r io.Reader) (*Instance, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) < headerFields {
		return nil, fmt.Errorf("%w: expected %d header lines, got %d", ErrMalformed, headerFields, len(lines))
	}

	// Stage 1: header.
	var (
		n, side int
		rs, rp  float64
	)
	if n, err = singleInt(lines[0], "city count"); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: line %d: negative city count %d", ErrMalformed, lines[0].no, n)
	}
	if side, err = singleInt(lines[1], "grid side length"); err != nil {
		return nil, err
	}
	if rs, err = singleFloat(lines[2], "coverage radius"); err != nil {
		return nil, err
	}
	if rp, err = singleFloat(lines[3], "penalty radius"); err != nil {
		return nil, err
	}

	// Stage 2: cities.
	body := lines[headerFields:]
	if len(body) != n {
		return nil, fmt.Errorf("%w: header declares %d cities, found %d", ErrMalformed, n, len(body))
	}
	cities := make([]grid.Point, n)
	for i, l := range body {
		if cities[i], err = ParsePoint(l.fields); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, l.no, err)
		}
	}

	return &Instance{
		GridSideLength: side,
		CoverageRadius: rs,
		PenaltyRadius:  rp,
		Cities:         cities,
	}, nil
}

// ParsePoint converts two integer fields into a grid.Point.
// It is shared with the solution parser.
func ParsePoint(fields []string) (grid.Point, error) {
	if len(fields) != 2 {
		return grid.Point{}, fmt.Errorf("expected 2 coordinates, got %d", len(fields))
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return grid.Point{}, fmt.Errorf("bad x coordinate %q", fields[0])
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return grid.Point{}, fmt.Errorf("bad y coordinate %q", fields[1])
	}

	return grid.Point{X: x, Y: y}, nil
}

func singleInt(l line, what string) (int, error) {
	if len(l.fields) != 1 {
		return 0, fmt.Errorf("%w: line %d: %s must be a single value", ErrMalformed, l.no, what)
	}
	v, err := strconv.Atoi(l.fields[0])
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: bad %s %q", ErrMalformed, l.no, what, l.fields[0])
	}

	return v, nil
}

func singleFloat(l line, what string) (float64, error) {
	if len(l.fields) != 1 {
		return 0, fmt.Errorf("%w: line %d: %s must be a single value", ErrMalformed, l.no, what)
	}
	v, err := strconv.ParseFloat(l.fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: bad %s %q", ErrMalformed, l.no, what, l.fields[0])
	}

	return v, nil
}

// Serialize writes the instance in the text format read by Parse.
// Radii are written in the shortest form that round-trips ("3", not "3.000000").
func (in *Instance) Serialize(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, len(in.Cities))
	fmt.Fprintln(bw, in.GridSideLength)
	fmt.Fprintln(bw, FormatNumber(in.CoverageRadius))
	fmt.Fprintln(bw, FormatNumber(in.PenaltyRadius))
	for _, c := range in.Cities {
		fmt.Fprintln(bw, c.String())
	}

	return bw.Flush()
}

// FormatNumber renders v in the shortest decimal form that parses back to v.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
