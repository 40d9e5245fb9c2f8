package solution

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/towercover/grid"
	"github.com/katalvlaran/towercover/instance"
)

// Serialize writes the tower count followed by one "x y" line per tower.
func (s *Solution) Serialize(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, len(s.Towers))
	for _, t := range s.Towers {
		fmt.Fprintln(bw, t.String())
	}

	return bw.Flush()
}

// WriteWithPenalty writes a leading "# Penalty: <value>" comment, then Serialize.
// This is the output written by the solve command.
func (s *Solution) WriteWithPenalty(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "# Penalty: %s\n", FormatPenalty(s.Penalty())); err != nil {
		return err
	}

	return s.Serialize(w)
}

// FormatPenalty renders a penalty with the shortest round-tripping representation.
func FormatPenalty(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// Parse reads a solution for inst. Comment text after "#" and blank lines are ignored.
// Errors: ErrMalformed wrapped with the offending line number; ErrNilInstance.
// Parse does not validate the placement; call Validate for that.
//
// Complexity: O(len(input)).
func Parse(r io.Reader, inst *instance.Instance) (*Solution, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}

	var (
		sc       = bufio.NewScanner(r)
		no       int
		count    = -1
		towers   []grid.Point
		haveBody bool
	)
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

		// First value line: the tower count.
		if !haveBody {
			if len(fields) != 1 {
				return nil, fmt.Errorf("%w: line %d: tower count must be a single value", ErrMalformed, no)
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: line %d: bad tower count %q", ErrMalformed, no, fields[0])
			}
			count, haveBody = n, true
			towers = make([]grid.Point, 0, n)
			continue
		}

		p, err := instance.ParsePoint(fields)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, no, err)
		}
		towers = append(towers, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !haveBody {
		return nil, fmt.Errorf("%w: missing tower count", ErrMalformed)
	}
	if len(towers) != count {
		return nil, fmt.Errorf("%w: header declares %d towers, found %d", ErrMalformed, count, len(towers))
	}

	return &Solution{Instance: inst, Towers: towers}, nil
}
