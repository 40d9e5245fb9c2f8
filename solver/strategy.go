package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/towercover/cover"
	"github.com/katalvlaran/towercover/grid"
	"github.com/katalvlaran/towercover/instance"
	"github.com/katalvlaran/towercover/solution"
)

// Sentinel errors for strategy selection.
var (
	// ErrUnknownStrategy is returned for a name or value outside the enumeration.
	ErrUnknownStrategy = errors.New("solver: unknown strategy")
	// ErrNilInstance is returned if a nil instance pointer is passed.
	ErrNilInstance = errors.New("solver: instance is nil")
)

// Strategy selects a placement algorithm.
type Strategy int

const (
	// Naive places a tower on every city.
	Naive Strategy = iota
	// Test places towers on a fixed lattice with step 5 starting at 2.
	Test
	// Greedy runs cover.SolveGreedy.
	Greedy
)

// testLatticeStart and testLatticeStep define the Test strategy lattice.
const (
	testLatticeStart = 2
	testLatticeStep  = 5
)

var strategyNames = [...]string{
	Naive:  "naive",
	Test:   "test",
	Greedy: "greedy",
}

// Strategies returns every strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{Naive, Test, Greedy}
}

// Names returns the strategy names in declaration order, for flag help text.
func Names() []string {
	out := make([]string, len(strategyNames))
	copy(out, strategyNames[:])

	return out
}

// String returns the strategy's command-line name.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// ParseStrategy maps a command-line name to a Strategy (case-insensitive).
func ParseStrategy(name string) (Strategy, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, s := range Strategies() {
		if strategyNames[s] == n {
			return s, nil
		}
	}

	return 0, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownStrategy, name, strings.Join(Names(), ", "))
}

// Set implements pflag.Value so a Strategy can be bound directly to a flag.
func (s *Strategy) Set(name string) error {
	v, err := ParseStrategy(name)
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// Type implements pflag.Value.
func (s *Strategy) Type() string {
	return "strategy"
}

// MarshalText encodes the strategy by name.
func (s Strategy) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(strategyNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}

	return []byte(strategyNames[s]), nil
}

// UnmarshalText decodes a strategy name.
func (s *Strategy) UnmarshalText(text []byte) error {
	return s.Set(string(text))
}

// Solve runs the strategy on inst. Greedy options are forwarded to cover.SolveGreedy
// and ignored by the other strategies.
//
// Errors: ErrNilInstance, ErrUnknownStrategy, and whatever the strategy returns.
func (s Strategy) Solve(inst *instance.Instance, opts ...cover.Option) (*solution.Solution, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	switch s {
	case Naive:
		return solveNaive(inst), nil

	case Test:
		return solveTest(inst), nil

	case Greedy:
		return cover.SolveGreedy(inst, opts...)

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
}

// solveNaive places one tower per city.
// Complexity: O(N).
func solveNaive(inst *instance.Instance) *solution.Solution {
	return solution.New(inst, inst.Cities)
}

// solveTest places towers at (i, j) for i, j ∈ {2, 7, 12, …} below D.
// Complexity: O(D²/25).
func solveTest(inst *instance.Instance) *solution.Solution {
	var towers []grid.Point
	for i := testLatticeStart; i < inst.GridSideLength; i += testLatticeStep {
		for j := testLatticeStart; j < inst.GridSideLength; j += testLatticeStep {
			towers = append(towers, grid.Pt(i, j))
		}
	}

	return solution.New(inst, towers)
}
