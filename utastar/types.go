// Package utastar defines configuration options and sentinel errors for the
// UTASTAR ordinal-regression pipeline.
package utastar

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/quu7/minora/solver"
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Sentinel errors
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

var (
	// ErrInvalidConfig indicates a structural input problem detected before
	// any LP call: empty or single-row table, missing monotonicity or split
	// entry, non-positive split, non-positive delta/epsilon, degenerate
	// criterion domain.
	ErrInvalidConfig = errors.New("utastar: invalid problem configuration")

	// ErrInvalidValue indicates a negative or non-finite criterion value.
	ErrInvalidValue = errors.New("utastar: criterion value must be a non-negative finite number")

	// ErrLinearProgram indicates the primary LP could not be solved
	// (infeasible, unbounded, or numerical failure). Fatal: no Result.
	ErrLinearProgram = errors.New("utastar: linear program could not be solved")

	// ErrDimensionMismatch indicates a value vector whose arity does not
	// match the criteria set (Score, row construction).
	ErrDimensionMismatch = errors.New("utastar: dimension mismatch")
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Options
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Default parameter values, mirroring the conventional UTASTAR setup.
const (
	// DefaultDelta is the strict-preference threshold between successively
	// ranked alternatives.
	DefaultDelta = 0.05

	// DefaultEpsilon is the post-optimality slack around the primary optimum.
	DefaultEpsilon = 0.01

	// DefaultTolerance is the absolute tolerance used when comparing raw
	// values against subinterval endpoints. Exact equality is fragile for
	// values that coincide with linearly spaced breakpoints.
	DefaultTolerance = 1e-9
)

// degeneracyTol decides whether the primary optimum F* counts as zero,
// triggering the post-optimality phase. Independent of Epsilon, which only
// widens the secondary feasible region.
const degeneracyTol = 1e-9

// Options configures one Solve run.
//
// Fields:
//
//	Delta     - strict-preference threshold, must be > 0.
//	Epsilon   - post-optimality slack around F*, must be > 0.
//	Tolerance - absolute breakpoint-comparison tolerance, must be ≥ 0.
//	Solver    - LP engine; any solver.Solver implementation.
//	Logger    - diagnostics sink; secondary-LP failures are logged here.
type Options struct {
	Delta     float64
	Epsilon   float64
	Tolerance float64
	Solver    solver.Solver
	Logger    zerolog.Logger
}

// DefaultOptions returns Options pre-populated with the conventional
// parameters and the built-in simplex engine:
//
//	Delta:     0.05
//	Epsilon:   0.01
//	Tolerance: 1e-9
//	Solver:    solver.Simplex{}
//	Logger:    zerolog.Nop()
func DefaultOptions() Options {
	return Options{
		Delta:     DefaultDelta,
		Epsilon:   DefaultEpsilon,
		Tolerance: DefaultTolerance,
		Solver:    solver.Simplex{},
		Logger:    zerolog.Nop(),
	}
}

// Validate checks that Options fields hold a valid combination.
func (o *Options) Validate() error {
	if o.Delta <= 0 {
		return fmt.Errorf("%w: delta must be positive, got %v", ErrInvalidConfig, o.Delta)
	}
	if o.Epsilon <= 0 {
		return fmt.Errorf("%w: epsilon must be positive, got %v", ErrInvalidConfig, o.Epsilon)
	}
	if o.Tolerance < 0 {
		return fmt.Errorf("%w: tolerance must be non-negative, got %v", ErrInvalidConfig, o.Tolerance)
	}
	if o.Solver == nil {
		return fmt.Errorf("%w: solver must not be nil", ErrInvalidConfig)
	}
	return nil
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Run phases
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// runPhase tracks the purely data-driven state of one Solve run:
//
//	built → primarySolved → {final | degeneratePending → postoptSolved → final}
//
// with failed terminal on solver error. Exposed only through debug logs.
type runPhase int

const (
	phaseBuilt runPhase = iota
	phasePrimarySolved
	phaseDegeneratePending
	phasePostoptSolved
	phaseFinal
	phaseFailed
)

// String implements fmt.Stringer for log output.
func (p runPhase) String() string {
	switch p {
	case phaseBuilt:
		return "built"
	case phasePrimarySolved:
		return "primary_solved"
	case phaseDegeneratePending:
		return "degenerate_pending"
	case phasePostoptSolved:
		return "postopt_solved"
	case phaseFinal:
		return "final"
	case phaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}
