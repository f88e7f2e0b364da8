// Package utastar - the Solve entry point and post-optimality engine.
package utastar

import (
	"fmt"
	"math"
)

// Solve fits an additive piecewise-linear utility model to the ranked
// multicriteria table.
//
// Inputs:
//   - tbl: criterion names in column order plus one row per alternative
//     (name, rank ≥ 1 with 1 most preferred, nonnegative raw values).
//   - monotonicity: criterion name → true for ascending (larger is better),
//     false for descending.
//   - splits: criterion name → number of subintervals (≥ 1) for that
//     criterion's piecewise segmentation.
//   - opts: thresholds, tolerance, LP engine, logger; see Options.
//
// The run builds the basis matrix, solves the primary fit LP and, when the
// optimum is degenerate (F* ≈ 0), resolves the ambiguity by maximizing each
// criterion's weight in turn within an epsilon neighbourhood of the optimum
// and averaging the surviving solutions.
//
// Errors: ErrInvalidConfig / ErrInvalidValue / ErrDimensionMismatch before
// any LP call; ErrLinearProgram when the primary LP fails. Secondary-LP
// failures are non-fatal: they are logged and skipped, and if every
// secondary LP fails the primary solution stands.
//
// Each call owns its data; concurrent Solve calls are independent.
func Solve(tbl *Table, monotonicity map[string]bool, splits map[string]int, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	prob, err := buildProblem(tbl, monotonicity, splits, opts)
	if err != nil {
		return nil, err
	}
	log := opts.Logger
	log.Debug().
		Stringer("phase", phaseBuilt).
		Int("alternatives", len(prob.table.Rows)).
		Int("segments", prob.criteria.TotalSegments()).
		Msg("problem built")

	sol, err := opts.Solver.Solve(prob.primaryProblem())
	if err != nil {
		log.Debug().Stringer("phase", phaseFailed).Err(err).Msg("primary LP")
		return nil, fmt.Errorf("%w: %v", ErrLinearProgram, err)
	}
	if !sol.Success {
		log.Debug().Stringer("phase", phaseFailed).Str("message", sol.Message).Msg("primary LP")
		return nil, fmt.Errorf("%w: %s", ErrLinearProgram, sol.Message)
	}
	log.Debug().
		Stringer("phase", phasePrimarySolved).
		Float64("fstar", sol.Fun).
		Msg("primary LP solved")

	// A strictly positive optimum means the ranking is not exactly
	// reproducible and the fitted errors disambiguate the solution.
	if math.Abs(sol.Fun) > degeneracyTol {
		log.Debug().Stringer("phase", phaseFinal).Msg("unique optimum, no post-optimality")
		return prob.buildResult(sol.X, nil), nil
	}

	log.Debug().Stringer("phase", phaseDegeneratePending).Msg("degenerate optimum, running per-criterion LPs")
	return prob.postOptimality(sol.X, sol.Fun)
}

// postOptimality resolves a degenerate primary optimum: for each criterion
// it maximizes that criterion's total weight within Σσ ≤ F*+epsilon, then
// averages the successful solutions element-wise. Failed secondary LPs are
// logged and omitted from the average; if all fail, the primary solution
// is returned unchanged.
func (p *problem) postOptimality(primalX []float64, fstar float64) (*Result, error) {
	log := p.opts.Logger
	first := p.buildResult(primalX, nil)

	var (
		solutions   [][]float64
		secondaries []*Result
	)
	for j := 0; j < p.criteria.Len(); j++ {
		name := p.criteria.At(j).Name

		sol, err := p.opts.Solver.Solve(p.secondaryProblem(name, fstar))
		if err != nil {
			log.Warn().Str("criterion", name).Err(err).
				Msg("secondary LP failed, omitting from average")
			continue
		}
		if !sol.Success {
			log.Warn().Str("criterion", name).Str("message", sol.Message).
				Msg("secondary LP failed, omitting from average")
			continue
		}

		solutions = append(solutions, sol.X)
		secondaries = append(secondaries, p.buildResult(sol.X, nil))
	}

	if len(solutions) == 0 {
		log.Warn().Msg("all secondary LPs failed, keeping primary solution")
		return first, nil
	}

	log.Debug().
		Stringer("phase", phasePostoptSolved).
		Int("averaged", len(solutions)).
		Msg("post-optimality solved")

	avg := averageVectors(solutions)
	res := p.buildResult(avg, &Degeneracy{FirstSol: first, SASol: secondaries})

	log.Debug().Stringer("phase", phaseFinal).Float64("tau", res.Tau).Msg("model assembled")

	return res, nil
}

// averageVectors is the unweighted element-wise mean of equal-length
// vectors. len(vs) ≥ 1.
func averageVectors(vs [][]float64) []float64 {
	out := make([]float64, len(vs[0]))
	for _, v := range vs {
		for i, x := range v {
			out[i] += x
		}
	}
	n := float64(len(vs))
	for i := range out {
		out[i] /= n
	}
	return out
}
