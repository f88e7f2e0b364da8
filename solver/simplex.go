// Package solver - built-in adapter over gonum's dense revised simplex.
package solver

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// Simplex solves Problems with gonum's revised simplex (optimize/convex/lp).
//
// The general-form program is converted to the standard form lp.Simplex
// expects (minimize c·x subject to A·x = b, x ≥ 0) by appending one slack
// variable per inequality row:
//
//	[ AUb | I ]        [ BUb ]
//	[ AEq | 0 ] · x' = [ BEq ],   x' = (x, s), s ≥ 0
//
// Slack components are stripped from the returned primal vector, so callers
// see exactly len(C) coordinates.
//
// The zero value is ready to use.
type Simplex struct {
	// Tol is passed through to lp.Simplex; 0 selects gonum's default
	// convergence tolerance.
	Tol float64
}

// compile-time contract check
var _ Solver = Simplex{}

// Solve runs one simplex optimization. Infeasibility, unboundedness and
// numerical failure are reported via Solution.Success=false with the gonum
// error text as Message; a non-nil error means the Problem itself is
// malformed and nothing was solved.
func (s Simplex) Solve(p Problem) (Solution, error) {
	nVars, nUb, nEq, err := p.validate()
	if err != nil {
		return Solution{}, err
	}

	// 1) Assemble the standard-form system: one row per constraint,
	//    one column per original variable plus one per slack.
	rows := nUb + nEq
	cols := nVars + nUb
	a := mat.NewDense(rows, cols, nil)
	b := make([]float64, rows)
	for i := 0; i < nUb; i++ {
		for j := 0; j < nVars; j++ {
			a.Set(i, j, p.AUb.At(i, j))
		}
		a.Set(i, nVars+i, 1) // slack turns ≤ into =
		b[i] = p.BUb[i]
	}
	for i := 0; i < nEq; i++ {
		for j := 0; j < nVars; j++ {
			a.Set(nUb+i, j, p.AEq.At(i, j))
		}
		b[nUb+i] = p.BEq[i]
	}

	// 2) Slack variables carry zero cost.
	c := make([]float64, cols)
	copy(c, p.C)

	// 3) Phase-1/phase-2 simplex; gonum finds its own initial basis.
	optF, optX, err := lp.Simplex(c, a, b, s.Tol, nil)
	if err != nil {
		// lp.ErrInfeasible, lp.ErrUnbounded, lp.ErrSingular and friends
		// are expected outcomes for a well-formed program, not I/O errors.
		return Solution{Success: false, Message: err.Error()}, nil
	}

	x := make([]float64, nVars)
	copy(x, optX[:nVars])

	return Solution{Success: true, X: x, Fun: optF, Message: "optimal"}, nil
}
