// Package solver - LP contract types shared by all adapters.
package solver

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrBadProblem indicates structurally inconsistent LP input
// (mismatched matrix/vector dimensions, empty objective, no constraints).
var ErrBadProblem = errors.New("solver: malformed linear program")

// Problem is a linear program in the general inequality/equality form:
//
//	minimize    C·x
//	subject to  AUb·x ≤ BUb
//	            AEq·x = BEq
//	            x ≥ 0
//
// AUb/AEq may be nil when the corresponding constraint block is empty;
// the paired right-hand side must then be empty as well.
type Problem struct {
	C   []float64
	AUb *mat.Dense
	BUb []float64
	AEq *mat.Dense
	BEq []float64
}

// Solution reports the outcome of one Solve call.
//
// Success=false carries the engine's diagnostic in Message (infeasible,
// unbounded, numerical failure); X and Fun are meaningless in that case.
type Solution struct {
	Success bool
	X       []float64
	Fun     float64
	Message string
}

// Solver is the pluggable LP engine contract.
//
// Solve returns a non-nil error only for malformed input (ErrBadProblem);
// solver-level failure on a well-formed program is reported through
// Solution.Success so that callers can distinguish "cannot run" from
// "ran and found no optimum".
type Solver interface {
	Solve(p Problem) (Solution, error)
}

// validate checks dimensional consistency and returns the constraint counts.
func (p Problem) validate() (nVars, nUb, nEq int, err error) {
	nVars = len(p.C)
	if nVars == 0 {
		return 0, 0, 0, ErrBadProblem
	}
	if p.AUb != nil {
		r, c := p.AUb.Dims()
		if c != nVars || r != len(p.BUb) {
			return 0, 0, 0, ErrBadProblem
		}
		nUb = r
	} else if len(p.BUb) != 0 {
		return 0, 0, 0, ErrBadProblem
	}
	if p.AEq != nil {
		r, c := p.AEq.Dims()
		if c != nVars || r != len(p.BEq) {
			return 0, 0, 0, ErrBadProblem
		}
		nEq = r
	} else if len(p.BEq) != 0 {
		return 0, 0, 0, ErrBadProblem
	}
	if nUb+nEq == 0 {
		return 0, 0, 0, ErrBadProblem
	}
	return nVars, nUb, nEq, nil
}
