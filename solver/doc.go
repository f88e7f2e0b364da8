// Package solver defines the pluggable linear-programming contract used by
// the UTASTAR core, plus a built-in dense simplex adapter.
//
// 🚀 What is solver?
//
//	A minimal LP facade in scipy.optimize.linprog form:
//
//	    minimize    c·x
//	    subject to  A_ub·x ≤ b_ub
//	                A_eq·x = b_eq
//	                x ≥ 0
//
//	Any engine able to answer that question can drive the ordinal-regression
//	pipeline — swap in an interior-point method, a remote solver, or a stub
//	for testing without touching the core.
//
// ✨ Key features:
//   - Solution mirrors the classic OptimizeResult shape: Success, X, Fun, Message
//   - Simplex: built-in adapter over gonum's revised simplex (optimize/convex/lp)
//   - infeasible / unbounded / singular outcomes reported as data, not panics
//
// ⚙️ Usage:
//
//	import "github.com/quu7/minora/solver"
//
//	sol, err := solver.Simplex{}.Solve(solver.Problem{
//	    C:   []float64{-1, -2},
//	    AUb: mat.NewDense(1, 2, []float64{1, 1}),
//	    BUb: []float64{4},
//	})
//
// See simplex.go for the standard-form conversion details.
package solver
