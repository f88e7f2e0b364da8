// Package utastar infers additive piecewise-linear utility models from
// ordinal rankings — the UTASTAR multicriteria ordinal-regression method.
//
// 🚀 What is UTASTAR?
//
//	Given a table of alternatives scored on several criteria plus the
//	decision-maker's ranking of those alternatives, UTASTAR fits per-criterion
//	marginal utility functions whose induced total-utility ordering reproduces
//	the ranking as closely as possible, minimizing a sum of signed fitting
//	errors (σ⁺/σ⁻).  It's the classic tool behind:
//	  • preference disaggregation & decision support
//	  • supplier / project / route selection studies
//	  • eliciting criterion weights from examples instead of interviews
//
// ✨ Key features:
//   - monotonicity-aware criteria (ascending or descending preference)
//   - configurable piecewise segmentation per criterion
//   - post-optimality analysis: degenerate optima are resolved by
//     criterion-wise weight maximization and unweighted averaging
//   - Kendall τ rank-fit statistic and scoring of unseen alternatives
//   - pluggable LP engine (see the sibling solver package)
//
// ⚙️ Usage:
//
//	import "github.com/quu7/minora/utastar"
//
//	tbl := &utastar.Table{
//	  Criteria: []string{"Price", "Comfort"},
//	  Rows: []utastar.Alternative{
//	    {Name: "A", Rank: 1, Values: []float64{2, 3}},
//	    {Name: "B", Rank: 2, Values: []float64{9, 1}},
//	  },
//	}
//	res, err := utastar.Solve(tbl,
//	  map[string]bool{"Price": false, "Comfort": true}, // false = smaller is better
//	  map[string]int{"Price": 2, "Comfort": 3},
//	  utastar.DefaultOptions())
//	// res.Weights, res.PartialUtil, res.Tau, res.Score(...)
//
// Pipeline:
//
//	table ──► criteria + basis matrix ──► successive-rank differences
//	      ──► primary LP ──► (F*≈0? per-criterion LPs, averaged) ──► Result
//
// Spreadsheet parsing, persistence and rendering are collaborator concerns;
// the package consumes parsed structures and returns a Result.
//
//	go get github.com/quu7/minora/utastar
package utastar
