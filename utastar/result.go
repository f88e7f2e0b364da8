// Package utastar - result assembly and scoring.
package utastar

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Degeneracy carries the unaveraged solutions when the primary optimum was
// degenerate (F* ≈ 0) and the post-optimality phase ran: FirstSol is the
// primary LP's model, SASol one model per successful per-criterion LP.
type Degeneracy struct {
	FirstSol *Result
	SASol    []*Result
}

// Result is the fitted preference model.
//
// All per-alternative slices (Errors, Utilities) are indexed in preference
// order, i.e. the rank-sorted row order, best first. Errors interleaves the
// signed fitting errors per alternative: σ⁺ᵢ at offset 2i, σ⁻ᵢ at 2i+1, so
// table renderers can slice even/odd offsets into two columns.
type Result struct {
	// Criteria is the segmented criteria set the model was fitted on.
	Criteria *CriteriaSet

	// W is the full weight vector, length T, in criteria order.
	W []float64

	// WValues partitions W by criterion name.
	WValues map[string][]float64

	// PartialUtil holds the cumulative sums of WValues per criterion: the
	// marginal utility at each breakpoint after the first. Nondecreasing;
	// the last entry equals Weights for that criterion.
	PartialUtil map[string][]float64

	// Weights is each criterion's total weight; the values sum to 1.
	Weights map[string]float64

	// Errors is the length-2M interleaved (σ⁺, σ⁻) vector.
	Errors []float64

	// Utilities is each alternative's total utility in preference order.
	Utilities []float64

	// Table is an independent copy of the problem table with the Utility
	// column populated, sorted descending by utility. Callers may append
	// rows and re-sort without affecting the model.
	Table *Table

	// Tau is Kendall's rank correlation between the user ranking and the
	// utility-induced ranking.
	Tau float64

	// Degeneracy is non-nil when the post-optimality phase ran; see the
	// type documentation.
	Degeneracy *Degeneracy

	tolerance float64
}

// buildResult packages one primal vector x = (w | σ) into a model.
func (p *problem) buildResult(x []float64, deg *Degeneracy) *Result {
	m, t := p.basis.Dims()

	w := append([]float64(nil), x[:t]...)
	errs := append([]float64(nil), x[t:t+2*m]...)

	wValues := make(map[string][]float64, p.criteria.Len())
	partial := make(map[string][]float64, p.criteria.Len())
	weights := make(map[string]float64, p.criteria.Len())
	offset := 0
	for j := 0; j < p.criteria.Len(); j++ {
		crit := p.criteria.At(j)
		block := append([]float64(nil), w[offset:offset+crit.Segments()]...)

		cum := make([]float64, len(block))
		floats.CumSum(cum, block)

		wValues[crit.Name] = block
		partial[crit.Name] = cum
		weights[crit.Name] = cum[len(cum)-1]
		offset += crit.Segments()
	}

	// Utilities = U·w in preference order.
	var uVec mat.VecDense
	uVec.MulVec(p.basis, mat.NewVecDense(t, w))
	utilities := make([]float64, m)
	for i := range utilities {
		utilities[i] = uVec.AtVec(i)
	}

	table := p.table.Clone()
	for i := range table.Rows {
		table.Rows[i].Utility = utilities[i]
	}
	sort.SliceStable(table.Rows, func(i, j int) bool {
		return table.Rows[i].Utility > table.Rows[j].Utility
	})

	return &Result{
		Criteria:    p.criteria,
		W:           w,
		WValues:     wValues,
		PartialUtil: partial,
		Weights:     weights,
		Errors:      errs,
		Utilities:   utilities,
		Table:       table,
		Tau:         p.kendallTau(table),
		Degeneracy:  deg,
		tolerance:   p.opts.Tolerance,
	}
}

// kendallTau correlates the user ranking with the model ranking. Model
// ranks are dense positions in the utility-sorted table; user ranks are
// taken as given, ties included.
func (p *problem) kendallTau(sortedByUtility *Table) float64 {
	position := make(map[string]int, len(sortedByUtility.Rows))
	for i, row := range sortedByUtility.Rows {
		position[row.Name] = i + 1
	}

	userRanks := make([]float64, len(p.table.Rows))
	modelRanks := make([]float64, len(p.table.Rows))
	for i, row := range p.table.Rows {
		userRanks[i] = float64(row.Rank)
		modelRanks[i] = float64(position[row.Name])
	}

	return stat.Kendall(userRanks, modelRanks, nil)
}

// Score computes the total utility of an unseen alternative from its raw
// values, given in criteria order. Values outside a criterion's observed
// domain contribute no marginal utility; negative or non-finite values fail
// with ErrInvalidValue.
func (r *Result) Score(values []float64) (float64, error) {
	if len(values) != r.Criteria.Len() {
		return 0, fmt.Errorf("%w: got %d values, want %d",
			ErrDimensionMismatch, len(values), r.Criteria.Len())
	}

	row := make([]float64, 0, len(r.W))
	for j := 0; j < r.Criteria.Len(); j++ {
		beta, err := r.Criteria.At(j).Coefficients(values[j], r.tolerance)
		if err != nil {
			return 0, err
		}
		row = append(row, beta...)
	}

	return floats.Dot(row, r.W), nil
}
