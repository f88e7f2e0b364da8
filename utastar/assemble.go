// Package utastar - linear program assembly.
//
// Variable layout of every LP in the run, length T+2M:
//
//	x = ( w₁…w_T | σ⁺₁ σ⁻₁ … σ⁺_M σ⁻_M )
//
// with T the total segment count and M the number of alternatives.
// All variables are nonnegative; the solver contract takes ≤ inequalities,
// so every ≥ row is emitted negated.
package utastar

import (
	"gonum.org/v1/gonum/mat"

	"github.com/quu7/minora/solver"
)

// pairRow is one successive-rank comparison: the concatenated (Dᵢ | Eᵢ)
// coefficients plus whether the pair is a strict preference or a tie.
type pairRow struct {
	coeffs []float64
	strict bool
}

// pairRows builds the M−1 comparison rows between successively ranked
// alternatives. Dᵢ = Uᵢ − Uᵢ₊₁ covers the w-part; the error part Eᵢ places
// (+1, −1, −1, +1) at columns (2i, 2i+1, 2i+2, 2i+3), the difference of the
// two alternatives' (σ⁺, σ⁻) pairs.
func (p *problem) pairRows() []pairRow {
	m, t := p.basis.Dims()
	width := t + 2*m

	rows := make([]pairRow, m-1)
	for i := 0; i < m-1; i++ {
		coeffs := make([]float64, width)
		for k := 0; k < t; k++ {
			coeffs[k] = p.basis.At(i, k) - p.basis.At(i+1, k)
		}
		coeffs[t+2*i] = 1
		coeffs[t+2*i+1] = -1
		coeffs[t+2*i+2] = -1
		coeffs[t+2*i+3] = 1

		// Rows are rank-sorted, so the only possibilities are strictly
		// better (<) or tied (=).
		rows[i] = pairRow{
			coeffs: coeffs,
			strict: p.table.Rows[i].Rank < p.table.Rows[i+1].Rank,
		}
	}
	return rows
}

// constraints assembles the shared constraint system of the primary and
// secondary LPs:
//
//	strict pair   ⇒  (Dᵢ|Eᵢ)·x ≥ delta   emitted as  −(Dᵢ|Eᵢ)·x ≤ −delta
//	tied pair     ⇒  (Dᵢ|Eᵢ)·x = 0
//	normalization ⇒  Σ w = 1
//
// withBudget appends the post-optimality neighbourhood row Σσ ≤ budget.
func (p *problem) constraints(withBudget bool, budget float64) (aUb *mat.Dense, bUb []float64, aEq *mat.Dense, bEq []float64) {
	m, t := p.basis.Dims()
	width := t + 2*m
	pairs := p.pairRows()

	nStrict := 0
	for _, pr := range pairs {
		if pr.strict {
			nStrict++
		}
	}
	nUb := nStrict
	if withBudget {
		nUb++
	}
	nEq := len(pairs) - nStrict + 1 // ties + normalization

	if nUb > 0 {
		aUb = mat.NewDense(nUb, width, nil)
		bUb = make([]float64, nUb)
	}
	aEq = mat.NewDense(nEq, width, nil)
	bEq = make([]float64, nEq)

	iUb, iEq := 0, 0
	for _, pr := range pairs {
		if pr.strict {
			for k, c := range pr.coeffs {
				aUb.Set(iUb, k, -c)
			}
			bUb[iUb] = -p.opts.Delta
			iUb++
		} else {
			aEq.SetRow(iEq, pr.coeffs)
			bEq[iEq] = 0
			iEq++
		}
	}

	// Σ w = 1: ones over the w-part, zeros over the error part.
	for k := 0; k < t; k++ {
		aEq.Set(iEq, k, 1)
	}
	bEq[iEq] = 1

	if withBudget {
		// Σσ ≤ budget keeps secondary optima within an epsilon
		// neighbourhood of the primary optimum.
		for k := 0; k < 2*m; k++ {
			aUb.Set(iUb, t+k, 1)
		}
		bUb[iUb] = budget
	}

	return aUb, bUb, aEq, bEq
}

// primaryProblem is the fit LP: minimize the total signed error Σσ⁺+Σσ⁻.
func (p *problem) primaryProblem() solver.Problem {
	m, t := p.basis.Dims()
	aUb, bUb, aEq, bEq := p.constraints(false, 0)

	c := make([]float64, t+2*m)
	for k := 0; k < 2*m; k++ {
		c[t+k] = 1
	}

	return solver.Problem{C: c, AUb: aUb, BUb: bUb, AEq: aEq, BEq: bEq}
}

// secondaryProblem is the post-optimality LP for one criterion: the same
// constraint system plus the error budget Σσ ≤ fstar+epsilon, maximizing
// the criterion's total weight (minimizing its negated indicator).
func (p *problem) secondaryProblem(criterion string, fstar float64) solver.Problem {
	m, t := p.basis.Dims()
	aUb, bUb, aEq, bEq := p.constraints(true, fstar+p.opts.Epsilon)

	c := make([]float64, t+2*m)
	for k, v := range p.criteria.Indicator(criterion) {
		c[k] = -v
	}

	return solver.Problem{C: c, AUb: aUb, BUb: bUb, AEq: aEq, BEq: bEq}
}
