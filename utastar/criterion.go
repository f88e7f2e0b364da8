// Package utastar - criteria and the piecewise-linear basis encoding.
package utastar

import (
	"fmt"
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Criterion
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Criterion is one axis of evaluation: a name plus its segmented domain.
// Direction encodes monotonicity: an ascending Interval means larger raw
// values are preferred, a descending one means smaller values are preferred
// (the Interval is stored worst → best either way, so the basis encoding
// below is orientation-free).
type Criterion struct {
	Name     string
	Interval Interval
}

// Ascending reports whether larger raw values are preferred.
func (c Criterion) Ascending() bool { return c.Interval.Ascending() }

// Segments returns the number of subintervals, i.e. the length of this
// criterion's block in the w-vector.
func (c Criterion) Segments() int { return c.Interval.Len() }

// String renders the criterion for diagnostics.
func (c Criterion) String() string {
	dir := "descending"
	if c.Ascending() {
		dir = "ascending"
	}
	return fmt.Sprintf("%s (%s) %v", c.Name, dir, c.Interval.Points)
}

// Coefficients returns the basis-coefficient vector β for raw value v:
// the per-subinterval multipliers of the w_ij variables that express this
// criterion's marginal utility at v. With k the subinterval holding v,
//
//	β[i] = 1                                 for i < k,
//	β[k] = (v − left_k) / (right_k − left_k) for v strictly inside k,
//	β[k] = 1                                 for v on k's closing breakpoint,
//
// and all later entries 0. The worst endpoint maps to all zeros, the best
// to all ones. A shared breakpoint always resolves to the subinterval it
// closes, so the encoding is identical on either side of the seam.
//
// Values outside the observed domain contribute no marginal utility (the
// scan finds no matching subinterval and β stays zero). Negative or
// non-finite v fails with ErrInvalidValue.
func (c Criterion) Coefficients(v, tol float64) ([]float64, error) {
	if !isFinite(v) || v < 0 {
		return nil, fmt.Errorf("%w: got %v for criterion %q", ErrInvalidValue, v, c.Name)
	}

	beta := make([]float64, c.Interval.Len())
	for k, sub := range c.Interval.Subintervals {
		switch {
		case k == 0 && absWithin(v, sub.Left, tol):
			// Worst endpoint: zero marginal utility, zero coefficients.
			return beta, nil
		case sub.IsEdge(v, tol):
			// Breakpoint: full weight of this and every earlier segment.
			for i := 0; i <= k; i++ {
				beta[i] = 1
			}
			return beta, nil
		case sub.Contains(v, tol):
			// Strict interior: linear interpolation inside segment k.
			for i := 0; i < k; i++ {
				beta[i] = 1
			}
			beta[k] = (v - sub.Left) / (sub.Right - sub.Left)
			return beta, nil
		}
	}

	return beta, nil
}

// absWithin reports |a−b| ≤ tol without allocating a Subinterval probe.
func absWithin(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// CriteriaSet
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// CriteriaSet is an ordered, name-indexed collection of Criterion.
// Order is significant: it fixes the layout of the concatenated w-vector.
type CriteriaSet struct {
	items []Criterion
	index map[string]int
	total int
}

// NewCriteriaSet builds a set from criteria in the given order.
// Names must be unique and the set non-empty.
func NewCriteriaSet(items ...Criterion) (*CriteriaSet, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: at least one criterion is required", ErrInvalidConfig)
	}
	cs := &CriteriaSet{
		items: make([]Criterion, len(items)),
		index: make(map[string]int, len(items)),
	}
	copy(cs.items, items)
	for i, c := range cs.items {
		if _, dup := cs.index[c.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate criterion name %q", ErrInvalidConfig, c.Name)
		}
		cs.index[c.Name] = i
		cs.total += c.Segments()
	}
	return cs, nil
}

// Len returns the number of criteria.
func (cs *CriteriaSet) Len() int { return len(cs.items) }

// At returns the i-th criterion in set order.
func (cs *CriteriaSet) At(i int) Criterion { return cs.items[i] }

// ByName looks a criterion up by name.
func (cs *CriteriaSet) ByName(name string) (Criterion, bool) {
	i, ok := cs.index[name]
	if !ok {
		return Criterion{}, false
	}
	return cs.items[i], true
}

// Names returns the criterion names in set order.
func (cs *CriteriaSet) Names() []string {
	names := make([]string, len(cs.items))
	for i, c := range cs.items {
		names[i] = c.Name
	}
	return names
}

// Items returns a copy of the criteria in set order.
func (cs *CriteriaSet) Items() []Criterion {
	out := make([]Criterion, len(cs.items))
	copy(out, cs.items)
	return out
}

// TotalSegments returns T = Σ segments over all criteria, the length of
// the w-vector.
func (cs *CriteriaSet) TotalSegments() int { return cs.total }

// Indicator returns the length-T vector that is 1 over the named
// criterion's block and 0 elsewhere: the objective row used to maximize
// one criterion's total weight in the post-optimality LPs.
func (cs *CriteriaSet) Indicator(name string) []float64 {
	out := make([]float64, cs.total)
	offset := 0
	for _, c := range cs.items {
		if c.Name == name {
			for i := 0; i < c.Segments(); i++ {
				out[offset+i] = 1
			}
			break
		}
		offset += c.Segments()
	}
	return out
}
