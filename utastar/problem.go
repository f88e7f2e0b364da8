// Package utastar - input model and problem construction.
package utastar

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Input model
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Alternative is one decision option: a name, the user-supplied rank
// (1 = most preferred, ties allowed) and one raw value per criterion in
// table column order. Utility is zero on input and populated on result
// tables only.
type Alternative struct {
	Name    string
	Rank    int
	Values  []float64
	Utility float64
}

// Table is the parsed multicriteria problem: criterion names in column
// order plus one row per alternative. Column order is significant; it must
// match the keys used in the monotonicity and split maps.
type Table struct {
	Criteria []string
	Rows     []Alternative
}

// Clone returns a deep copy: rows and value slices are independent of the
// receiver, so callers may append and re-sort freely.
func (t *Table) Clone() *Table {
	out := &Table{
		Criteria: append([]string(nil), t.Criteria...),
		Rows:     make([]Alternative, len(t.Rows)),
	}
	for i, row := range t.Rows {
		out.Rows[i] = row
		out.Rows[i].Values = append([]float64(nil), row.Values...)
	}
	return out
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Problem construction
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// problem is the fully built state of one run: rank-sorted table, criteria
// with segmented domains, and the M×T basis matrix of alternatives.
type problem struct {
	opts     Options
	criteria *CriteriaSet
	table    *Table     // rows sorted by rank ascending
	basis    *mat.Dense // M×T, row i = concatenated β-vectors of table.Rows[i]
}

// buildProblem validates the input, sorts alternatives by rank, derives a
// segmented Interval per criterion from the observed extrema and assembles
// the basis matrix. Row order of the sorted table is structural: every
// later step (differences, errors, utilities) indexes alternatives by it.
func buildProblem(tbl *Table, monotonicity map[string]bool, splits map[string]int, opts Options) (*problem, error) {
	if tbl == nil || len(tbl.Rows) < 2 {
		return nil, fmt.Errorf("%w: at least two alternatives are required", ErrInvalidConfig)
	}
	if len(tbl.Criteria) == 0 {
		return nil, fmt.Errorf("%w: at least one criterion is required", ErrInvalidConfig)
	}

	nCrit := len(tbl.Criteria)
	for _, row := range tbl.Rows {
		if len(row.Values) != nCrit {
			return nil, fmt.Errorf("%w: alternative %q has %d values, want %d",
				ErrDimensionMismatch, row.Name, len(row.Values), nCrit)
		}
		if row.Rank < 1 {
			return nil, fmt.Errorf("%w: alternative %q has rank %d, ranks start at 1",
				ErrInvalidConfig, row.Name, row.Rank)
		}
		for j, v := range row.Values {
			if !isFinite(v) || v < 0 {
				return nil, fmt.Errorf("%w: got %v for criterion %q of alternative %q",
					ErrInvalidValue, v, tbl.Criteria[j], row.Name)
			}
		}
	}

	// Preference order: best first. Stable, so tied ranks keep input order.
	sorted := tbl.Clone()
	sort.SliceStable(sorted.Rows, func(i, j int) bool {
		return sorted.Rows[i].Rank < sorted.Rows[j].Rank
	})

	// One Interval per criterion from the observed extrema, oriented by
	// monotonicity: ascending stores (min, max), descending (max, min),
	// so traversal always runs worst → best.
	crits := make([]Criterion, nCrit)
	for j, name := range tbl.Criteria {
		ascending, ok := monotonicity[name]
		if !ok {
			return nil, fmt.Errorf("%w: missing monotonicity for criterion %q", ErrInvalidConfig, name)
		}
		split, ok := splits[name]
		if !ok {
			return nil, fmt.Errorf("%w: missing split for criterion %q", ErrInvalidConfig, name)
		}

		lo, hi := columnExtrema(sorted.Rows, j)
		if lo == hi {
			return nil, fmt.Errorf("%w: criterion %q has a degenerate domain, all values are %v",
				ErrInvalidConfig, name, lo)
		}

		left, right := lo, hi
		if !ascending {
			left, right = hi, lo
		}
		iv, err := NewInterval(left, right, split)
		if err != nil {
			return nil, err
		}
		crits[j] = Criterion{Name: name, Interval: iv}
	}

	criteria, err := NewCriteriaSet(crits...)
	if err != nil {
		return nil, err
	}

	// Basis matrix U: one row per alternative in preference order, each
	// row the concatenation of per-criterion β-vectors.
	m := len(sorted.Rows)
	t := criteria.TotalSegments()
	basis := mat.NewDense(m, t, nil)
	for i, row := range sorted.Rows {
		offset := 0
		for j := 0; j < criteria.Len(); j++ {
			crit := criteria.At(j)
			beta, err := crit.Coefficients(row.Values[j], opts.Tolerance)
			if err != nil {
				return nil, err
			}
			for k, b := range beta {
				basis.Set(i, offset+k, b)
			}
			offset += crit.Segments()
		}
	}

	return &problem{opts: opts, criteria: criteria, table: sorted, basis: basis}, nil
}

// columnExtrema returns the min and max of one criterion column.
func columnExtrema(rows []Alternative, col int) (lo, hi float64) {
	lo, hi = rows[0].Values[col], rows[0].Values[col]
	for _, row := range rows[1:] {
		v := row.Values[col]
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
