package utastar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quu7/minora/solver"
	"github.com/quu7/minora/utastar"
)

// scriptedSolver wraps the real engine and fails at scripted call indices
// (1-based), standing in for infeasibility or numerical breakdown.
type scriptedSolver struct {
	inner   solver.Solver
	calls   int
	failOn  map[int]bool
	failErr error // when set, failures return this error instead of Success=false
}

func (s *scriptedSolver) Solve(p solver.Problem) (solver.Solution, error) {
	s.calls++
	if s.failOn[s.calls] {
		if s.failErr != nil {
			return solver.Solution{}, s.failErr
		}
		return solver.Solution{Success: false, Message: "scripted failure"}, nil
	}
	return s.inner.Solve(p)
}

// twoCriteriaProblem is the smallest fully deterministic degenerate case:
// two single-segment ascending criteria, A best on both. The secondary LPs
// put all weight on their own criterion, so the averaged model is exactly
// (0.5, 0.5).
func twoCriteriaProblem() (*utastar.Table, map[string]bool, map[string]int) {
	tbl := &utastar.Table{
		Criteria: []string{"c1", "c2"},
		Rows: []utastar.Alternative{
			{Name: "A", Rank: 1, Values: []float64{2, 3}},
			{Name: "B", Rank: 2, Values: []float64{0, 0}},
		},
	}
	return tbl, map[string]bool{"c1": true, "c2": true}, map[string]int{"c1": 1, "c2": 1}
}

// TestSolve_SingleCriterion is the minimal end-to-end run: one ascending
// criterion, two alternatives, two segments. The ranking is exactly
// reproducible, so the post-optimality phase must trigger.
func TestSolve_SingleCriterion(t *testing.T) {
	tbl := &utastar.Table{
		Criteria: []string{"c"},
		Rows: []utastar.Alternative{
			{Name: "A", Rank: 1, Values: []float64{2}},
			{Name: "B", Rank: 2, Values: []float64{0}},
		},
	}

	res, err := utastar.Solve(tbl, map[string]bool{"c": true}, map[string]int{"c": 2}, utastar.DefaultOptions())
	require.NoError(t, err)

	assert.InDelta(t, 1.0, res.Weights["c"], 1e-9, "single criterion carries all weight")
	require.Len(t, res.WValues["c"], 2)
	assert.InDelta(t, 1.0, res.WValues["c"][0]+res.WValues["c"][1], 1e-9)

	require.Len(t, res.Utilities, 2)
	assert.InDelta(t, 1.0, res.Utilities[0], 1e-9, "best endpoint scores 1")
	assert.InDelta(t, 0.0, res.Utilities[1], 1e-9, "worst endpoint scores 0")

	assert.InDelta(t, 1.0, res.Tau, 1e-12, "tie-free exact reproduction")

	require.Len(t, res.Errors, 4, "2M interleaved σ⁺/σ⁻")
	for i, e := range res.Errors {
		assert.LessOrEqual(t, e, utastar.DefaultEpsilon+1e-9, "error %d stays inside the epsilon budget", i)
		assert.GreaterOrEqual(t, e, -1e-9, "error %d is nonnegative", i)
	}

	require.NotNil(t, res.Degeneracy, "F*=0 must trigger post-optimality")
	require.NotNil(t, res.Degeneracy.FirstSol)
	assert.Len(t, res.Degeneracy.SASol, 1, "one secondary solution per criterion")
	for i, e := range res.Degeneracy.FirstSol.Errors {
		assert.InDelta(t, 0.0, e, 1e-9, "primary error %d is zero at F*=0", i)
	}
}

// TestSolve_IndifferencePair verifies that tied ranks become an equality
// constraint: tied alternatives end up with the same utility within the
// epsilon neighbourhood.
func TestSolve_IndifferencePair(t *testing.T) {
	tbl := &utastar.Table{
		Criteria: []string{"c"},
		Rows: []utastar.Alternative{
			{Name: "A", Rank: 1, Values: []float64{4}},
			{Name: "B", Rank: 1, Values: []float64{2}},
			{Name: "C", Rank: 2, Values: []float64{0}},
		},
	}

	opts := utastar.DefaultOptions()
	res, err := utastar.Solve(tbl, map[string]bool{"c": true}, map[string]int{"c": 2}, opts)
	require.NoError(t, err)

	assert.InDelta(t, res.Utilities[0], res.Utilities[1], opts.Epsilon+1e-9,
		"tied alternatives share a utility within tolerance")
	assert.Greater(t, res.Utilities[1]-res.Utilities[2], opts.Delta-opts.Epsilon-1e-9,
		"strictly preferred pair keeps its margin")
	assert.GreaterOrEqual(t, res.Tau, 0.5)
	assert.LessOrEqual(t, res.Tau, 1.0)
}

// TestSolve_DescendingCriterion checks that smaller-is-better inverts the
// utility ordering and that input rows may arrive in any order.
func TestSolve_DescendingCriterion(t *testing.T) {
	tbl := &utastar.Table{
		Criteria: []string{"price"},
		Rows: []utastar.Alternative{
			{Name: "expensive", Rank: 3, Values: []float64{30}},
			{Name: "medium", Rank: 2, Values: []float64{16}},
			{Name: "cheap", Rank: 1, Values: []float64{2}},
		},
	}

	res, err := utastar.Solve(tbl, map[string]bool{"price": false}, map[string]int{"price": 2}, utastar.DefaultOptions())
	require.NoError(t, err)

	// Utilities come back in preference order: cheap, medium, expensive.
	assert.InDelta(t, 1.0, res.Utilities[0], 1e-9)
	assert.Greater(t, res.Utilities[0], res.Utilities[1], "utility inversely monotone in price")
	assert.Greater(t, res.Utilities[1], res.Utilities[2])
	assert.InDelta(t, 0.0, res.Utilities[2], 1e-9)

	assert.InDelta(t, 1.0, res.Tau, 1e-12)
	assert.Equal(t, "cheap", res.Table.Rows[0].Name, "result table sorted by utility")
	assert.Equal(t, "expensive", res.Table.Rows[2].Name)
}

// TestSolve_DegenerateAveraging pins the post-optimality averaging on the
// fully deterministic two-criterion fixture: each secondary LP pushes all
// weight onto its own criterion, the average lands on (0.5, 0.5).
func TestSolve_DegenerateAveraging(t *testing.T) {
	tbl, monot, splits := twoCriteriaProblem()

	res, err := utastar.Solve(tbl, monot, splits, utastar.DefaultOptions())
	require.NoError(t, err)

	require.NotNil(t, res.Degeneracy)
	require.Len(t, res.Degeneracy.SASol, 2)

	assert.InDelta(t, 0.5, res.Weights["c1"], 1e-9)
	assert.InDelta(t, 0.5, res.Weights["c2"], 1e-9)

	// Secondary solutions in criteria order, each maximal on its own axis.
	assert.InDelta(t, 1.0, res.Degeneracy.SASol[0].Weights["c1"], 1e-9)
	assert.InDelta(t, 1.0, res.Degeneracy.SASol[1].Weights["c2"], 1e-9)

	// The primary model is preserved unaveraged.
	first := res.Degeneracy.FirstSol
	require.NotNil(t, first)
	assert.InDelta(t, 1.0, first.Weights["c1"]+first.Weights["c2"], 1e-9)
	assert.Nil(t, first.Degeneracy, "nested results carry no degeneracy info")
}

// TestSolve_SecondaryFailureIsSkipped verifies the non-fatal path: a failed
// per-criterion LP is omitted and the average is taken over the survivors.
func TestSolve_SecondaryFailureIsSkipped(t *testing.T) {
	tbl, monot, splits := twoCriteriaProblem()

	opts := utastar.DefaultOptions()
	// Call 1 is the primary LP; calls 2 and 3 are the c1 and c2 LPs.
	opts.Solver = &scriptedSolver{inner: solver.Simplex{}, failOn: map[int]bool{2: true}}

	res, err := utastar.Solve(tbl, monot, splits, opts)
	require.NoError(t, err, "secondary failure must not abort the run")

	require.NotNil(t, res.Degeneracy)
	assert.Len(t, res.Degeneracy.SASol, 1, "only the surviving solution is kept")
	assert.InDelta(t, 1.0, res.Weights["c2"], 1e-9, "average over the c2 solution alone")
	assert.InDelta(t, 0.0, res.Weights["c1"], 1e-9)
}

// TestSolve_AllSecondariesFailFallsBack verifies the all-fail fallback: the
// primary solution stands and no degeneracy info is attached.
func TestSolve_AllSecondariesFailFallsBack(t *testing.T) {
	tbl, monot, splits := twoCriteriaProblem()

	opts := utastar.DefaultOptions()
	opts.Solver = &scriptedSolver{inner: solver.Simplex{}, failOn: map[int]bool{2: true, 3: true}}

	res, err := utastar.Solve(tbl, monot, splits, opts)
	require.NoError(t, err)

	assert.Nil(t, res.Degeneracy)
	assert.InDelta(t, 1.0, res.Weights["c1"]+res.Weights["c2"], 1e-9)
}

// TestSolve_PrimaryFailureIsFatal covers both failure shapes of the solver
// contract on the primary LP: no Result either way.
func TestSolve_PrimaryFailureIsFatal(t *testing.T) {
	tbl, monot, splits := twoCriteriaProblem()

	t.Run("unsuccessful solution", func(t *testing.T) {
		opts := utastar.DefaultOptions()
		opts.Solver = &scriptedSolver{inner: solver.Simplex{}, failOn: map[int]bool{1: true}}

		res, err := utastar.Solve(tbl, monot, splits, opts)
		assert.ErrorIs(t, err, utastar.ErrLinearProgram)
		assert.Nil(t, res, "no partial result on fatal error")
	})

	t.Run("solver error", func(t *testing.T) {
		opts := utastar.DefaultOptions()
		opts.Solver = &scriptedSolver{
			inner:   solver.Simplex{},
			failOn:  map[int]bool{1: true},
			failErr: solver.ErrBadProblem,
		}

		res, err := utastar.Solve(tbl, monot, splits, opts)
		assert.ErrorIs(t, err, utastar.ErrLinearProgram)
		assert.Nil(t, res)
	})
}

// TestSolve_OptionValidation checks the pre-flight Options gate.
func TestSolve_OptionValidation(t *testing.T) {
	tbl, monot, splits := twoCriteriaProblem()

	for name, mutate := range map[string]func(*utastar.Options){
		"zero delta":         func(o *utastar.Options) { o.Delta = 0 },
		"negative epsilon":   func(o *utastar.Options) { o.Epsilon = -0.01 },
		"negative tolerance": func(o *utastar.Options) { o.Tolerance = -1 },
		"nil solver":         func(o *utastar.Options) { o.Solver = nil },
	} {
		t.Run(name, func(t *testing.T) {
			opts := utastar.DefaultOptions()
			mutate(&opts)
			_, err := utastar.Solve(tbl, monot, splits, opts)
			assert.ErrorIs(t, err, utastar.ErrInvalidConfig)
		})
	}
}

// TestSolve_PublicTransport runs the canonical three-criterion case and
// checks every model-level invariant that holds for any optimal solution,
// independent of the LP engine's tie-breaking.
func TestSolve_PublicTransport(t *testing.T) {
	tbl, monot, splits := publicTransport()
	opts := utastar.DefaultOptions()

	res, err := utastar.Solve(tbl, monot, splits, opts)
	require.NoError(t, err)

	// Criterion segmentation matches the published breakpoints.
	price, _ := res.Criteria.ByName("Price")
	assert.InDeltaSlice(t, []float64{30, 16, 2}, price.Interval.Points, 1e-9)
	duration, _ := res.Criteria.ByName("Duration")
	assert.InDeltaSlice(t, []float64{40, 30, 20, 10}, duration.Interval.Points, 1e-9)
	comfort, _ := res.Criteria.ByName("Comfort")
	assert.InDeltaSlice(t, []float64{0, 1, 2, 3}, comfort.Interval.Points, 1e-9)

	// Σ weights = 1; every weight and error nonnegative.
	sum := 0.0
	for _, w := range res.Weights {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
	for i, w := range res.W {
		assert.GreaterOrEqual(t, w, -1e-9, "w[%d]", i)
	}
	require.Len(t, res.Errors, 2*len(tbl.Rows))
	for i, e := range res.Errors {
		assert.GreaterOrEqual(t, e, -1e-9, "errors[%d]", i)
	}

	// Partial utilities are nondecreasing cumulative sums ending at the
	// criterion weight.
	for name, partial := range res.PartialUtil {
		for i := 1; i < len(partial); i++ {
			assert.GreaterOrEqual(t, partial[i], partial[i-1]-1e-12, "%s partial utilities nondecreasing", name)
		}
		assert.InDelta(t, res.Weights[name], partial[len(partial)-1], 1e-12, "%s partial utility tops out at the weight", name)
	}

	// Pairwise fit constraints in preference order: RER, METRO1, METRO2,
	// BUS, TAXI with ranks 1, 2, 2, 3, 4.
	ranks := []int{1, 2, 2, 3, 4}
	for i := 0; i+1 < len(ranks); i++ {
		expr := res.Utilities[i] - res.Utilities[i+1] +
			res.Errors[2*i] - res.Errors[2*i+1] -
			res.Errors[2*i+2] + res.Errors[2*i+3]
		if ranks[i] < ranks[i+1] {
			assert.GreaterOrEqual(t, expr, opts.Delta-1e-6, "strict pair %d", i)
		} else {
			assert.InDelta(t, 0.0, expr, 1e-6, "indifference pair %d", i)
		}
	}

	assert.GreaterOrEqual(t, res.Tau, -1.0)
	assert.LessOrEqual(t, res.Tau, 1.0)

	// Result table is utility-sorted, best first.
	for i := 1; i < len(res.Table.Rows); i++ {
		assert.GreaterOrEqual(t, res.Table.Rows[i-1].Utility, res.Table.Rows[i].Utility)
	}
}

// TestSolve_Idempotent verifies numerically equivalent results on repeated
// identical runs.
func TestSolve_Idempotent(t *testing.T) {
	tbl, monot, splits := publicTransport()

	a, err := utastar.Solve(tbl, monot, splits, utastar.DefaultOptions())
	require.NoError(t, err)
	b, err := utastar.Solve(tbl, monot, splits, utastar.DefaultOptions())
	require.NoError(t, err)

	assert.InDeltaSlice(t, a.W, b.W, 1e-12)
	assert.InDeltaSlice(t, a.Errors, b.Errors, 1e-12)
	assert.InDelta(t, a.Tau, b.Tau, 1e-12)
}
