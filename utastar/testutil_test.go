package utastar_test

import (
	"math"

	"github.com/quu7/minora/utastar"
)

func nan() float64 { return math.NaN() }

// publicTransport returns the canonical three-criterion fixture: price and
// duration descending, comfort ascending, with segmentation 2/3/3.
func publicTransport() (tbl *utastar.Table, monotonicity map[string]bool, splits map[string]int) {
	tbl = &utastar.Table{
		Criteria: []string{"Price", "Duration", "Comfort"},
		Rows: []utastar.Alternative{
			{Name: "RER", Rank: 1, Values: []float64{3, 10, 1}},
			{Name: "METRO1", Rank: 2, Values: []float64{4, 20, 2}},
			{Name: "METRO2", Rank: 2, Values: []float64{2, 20, 0}},
			{Name: "BUS", Rank: 3, Values: []float64{6, 40, 0}},
			{Name: "TAXI", Rank: 4, Values: []float64{30, 30, 3}},
		},
	}
	monotonicity = map[string]bool{"Price": false, "Duration": false, "Comfort": true}
	splits = map[string]int{"Price": 2, "Duration": 3, "Comfort": 3}
	return tbl, monotonicity, splits
}
