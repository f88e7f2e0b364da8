// Package utastar - oriented numeric segments and criterion domains.
package utastar

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Subinterval
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Subinterval is one linear segment of a criterion's domain: a pair of
// distinct endpoints with an orientation derived from their order.
// Ascending (Right > Left) means traversal runs worst → best for an
// increasing criterion; a descending criterion stores its segment reversed
// so traversal order is uniform across both monotonicities.
type Subinterval struct {
	Left, Right float64
}

// NewSubinterval builds a segment. Endpoints must be finite and distinct.
func NewSubinterval(left, right float64) (Subinterval, error) {
	if !isFinite(left) || !isFinite(right) {
		return Subinterval{}, fmt.Errorf("%w: subinterval endpoint is not finite", ErrInvalidValue)
	}
	if left == right {
		return Subinterval{}, fmt.Errorf("%w: subinterval endpoints must differ, both are %v", ErrInvalidConfig, left)
	}
	return Subinterval{Left: left, Right: right}, nil
}

// Ascending reports the segment's orientation.
func (s Subinterval) Ascending() bool { return s.Right > s.Left }

// Contains reports whether x lies on the segment, inclusive on both
// endpoints and widened by the absolute tolerance tol.
func (s Subinterval) Contains(x, tol float64) bool {
	lo, hi := s.Left, s.Right
	if !s.Ascending() {
		lo, hi = hi, lo
	}
	return x >= lo-tol && x <= hi+tol
}

// IsEdge reports whether x coincides with either endpoint within tol.
func (s Subinterval) IsEdge(x, tol float64) bool {
	return math.Abs(x-s.Left) <= tol || math.Abs(x-s.Right) <= tol
}

// String renders the segment in traversal order.
func (s Subinterval) String() string {
	return fmt.Sprintf("[%v, %v]", s.Left, s.Right)
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Interval
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Interval is a criterion's full domain split into n adjacent equal-width
// subintervals. Points holds the n+1 breakpoints from Left to Right in
// traversal order; consecutive subintervals share an endpoint and all share
// the interval's direction.
//
// Interval composes Subintervals; it is not itself a segment. Points is
// exported because marginal-utility curves are plotted against it.
type Interval struct {
	Points       []float64
	Subintervals []Subinterval
}

// NewInterval splits [left, right] into n equally spaced subintervals.
// left and right must differ; n must be ≥ 1.
func NewInterval(left, right float64, n int) (Interval, error) {
	if n < 1 {
		return Interval{}, fmt.Errorf("%w: number of subintervals must be positive, got %d", ErrInvalidConfig, n)
	}
	if !isFinite(left) || !isFinite(right) {
		return Interval{}, fmt.Errorf("%w: interval endpoint is not finite", ErrInvalidValue)
	}
	if left == right {
		return Interval{}, fmt.Errorf("%w: interval endpoints must differ, both are %v", ErrInvalidConfig, left)
	}

	points := make([]float64, n+1)
	floats.Span(points, left, right)

	subs := make([]Subinterval, n)
	for i := range subs {
		sub, err := NewSubinterval(points[i], points[i+1])
		if err != nil {
			return Interval{}, err
		}
		subs[i] = sub
	}

	return Interval{Points: points, Subintervals: subs}, nil
}

// Len returns the number of subintervals.
func (iv Interval) Len() int { return len(iv.Subintervals) }

// Left returns the first breakpoint (the "worst" endpoint).
func (iv Interval) Left() float64 { return iv.Points[0] }

// Right returns the last breakpoint (the "best" endpoint).
func (iv Interval) Right() float64 { return iv.Points[len(iv.Points)-1] }

// Ascending reports the shared direction of all subintervals.
func (iv Interval) Ascending() bool { return iv.Right() > iv.Left() }

// isFinite reports whether v is a usable real number.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
