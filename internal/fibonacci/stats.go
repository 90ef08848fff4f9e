package fibonacci

import (
	"math"
	"math/bits"
)

// Stats aggregates a finished run.
//
// Sum is unsigned because every term is non-negative: the sum of the first
// 92 terms is F(93)-1, which overflows int64 but fits in uint64. The only run
// that can exceed uint64 is an up-to-max run with max >= F(92); in that case
// Sum saturates at math.MaxUint64 and SumOverflow is set.
type Stats struct {
	// Count is the number of emitted terms.
	Count int
	// Sum is the arithmetic sum of the emitted terms.
	Sum uint64
	// SumOverflow reports that Sum saturated.
	SumOverflow bool
	// Last is the final emitted term, F(Count-1).
	Last int64
	// Previous is the term before Last, F(Count-2). Zero when Count < 2.
	Previous int64
}

// add folds one term into the running aggregate.
func (s *Stats) add(term int64) {
	if s.Count > 0 {
		s.Previous = s.Last
	}
	s.Last = term
	s.Count++

	if s.SumOverflow {
		return
	}
	sum, carry := bits.Add64(s.Sum, uint64(term), 0)
	if carry != 0 {
		s.Sum = math.MaxUint64
		s.SumOverflow = true
		return
	}
	s.Sum = sum
}

// Average returns Sum/Count, or 0 for an empty run.
func (s Stats) Average() float64 {
	if s.Count == 0 {
		return 0
	}
	return float64(s.Sum) / float64(s.Count)
}

// Ratio returns F(n)/F(n-1) for the last two emitted terms. ok is false when
// fewer than two terms were emitted or the previous term is zero.
func (s Stats) Ratio() (ratio float64, ok bool) {
	if s.Count < 2 || s.Previous == 0 {
		return 0, false
	}
	return float64(s.Last) / float64(s.Previous), true
}

// GoldenRatioDelta returns |Ratio() - GoldenRatio|, with the same ok rule as Ratio.
func (s Stats) GoldenRatioDelta() (delta float64, ok bool) {
	ratio, ok := s.Ratio()
	if !ok {
		return 0, false
	}
	return math.Abs(ratio - GoldenRatio), true
}
