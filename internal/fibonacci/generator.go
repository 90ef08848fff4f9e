package fibonacci

import (
	"fmt"
	"math"

	apperrors "github.com/agbru/fibmenu/internal/errors"
)

// ValidateTermCount checks that n is an acceptable by-count bound (1..MaxTerms).
func ValidateTermCount(n int) error {
	switch {
	case n <= 0:
		return apperrors.ValidationError{Field: "terms", Message: "must be a positive integer"}
	case n > MaxTerms:
		return apperrors.ValidationError{
			Field:   "terms",
			Message: fmt.Sprintf("at most %d terms are supported with int64", MaxTerms),
		}
	}
	return nil
}

// ValidateMaxValue checks that max is an acceptable by-value bound.
func ValidateMaxValue(max int64) error {
	if max < 0 {
		return apperrors.ValidationError{Field: "max", Message: "must be a non-negative value"}
	}
	return nil
}

// Generate emits the first n Fibonacci numbers, F(0) through F(n-1), to sink
// and returns their statistics. n must be within 1..MaxTerms; nothing is
// emitted when validation fails. A nil sink discards the terms.
func Generate(n int, sink Sink) (Stats, error) {
	if err := ValidateTermCount(n); err != nil {
		return Stats{}, err
	}
	if sink == nil {
		sink = Discard
	}

	var stats Stats
	prev, curr := int64(0), int64(1)
	for i := 0; i < n; i++ {
		sink.Emit(i, prev)
		stats.add(prev)
		// The successor is only needed while terms remain, which caps the
		// largest value ever computed at F(n) <= F(MaxTerms).
		if i+1 < n {
			prev, curr = curr, prev+curr
		}
	}
	return stats, nil
}

// GenerateUpTo emits every Fibonacci number that does not exceed max, in
// order, and returns their statistics. Generation stops as soon as the next
// term would exceed max. max must be non-negative.
func GenerateUpTo(max int64, sink Sink) (Stats, error) {
	if err := ValidateMaxValue(max); err != nil {
		return Stats{}, err
	}
	if sink == nil {
		sink = Discard
	}

	var stats Stats
	prev, curr := int64(0), int64(1)
	for i := 0; ; i++ {
		sink.Emit(i, prev)
		stats.add(prev)

		if curr > max {
			return stats, nil
		}
		if prev > math.MaxInt64-curr {
			// prev+curr does not fit in int64, so it is above max as well.
			sink.Emit(i+1, curr)
			stats.add(curr)
			return stats, nil
		}
		prev, curr = curr, prev+curr
	}
}

// Terms returns the first n Fibonacci numbers as a slice.
func Terms(n int) ([]int64, error) {
	c := &Collector{}
	if _, err := Generate(n, c); err != nil {
		return nil, err
	}
	return c.Terms, nil
}

// TermsUpTo returns every Fibonacci number not exceeding max as a slice.
func TermsUpTo(max int64) ([]int64, error) {
	c := &Collector{}
	if _, err := GenerateUpTo(max, c); err != nil {
		return nil, err
	}
	return c.Terms, nil
}
