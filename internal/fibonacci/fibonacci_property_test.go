package fibonacci

import (
	"math"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestGenerate_RecurrenceProperty verifies that every by-count run has exactly
// n terms, starts with the 0, 1 seeds and satisfies t[i] = t[i-1] + t[i-2].
func TestGenerate_RecurrenceProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Generate(n) yields n terms obeying the recurrence", prop.ForAll(
		func(n int) bool {
			terms, err := Terms(n)
			if err != nil || len(terms) != n {
				return false
			}
			if terms[0] != 0 {
				return false
			}
			if n >= 2 && terms[1] != 1 {
				return false
			}
			for i := 2; i < n; i++ {
				if terms[i] != terms[i-1]+terms[i-2] {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, MaxTerms),
	))

	properties.Property("previous never exceeds current", prop.ForAll(
		func(n int) bool {
			terms, _ := Terms(n)
			for i := 2; i < len(terms); i++ {
				if terms[i-1] > terms[i] {
					return false
				}
			}
			return true
		},
		gen.IntRange(3, MaxTerms),
	))

	properties.TestingRun(t)
}

// TestGenerate_SumProperty checks the Sum statistic against an independent
// arbitrary-precision sum of the emitted terms.
func TestGenerate_SumProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Sum equals the sum of emitted terms", prop.ForAll(
		func(n int) bool {
			c := &Collector{}
			stats, err := Generate(n, c)
			if err != nil {
				return false
			}
			want := new(big.Int)
			for _, v := range c.Terms {
				want.Add(want, big.NewInt(v))
			}
			return !stats.SumOverflow && new(big.Int).SetUint64(stats.Sum).Cmp(want) == 0
		},
		gen.IntRange(1, MaxTerms),
	))

	properties.TestingRun(t)
}

// TestGenerateUpTo_BoundProperty verifies that no emitted term exceeds max and
// that the term following the last emitted one would.
func TestGenerateUpTo_BoundProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	isTight := func(max int64) bool {
		terms, err := TermsUpTo(max)
		if err != nil || len(terms) == 0 {
			return false
		}
		for _, v := range terms {
			if v > max {
				return false
			}
		}
		if len(terms) == 1 {
			// Only F(0) was emitted, so F(1) = 1 must exceed max.
			return max < 1
		}
		last, before := terms[len(terms)-1], terms[len(terms)-2]
		next := new(big.Int).Add(big.NewInt(before), big.NewInt(last))
		return next.Cmp(big.NewInt(max)) > 0
	}

	properties.Property("GenerateUpTo(max) is tight for small bounds", prop.ForAll(isTight, gen.Int64Range(0, 1000)))
	properties.Property("GenerateUpTo(max) is tight for any int64 bound", prop.ForAll(isTight, gen.Int64Range(0, math.MaxInt64)))

	properties.TestingRun(t)
}
