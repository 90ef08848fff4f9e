package fibonacci

import (
	"math"
	"testing"
)

// FuzzGenerateUpTo checks the by-value generator for any non-negative bound:
// terms are non-negative, non-decreasing, within the bound and never wrap.
func FuzzGenerateUpTo(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(1))
	f.Add(int64(10))
	f.Add(int64(4660046610375530309)) // F(91)
	f.Add(int64(7540113804746346429)) // F(92)
	f.Add(int64(math.MaxInt64))

	f.Fuzz(func(t *testing.T, max int64) {
		if max < 0 {
			if _, err := GenerateUpTo(max, nil); err == nil {
				t.Fatalf("GenerateUpTo(%d) accepted a negative bound", max)
			}
			return
		}

		var prev int64 = -1
		_, err := GenerateUpTo(max, SinkFunc(func(i int, term int64) {
			if term < 0 {
				t.Fatalf("term %d wrapped to %d for max=%d", i, term, max)
			}
			if term > max {
				t.Fatalf("term %d = %d exceeds max=%d", i, term, max)
			}
			if term < prev {
				t.Fatalf("term %d = %d decreased from %d", i, term, prev)
			}
			prev = term
		}))
		if err != nil {
			t.Fatalf("GenerateUpTo(%d) returned error: %v", max, err)
		}
	})
}

// FuzzGenerateCount checks that every accepted count emits exactly that many
// terms and every rejected count emits none.
func FuzzGenerateCount(f *testing.F) {
	for _, n := range []int{-1, 0, 1, 2, 10, 91, 92, 93, 1000} {
		f.Add(n)
	}

	f.Fuzz(func(t *testing.T, n int) {
		c := &Collector{}
		stats, err := Generate(n, c)
		if n < 1 || n > MaxTerms {
			if err == nil || c.Len() != 0 {
				t.Fatalf("Generate(%d) should reject without emitting, got err=%v len=%d", n, err, c.Len())
			}
			return
		}
		if err != nil {
			t.Fatalf("Generate(%d) returned error: %v", n, err)
		}
		if c.Len() != n || stats.Count != n {
			t.Fatalf("Generate(%d) emitted %d terms (count %d)", n, c.Len(), stats.Count)
		}
	})
}
