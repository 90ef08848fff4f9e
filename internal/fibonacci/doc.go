// Package fibonacci generates Fibonacci sequences bounded either by a term
// count or by a maximum value.
//
// Generation is a single pass over the two-term recurrence F(i) = F(i-1) + F(i-2)
// seeded with F(0) = 0 and F(1) = 1. Each term is handed to a [Sink] as soon as
// it is computed, and aggregate [Stats] are returned when the run ends. All
// state is local to one call; nothing is retained between runs.
//
// Terms are int64. The by-count modes accept at most [MaxTerms] terms and the
// by-value mode stops before a term would overflow, so no run can wrap.
package fibonacci
