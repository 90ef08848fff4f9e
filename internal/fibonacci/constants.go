package fibonacci

// ─────────────────────────────────────────────────────────────────────────────
// Sequence Limits
// ─────────────────────────────────────────────────────────────────────────────

const (
	// MaxTerms is the largest term count accepted by the by-count modes.
	//
	// F(92) = 7,540,113,804,746,346,429 is the largest Fibonacci number that
	// fits in a signed 64-bit integer; F(93) does not. Ninety-two terms stop
	// at F(91), so the term that would follow the run still fits, which keeps
	// the recurrence overflow-free for every accepted count.
	MaxTerms = 92

	// DefaultTermsPerLine is the number of terms printed per row in column mode.
	DefaultTermsPerLine = 10

	// DefaultColumnWidth is the right-aligned cell width used in column mode.
	// It is wide enough for F(59) and keeps the table readable below that.
	DefaultColumnWidth = 12
)

// ─────────────────────────────────────────────────────────────────────────────
// Statistics Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// GoldenRatio is φ truncated to ten decimals, the reference value the
	// statistics compare F(n)/F(n-1) against.
	GoldenRatio = 1.6180339887
)
