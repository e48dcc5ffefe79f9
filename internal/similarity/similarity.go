// # internal/similarity/similarity.go
package similarity

import (
	"tracesim/internal/chain"
	"tracesim/internal/parser"
)

// Result carries everything one comparison produced. The percentage is the
// only score; the chain sequences are kept for diagnostic listings.
type Result struct {
	ChainsA chain.Sequence
	ChainsB chain.Sequence

	LCSLength int
	MaxLength int
	// Percent is in [0, 100]. Both sequences empty scores 100 by
	// convention; exactly one empty scores 0.
	Percent float64
}

// FrameCount returns the total frames seen across both traces.
func (r Result) FrameCount() int {
	return r.ChainsA.FrameCount() + r.ChainsB.FrameCount()
}

// Compare is the pure entry point: extract frames from both texts, group
// them into chains and score the chain sequences. No I/O, no shared state;
// safe to call concurrently.
func Compare(textA, textB string) Result {
	a := chain.Build(parser.ExtractFrames(textA))
	b := chain.Build(parser.ExtractFrames(textB))
	return Score(a, b)
}

// Score computes the LCS-based similarity of two chain sequences. Chains
// match by prefix equality only; frame counts inside a chain are ignored.
// Symmetric and deterministic.
func Score(a, b chain.Sequence) Result {
	r := Result{ChainsA: a, ChainsB: b}

	if len(a) == 0 && len(b) == 0 {
		r.Percent = 100.0
		return r
	}

	r.MaxLength = len(a)
	if len(b) > r.MaxLength {
		r.MaxLength = len(b)
	}
	if len(a) == 0 || len(b) == 0 {
		return r
	}

	r.LCSLength = LCSLength(a.Prefixes(), b.Prefixes())
	r.Percent = float64(r.LCSLength) / float64(r.MaxLength) * 100.0
	return r
}

// LCSLength returns the length of the longest common subsequence of two
// token lists. Standard O(n*m) dynamic programming; only the length is
// needed, so the table is kept as two rolling rows.
func LCSLength(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
