// # internal/chain/chain.go
package chain

import (
	"fmt"
	"strings"

	"tracesim/internal/parser"
)

// NodeChain is a run of consecutive frames sharing one class prefix.
// Immutable once built.
type NodeChain struct {
	Prefix string
	Count  int
	Frames []parser.Frame
}

func (c NodeChain) String() string {
	return fmt.Sprintf("%s (%d)", c.Prefix, c.Count)
}

// Sequence is the ordered chain list for one trace, the unit similarity
// scoring operates on.
type Sequence []NodeChain

// Build folds frames in first-seen order into a Sequence. Consecutive
// frames with an equal prefix merge into one chain, so adjacent chains
// never share a prefix and the per-chain counts sum to len(frames).
func Build(frames []parser.Frame) Sequence {
	var seq Sequence
	for _, f := range frames {
		prefix := f.Prefix()
		if n := len(seq); n > 0 && seq[n-1].Prefix == prefix {
			seq[n-1].Count++
			seq[n-1].Frames = append(seq[n-1].Frames, f)
			continue
		}
		seq = append(seq, NodeChain{
			Prefix: prefix,
			Count:  1,
			Frames: []parser.Frame{f},
		})
	}
	return seq
}

// Prefixes returns the ordered prefix list, the token sequence for LCS.
func (s Sequence) Prefixes() []string {
	prefixes := make([]string, len(s))
	for i, c := range s {
		prefixes[i] = c.Prefix
	}
	return prefixes
}

// FrameCount returns the total number of frames folded into the sequence.
func (s Sequence) FrameCount() int {
	total := 0
	for _, c := range s {
		total += c.Count
	}
	return total
}

// Flatten returns the underlying frames in their original order.
func (s Sequence) Flatten() []parser.Frame {
	frames := make([]parser.Frame, 0, s.FrameCount())
	for _, c := range s {
		frames = append(frames, c.Frames...)
	}
	return frames
}

// Digest renders a compact one-line view of the sequence, e.g.
// "com.X > com.Y > com.Z".
func (s Sequence) Digest() string {
	return strings.Join(s.Prefixes(), " > ")
}
