// # internal/output/listing.go
package output

import (
	"fmt"
	"strings"

	"tracesim/internal/chain"
	"tracesim/internal/similarity"
)

// Listing renders the diagnostic view of one comparison: both chain
// listings followed by the similarity line. The rendering has no effect on
// the score.
func Listing(r similarity.Result) string {
	var b strings.Builder

	writeChains(&b, "Chains for trace 1:", r.ChainsA)
	b.WriteString("\n")
	writeChains(&b, "Chains for trace 2:", r.ChainsB)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Similarity: %.2f%%\n", r.Percent))

	return b.String()
}

func writeChains(b *strings.Builder, header string, seq chain.Sequence) {
	b.WriteString(header + "\n")
	if len(seq) == 0 {
		b.WriteString("  (no frames)\n")
		return
	}
	for _, c := range seq {
		b.WriteString("  " + c.String() + "\n")
	}
}
