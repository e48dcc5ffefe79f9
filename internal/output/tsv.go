// # internal/output/tsv.go
package output

import (
	"fmt"
	"strings"

	"tracesim/internal/similarity"
)

type TSVGenerator struct {
	results []similarity.Result
}

func NewTSVGenerator(results []similarity.Result) *TSVGenerator {
	return &TSVGenerator{results: results}
}

func (t *TSVGenerator) Generate() (string, error) {
	var buf strings.Builder

	buf.WriteString("Pair\tChainsA\tChainsB\tFramesA\tFramesB\tLCS\tSimilarity\n")

	for i, r := range t.results {
		buf.WriteString(fmt.Sprintf("%d\t%d\t%d\t%d\t%d\t%d\t%.2f\n",
			i+1,
			len(r.ChainsA),
			len(r.ChainsB),
			r.ChainsA.FrameCount(),
			r.ChainsB.FrameCount(),
			r.LCSLength,
			r.Percent,
		))
	}

	return buf.String(), nil
}
