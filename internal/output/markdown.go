// # internal/output/markdown.go
package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tracesim/internal/chain"
	"tracesim/internal/similarity"
)

type MarkdownReportData struct {
	TraceFileA string
	TraceFileB string
	Pairs      []similarity.Result
}

type MarkdownReportOptions struct {
	ReportID    string
	Version     string
	GeneratedAt time.Time
	// Threshold marks pairs considered the same recurring failure.
	Threshold float64
}

type MarkdownGenerator struct{}

func NewMarkdownGenerator() *MarkdownGenerator {
	return &MarkdownGenerator{}
}

func (m *MarkdownGenerator) Generate(data MarkdownReportData, opts MarkdownReportOptions) (string, error) {
	if opts.GeneratedAt.IsZero() {
		opts.GeneratedAt = time.Now().UTC()
	}
	if opts.ReportID == "" {
		opts.ReportID = uuid.NewString()
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: Stacktrace Similarity Report\n")
	b.WriteString("report_id: " + opts.ReportID + "\n")
	b.WriteString("generated_at: " + opts.GeneratedAt.UTC().Format(time.RFC3339) + "\n")
	b.WriteString("version: " + nonEmpty(opts.Version, "unknown") + "\n")
	b.WriteString("---\n\n")

	b.WriteString("# Similarity Report\n\n")
	b.WriteString(fmt.Sprintf("Trace file A: `%s`\n", nonEmpty(data.TraceFileA, "-")))
	b.WriteString(fmt.Sprintf("Trace file B: `%s`\n\n", nonEmpty(data.TraceFileB, "-")))

	b.WriteString("## Executive Summary\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("| --- | --- |\n")
	b.WriteString(fmt.Sprintf("| Trace Pairs | %d |\n", len(data.Pairs)))
	b.WriteString(fmt.Sprintf("| Matching Pairs (>= %.2f%%) | %d |\n\n", opts.Threshold, countMatching(data.Pairs, opts.Threshold)))

	for i, r := range data.Pairs {
		m.writePair(&b, i+1, r, opts.Threshold)
	}

	return b.String(), nil
}

func (m *MarkdownGenerator) writePair(b *strings.Builder, n int, r similarity.Result, threshold float64) {
	b.WriteString(fmt.Sprintf("## Pair %d: %.2f%%\n", n, r.Percent))
	if r.Percent >= threshold {
		b.WriteString("Flagged: likely the same recurring failure.\n")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("LCS length %d over max chain length %d.\n\n", r.LCSLength, r.MaxLength))

	m.writeChainTable(b, "Trace 1", r.ChainsA)
	m.writeChainTable(b, "Trace 2", r.ChainsB)
}

func (m *MarkdownGenerator) writeChainTable(b *strings.Builder, title string, seq chain.Sequence) {
	b.WriteString("### " + title + "\n")
	if len(seq) == 0 {
		b.WriteString("No frames.\n\n")
		return
	}
	b.WriteString("| Class Prefix | Frames |\n")
	b.WriteString("| --- | --- |\n")
	for _, c := range seq {
		b.WriteString(fmt.Sprintf("| `%s` | %d |\n", c.Prefix, c.Count))
	}
	b.WriteString("\n")
}

func countMatching(pairs []similarity.Result, threshold float64) int {
	n := 0
	for _, r := range pairs {
		if r.Percent >= threshold {
			n++
		}
	}
	return n
}

func nonEmpty(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
