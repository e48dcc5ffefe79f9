// # internal/parser/traces.go
package parser

import (
	"regexp"
	"strings"
)

// SeparatorWidth is the width of the dash rule separating traces in a
// multi-trace file.
const SeparatorWidth = 80

var separatorLine = strings.Repeat("-", SeparatorWidth)

// Upstream report tooling prepends per-line capture timestamps and an
// excluded-sidecar header; both are noise for frame scanning.
var timestampPrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{9}Z\s+`)

const sidecarNoiseLine = "linkerd-proxy,istio-proxy,vault-agent"

func stripTimestamp(line string) string {
	return timestampPrefix.ReplaceAllString(line, "")
}

// StripTimestamps removes capture-timestamp prefixes from every line.
func StripTimestamps(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = stripTimestamp(line)
	}
	return strings.Join(lines, "\n")
}

// SplitTraces splits text on separator lines of exactly 80 dashes and
// returns one segment per trace. Text without a separator yields exactly
// one segment. Empty segments are preserved: a frame-less trace is a
// legitimate input, not an error.
func SplitTraces(text string) []string {
	var (
		segments []string
		current  []string
	)

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(stripTimestamp(line))
		if trimmed == separatorLine {
			segments = append(segments, strings.Join(current, "\n"))
			current = current[:0]
			continue
		}
		if trimmed == sidecarNoiseLine {
			continue
		}
		current = append(current, line)
	}

	return append(segments, strings.Join(current, "\n"))
}
