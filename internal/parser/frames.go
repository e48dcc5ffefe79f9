// # internal/parser/frames.go
package parser

import "strings"

// framePrefix marks a call-site line in a Java stacktrace.
const framePrefix = "at "

// Frame is a single call-site line. Immutable once parsed.
type Frame struct {
	// Raw is the trimmed frame line as it appeared in the input.
	Raw string
	// Qualified is the dotted (and possibly $-qualified) name after "at ",
	// with the parenthesized source-location suffix removed.
	Qualified string
}

// Prefix returns the owning-class grouping key for the frame.
func (f Frame) Prefix() string {
	return ClassPrefix(f.Qualified)
}

// ExtractFrames scans raw text and returns the ordered frame sequence.
// Lines that do not start with "at " (headers, messages, blanks) are
// ignored. Frame lines with no recoverable qualified name are skipped
// rather than failing: frames come from heterogeneous log sources.
func ExtractFrames(text string) []Frame {
	var frames []Frame
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(stripTimestamp(line))
		if !strings.HasPrefix(line, framePrefix) {
			continue
		}

		name := line[len(framePrefix):]
		if idx := strings.Index(name, "("); idx != -1 {
			name = name[:idx]
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		frames = append(frames, Frame{Raw: line, Qualified: name})
	}
	return frames
}

// ClassPrefix derives the owning class from a qualified name: a name
// containing "$" is truncated at the first "$" (inner classes, lambdas and
// generated accessors collapse into their declaring class), otherwise it is
// truncated at the last "." to drop the method part. A name with neither
// separator is its own prefix.
func ClassPrefix(qualified string) string {
	if idx := strings.Index(qualified, "$"); idx != -1 {
		return qualified[:idx]
	}
	if idx := strings.LastIndex(qualified, "."); idx != -1 {
		return qualified[:idx]
	}
	return qualified
}
