// # internal/chain/chain_test.go
package chain

import (
	"reflect"
	"testing"

	"tracesim/internal/parser"
)

func framesFor(t *testing.T, text string) []parser.Frame {
	t.Helper()
	return parser.ExtractFrames(text)
}

func TestBuildGroupsConsecutivePrefixes(t *testing.T) {
	frames := framesFor(t, `at com.X.foo(X.java:1)
at com.X.bar(X.java:2)
at com.Y.baz(Y.java:3)
`)

	seq := Build(frames)
	if len(seq) != 2 {
		t.Fatalf("Expected 2 chains, got %d", len(seq))
	}

	if seq[0].Prefix != "com.X" || seq[0].Count != 2 {
		t.Errorf("Unexpected first chain: %v", seq[0])
	}
	if seq[1].Prefix != "com.Y" || seq[1].Count != 1 {
		t.Errorf("Unexpected second chain: %v", seq[1])
	}
}

func TestBuildNonConsecutiveSamePrefixStaysSeparate(t *testing.T) {
	frames := framesFor(t, `at com.X.foo(X.java:1)
at com.Y.bar(Y.java:2)
at com.X.baz(X.java:3)
`)

	seq := Build(frames)
	if got := seq.Prefixes(); !reflect.DeepEqual(got, []string{"com.X", "com.Y", "com.X"}) {
		t.Errorf("Unexpected prefixes: %v", got)
	}
}

func TestBuildAdjacentChainsNeverShareAPrefix(t *testing.T) {
	frames := framesFor(t, `at a.B.m1(B.java:1)
at a.B.m2(B.java:2)
at a.B$Inner.m3(B.java:3)
at c.D.m4(D.java:4)
at c.D.m5(D.java:5)
`)

	seq := Build(frames)
	for i := 1; i < len(seq); i++ {
		if seq[i].Prefix == seq[i-1].Prefix {
			t.Errorf("Adjacent chains %d and %d share prefix %s", i-1, i, seq[i].Prefix)
		}
	}
}

func TestFrameCountConservation(t *testing.T) {
	frames := framesFor(t, `at com.X.a(X.java:1)
at com.X.b(X.java:2)
at com.Y.c(Y.java:3)
at com.Y.d(Y.java:4)
at com.Z.e(Z.java:5)
`)

	seq := Build(frames)
	if seq.FrameCount() != len(frames) {
		t.Errorf("Frame count not conserved: chains hold %d, input had %d", seq.FrameCount(), len(frames))
	}
}

func TestGroupingIdempotence(t *testing.T) {
	frames := framesFor(t, `at com.X.a(X.java:1)
at com.X.b(X.java:2)
at com.Y.c(Y.java:3)
at com.X.d(X.java:4)
`)

	first := Build(frames)
	second := Build(first.Flatten())

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Re-grouping a flattened sequence changed it:\nfirst  %v\nsecond %v", first, second)
	}
}

func TestBuildEmpty(t *testing.T) {
	if seq := Build(nil); len(seq) != 0 {
		t.Errorf("Expected empty sequence, got %d chains", len(seq))
	}
}

func TestDigest(t *testing.T) {
	frames := framesFor(t, "at com.X.a(X.java:1)\nat com.Y.b(Y.java:2)\n")

	if got := Build(frames).Digest(); got != "com.X > com.Y" {
		t.Errorf("Unexpected digest: %q", got)
	}
}
