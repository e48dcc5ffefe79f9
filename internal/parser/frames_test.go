// # internal/parser/frames_test.go
package parser

import "testing"

func TestExtractFrames(t *testing.T) {
	text := `java.lang.IllegalStateException: boom
	at com.example.service.OrderService.place(OrderService.java:42)
	at com.example.service.OrderService.validate(OrderService.java:17)

Caused by: java.io.IOException: connection reset
	at com.example.io.Client.send(Client.java:99)
some unrelated log line
`

	frames := ExtractFrames(text)
	if len(frames) != 3 {
		t.Fatalf("Expected 3 frames, got %d", len(frames))
	}

	if frames[0].Qualified != "com.example.service.OrderService.place" {
		t.Errorf("Unexpected qualified name: %s", frames[0].Qualified)
	}
	if frames[2].Qualified != "com.example.io.Client.send" {
		t.Errorf("Unexpected qualified name: %s", frames[2].Qualified)
	}
}

func TestExtractFramesSkipsMalformed(t *testing.T) {
	text := "at \nat (\nat com.example.App.run(App.java:1)\n"

	frames := ExtractFrames(text)
	if len(frames) != 1 {
		t.Fatalf("Expected malformed frames to be skipped, got %d frames", len(frames))
	}
	if frames[0].Qualified != "com.example.App.run" {
		t.Errorf("Unexpected qualified name: %s", frames[0].Qualified)
	}
}

func TestExtractFramesEmptyInput(t *testing.T) {
	if frames := ExtractFrames(""); len(frames) != 0 {
		t.Errorf("Expected no frames from empty input, got %d", len(frames))
	}
	if frames := ExtractFrames("exception header only\n"); len(frames) != 0 {
		t.Errorf("Expected no frames from frame-less input, got %d", len(frames))
	}
}

func TestExtractFramesStripsTimestampPrefix(t *testing.T) {
	text := "2024-12-12T10:15:30.123456789Z \tat com.example.App.run(App.java:1)\n"

	frames := ExtractFrames(text)
	if len(frames) != 1 {
		t.Fatalf("Expected timestamped frame line to parse, got %d frames", len(frames))
	}
}

func TestClassPrefix(t *testing.T) {
	cases := []struct {
		qualified string
		want      string
	}{
		{"reactor.core.publisher.FluxMapFuseable$MapFuseableSubscriber.onNext", "reactor.core.publisher.FluxMapFuseable"},
		{"com.example.service.OrderService.place", "com.example.service.OrderService"},
		{"com.X.foo", "com.X"},
		// $ wins over the last dot
		{"com.example.App$1.run", "com.example.App"},
		// No separators at all: the whole name is its own prefix
		{"main", "main"},
	}

	for _, c := range cases {
		if got := ClassPrefix(c.qualified); got != c.want {
			t.Errorf("ClassPrefix(%q) = %q, want %q", c.qualified, got, c.want)
		}
	}
}
