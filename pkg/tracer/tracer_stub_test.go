//go:build !linux

package tracer

import (
	"errors"
	"testing"
	"time"
)

func TestStubTracerBehavior(t *testing.T) {
	if _, err := New(Options{}); !errors.Is(err, errUnsupported) {
		t.Fatalf("expected errUnsupported, got %v", err)
	}

	var tr Tracer
	if _, err := tr.Poll(time.Second); !errors.Is(err, errUnsupported) {
		t.Fatalf("poll should fail with errUnsupported, got %v", err)
	}

	if lost := tr.LostSamples(); lost != 0 {
		t.Fatalf("stub should report no losses, got %d", lost)
	}

	if err := tr.Close(); err != nil {
		t.Fatalf("close should no-op, got %v", err)
	}
}
