package tracer

import (
	"bytes"
	"testing"

	"github.com/multifacet/mm-fault-tracker/pkg/types"
)

func TestNewCommFilter(t *testing.T) {
	cases := []struct {
		name       string
		target     string
		enabled    uint32
		wantTarget string
	}{
		{"emptyDisables", "", 0, ""},
		{"shortName", "gups", 1, "gups"},
		{"maxLenKept", "abcdefghijklmno", 1, "abcdefghijklmno"},
		{"longTruncated", "memcached-worker-thread", 1, "memcached-worke"},
	}
	for _, tc := range cases {
		f := NewCommFilter(tc.target)
		if f.Enabled != tc.enabled {
			t.Fatalf("%s: enabled = %d, want %d", tc.name, f.Enabled, tc.enabled)
		}
		if got := f.Target(); got != tc.wantTarget {
			t.Fatalf("%s: target = %q, want %q", tc.name, got, tc.wantTarget)
		}
	}
}

func TestCommFilterIsNulTerminated(t *testing.T) {
	f := NewCommFilter("abcdefghijklmnop") // 16 bytes, one over the limit
	if f.Comm[types.TaskCommLen-1] != 0 {
		t.Fatalf("final byte must stay NUL, got %q", f.Comm[types.TaskCommLen-1])
	}
	if n := bytes.IndexByte(f.Comm[:], 0); n != types.TaskCommLen-1 {
		t.Fatalf("expected 15 name bytes, got %d", n)
	}
}
