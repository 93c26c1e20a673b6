package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/multifacet/mm-fault-tracker/pkg/types"
)

func TestAverageFaultNsTruncates(t *testing.T) {
	cases := []struct {
		name     string
		total    uint64
		count    uint64
		expected uint64
	}{
		{"truncates", 5, 2, 2},
		{"exact", 600, 3, 200},
		{"zeroFaults", 500, 0, 0},
	}
	for _, tc := range cases {
		ev := types.FaultEvent{TimeInFault: tc.total, NumberFaults: tc.count}
		if got := AverageFaultNs(ev); got != tc.expected {
			t.Fatalf("%s: avg = %d, want %d", tc.name, got, tc.expected)
		}
	}
}

func TestPrinterHeaderAndEventLine(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	if err := p.Header(); err != nil {
		t.Fatalf("header: %v", err)
	}
	err := p.Event(types.FaultEvent{
		Comm:         "gups",
		PID:          4141,
		TID:          4242,
		TimeInFault:  600,
		TimeAllocing: 50,
		TimeZeroing:  0,
		NumberFaults: 3,
	})
	if err != nil {
		t.Fatalf("event: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one event, got %q", buf.String())
	}
	wantHeader := "COMM       PID    TID    FAULT_TIME     FAULT_COUNT    AVG      ALLOC_TIME     ZERO_TIME     "
	if lines[0] != wantHeader {
		t.Fatalf("header mismatch:\n got %q\nwant %q", lines[0], wantHeader)
	}
	wantLine := "gups       4141   4242   600            3              200      50             0             "
	if lines[1] != wantLine {
		t.Fatalf("event line mismatch:\n got %q\nwant %q", lines[1], wantLine)
	}
}

func TestPrinterTruncatesLongComm(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	if err := p.Event(types.FaultEvent{Comm: "memcached-worke", NumberFaults: 1, TimeInFault: 1}); err != nil {
		t.Fatalf("event: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "memcached- ") {
		t.Fatalf("comm column must clip at 10 chars, got %q", buf.String())
	}
}

func TestPrinterFlushesEachLine(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	if err := p.Event(types.FaultEvent{Comm: "a", NumberFaults: 1, TimeInFault: 1}); err != nil {
		t.Fatalf("event: %v", err)
	}
	// The bufio layer must not hold the line back.
	if buf.Len() == 0 {
		t.Fatal("event line was not flushed to the underlying writer")
	}
}
