package tracer

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func sampleBytes(t *testing.T, info rawFaultInfo) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, &info); err != nil {
		t.Fatalf("encoding sample: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeFaultEvent(t *testing.T) {
	info := rawFaultInfo{
		TimeInFault:  600,
		TimeAllocing: 50,
		TimeZeroing:  0,
		NumberFaults: 3,
		Pid:          4242, // thread id in kernel convention
		Tgid:         4141, // process id in kernel convention
	}
	copy(info.Comm[:], "gups\x00garbage")

	ev, err := decodeFaultEvent(sampleBytes(t, info))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if ev.Comm != "gups" {
		t.Fatalf("comm not trimmed at NUL: %q", ev.Comm)
	}
	if ev.PID != 4141 || ev.TID != 4242 {
		t.Fatalf("pid/tgid not swapped to user-space convention: PID=%d TID=%d", ev.PID, ev.TID)
	}
	if ev.TimeInFault != 600 || ev.TimeAllocing != 50 || ev.TimeZeroing != 0 || ev.NumberFaults != 3 {
		t.Fatalf("totals mismatch: %+v", ev)
	}
}

func TestDecodeFaultEventShortSample(t *testing.T) {
	if _, err := decodeFaultEvent([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected an error for a truncated sample")
	}
}

func TestCStr(t *testing.T) {
	cases := []struct {
		name     string
		input    []byte
		expected string
	}{
		{"noNull", []byte{'x', 'y'}, "xy"},
		{"trimNull", []byte{'x', 0, 'z'}, "x"},
	}
	for _, tc := range cases {
		if got := cStr(tc.input); got != tc.expected {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.expected, got)
		}
	}
}
