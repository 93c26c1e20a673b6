package tracer

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/multifacet/mm-fault-tracker/pkg/types"
)

// ErrNoEvent is returned by Poll when the wait window elapses without a
// process exit being reported. Callers use it to re-check their stop
// conditions between waits.
var ErrNoEvent = errors.New("no fault event within poll window")

// rawFaultInfo is the wire form of struct fault_info_t emitted by the
// kernel. Field order and widths must match the C definition.
type rawFaultInfo struct {
	TimeInFault  uint64
	TimeAllocing uint64
	TimeZeroing  uint64
	NumberFaults uint64
	Pid          uint32
	Tgid         uint32
	Comm         [types.TaskCommLen]byte
}

// decodeFaultEvent parses one perf record payload. The kernel reports
// pid/tgid in its own convention (pid = thread, tgid = thread group);
// the decoded event uses the user-space one (PID = process, TID =
// thread).
func decodeFaultEvent(raw []byte) (types.FaultEvent, error) {
	var info rawFaultInfo
	if err := binary.Read(bytes.NewReader(raw), binary.LittleEndian, &info); err != nil {
		return types.FaultEvent{}, fmt.Errorf("decoding fault event (%d bytes): %w", len(raw), err)
	}
	return types.FaultEvent{
		Comm:         cStr(info.Comm[:]),
		PID:          info.Tgid,
		TID:          info.Pid,
		TimeInFault:  info.TimeInFault,
		TimeAllocing: info.TimeAllocing,
		TimeZeroing:  info.TimeZeroing,
		NumberFaults: info.NumberFaults,
	}, nil
}

func cStr(b []byte) string {
	n := bytes.IndexByte(b, 0)
	if n == -1 {
		return string(b)
	}
	return string(b[:n])
}
