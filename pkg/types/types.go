package types

// TaskCommLen is the kernel's TASK_COMM_LEN: thread names are at most 15
// bytes plus a terminating NUL.
const TaskCommLen = 16

// FaultEvent is the finalized per-process fault summary emitted by the
// kernel when a traced process exits. It is an immutable snapshot; the
// kernel-side record it was copied from is deleted at emission time.
type FaultEvent struct {
	// Comm is the thread name observed at process exit, which may differ
	// from the name seen at the first fault.
	Comm string
	// PID is the process id (the kernel's thread-group id).
	PID uint32
	// TID is the thread id recorded when the process took its first
	// traced fault. Thread ids are reused by the kernel, so a TID seen
	// here may belong to a different thread by the time it is printed.
	TID uint32
	// TimeInFault is the cumulative nanoseconds spent handling faults.
	TimeInFault uint64
	// TimeAllocing is the cumulative nanoseconds spent allocating pages
	// inside those faults.
	TimeAllocing uint64
	// TimeZeroing is the cumulative nanoseconds spent zero-filling pages
	// inside those faults.
	TimeZeroing uint64
	// NumberFaults counts completed fault intervals.
	NumberFaults uint64
}
