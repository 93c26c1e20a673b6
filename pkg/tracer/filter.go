package tracer

import "github.com/multifacet/mm-fault-tracker/pkg/types"

// CommFilter mirrors struct comm_filter_t in bpf/mm_fault_tracker.c. It is
// written into the single-entry filter_config map before any probe
// attaches, so every callback sees the final predicate from its first
// invocation.
type CommFilter struct {
	Enabled uint32
	Comm    [types.TaskCommLen]byte
}

// NewCommFilter compiles the optional "thread name equals target"
// predicate. An empty target disables filtering and every process is
// traced. Targets longer than the kernel's thread-name limit are
// truncated to 15 bytes, matching what the kernel itself would report
// for such a name.
func NewCommFilter(target string) CommFilter {
	var f CommFilter
	if target == "" {
		return f
	}
	if len(target) > types.TaskCommLen-1 {
		target = target[:types.TaskCommLen-1]
	}
	f.Enabled = 1
	copy(f.Comm[:], target)
	return f
}

// Target returns the compiled target name, or "" when disabled.
func (f CommFilter) Target() string {
	if f.Enabled == 0 {
		return ""
	}
	return cStr(f.Comm[:])
}
