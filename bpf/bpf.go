// Package bpf carries the BPF program source so the CLI can print it
// without shipping the file separately.
package bpf

import _ "embed"

// Source is the mm_fault_tracker BPF program as compiled by bpf2go.
//
//go:embed mm_fault_tracker.c
var Source string
