//go:build linux
// +build linux

package tracer

//go:generate bpf2go -cc clang -cflags "-O2 -g -D__TARGET_ARCH_x86" fault_bpf ../../bpf/mm_fault_tracker.c
