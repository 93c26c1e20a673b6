// Code generated by bpf2go; DO NOT EDIT.
//go:build 386 || amd64 || arm || arm64 || loong64 || mips64le || mipsle || ppc64le || riscv64

package tracer

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"github.com/cilium/ebpf"
)

type fault_bpfCommFilterT struct {
	Enabled uint32
	Comm    [16]int8
}

type fault_bpfFaultInfoT struct {
	TimeInFault  uint64
	TimeAllocing uint64
	TimeZeroing  uint64
	NumberFaults uint64
	Pid          uint32
	Tgid         uint32
	Comm         [16]int8
}

// loadFault_bpf returns the embedded CollectionSpec for fault_bpf.
func loadFault_bpf() (*ebpf.CollectionSpec, error) {
	reader := bytes.NewReader(_Fault_bpfBytes)
	spec, err := ebpf.LoadCollectionSpecFromReader(reader)
	if err != nil {
		return nil, fmt.Errorf("can't load fault_bpf: %w", err)
	}

	return spec, err
}

// loadFault_bpfObjects loads fault_bpf and converts it into a struct.
//
// The following types are suitable as obj argument:
//
//	*fault_bpfObjects
//	*fault_bpfPrograms
//	*fault_bpfMaps
//
// See ebpf.CollectionSpec.LoadAndAssign documentation for details.
func loadFault_bpfObjects(obj interface{}, opts *ebpf.CollectionOptions) error {
	spec, err := loadFault_bpf()
	if err != nil {
		return err
	}

	return spec.LoadAndAssign(obj, opts)
}

// fault_bpfSpecs contains maps and programs before they are loaded into the kernel.
//
// It can be passed ebpf.CollectionSpec.Assign.
type fault_bpfSpecs struct {
	fault_bpfProgramSpecs
	fault_bpfMapSpecs
}

// fault_bpfSpecs contains programs before they are loaded into the kernel.
//
// It can be passed ebpf.CollectionSpec.Assign.
type fault_bpfProgramSpecs struct {
	AllocEntry             *ebpf.ProgramSpec `ebpf:"alloc_entry"`
	AllocRet               *ebpf.ProgramSpec `ebpf:"alloc_ret"`
	FaultEntry             *ebpf.ProgramSpec `ebpf:"fault_entry"`
	FaultRet               *ebpf.ProgramSpec `ebpf:"fault_ret"`
	HandleSchedProcessExit *ebpf.ProgramSpec `ebpf:"handle_sched_process_exit"`
	ZeroEntry              *ebpf.ProgramSpec `ebpf:"zero_entry"`
	ZeroRet                *ebpf.ProgramSpec `ebpf:"zero_ret"`
}

// fault_bpfMapSpecs contains maps before they are loaded into the kernel.
//
// It can be passed ebpf.CollectionSpec.Assign.
type fault_bpfMapSpecs struct {
	AllocStart   *ebpf.MapSpec `ebpf:"alloc_start"`
	FaultEvents  *ebpf.MapSpec `ebpf:"fault_events"`
	FaultStart   *ebpf.MapSpec `ebpf:"fault_start"`
	FaultStats   *ebpf.MapSpec `ebpf:"fault_stats"`
	FilterConfig *ebpf.MapSpec `ebpf:"filter_config"`
	ZeroStart    *ebpf.MapSpec `ebpf:"zero_start"`
}

// fault_bpfObjects contains all objects after they have been loaded into the kernel.
//
// It can be passed to loadFault_bpfObjects or ebpf.CollectionSpec.LoadAndAssign.
type fault_bpfObjects struct {
	fault_bpfPrograms
	fault_bpfMaps
}

func (o *fault_bpfObjects) Close() error {
	return _Fault_bpfClose(
		&o.fault_bpfPrograms,
		&o.fault_bpfMaps,
	)
}

// fault_bpfMaps contains all maps after they have been loaded into the kernel.
//
// It can be passed to loadFault_bpfObjects or ebpf.CollectionSpec.LoadAndAssign.
type fault_bpfMaps struct {
	AllocStart   *ebpf.Map `ebpf:"alloc_start"`
	FaultEvents  *ebpf.Map `ebpf:"fault_events"`
	FaultStart   *ebpf.Map `ebpf:"fault_start"`
	FaultStats   *ebpf.Map `ebpf:"fault_stats"`
	FilterConfig *ebpf.Map `ebpf:"filter_config"`
	ZeroStart    *ebpf.Map `ebpf:"zero_start"`
}

func (m *fault_bpfMaps) Close() error {
	return _Fault_bpfClose(
		m.AllocStart,
		m.FaultEvents,
		m.FaultStart,
		m.FaultStats,
		m.FilterConfig,
		m.ZeroStart,
	)
}

// fault_bpfPrograms contains all programs after they have been loaded into the kernel.
//
// It can be passed to loadFault_bpfObjects or ebpf.CollectionSpec.LoadAndAssign.
type fault_bpfPrograms struct {
	AllocEntry             *ebpf.Program `ebpf:"alloc_entry"`
	AllocRet               *ebpf.Program `ebpf:"alloc_ret"`
	FaultEntry             *ebpf.Program `ebpf:"fault_entry"`
	FaultRet               *ebpf.Program `ebpf:"fault_ret"`
	HandleSchedProcessExit *ebpf.Program `ebpf:"handle_sched_process_exit"`
	ZeroEntry              *ebpf.Program `ebpf:"zero_entry"`
	ZeroRet                *ebpf.Program `ebpf:"zero_ret"`
}

func (p *fault_bpfPrograms) Close() error {
	return _Fault_bpfClose(
		p.AllocEntry,
		p.AllocRet,
		p.FaultEntry,
		p.FaultRet,
		p.HandleSchedProcessExit,
		p.ZeroEntry,
		p.ZeroRet,
	)
}

func _Fault_bpfClose(closers ...io.Closer) error {
	for _, closer := range closers {
		if err := closer.Close(); err != nil {
			return err
		}
	}
	return nil
}

// Do not access this directly.
//
//go:embed fault_bpf_bpfel.o
var _Fault_bpfBytes []byte
