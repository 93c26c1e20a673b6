//go:build linux
// +build linux

package tracer

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/cilium/ebpf"
	"github.com/cilium/ebpf/link"
	"github.com/cilium/ebpf/perf"

	"github.com/multifacet/mm-fault-tracker/pkg/types"
)

// Options names the kernel symbols to instrument and the compiled name
// filter. Symbol names vary across kernel versions; callers supply the
// ones matching the running kernel.
type Options struct {
	// FaultSymbol is the fault-handling routine timed as the outer
	// fault phase, e.g. __handle_mm_fault.
	FaultSymbol string
	// HugeFaultSymbol is the huge-page fault routine. It feeds the same
	// fault phase as FaultSymbol.
	HugeFaultSymbol string
	// AllocSymbol is the page allocation routine, e.g. __alloc_pages.
	AllocSymbol string
	// ZeroSymbol is the page zero-fill routine, e.g. clear_page_erms.
	ZeroSymbol string
	// Filter gates every probe; the zero value traces everything.
	Filter CommFilter
	// PerfBufferPages sizes the per-CPU event buffer in pages.
	// Defaults to 4 when zero.
	PerfBufferPages int
}

// Tracer owns the loaded BPF objects, the attached probes, and the perf
// reader draining exit events. Instrumentation is system-wide for the
// lifetime of the Tracer: any process whose thread name passes the
// filter is traced, regardless of who launched it.
type Tracer struct {
	objs   fault_bpfObjects
	links  []link.Link
	reader *perf.Reader
	lost   uint64
}

// New loads the fault tracker programs, installs the name filter, and
// attaches every probe. A symbol missing from the running kernel fails
// here, before any tracing begins; no partial attachment survives an
// error.
func New(opts Options) (*Tracer, error) {
	var objs fault_bpfObjects
	if err := loadFault_bpfObjects(&objs, nil); err != nil {
		return nil, fmt.Errorf("loading fault tracker objects: %w", err)
	}

	t := &Tracer{objs: objs}

	// The filter must be in place before the first probe attaches so a
	// rejected thread never reaches the tables.
	zero := uint32(0)
	if err := objs.FilterConfig.Put(&zero, &opts.Filter); err != nil {
		objs.Close()
		return nil, fmt.Errorf("installing comm filter: %w", err)
	}

	pages := opts.PerfBufferPages
	if pages <= 0 {
		pages = 4
	}
	reader, err := perf.NewReader(objs.FaultEvents, pages*os.Getpagesize())
	if err != nil {
		objs.Close()
		return nil, fmt.Errorf("opening fault event reader: %w", err)
	}
	t.reader = reader

	attach := func(err error) error {
		if err != nil {
			t.Close()
		}
		return err
	}

	// Both fault handlers feed the same entry/return programs: the
	// huge-page path is just another producer for the fault phase.
	if err := attach(t.kprobePair(opts.FaultSymbol, objs.FaultEntry, objs.FaultRet)); err != nil {
		return nil, err
	}
	if err := attach(t.kprobePair(opts.HugeFaultSymbol, objs.FaultEntry, objs.FaultRet)); err != nil {
		return nil, err
	}
	if err := attach(t.kprobePair(opts.AllocSymbol, objs.AllocEntry, objs.AllocRet)); err != nil {
		return nil, err
	}
	if err := attach(t.kprobePair(opts.ZeroSymbol, objs.ZeroEntry, objs.ZeroRet)); err != nil {
		return nil, err
	}

	tp, err := link.Tracepoint("sched", "sched_process_exit", objs.HandleSchedProcessExit, nil)
	if err != nil {
		t.Close()
		return nil, fmt.Errorf("attaching sched_process_exit tracepoint: %w", err)
	}
	t.links = append(t.links, tp)

	return t, nil
}

func (t *Tracer) kprobePair(symbol string, entry, ret *ebpf.Program) error {
	kp, err := link.Kprobe(symbol, entry, nil)
	if err != nil {
		return fmt.Errorf("attaching kprobe %s: %w", symbol, err)
	}
	t.links = append(t.links, kp)

	krp, err := link.Kretprobe(symbol, ret, nil)
	if err != nil {
		return fmt.Errorf("attaching kretprobe %s: %w", symbol, err)
	}
	t.links = append(t.links, krp)
	return nil
}

// Poll waits up to timeout for the next finalized fault event. It
// returns ErrNoEvent when the window elapses, so callers can re-check
// stop conditions; records dropped by a full buffer are counted and
// skipped without surfacing an error.
func (t *Tracer) Poll(timeout time.Duration) (types.FaultEvent, error) {
	t.reader.SetDeadline(time.Now().Add(timeout))
	for {
		record, err := t.reader.Read()
		if err != nil {
			if errors.Is(err, os.ErrDeadlineExceeded) {
				return types.FaultEvent{}, ErrNoEvent
			}
			return types.FaultEvent{}, fmt.Errorf("reading fault event: %w", err)
		}
		if record.LostSamples > 0 {
			t.lost += record.LostSamples
			continue
		}
		return decodeFaultEvent(record.RawSample)
	}
}

// LostSamples reports how many exit events the kernel dropped because
// the event buffer was full.
func (t *Tracer) LostSamples() uint64 {
	return t.lost
}

// Close detaches every probe and releases the BPF resources. Probes are
// detached first so no callback can touch a map that is being torn
// down.
func (t *Tracer) Close() error {
	var err error
	for i := len(t.links) - 1; i >= 0; i-- {
		err = errors.Join(err, t.links[i].Close())
	}
	t.links = nil
	if t.reader != nil {
		err = errors.Join(err, t.reader.Close())
		t.reader = nil
	}
	return errors.Join(err, t.objs.Close())
}
