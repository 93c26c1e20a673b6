// Package report renders finalized fault events as the fixed-width
// stream downstream extraction scripts scrape, and drives the
// consumption loop that drains them.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/multifacet/mm-fault-tracker/pkg/types"
)

const (
	headerFormat = "%-10.10s %-6s %-6s %-14s %-14s %-8s %-14s %-14s\n"
	lineFormat   = "%-10.10s %-6d %-6d %-14d %-14d %-8d %-14d %-14d\n"
)

// Printer writes the event stream. Every line is flushed as soon as it
// is complete so a piped consumer sees events as they happen, not when
// the tracer exits.
type Printer struct {
	w *bufio.Writer
}

// NewPrinter wraps a writer, normally stdout.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: bufio.NewWriter(w)}
}

// Header prints the column header once, before any event.
func (p *Printer) Header() error {
	fmt.Fprintf(p.w, headerFormat,
		"COMM", "PID", "TID", "FAULT_TIME", "FAULT_COUNT", "AVG", "ALLOC_TIME", "ZERO_TIME")
	return p.w.Flush()
}

// Event prints one finalized fault record.
func (p *Printer) Event(ev types.FaultEvent) error {
	fmt.Fprintf(p.w, lineFormat,
		ev.Comm, ev.PID, ev.TID,
		ev.TimeInFault, ev.NumberFaults, AverageFaultNs(ev),
		ev.TimeAllocing, ev.TimeZeroing)
	return p.w.Flush()
}

// Status prints a final message on its own line.
func (p *Printer) Status(msg string) error {
	fmt.Fprintln(p.w, msg)
	return p.w.Flush()
}

// Newline emits a bare line break, used when an interactive run is
// cancelled so the shell prompt lands on a fresh line.
func (p *Printer) Newline() error {
	fmt.Fprintln(p.w)
	return p.w.Flush()
}

// AverageFaultNs is the mean fault-handling time in nanoseconds,
// truncated by integer division. A record with no completed faults
// (the process exited between fault entry and return) reports 0.
func AverageFaultNs(ev types.FaultEvent) uint64 {
	if ev.NumberFaults == 0 {
		return 0
	}
	return ev.TimeInFault / ev.NumberFaults
}
