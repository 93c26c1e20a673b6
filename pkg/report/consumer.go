package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/multifacet/mm-fault-tracker/pkg/tracer"
	"github.com/multifacet/mm-fault-tracker/pkg/types"
)

// statFile allows tests to stub stop-file probing.
var statFile = os.Stat

// EventSource yields finalized fault events with a bounded wait, the
// way the tracer's Poll does.
type EventSource interface {
	Poll(timeout time.Duration) (types.FaultEvent, error)
}

// Consumer is the single-threaded loop draining the event stream: one
// bounded wait, one render, one stop check, repeat. Cancellation is
// cooperative and observed only between waits, so termination latency
// is bounded by the poll timeout.
type Consumer struct {
	source      EventSource
	printer     *Printer
	stopFile    string
	pollTimeout time.Duration
}

// NewConsumer wires a source to a printer. stopFile is polled once per
// iteration; its appearance ends the run.
func NewConsumer(source EventSource, printer *Printer, stopFile string, pollTimeout time.Duration) *Consumer {
	return &Consumer{
		source:      source,
		printer:     printer,
		stopFile:    stopFile,
		pollTimeout: pollTimeout,
	}
}

// Run prints the header and drains events until the stop file appears
// or ctx is cancelled. Both are clean exits; only source or writer
// failures return an error.
func (c *Consumer) Run(ctx context.Context) error {
	if err := c.printer.Header(); err != nil {
		return err
	}
	for {
		ev, err := c.source.Poll(c.pollTimeout)
		switch {
		case err == nil:
			if err := c.printer.Event(ev); err != nil {
				return err
			}
		case errors.Is(err, tracer.ErrNoEvent):
			// Quiet window; fall through to the stop checks.
		default:
			return fmt.Errorf("draining fault events: %w", err)
		}

		if c.stopRequested() {
			return c.printer.Status("Tracking complete")
		}
		select {
		case <-ctx.Done():
			// The trailing newline is part of the output contract on
			// cancellation, piped or not.
			return c.printer.Newline()
		default:
		}
	}
}

func (c *Consumer) stopRequested() bool {
	_, err := statFile(c.stopFile)
	return err == nil
}
