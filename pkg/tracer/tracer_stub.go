//go:build !linux
// +build !linux

package tracer

import (
	"errors"
	"time"

	"github.com/multifacet/mm-fault-tracker/pkg/types"
)

var errUnsupported = errors.New("fault tracer requires linux")

// Options mirrors the Linux tracer configuration on unsupported
// platforms so cross-platform callers still compile.
type Options struct {
	FaultSymbol     string
	HugeFaultSymbol string
	AllocSymbol     string
	ZeroSymbol      string
	Filter          CommFilter
	PerfBufferPages int
}

// Tracer is a placeholder on non-Linux platforms.
type Tracer struct{}

// New returns an error because kernel probes only exist on Linux.
func New(opts Options) (*Tracer, error) {
	return nil, errUnsupported
}

// Poll always fails on unsupported platforms.
func (t *Tracer) Poll(timeout time.Duration) (types.FaultEvent, error) {
	return types.FaultEvent{}, errUnsupported
}

// LostSamples reports nothing on unsupported platforms.
func (t *Tracer) LostSamples() uint64 {
	return 0
}

// Close is a no-op stub.
func (t *Tracer) Close() error {
	return nil
}
