//go:build linux

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/multifacet/mm-fault-tracker/bpf"
	"github.com/multifacet/mm-fault-tracker/pkg/config"
	"github.com/multifacet/mm-fault-tracker/pkg/report"
	"github.com/multifacet/mm-fault-tracker/pkg/tracer"
)

type runConfig struct {
	cfg  config.Config
	comm string
	dump bool
}

func parseConfig() runConfig {
	comm := flag.String("comm", "", "only trace processes whose thread name matches")
	cfgPath := flag.String("config", "", "yaml file overriding kernel symbols, stop file, or poll timeout")
	stopFile := flag.String("stop-file", config.DefaultStopFile, "end the run when this file appears")
	pollTimeout := flag.Duration("poll-timeout", config.DefaultPollTimeout, "bounded wait per event poll")
	dump := flag.Bool("ebpf", false, "print the BPF program source and exit")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}
	// Explicit flags win over file values.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "stop-file":
			cfg.StopFile = *stopFile
		case "poll-timeout":
			cfg.PollTimeout = config.Duration(*pollTimeout)
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	return runConfig{cfg: cfg, comm: *comm, dump: *dump}
}

func main() {
	rc := parseConfig()
	if rc.dump {
		fmt.Print(bpf.Source)
		return
	}

	// Raise rlimit for locked memory to allow eBPF programs to load.
	if err := unix.Setrlimit(unix.RLIMIT_MEMLOCK, &unix.Rlimit{
		Cur: unix.RLIM_INFINITY,
		Max: unix.RLIM_INFINITY,
	}); err != nil {
		log.Fatalf("failed to raise rlimit memlock: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	t, err := tracer.New(tracer.Options{
		FaultSymbol:     rc.cfg.Symbols.Fault,
		HugeFaultSymbol: rc.cfg.Symbols.HugeFault,
		AllocSymbol:     rc.cfg.Symbols.Alloc,
		ZeroSymbol:      rc.cfg.Symbols.Zero,
		Filter:          tracer.NewCommFilter(rc.comm),
	})
	if err != nil {
		log.Fatalf("initializing fault tracer: %v", err)
	}
	defer t.Close()

	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintf(os.Stderr, "mm-fault-tracker: press Ctrl+C to stop, or create %s\n", rc.cfg.StopFile)
	}

	consumer := report.NewConsumer(
		t,
		report.NewPrinter(os.Stdout),
		rc.cfg.StopFile,
		time.Duration(rc.cfg.PollTimeout),
	)
	if err := consumer.Run(ctx); err != nil {
		log.Fatalf("consuming fault events: %v", err)
	}

	if lost := t.LostSamples(); lost > 0 {
		fmt.Fprintf(os.Stderr, "dropped %d exit events (perf buffer full)\n", lost)
	}
}
