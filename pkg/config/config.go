// Package config holds the tracer's tunable surface: the kernel symbol
// names to instrument, the stop-file path, and the poll timeout. Symbol
// names are the only portability mechanism across kernel versions, so
// they are deliberately plain strings an experimenter can override.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults match a recent x86-64 kernel.
const (
	DefaultFaultSymbol     = "__handle_mm_fault"
	DefaultHugeFaultSymbol = "hugetlb_fault"
	DefaultAllocSymbol     = "__alloc_pages"
	DefaultZeroSymbol      = "clear_page_erms"
	DefaultStopFile        = "/tmp/mm_fault_tracker.done"
	DefaultPollTimeout     = time.Second
)

// Symbols names the kernel functions instrumented for each phase.
type Symbols struct {
	Fault     string `yaml:"fault"`
	HugeFault string `yaml:"huge_fault"`
	Alloc     string `yaml:"alloc"`
	Zero      string `yaml:"zero"`
}

// Config is the full tracer configuration.
type Config struct {
	Symbols     Symbols  `yaml:"symbols"`
	StopFile    string   `yaml:"stop_file"`
	PollTimeout Duration `yaml:"poll_timeout"`
}

// Duration parses yaml strings like "500ms" into a time.Duration.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Symbols: Symbols{
			Fault:     DefaultFaultSymbol,
			HugeFault: DefaultHugeFaultSymbol,
			Alloc:     DefaultAllocSymbol,
			Zero:      DefaultZeroSymbol,
		},
		StopFile:    DefaultStopFile,
		PollTimeout: Duration(DefaultPollTimeout),
	}
}

// Load reads a yaml file and applies it over the defaults, so a file
// only needs to name the values it changes.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations that could never attach or would spin
// the consumption loop.
func (c Config) Validate() error {
	for _, sym := range []struct{ name, value string }{
		{"symbols.fault", c.Symbols.Fault},
		{"symbols.huge_fault", c.Symbols.HugeFault},
		{"symbols.alloc", c.Symbols.Alloc},
		{"symbols.zero", c.Symbols.Zero},
	} {
		if sym.value == "" {
			return fmt.Errorf("%s must not be empty", sym.name)
		}
	}
	if c.StopFile == "" {
		return fmt.Errorf("stop_file must not be empty")
	}
	if c.PollTimeout <= 0 {
		return fmt.Errorf("poll_timeout must be positive, got %v", time.Duration(c.PollTimeout))
	}
	return nil
}
