package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tracker.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadAppliesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
symbols:
  alloc: __alloc_pages_nodemask
stop_file: /run/tracker.done
poll_timeout: 250ms
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Symbols.Alloc != "__alloc_pages_nodemask" {
		t.Fatalf("override not applied: %q", cfg.Symbols.Alloc)
	}
	if cfg.Symbols.Fault != DefaultFaultSymbol || cfg.Symbols.Zero != DefaultZeroSymbol {
		t.Fatalf("untouched symbols must keep defaults: %+v", cfg.Symbols)
	}
	if cfg.StopFile != "/run/tracker.done" {
		t.Fatalf("stop file override not applied: %q", cfg.StopFile)
	}
	if time.Duration(cfg.PollTimeout) != 250*time.Millisecond {
		t.Fatalf("poll timeout override not applied: %v", time.Duration(cfg.PollTimeout))
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"emptySymbol", "symbols:\n  fault: \"\"\n"},
		{"badDuration", "poll_timeout: soon\n"},
		{"emptyStopFile", "stop_file: \"\"\n"},
		{"notYaml", "{{{{\n"},
	}
	for _, tc := range cases {
		path := writeConfig(t, tc.body)
		if _, err := Load(path); err == nil {
			t.Fatalf("%s: expected an error", tc.name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
