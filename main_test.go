package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/composite-widgets/internal/app"
	"github.com/atomicstack/composite-widgets/internal/config"
)

func terminalTTY() ttyDetails {
	return ttyDetails{Probes: []ttyProbeResult{
		{Name: "stdin", IsTerminal: true},
		{Name: "stdout", IsTerminal: true},
		{Name: "stderr", IsTerminal: true},
	}}
}

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestRequireTerminal(t *testing.T) {
	if err := requireTerminal(terminalTTY()); err != nil {
		t.Fatalf("expected terminal to pass, got %v", err)
	}
	piped := terminalTTY()
	piped.Probes[1].IsTerminal = false
	if err := requireTerminal(piped); !errors.Is(err, errNoTerminal) {
		t.Fatalf("expected errNoTerminal, got %v", err)
	}
	if err := requireTerminal(ttyDetails{}); !errors.Is(err, errNoTerminal) {
		t.Fatalf("expected errNoTerminal without probes, got %v", err)
	}
}

func TestRunStartsApp(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "cw.log")
	var got app.Config
	start := func(cfg app.Config) error {
		got = cfg
		return nil
	}
	var stderr strings.Builder
	code := run([]string{"-rtl", "-width", "60", "-log-file", logFile}, nil, terminalTTY(), start, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (%s)", code, stderr.String())
	}
	if !got.RTL || got.Width != 60 {
		t.Fatalf("unexpected app config %#v", got)
	}
}

func TestRunExitCodes(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "cw.log")
	never := func(app.Config) error {
		t.Fatalf("app should not start")
		return nil
	}
	var stderr strings.Builder
	if code := run([]string{"-width", "-3"}, nil, terminalTTY(), never, &stderr); code != 2 {
		t.Fatalf("expected exit 2 for invalid config, got %d", code)
	}
	if !strings.Contains(stderr.String(), "Configuration error") {
		t.Fatalf("expected configuration error, got %q", stderr.String())
	}

	stderr.Reset()
	if code := run([]string{"-log-file", logFile}, nil, ttyDetails{}, never, &stderr); code != 1 {
		t.Fatalf("expected exit 1 without a terminal, got %d", code)
	}

	stderr.Reset()
	failing := func(app.Config) error { return errors.New("boom") }
	if code := run([]string{"-log-file", logFile}, nil, terminalTTY(), failing, &stderr); code != 1 {
		t.Fatalf("expected exit 1 when the program fails, got %d", code)
	}
	if !strings.Contains(stderr.String(), "boom") {
		t.Fatalf("expected program error, got %q", stderr.String())
	}

	stderr.Reset()
	if code := run([]string{"-h"}, nil, terminalTTY(), never, &stderr); code != 0 {
		t.Fatalf("expected exit 0 for help, got %d", code)
	}
	if !strings.Contains(stderr.String(), "usage: composite-widgets") {
		t.Fatalf("expected usage, got %q", stderr.String())
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Width:            80,
			Height:           24,
			ShowFooter:       true,
			RTL:              true,
			TypeaheadWindow:  500 * time.Millisecond,
			SnackbarDuration: 4 * time.Second,
			TooltipDelay:     600 * time.Millisecond,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		File: "widgets.toml",
		Flags: map[string]string{
			"rtl":    "true",
			"width":  "80",
			"footer": "true",
		},
		Args: []string{"--rtl", "--config", "widgets.toml"},
	}

	payload := startupTracePayload(cfg, terminalTTY())

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["rtl"] != "true" || flagsValue["width"] != "80" || flagsValue["footer"] != "true" {
		t.Fatalf("unexpected flags %v", flagsValue)
	}
	if flagsValue["trace"] != true || flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected logging flags, got %v", flagsValue)
	}
	if payload["configFile"] != "widgets.toml" {
		t.Fatalf("expected config file in payload, got %v", payload["configFile"])
	}
	if payload["direction"] != "rtl" {
		t.Fatalf("expected rtl direction, got %v", payload["direction"])
	}
	if tty, ok := payload["tty"].(ttyDetails); !ok || len(tty.Probes) != 3 {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok || cfgValue.App != cfg.App {
		t.Fatalf("expected app config in payload")
	}
}
