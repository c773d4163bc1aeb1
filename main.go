package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/composite-widgets/internal/app"
	"github.com/atomicstack/composite-widgets/internal/config"
	"github.com/atomicstack/composite-widgets/internal/logging"
	"github.com/atomicstack/composite-widgets/internal/logging/events"
	"golang.org/x/term"
)

// errNoTerminal is returned when stdin or stdout is not a terminal.
var errNoTerminal = errors.New("stdin and stdout must be a terminal")

func main() {
	os.Exit(run(os.Args[1:], os.Environ(), collectTTYDetails(), app.Run, os.Stderr))
}

// run loads configuration, checks the terminal and hands over to the
// program. It returns the process exit code.
func run(args, environ []string, tty ttyDetails, start func(app.Config) error, stderr io.Writer) int {
	cfg, err := config.LoadArgs(args, environ)
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(stderr, usage)
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return 2
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	events.App.Start(startupTracePayload(cfg, tty))

	if err := requireTerminal(tty); err != nil {
		events.App.Stop(err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	err = start(cfg.App)
	events.App.Stop(err)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

const usage = `usage: composite-widgets [-config file] [-width n] [-height n] [-footer]
                         [-rtl] [-typeahead-window d] [-snackbar-duration d]
                         [-tooltip-delay d] [-trace] [-log-file path]`

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config, tty ttyDetails) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":      cfg.Args,
		"flags":     flags,
		"config":    cfg,
		"direction": cfg.App.Options().Direction.String(),
		"tty":       tty,
	}
	if cfg.File != "" {
		payload["configFile"] = cfg.File
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	}
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (d ttyDetails) terminal(name string) bool {
	for _, probe := range d.Probes {
		if probe.Name == name {
			return probe.IsTerminal
		}
	}
	return false
}

// requireTerminal fails unless both input and output are terminals; the
// widgets read raw keys and draw to the alternate screen.
func requireTerminal(d ttyDetails) error {
	if d.terminal("stdin") && d.terminal("stdout") {
		return nil
	}
	return errNoTerminal
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
