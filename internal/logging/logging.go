// Package logging writes a JSON-lines log shared by the whole process.
// Errors and warnings are always written; trace entries only when tracing
// is enabled. Menu actions run as tea commands on other goroutines, so all
// writes go through one mutex.
package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const defaultLogFile = "composite-widgets.log"

type entry struct {
	Time    time.Time   `json:"time"`
	Level   string      `json:"level"`
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

type sink struct {
	mu    sync.Mutex
	path  string
	trace bool
}

var std = &sink{path: defaultLogFile}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	std.mu.Lock()
	defer std.mu.Unlock()
	path = strings.TrimSpace(path)
	if path == "" {
		std.path = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		std.path = defaultLogFile
		return
	}
	std.path = path
}

// SetTraceEnabled toggles emission of trace entries.
func SetTraceEnabled(enabled bool) {
	std.mu.Lock()
	std.trace = enabled
	std.mu.Unlock()
}

// TraceEnabled reports whether trace entries are currently emitted.
func TraceEnabled() bool {
	std.mu.Lock()
	defer std.mu.Unlock()
	return std.trace
}

// Error records err. Nil errors are ignored.
func Error(err error) {
	if err == nil {
		return
	}
	std.write(entry{Level: "error", Event: "error", Payload: err.Error()}, false)
}

// Warn records a non-fatal advisory.
func Warn(event string, payload interface{}) {
	std.write(entry{Level: "warn", Event: event, Payload: payload}, false)
}

// Trace records event when tracing is enabled.
func Trace(event string, payload interface{}) {
	std.write(entry{Level: "trace", Event: event, Payload: payload}, true)
}

func (s *sink) write(e entry, traceOnly bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if traceOnly && !s.trace {
		return
	}
	e.Time = time.Now().UTC()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s logging failed: %v\n", e.Level, err)
		return
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(e); err != nil {
		fmt.Fprintf(os.Stderr, "%s encoding failed: %v\n", e.Level, err)
	}
}
