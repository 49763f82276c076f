// Package logging provides leveled logging and run tracing for cruisecheck.
// It offers two complementary outputs:
//   - A leveled slog.Logger for stderr (step banners, verdicts, signal access)
//   - An EventLog for structured JSONL traces (<dir>/events.jsonl)
package logging

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// LevelTrace is a custom slog level below Debug.
const LevelTrace = slog.LevelDebug - 4

// EventsFile is the file name EventLog appends to inside its directory.
const EventsFile = "events.jsonl"

// ParseLevel maps a string level name to a slog.Level.
// Supported values: "info", "debug", "trace" (case-insensitive).
// Unknown values default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "trace":
		return LevelTrace
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a leveled slog.Logger writing to w.
func NewLogger(level string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Label the custom trace level
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// EventLog writes structured run events to a JSONL file.
// It is safe for concurrent use. A nil EventLog is safe to use;
// all methods are no-ops on nil receiver.
type EventLog struct {
	mu   sync.Mutex
	file *os.File
}

// NewEventLog creates an event log writing to dir/events.jsonl.
// Returns nil when dir is empty or the level is "info" (the default),
// and when the file cannot be opened. All methods are nil-safe.
func NewEventLog(dir string, level string) *EventLog {
	if dir == "" || ParseLevel(level) == slog.LevelInfo {
		return nil
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil
	}

	path := filepath.Join(dir, EventsFile)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil
	}

	return &EventLog{file: f}
}

// Log writes an event as a single JSONL line.
// A "time" field is added automatically. The caller's map is not mutated.
// Safe to call on nil receiver.
func (el *EventLog) Log(event map[string]any) {
	if el == nil {
		return
	}

	entry := make(map[string]any, len(event)+1)
	for k, v := range event {
		entry[k] = v
	}
	entry["time"] = time.Now().UTC().Format(time.RFC3339Nano)

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	data = append(data, '\n')

	el.mu.Lock()
	defer el.mu.Unlock()
	if el.file == nil {
		return
	}
	_, _ = el.file.Write(data)
}

// SignalWritten records a signal write.
func (el *EventLog) SignalWritten(name string, value int) {
	el.Log(map[string]any{"event": "write", "signal": name, "value": value})
}

// SignalRead records a signal read. Absent signals carry no value field.
func (el *EventLog) SignalRead(name string, value int, present bool) {
	event := map[string]any{"event": "read", "signal": name, "present": present}
	if present {
		event["value"] = value
	}
	el.Log(event)
}

// Pause records a settling delay.
func (el *EventLog) Pause(d time.Duration) {
	el.Log(map[string]any{"event": "sleep", "seconds": d.Seconds()})
}

// StepVerdict records the outcome of a scenario step.
func (el *EventLog) StepVerdict(step int, passed bool) {
	el.Log(map[string]any{"event": "verdict", "step": step, "passed": passed})
}

// Close closes the underlying file. Safe to call on nil receiver.
func (el *EventLog) Close() {
	if el == nil {
		return
	}

	el.mu.Lock()
	defer el.mu.Unlock()

	if el.file != nil {
		el.file.Close()
		el.file = nil
	}
}
