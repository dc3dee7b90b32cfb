package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// DebugLogger logs TUI state, keystrokes, and request lifecycle events
// to a file. It is the developer-visibility channel for swallowed fetch
// errors; nothing it records is shown in the UI.
type DebugLogger struct {
	mu      sync.Mutex
	file    *os.File
	enabled bool
	session string
	seq     int
}

// Global debug logger instance
var debugLog *DebugLogger

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "movie-debug.log"

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = &DebugLogger{enabled: false}
		return nil
	}

	// Create log file in current directory with fixed name (easy to find)
	logPath := DebugLogPath
	f, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugLog = &DebugLogger{
		file:    f,
		enabled: true,
		session: uuid.NewString(),
	}

	debugLog.log("DEBUG_START", map[string]any{
		"log_file": logPath,
		"time":     time.Now().Format(time.RFC3339),
	})

	return nil
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog != nil && debugLog.file != nil {
		debugLog.log("DEBUG_END", map[string]any{
			"time": time.Now().Format(time.RFC3339),
		})
		_ = debugLog.file.Close()
	}
}

// log writes a structured log entry.
func (d *DebugLogger) log(event string, data map[string]any) {
	if d == nil || !d.enabled || d.file == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	entry := map[string]any{
		"seq":     d.seq,
		"session": d.session,
		"ts":      time.Now().Format("15:04:05.000"),
		"event":   event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(d.file, "%s\n", b)
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("KEY_PRESS", map[string]any{
		"key":  msg.String(),
		"type": fmt.Sprintf("%T", msg.Type),
	})
}

// LogModeChange logs a mode change.
func LogModeChange(from, to Mode, reason string) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("MODE_CHANGE", map[string]any{
		"from":   modeString(from),
		"to":     modeString(to),
		"reason": reason,
	})
}

// LogRequestStart logs the dispatch of a search or detail request.
// The request class plus sequence number correlate it with its
// completion entry.
func LogRequestStart(kind string, seq int, arg string) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("REQUEST_START", map[string]any{
		"kind": kind,
		"id":   seq,
		"arg":  arg,
	})
}

// LogRequestDone logs the completion of a search or detail request.
func LogRequestDone(kind string, seq int, elapsed time.Duration, err error) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	data := map[string]any{
		"kind":       kind,
		"id":         seq,
		"elapsed_ms": elapsed.Milliseconds(),
		"ok":         err == nil,
	}
	if err != nil {
		data["error"] = err.Error()
	}
	debugLog.log("REQUEST_DONE", data)
}

// LogStaleDrop logs a completion discarded because a newer request of
// the same class superseded it.
func LogStaleDrop(kind string, seq, current int) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("STALE_DROP", map[string]any{
		"kind":    kind,
		"id":      seq,
		"current": current,
	})
}

// LogCacheLookup logs a response-cache lookup.
func LogCacheLookup(key string, hit bool) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("CACHE_LOOKUP", map[string]any{
		"key": key,
		"hit": hit,
	})
}

// LogError logs an error swallowed at a UI boundary.
func LogError(context string, err error) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}

// modeString returns a string representation of a Mode.
func modeString(m Mode) string {
	switch m {
	case ModeSearch:
		return "Search"
	case ModeResults:
		return "Results"
	case ModeModal:
		return "Modal"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}
