// Package diag keeps a bounded in-memory trail of dashboard activity for the
// diagnostics panel and the CLI doctor command.
package diag

import (
	"fmt"
	"sync"
	"time"
)

// Level classifies a console entry.
type Level string

const (
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Entry is one recorded event.
type Entry struct {
	Time    time.Time `json:"time"`
	Level   Level     `json:"level"`
	Flow    string    `json:"flow,omitempty"`
	Message string    `json:"message"`
}

// Console is a fixed-capacity ring of entries. When full, the oldest entry
// is dropped.
type Console struct {
	mu      sync.Mutex
	entries []Entry
	next    int
	full    bool
}

// NewConsole creates a console holding at most capacity entries. Capacity
// below 1 is treated as 1.
func NewConsole(capacity int) *Console {
	if capacity < 1 {
		capacity = 1
	}
	return &Console{entries: make([]Entry, capacity)}
}

// Record appends an entry, evicting the oldest when at capacity.
func (c *Console) Record(level Level, flow, format string, args ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[c.next] = Entry{
		Time:    time.Now(),
		Level:   level,
		Flow:    flow,
		Message: fmt.Sprintf(format, args...),
	}
	c.next++
	if c.next == len(c.entries) {
		c.next = 0
		c.full = true
	}
}

// Infof records an informational entry.
func (c *Console) Infof(flow, format string, args ...interface{}) {
	c.Record(LevelInfo, flow, format, args...)
}

// Errorf records an error entry.
func (c *Console) Errorf(flow, format string, args ...interface{}) {
	c.Record(LevelError, flow, format, args...)
}

// Entries returns the recorded entries, oldest first.
func (c *Console) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.full {
		out := make([]Entry, c.next)
		copy(out, c.entries[:c.next])
		return out
	}
	out := make([]Entry, 0, len(c.entries))
	out = append(out, c.entries[c.next:]...)
	out = append(out, c.entries[:c.next]...)
	return out
}

// Len reports how many entries are currently held.
func (c *Console) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.full {
		return len(c.entries)
	}
	return c.next
}
