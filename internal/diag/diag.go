// Package diag carries recoverable problems found while walking a search path
// out of the scan without aborting it.
package diag

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	// ErrSourceUnavailable means no search path string could be obtained.
	ErrSourceUnavailable = errors.New("search path unavailable")
	// ErrDirectoryUnreadable means a search path entry could not be opened for listing.
	ErrDirectoryUnreadable = errors.New("directory unreadable")
	// ErrEntryUnreadable means one item of a directory listing could not be read.
	ErrEntryUnreadable = errors.New("entry unreadable")
	// ErrIdentityCheckFailed means two paths could not be compared for same-file identity.
	ErrIdentityCheckFailed = errors.New("identity check failed")
	// ErrNotFound means a requested command name is in no search path directory.
	ErrNotFound = errors.New("not found")
)

// Diagnostic is a single recoverable problem. Kind is one of the sentinel errors above.
type Diagnostic struct {
	Kind  error
	Path  string
	Other string // Second path for identity checks
	Err   error
}

func (d Diagnostic) Error() string {
	switch {
	case errors.Is(d.Kind, ErrNotFound):
		return d.Path + " not found"
	case d.Other != "":
		return fmt.Sprintf("can not compare %s and %s: %v", d.Path, d.Other, d.Err)
	case d.Err != nil:
		return fmt.Sprintf("%v: %s: %v", d.Kind, d.Path, d.Err)
	default:
		return fmt.Sprintf("%v: %s", d.Kind, d.Path)
	}
}

// Unwrap exposes both the kind and the underlying cause to errors.Is.
func (d Diagnostic) Unwrap() []error {
	if d.Err == nil {
		return []error{d.Kind}
	}
	return []error{d.Kind, d.Err}
}

// Sink receives diagnostics at the point they occur.
type Sink interface {
	Report(d Diagnostic)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Diagnostic)

func (f SinkFunc) Report(d Diagnostic) { f(d) }

// Discard drops every diagnostic.
var Discard Sink = SinkFunc(func(Diagnostic) {})

// Collector keeps diagnostics in memory. Safe for concurrent use.
type Collector struct {
	mu    sync.Mutex
	items []Diagnostic
}

func (c *Collector) Report(d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, d)
}

// Items returns a copy of everything reported so far, in report order.
func (c *Collector) Items() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Diagnostic(nil), c.items...)
}

// Len returns how many diagnostics were reported.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Count returns how many diagnostics of the given kind were reported.
func (c *Collector) Count(kind error) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, d := range c.items {
		if errors.Is(d.Kind, kind) {
			n++
		}
	}
	return n
}

// LogSink writes diagnostics as structured log records.
type LogSink struct {
	Logger *log.Logger
}

func (s LogSink) Report(d Diagnostic) {
	switch {
	case errors.Is(d.Kind, ErrNotFound):
		s.Logger.Warn(d.Path + " not found")
	case d.Other != "":
		s.Logger.Warn("can not compare", "path", d.Path, "other", d.Other, "err", d.Err)
	default:
		s.Logger.Warn(d.Kind.Error(), "path", d.Path, "err", d.Err)
	}
}

// Tee reports to every sink in order.
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(d Diagnostic) {
		for _, s := range sinks {
			s.Report(d)
		}
	})
}
