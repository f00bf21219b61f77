package toolrun

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// LogSink receives the output streams of an external tool, one line at a
// time as the tool produces them. Stdout and Stderr are independent
// streams; ordering is guaranteed per stream only. Implementations must
// be safe for concurrent use — both streams are pumped from separate
// goroutines.
type LogSink interface {
	Stdout(line string)
	Stderr(line string)
}

// StdSink writes tool output to a pair of writers with a name prefix.
type StdSink struct {
	Out  io.Writer
	Err  io.Writer
	Name string

	mu sync.Mutex
}

func (s *StdSink) Stdout(line string) { s.write(s.Out, line) }
func (s *StdSink) Stderr(line string) { s.write(s.Err, line) }

func (s *StdSink) write(w io.Writer, line string) {
	if w == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(w, "[%s] %s\n", s.Name, line)
}

// Discard is a LogSink that drops all output.
var Discard LogSink = discardSink{}

type discardSink struct{}

func (discardSink) Stdout(string) {}
func (discardSink) Stderr(string) {}

// CaptureSink forwards to another sink while keeping the most recent
// stderr lines for error reporting.
type CaptureSink struct {
	next LogSink
	max  int

	mu    sync.Mutex
	lines []string
}

// NewCaptureSink wraps next, retaining up to max stderr lines.
func NewCaptureSink(next LogSink, max int) *CaptureSink {
	if next == nil {
		next = Discard
	}
	return &CaptureSink{next: next, max: max}
}

func (c *CaptureSink) Stdout(line string) {
	c.next.Stdout(line)
}

func (c *CaptureSink) Stderr(line string) {
	c.mu.Lock()
	c.lines = append(c.lines, line)
	if len(c.lines) > c.max {
		c.lines = c.lines[len(c.lines)-c.max:]
	}
	c.mu.Unlock()
	c.next.Stderr(line)
}

// StderrTail returns the retained stderr lines joined with newlines.
func (c *CaptureSink) StderrTail() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return strings.Join(c.lines, "\n")
}
