// Package console is the stand-in for the browser console the lessons were
// written against. A Console records every printed line, in order, so that the
// runner can compare a lesson's output with the output its annotations promise.
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Stream identifies where a line was printed.
type Stream string

const (
	Stdout Stream = "stdout"
	Stderr Stream = "stderr"
)

// Entry is a single recorded line.
type Entry struct {
	Stream Stream `json:"stream"`
	Text   string `json:"text"`
}

// Console records lines printed by a lesson. The zero value is ready to use.
type Console struct {
	mu      sync.Mutex
	entries []Entry
	tee     io.Writer
}

// New returns a Console that additionally writes every line to tee as it is
// printed. A nil tee only records.
func New(tee io.Writer) *Console {
	return &Console{tee: tee}
}

// Log prints its operands separated by single spaces, like fmt.Println.
func (c *Console) Log(args ...any) {
	c.record(Stdout, sprintln(args...))
}

// Logf prints a formatted line.
func (c *Console) Logf(format string, args ...any) {
	c.record(Stdout, fmt.Sprintf(format, args...))
}

// Error prints to the error stream.
func (c *Console) Error(args ...any) {
	c.record(Stderr, sprintln(args...))
}

// Errorf prints a formatted line to the error stream.
func (c *Console) Errorf(format string, args ...any) {
	c.record(Stderr, fmt.Sprintf(format, args...))
}

// Lines returns the recorded text of both streams in print order.
func (c *Console) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	lines := make([]string, len(c.entries))
	for i, e := range c.entries {
		lines[i] = e.Text
	}
	return lines
}

// Entries returns a copy of the recorded entries.
func (c *Console) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Console) record(stream Stream, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, line := range strings.Split(text, "\n") {
		c.entries = append(c.entries, Entry{Stream: stream, Text: line})
		if c.tee != nil {
			fmt.Fprintln(c.tee, line)
		}
	}
}

func sprintln(args ...any) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}
