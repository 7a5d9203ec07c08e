// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used for console notices.
type Styles struct {
	Queued      lipgloss.Style
	Wait        lipgloss.Style
	Dispatching lipgloss.Style
	Completed   lipgloss.Style
	Failed      lipgloss.Style
}

// DefaultStyles returns the default notice styles.
func DefaultStyles() Styles {
	return Styles{
		Queued: lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")),
		Wait: lipgloss.NewStyle().
			Foreground(lipgloss.Color("3")),
		Dispatching: lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")),
		Completed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")).
			Bold(true),
		Failed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")).
			Bold(true),
	}
}

// Console renders job lifecycle events as line-oriented notices.
type Console struct {
	mu     sync.Mutex
	w      io.Writer
	styles Styles
}

// NewConsole creates a Console reporter writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{
		w:      w,
		styles: DefaultStyles(),
	}
}

// Report implements the Reporter interface for Console.
func (c *Console) Report(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch e.Type {
	case EventQueued:
		fmt.Fprintln(c.w, c.styles.Queued.Render(
			fmt.Sprintf("[shell] job %d queued: %s", e.JobID, strings.Join(e.Args, " "))))
	case EventQueueFull:
		fmt.Fprintln(c.w, c.styles.Wait.Render("[shell] queue full, waiting..."))
	case EventDispatching:
		fmt.Fprintln(c.w, c.styles.Dispatching.Render(
			fmt.Sprintf("[dispatcher] dispatching job %d: %s", e.JobID, strings.Join(e.Args, " "))))
	case EventCompleted:
		fmt.Fprintln(c.w, c.styles.Completed.Render(
			fmt.Sprintf("[dispatcher] job %d completed (exit code %d)", e.JobID, e.ExitCode)))
	case EventFailed:
		fmt.Fprintln(c.w, c.styles.Failed.Render(
			fmt.Sprintf("[dispatcher] job %d failed: %v", e.JobID, e.Err)))
	case EventRejected:
		fmt.Fprintln(c.w, c.styles.Wait.Render(
			fmt.Sprintf("[shell] job %d rejected: shutting down", e.JobID)))
	case EventInvalid:
		fmt.Fprintln(c.w, c.styles.Failed.Render(
			fmt.Sprintf("[shell] invalid command: %v", e.Err)))
	}
}

// Recorder stores reported events in order. It is intended for tests and for
// post-run inspection such as failure aggregation.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Report implements the Reporter interface for Recorder.
func (r *Recorder) Report(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events in report order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Event, len(r.events))
	copy(out, r.events)

	return out
}
