// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sched

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const ruleWidth = 70

// RenderStyles holds the lipgloss styles used for simulator output.
type RenderStyles struct {
	Title   lipgloss.Style
	Rule    lipgloss.Style
	Header  lipgloss.Style
	Idle    lipgloss.Style
	Procs   []lipgloss.Style
	Metrics lipgloss.Style
}

// DefaultRenderStyles returns the default simulator styles. Process labels
// cycle through the palette by pid.
func DefaultRenderStyles() RenderStyles {
	palette := []string{"2", "3", "4", "5", "6", "1"}

	procs := make([]lipgloss.Style, 0, len(palette))
	for _, c := range palette {
		procs = append(procs, lipgloss.NewStyle().Foreground(lipgloss.Color(c)))
	}

	return RenderStyles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")),
		Rule: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")),
		Header: lipgloss.NewStyle().
			Bold(true),
		Idle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")),
		Procs: procs,
		Metrics: lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")),
	}
}

// Renderer writes simulation results as text.
type Renderer struct {
	w      io.Writer
	styles RenderStyles
}

// NewRenderer creates a Renderer writing to w with the default styles.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{
		w:      w,
		styles: DefaultRenderStyles(),
	}
}

// Render writes the Gantt chart, the per-process table and the aggregate
// metrics for a single result.
func (r *Renderer) Render(res *Result) {
	rule := r.styles.Rule.Render(strings.Repeat("=", ruleWidth))

	fmt.Fprintln(r.w, rule)
	fmt.Fprintln(r.w, r.styles.Title.Render("Gantt Chart - "+res.Algorithm.Title()))
	fmt.Fprintln(r.w, rule)
	r.renderGantt(res.Gantt)

	fmt.Fprintln(r.w, r.styles.Header.Render(fmt.Sprintf(
		"%-6s %-9s %-7s %-10s %-12s %-5s %-5s %-5s",
		"PID", "Arrival", "Burst", "Priority", "Completion", "TAT", "WT", "RT")))
	fmt.Fprintln(r.w, r.styles.Rule.Render(strings.Repeat("-", ruleWidth)))

	for _, s := range res.Stats {
		fmt.Fprintf(r.w, "%-6d %-9d %-7d %-10d %-12d %-5d %-5d %-5d\n",
			s.PID, s.Arrival, s.Burst, s.Priority, s.Completion, s.Turnaround, s.Waiting, s.Response)
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.styles.Metrics.Render(fmt.Sprintf(
		"Avg Turnaround: %.2f  Avg Waiting: %.2f  Avg Response: %.2f  Processes: %d",
		res.Metrics.AvgTurnaround, res.Metrics.AvgWaiting, res.Metrics.AvgResponse, res.Metrics.TotalProcesses)))
	fmt.Fprintln(r.w)
}

// renderGantt draws one row of labelled segments and one row of boundary
// times beneath it. Segment width scales with duration.
func (r *Renderer) renderGantt(gantt []Slice) {
	if len(gantt) == 0 {
		return
	}

	var labels, times strings.Builder

	labels.WriteString("|")
	fmt.Fprintf(&times, "%d", gantt[0].Start)

	for _, s := range gantt {
		width := max(1, (s.End-s.Start)*2-len(s.Label))
		labels.WriteString(" " + r.styleFor(s).Render(s.Label) + strings.Repeat(" ", width) + "|")

		end := fmt.Sprintf("%d", s.End)
		pad := max(0, (s.End-s.Start)*2-len(end)+len(s.Label)+2)
		times.WriteString(strings.Repeat(" ", pad) + end)
	}

	fmt.Fprintln(r.w, labels.String())
	fmt.Fprintln(r.w, times.String())
	fmt.Fprintln(r.w)
}

func (r *Renderer) styleFor(s Slice) lipgloss.Style {
	if s.Label == IdleLabel {
		return r.styles.Idle
	}

	var pid int
	if _, err := fmt.Sscanf(s.Label, "P%d", &pid); err != nil || len(r.styles.Procs) == 0 {
		return lipgloss.NewStyle()
	}

	return r.styles.Procs[pid%len(r.styles.Procs)]
}
