// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "queued", EventQueued.String())
	assert.Equal(t, "queue-full", EventQueueFull.String())
	assert.Equal(t, "dispatching", EventDispatching.String())
	assert.Equal(t, "completed", EventCompleted.String())
	assert.Equal(t, "failed", EventFailed.String())
	assert.Equal(t, "rejected", EventRejected.String())
	assert.Equal(t, "invalid", EventInvalid.String())
	assert.Equal(t, "unknown", EventType(99).String())
}

func TestConsoleReport(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{
			name:  "queued",
			event: Event{Type: EventQueued, JobID: 100, Args: []string{"echo", "hi"}},
			want:  "[shell] job 100 queued: echo hi",
		},
		{
			name:  "queue full",
			event: Event{Type: EventQueueFull},
			want:  "[shell] queue full, waiting...",
		},
		{
			name:  "dispatching",
			event: Event{Type: EventDispatching, JobID: 101, Args: []string{"sleep", "1"}},
			want:  "[dispatcher] dispatching job 101: sleep 1",
		},
		{
			name:  "completed",
			event: Event{Type: EventCompleted, JobID: 101, ExitCode: 0},
			want:  "[dispatcher] job 101 completed (exit code 0)",
		},
		{
			name:  "failed",
			event: Event{Type: EventFailed, JobID: 102, Err: errors.New("boom")},
			want:  "[dispatcher] job 102 failed: boom",
		},
		{
			name:  "rejected",
			event: Event{Type: EventRejected, JobID: 103},
			want:  "[shell] job 103 rejected: shutting down",
		},
		{
			name:  "invalid",
			event: Event{Type: EventInvalid, Err: errors.New("too long")},
			want:  "[shell] invalid command: too long",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer

			NewConsole(&buf).Report(tc.event)
			assert.Contains(t, buf.String(), tc.want)
		})
	}
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	rec.Report(Event{Type: EventQueued, JobID: 100})
	rec.Report(Event{Type: EventCompleted, JobID: 100})

	events := rec.Events()
	require.Len(t, events, 2)
	assert.Equal(t, EventQueued, events[0].Type)
	assert.Equal(t, EventCompleted, events[1].Type)

	// Events returns a copy, not the live slice.
	events[0].JobID = 999
	assert.Equal(t, 100, rec.Events()[0].JobID)
}

func TestTee(t *testing.T) {
	a := NewRecorder()
	b := NewRecorder()

	Tee(a, b).Report(Event{Type: EventQueued, JobID: 100})

	require.Len(t, a.Events(), 1)
	require.Len(t, b.Events(), 1)
	assert.Equal(t, a.Events()[0].JobID, b.Events()[0].JobID)
}
