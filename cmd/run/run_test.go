// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package run

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/matt-FFFFFF/jobsh/internal/report"
	"github.com/matt-FFFFFF/jobsh/internal/spawn"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// recordingSpawner returns canned results keyed on the executable name and
// remembers every argv in dispatch order.
type recordingSpawner struct {
	mu       sync.Mutex
	spawned  [][]string
	failWith map[string]error
	exitFor  map[string]int
}

func (r *recordingSpawner) Spawn(_ context.Context, argv []string) (spawn.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.spawned = append(r.spawned, argv)

	if err, ok := r.failWith[argv[0]]; ok {
		return spawn.Result{}, err
	}

	return spawn.Result{ExitCode: r.exitFor[argv[0]]}, nil
}

func stubScript(t *testing.T, content string) *gostub.Stubs {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "jobs.yaml", []byte(content), 0o644))

	return gostub.Stub(&FsFactory, func() afero.Fs {
		return fs
	})
}

func TestRunCmd_AllJobsSucceed(t *testing.T) {
	defer goleak.VerifyNone(t)

	sp := &recordingSpawner{}
	stubs := stubScript(t, `jobs:
  - echo one
  - echo two
  - ls -l
`)
	stubs.Stub(&Spawner, spawn.Spawner(sp))

	defer stubs.Reset()

	err := RunCmd.Run(context.Background(), []string{"run", "--file", "jobs.yaml"})
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"echo", "one"},
		{"echo", "two"},
		{"ls", "-l"},
	}, sp.spawned)
}

func TestRunCmd_SpawnFailureFailsTheRun(t *testing.T) {
	defer goleak.VerifyNone(t)

	sp := &recordingSpawner{failWith: map[string]error{"missing": spawn.ErrNotFound}}
	stubs := stubScript(t, `jobs:
  - missing
  - echo after
`)
	stubs.Stub(&Spawner, spawn.Spawner(sp))

	defer stubs.Reset()

	err := RunCmd.Run(context.Background(), []string{"run", "--file", "jobs.yaml"})
	require.ErrorIs(t, err, ErrJobsFailed)
	assert.ErrorIs(t, err, spawn.ErrNotFound)

	// The failed job does not stop later jobs from running.
	assert.Len(t, sp.spawned, 2)
}

func TestRunCmd_NonZeroExitFailsTheRun(t *testing.T) {
	defer goleak.VerifyNone(t)

	sp := &recordingSpawner{exitFor: map[string]int{"false": 1}}
	stubs := stubScript(t, `jobs:
  - "false"
`)
	stubs.Stub(&Spawner, spawn.Spawner(sp))

	defer stubs.Reset()

	err := RunCmd.Run(context.Background(), []string{"run", "--file", "jobs.yaml"})
	require.ErrorIs(t, err, ErrJobsFailed)
	assert.ErrorContains(t, err, "exit code 1")
}

func TestRunCmd_ConsoleOutputGoesToCommandWriter(t *testing.T) {
	defer goleak.VerifyNone(t)

	sp := &recordingSpawner{}
	stubs := stubScript(t, `jobs:
  - echo hello
`)
	stubs.Stub(&Spawner, spawn.Spawner(sp))

	defer stubs.Reset()

	var buf bytes.Buffer

	stubs.Stub(&RunCmd.Writer, io.Writer(&buf))

	err := RunCmd.Run(context.Background(), []string{"run", "--file", "jobs.yaml"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "queued: echo hello")
	assert.Contains(t, out, "completed (exit code 0)")
}

func TestRunCmd_MissingFile(t *testing.T) {
	stubs := gostub.Stub(&FsFactory, func() afero.Fs {
		return afero.NewMemMapFs()
	})

	defer stubs.Reset()

	err := RunCmd.Run(context.Background(), []string{"run", "--file", "nope.yaml"})
	assert.ErrorIs(t, err, ErrReadScript)
}

func TestRunCmd_MalformedYAML(t *testing.T) {
	stubs := stubScript(t, "jobs: [\n")

	defer stubs.Reset()

	err := RunCmd.Run(context.Background(), []string{"run", "--file", "jobs.yaml"})
	assert.ErrorIs(t, err, ErrParseScript)
}

func TestRunCmd_EmptyScript(t *testing.T) {
	stubs := stubScript(t, "jobs: []\n")

	defer stubs.Reset()

	err := RunCmd.Run(context.Background(), []string{"run", "--file", "jobs.yaml"})
	assert.ErrorIs(t, err, ErrEmptyScript)
}

func TestFailures_NoFailures(t *testing.T) {
	assert.NoError(t, failures(nil))
}

func TestFailures_Aggregates(t *testing.T) {
	spawnErr := errors.New("boom")

	got := failures([]report.Event{
		{Type: report.EventQueued, JobID: 100},
		{Type: report.EventFailed, JobID: 100, Args: []string{"bad"}, Err: spawnErr},
		{Type: report.EventCompleted, JobID: 101, Args: []string{"flaky"}, ExitCode: 2},
		{Type: report.EventCompleted, JobID: 102, Args: []string{"good"}, ExitCode: 0},
	})
	require.ErrorIs(t, got, ErrJobsFailed)
	assert.ErrorIs(t, got, spawnErr)
	assert.ErrorContains(t, got, "exit code 2")
}
