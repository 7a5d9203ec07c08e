// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package spawn

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("test relies on POSIX shell utilities")
	}
}

func TestOSSpawn_Success(t *testing.T) {
	skipOnWindows(t)

	res, err := OS{}.Spawn(context.Background(), []string{"true"})
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Positive(t, res.Pid)
}

func TestOSSpawn_NonZeroExit(t *testing.T) {
	skipOnWindows(t)

	res, err := OS{}.Spawn(context.Background(), []string{"false"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.ExitCode)
}

func TestOSSpawn_EmptyArgv(t *testing.T) {
	_, err := OS{}.Spawn(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmptyArgv)

	_, err = OS{}.Spawn(context.Background(), []string{""})
	assert.ErrorIs(t, err, ErrEmptyArgv)
}

func TestOSSpawn_NotFound(t *testing.T) {
	res, err := OS{}.Spawn(context.Background(), []string{"definitely-not-a-real-command-1234"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, -1, res.ExitCode)
}

func TestLookPath_BareName(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	exe := filepath.Join(dir, "hello")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))
	t.Setenv("PATH", dir)

	got, err := LookPath("hello")
	require.NoError(t, err)
	assert.Equal(t, exe, got)
}

func TestLookPath_EmptyPathEntries(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	exe := filepath.Join(dir, "hello")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))
	t.Chdir(dir)

	// An empty PATH must not resolve against the working directory.
	t.Setenv("PATH", "")
	_, err := LookPath("hello")
	assert.ErrorIs(t, err, ErrNotFound)

	// Empty entries between real ones are skipped, later entries still work.
	t.Setenv("PATH", t.TempDir()+string(os.PathListSeparator)+string(os.PathListSeparator)+dir)
	got, err := LookPath("hello")
	require.NoError(t, err)
	assert.Equal(t, exe, got)
}

func TestLookPath_NotExecutable(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data"), []byte("x"), 0o644))
	t.Setenv("PATH", dir)

	_, err := LookPath("data")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookPath_ExplicitPath(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	exe := filepath.Join(dir, "runme")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))

	got, err := LookPath(exe)
	require.NoError(t, err)
	assert.Equal(t, exe, got)

	_, err = LookPath(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFunc_ImplementsSpawner(t *testing.T) {
	var called bool

	var s Spawner = Func(func(_ context.Context, _ []string) (Result, error) {
		called = true
		return Result{ExitCode: 7}, nil
	})

	res, err := s.Spawn(context.Background(), []string{"x"})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, 7, res.ExitCode)
}
