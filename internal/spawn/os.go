// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package spawn

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/matt-FFFFFF/jobsh/internal/ctxlog"
)

var _ Spawner = (*OS)(nil)

// OS spawns real child processes. The child inherits the parent's standard
// input, output and error streams; no output is captured.
type OS struct{}

// Spawn implements the Spawner interface for OS. The first element of argv is
// resolved on PATH unless it contains a path separator. Spawn blocks until
// the child exits; shutdown is cooperative, so a running child is never
// terminated here.
func (OS) Spawn(ctx context.Context, argv []string) (Result, error) {
	logger := ctxlog.Logger(ctx)

	if len(argv) == 0 || argv[0] == "" {
		return Result{ExitCode: -1}, ErrEmptyArgv
	}

	path, err := LookPath(argv[0])
	if err != nil {
		return Result{ExitCode: -1}, err
	}

	logger.Debug("starting process", "path", path, "args", argv)

	ps, err := os.StartProcess(path, argv, &os.ProcAttr{
		Files: []*os.File{os.Stdin, os.Stdout, os.Stderr},
	})
	if err != nil {
		return Result{ExitCode: -1}, errors.Join(ErrCouldNotStartProcess, err)
	}

	logger.Debug("process started", "pid", ps.Pid)

	state, err := ps.Wait()
	if err != nil {
		return Result{ExitCode: -1, Pid: ps.Pid}, err
	}

	logger.Debug("process finished", "pid", ps.Pid, "exitCode", state.ExitCode())

	return Result{ExitCode: state.ExitCode(), Pid: ps.Pid}, nil
}

// LookPath resolves a command name to an executable file. Names containing a
// path separator are checked as-is; bare names are searched for in each PATH
// entry. It returns ErrNotFound when nothing suitable exists.
func LookPath(name string) (string, error) {
	if strings.ContainsRune(name, os.PathSeparator) {
		if isExecutable(name) {
			return name, nil
		}

		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	for _, p := range strings.Split(os.Getenv("PATH"), string(os.PathListSeparator)) {
		// An empty entry would resolve relative to the working directory.
		if p == "" {
			continue
		}

		candidate := filepath.Join(p, name)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrNotFound, name)
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}

	if runtime.GOOS != "windows" && info.Mode()&0111 == 0 {
		return false
	}

	return true
}
