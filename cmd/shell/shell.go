// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package shell contains the interactive front end of jobsh.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matt-FFFFFF/jobsh/internal/color"
	"github.com/matt-FFFFFF/jobsh/internal/config"
	"github.com/matt-FFFFFF/jobsh/internal/ctxlog"
	"github.com/matt-FFFFFF/jobsh/internal/dispatcher"
	"github.com/matt-FFFFFF/jobsh/internal/intake"
	"github.com/matt-FFFFFF/jobsh/internal/jobqueue"
	"github.com/matt-FFFFFF/jobsh/internal/report"
	"github.com/matt-FFFFFF/jobsh/internal/signalbroker"
	"github.com/matt-FFFFFF/jobsh/internal/spawn"
	"github.com/peterh/liner"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

const (
	capacityFlag = "capacity"
	historyFlag  = "history"

	prompt             = "jobsh> "
	defaultHistoryName = ".jobsh_history"
)

// ErrLoadSettings is returned when the environment settings cannot be loaded.
var ErrLoadSettings = errors.New("failed to load shell settings")

// ShellCmd is the command that runs the interactive job shell.
var ShellCmd = &cli.Command{
	Name: "shell",
	Description: `Run the interactive job shell.
Each non-empty line is tokenized on whitespace and submitted as a job to the
bounded queue. Jobs are dispatched one at a time in submission order; the
child process inherits the terminal. Type 'exit' to quit.`,
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    capacityFlag,
			Aliases: []string{"c"},
			Usage:   "Override the queue capacity.",
			Value:   0,
		},
		&cli.StringFlag{
			Name:      historyFlag,
			Usage:     "Path of the command history file.",
			TakesFile: true,
			Value:     "",
			OnlyOnce:  true,
		},
	},
	Action: runShell,
}

func runShell(ctx context.Context, cmd *cli.Command) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	settings, err := config.Load()
	if err != nil {
		return errors.Join(ErrLoadSettings, err)
	}

	capacity := settings.QueueCapacity
	if c := cmd.Int(capacityFlag); c > 0 {
		capacity = int(c)
	}

	queue := jobqueue.New(capacity)
	reporter := report.NewConsole(cmd.Writer)
	disp := dispatcher.New(queue, spawn.OS{}, reporter)

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel, queue.Shutdown)

	done := make(chan struct{})

	go func() {
		disp.Run(ctx)
		close(done)
	}()

	if !settings.NoBanner && term.IsTerminal(int(os.Stdout.Fd())) {
		printBanner(cmd.Writer, capacity)
	}

	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	historyPath := historyFile(cmd.String(historyFlag), settings)
	loadHistory(line, historyPath)

	src := &linerSource{line: line}
	loop := intake.New(queue, reporter, settings.MaxArgs)

	loopErr := loop.Run(ctx, src)

	// Intake has stopped; the dispatcher drains whatever is still queued.
	<-done

	saveHistory(ctx, line, historyPath)

	if err := line.Close(); err != nil {
		ctxlog.Debug(ctx, "failed to close line editor", "error", err)
	}

	fmt.Fprintln(cmd.Writer, "System shutdown successfully.")

	return loopErr
}

func printBanner(w io.Writer, capacity int) {
	rule := strings.Repeat("=", 50)
	fmt.Fprintln(w, color.Colorize(rule, color.FgCyan))
	fmt.Fprintln(w, color.Colorize("   jobsh - single-queue job dispatcher", color.FgCyan, color.Bold))
	fmt.Fprintln(w, color.Colorize(rule, color.FgCyan))
	fmt.Fprintf(w, "Type commands (e.g. 'ls', 'date', 'pwd'). Queue capacity is %d. Type 'exit' to quit.\n\n", capacity)
}

func historyFile(flagValue string, settings config.Settings) string {
	if flagValue != "" {
		return flagValue
	}

	if settings.HistoryFile != "" {
		return settings.HistoryFile
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, defaultHistoryName)
}

func loadHistory(line *liner.State, path string) {
	if path == "" {
		return
	}

	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close() // nolint:errcheck

	_, _ = line.ReadHistory(f)
}

func saveHistory(ctx context.Context, line *liner.State, path string) {
	if path == "" {
		return
	}

	f, err := os.Create(path)
	if err != nil {
		ctxlog.Debug(ctx, "failed to create history file", "path", path, "error", err)
		return
	}
	defer f.Close() // nolint:errcheck

	if _, err := line.WriteHistory(f); err != nil {
		ctxlog.Debug(ctx, "failed to write history", "path", path, "error", err)
	}
}

// linerSource adapts the liner prompt to the intake.LineSource interface.
type linerSource struct {
	line *liner.State
}

// ReadLine implements the intake.LineSource interface for linerSource.
// Ctrl+C and Ctrl+D both end intake.
func (s *linerSource) ReadLine() (string, error) {
	input, err := s.line.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", io.EOF
		}

		return "", err
	}

	if strings.TrimSpace(input) != "" {
		s.line.AppendHistory(input)
	}

	return input, nil
}
