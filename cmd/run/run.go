// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package run contains the non-interactive job script runner.
package run

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/jobsh/internal/config"
	"github.com/matt-FFFFFF/jobsh/internal/dispatcher"
	"github.com/matt-FFFFFF/jobsh/internal/intake"
	"github.com/matt-FFFFFF/jobsh/internal/jobqueue"
	"github.com/matt-FFFFFF/jobsh/internal/report"
	"github.com/matt-FFFFFF/jobsh/internal/spawn"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const (
	fileFlag     = "file"
	capacityFlag = "capacity"
)

var (
	// ErrReadScript is returned when the script file cannot be read.
	ErrReadScript = errors.New("failed to read job script")
	// ErrParseScript is returned when the script YAML cannot be parsed.
	ErrParseScript = errors.New("failed to parse job script")
	// ErrEmptyScript is returned when the script contains no jobs.
	ErrEmptyScript = errors.New("job script contains no jobs")
	// ErrJobsFailed is returned when one or more jobs did not succeed.
	ErrJobsFailed = errors.New("one or more jobs failed")
)

// FsFactory is a function that returns an afero filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Spawner is the process spawner used for script jobs. It is a variable so
// tests can substitute a fake.
var Spawner spawn.Spawner = spawn.OS{}

// script is the on-disk YAML format: a flat list of command lines.
type script struct {
	Jobs []string `yaml:"jobs"`
}

// RunCmd is the command that runs a YAML job script non-interactively.
var RunCmd = &cli.Command{
	Name: "run",
	Description: `Run a job script non-interactively.
The script is a YAML file with a 'jobs' list of command lines. Every entry is
submitted to the bounded queue in order and dispatched serially, exactly as if
it had been typed into the shell. The command fails if any job fails or exits
non-zero.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:      fileFlag,
			Aliases:   []string{"f"},
			Usage:     "Path of the YAML job script to run.",
			TakesFile: true,
			Required:  true,
			OnlyOnce:  true,
		},
		&cli.IntFlag{
			Name:    capacityFlag,
			Aliases: []string{"c"},
			Usage:   "Override the queue capacity.",
			Value:   0,
		},
	},
	Action: runScript,
}

func runScript(ctx context.Context, cmd *cli.Command) error {
	settings, err := config.Load()
	if err != nil {
		return err
	}

	data, err := afero.ReadFile(FsFactory(), cmd.String(fileFlag))
	if err != nil {
		return errors.Join(ErrReadScript, err)
	}

	var s script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return errors.Join(ErrParseScript, err)
	}

	if len(s.Jobs) == 0 {
		return ErrEmptyScript
	}

	capacity := settings.QueueCapacity
	if c := cmd.Int(capacityFlag); c > 0 {
		capacity = int(c)
	}

	queue := jobqueue.New(capacity)
	recorder := report.NewRecorder()
	reporter := report.Tee(recorder, report.NewConsole(cmd.Writer))
	disp := dispatcher.New(queue, Spawner, reporter)

	done := make(chan struct{})

	go func() {
		disp.Run(ctx)
		close(done)
	}()

	loop := intake.New(queue, reporter, settings.MaxArgs)
	src := intake.NewReaderSource(strings.NewReader(strings.Join(s.Jobs, "\n")))

	loopErr := loop.Run(ctx, src)

	<-done

	return errors.Join(loopErr, failures(recorder.Events()))
}

// failures aggregates every failed or non-zero job into a single error.
func failures(events []report.Event) error {
	var merr *multierror.Error

	for _, e := range events {
		switch {
		case e.Type == report.EventFailed:
			merr = multierror.Append(merr, fmt.Errorf("job %d (%s): %w",
				e.JobID, strings.Join(e.Args, " "), e.Err))
		case e.Type == report.EventInvalid:
			merr = multierror.Append(merr, e.Err)
		case e.Type == report.EventCompleted && e.ExitCode != 0:
			merr = multierror.Append(merr, fmt.Errorf("job %d (%s): exit code %d",
				e.JobID, strings.Join(e.Args, " "), e.ExitCode))
		}
	}

	if merr.ErrorOrNil() == nil {
		return nil
	}

	return errors.Join(ErrJobsFailed, merr)
}
