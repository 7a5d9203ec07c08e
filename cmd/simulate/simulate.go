// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package simulate contains the CPU scheduling simulator command.
package simulate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/TylerBrock/colorjson"
	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/jobsh/internal/sched"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

const (
	algorithmFlag = "algorithm"
	quantumFlag   = "quantum"
	fileFlag      = "file"
	formatFlag    = "format"

	allAlgorithms = "all"
	formatText    = "text"
	formatJSON    = "json"
)

var (
	// ErrReadProcessSet is returned when the process set file cannot be read.
	ErrReadProcessSet = errors.New("failed to read process set")
	// ErrParseProcessSet is returned when the process set YAML cannot be parsed.
	ErrParseProcessSet = errors.New("failed to parse process set")
	// ErrUnknownFormat is returned for an unrecognized output format.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrEncodeResults is returned when the results cannot be encoded.
	ErrEncodeResults = errors.New("failed to encode results")
)

// FsFactory is a function that returns an afero filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// processSet is the on-disk YAML format for a custom process set.
type processSet struct {
	Processes []sched.Process `yaml:"processes"`
}

// SimulateCmd is the command that runs CPU scheduling algorithms over a
// process set and prints Gantt charts and timing metrics.
var SimulateCmd = &cli.Command{
	Name: "simulate",
	Description: `Simulate CPU scheduling algorithms.
Runs the selected algorithm (or all of them) over a process set and prints a
Gantt chart with per-process and aggregate timing metrics. Without a file the
built-in sample process set is used.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    algorithmFlag,
			Aliases: []string{"a"},
			Usage:   "Algorithm to run: fcfs, sjf, srtf, rr, priority or all.",
			Value:   allAlgorithms,
		},
		&cli.IntFlag{
			Name:    quantumFlag,
			Aliases: []string{"q"},
			Usage:   "Round robin time quantum.",
			Value:   sched.DefaultQuantum,
		},
		&cli.StringFlag{
			Name:      fileFlag,
			Aliases:   []string{"f"},
			Usage:     "Path of a YAML file with a custom process set.",
			TakesFile: true,
			OnlyOnce:  true,
		},
		&cli.StringFlag{
			Name:  formatFlag,
			Usage: "Output format: text or json.",
			Value: formatText,
		},
	},
	Action: runSimulate,
}

func runSimulate(ctx context.Context, cmd *cli.Command) error {
	processes, err := loadProcesses(cmd.String(fileFlag))
	if err != nil {
		return err
	}

	algorithms, err := selectAlgorithms(cmd.String(algorithmFlag))
	if err != nil {
		return err
	}

	quantum := int(cmd.Int(quantumFlag))
	if quantum <= 0 {
		return fmt.Errorf("%w: %d", sched.ErrInvalidQuantum, quantum)
	}

	results := make([]*sched.Result, 0, len(algorithms))

	for _, a := range algorithms {
		res, err := sched.Run(a, processes, quantum)
		if err != nil {
			return err
		}

		results = append(results, res)
	}

	switch cmd.String(formatFlag) {
	case formatText:
		renderer := sched.NewRenderer(cmd.Writer)
		for _, res := range results {
			renderer.Render(res)
		}

		return nil
	case formatJSON:
		return writeJSON(cmd, results)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, cmd.String(formatFlag))
	}
}

func loadProcesses(path string) ([]sched.Process, error) {
	if path == "" {
		return sched.Sample(), nil
	}

	data, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		return nil, errors.Join(ErrReadProcessSet, err)
	}

	var set processSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, errors.Join(ErrParseProcessSet, err)
	}

	return set.Processes, nil
}

func selectAlgorithms(name string) ([]sched.Algorithm, error) {
	if name == allAlgorithms {
		return sched.Algorithms(), nil
	}

	a, err := sched.ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}

	return []sched.Algorithm{a}, nil
}

// writeJSON encodes the results as JSON, colorized when stdout is a terminal.
func writeJSON(cmd *cli.Command, results []*sched.Result) error {
	data, err := json.Marshal(results)
	if err != nil {
		return errors.Join(ErrEncodeResults, err)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(cmd.Writer, string(data))
		return nil
	}

	var obj any
	if err := json.Unmarshal(data, &obj); err != nil {
		return errors.Join(ErrEncodeResults, err)
	}

	formatter := colorjson.NewFormatter()
	formatter.Indent = 2

	pretty, err := formatter.Marshal(obj)
	if err != nil {
		return errors.Join(ErrEncodeResults, err)
	}

	fmt.Fprintln(cmd.Writer, string(pretty))

	return nil
}
