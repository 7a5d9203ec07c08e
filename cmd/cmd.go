// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/matt-FFFFFF/jobsh/cmd/run"
	"github.com/matt-FFFFFF/jobsh/cmd/shell"
	"github.com/matt-FFFFFF/jobsh/cmd/simulate"
	"github.com/urfave/cli/v3"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		shell.ShellCmd,
		run.RunCmd,
		simulate.SimulateCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "jobsh",
	Description: `Jobsh is a single-queue job dispatcher. An interactive shell accepts
commands and enqueues them as jobs into a fixed-capacity bounded queue; a single
background dispatcher dequeues jobs one at a time, launches each as a child
process and waits for its completion. It also ships a CPU scheduling simulator
for experimenting with classic scheduling algorithms.`,
	Usage:     "jobsh shell",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}
