// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the jobsh command-line application.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/jobsh"
	"github.com/matt-FFFFFF/jobsh/cmd"
	"github.com/matt-FFFFFF/jobsh/internal/ctxlog"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)

	defer cancel()

	cmd.RootCmd.Version = fmt.Sprintf("%s (commit: %s)", jobsh.Version, jobsh.Commit)

	if err := cmd.RootCmd.Run(ctx, os.Args); err != nil {
		ctxlog.Logger(ctx).Error("command failed", "error", err)
		os.Exit(1)
	}
}
