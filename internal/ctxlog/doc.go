// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-aware logger that can be used to log messages.
// It uses the slog package for structured logging and supports different log levels.
// The level is controlled by the JOBSH_LOG_LEVEL environment variable.
//
// The default is a pretty console handler to format the log messages in a human-readable way.
package ctxlog
