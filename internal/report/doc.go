// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package report provides job lifecycle notices. The intake loop and the
// dispatcher emit events as jobs are queued, dispatched and completed;
// consumers render them to the console or record them for inspection.
package report
