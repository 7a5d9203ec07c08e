// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package intake provides the producer side of jobsh: it reads command lines
// from a LineSource, turns them into jobs and enqueues them. The literal
// "exit" command, end of input, and a shutdown observed during enqueue all
// stop the loop.
package intake
