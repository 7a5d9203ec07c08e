// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package job defines the unit of work dispatched by jobsh: an id together
// with the argument vector of the command to run. It also provides the
// command line tokenizer and the monotonic id counter used by the intake loop.
package job
