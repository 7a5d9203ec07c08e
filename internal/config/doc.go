// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads jobsh runtime settings from the environment.
// Every setting has a sensible default; there is no configuration file.
package config
