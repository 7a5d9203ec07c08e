// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix for all jobsh environment variables,
// e.g. JOBSH_QUEUE_CAPACITY.
const EnvPrefix = "jobsh"

// ErrLoadSettings is returned when the environment cannot be parsed.
var ErrLoadSettings = errors.New("failed to load settings from environment")

// Settings holds the runtime configuration of jobsh.
type Settings struct {
	// QueueCapacity is the fixed capacity of the bounded job queue.
	QueueCapacity int `envconfig:"QUEUE_CAPACITY" default:"5"`
	// MaxArgs is the maximum number of tokens accepted per command line.
	MaxArgs int `envconfig:"MAX_ARGS" default:"9"`
	// HistoryFile is the path of the shell history file. Empty means the
	// default location in the user's home directory.
	HistoryFile string `envconfig:"HISTORY_FILE"`
	// NoBanner suppresses the startup banner.
	NoBanner bool `envconfig:"NO_BANNER"`
}

// Load reads Settings from the environment, applying defaults for anything
// unset.
func Load() (Settings, error) {
	var s Settings
	if err := envconfig.Process(EnvPrefix, &s); err != nil {
		return Settings{}, errors.Join(ErrLoadSettings, err)
	}

	return s, nil
}
