// Copyright (c) 2024, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package config

import "errors"

var (
	// ErrMissingConfig is returned when a required connection setting is absent
	ErrMissingConfig = errors.New("missing required configuration")

	// ErrPlaceholderAPIKey is returned when the API key still holds the sample value
	ErrPlaceholderAPIKey = errors.New("radarr_api_key still holds the placeholder value")

	// ErrConfigFileAccess is returned when there's an error accessing the configuration file
	ErrConfigFileAccess = errors.New("error accessing configuration file")
)
