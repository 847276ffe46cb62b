// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [Load] when the merged settings are
// unusable.
var (
	// ErrInvalidLogLevel indicates a log level zerolog does not recognise.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidLink indicates a link with an empty name or a path without
	// a file extension.
	ErrInvalidLink = errors.New("invalid file link")
)
