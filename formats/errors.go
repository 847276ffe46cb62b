// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package formats

import "errors"

var (
	// ErrUnknownExtension is returned when no parser is registered for a
	// file extension.
	ErrUnknownExtension = errors.New("no parser registered for extension")

	// ErrNotDocument is returned when a file parses successfully but its top
	// level value is not an object (for example a bare list or string).
	ErrNotDocument = errors.New("configuration file is not an object")
)
