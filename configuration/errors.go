// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configuration

import "errors"

// ErrUnknownReader is returned by a lookup when the reader list contains a
// reader this package does not implement.
var ErrUnknownReader = errors.New("unknown configuration reader")
