// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import "errors"

// ErrNoExtension is returned when a linked file has no extension to select
// a parser with.
var ErrNoExtension = errors.New("file has no extension")
