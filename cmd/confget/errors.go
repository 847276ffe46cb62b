// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import "errors"

var (
	// ErrEmptyKey is returned by get when no key, or an empty key, is given.
	ErrEmptyKey = errors.New("configuration key must not be empty")
	// ErrKeyNotFound is returned by get --strict for a key no source defines.
	ErrKeyNotFound = errors.New("configuration key not defined")
)
