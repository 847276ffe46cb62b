// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keys splits dotted lookup keys into the forms each configuration
// source understands.
//
// A key such as "secrets.google.token" addresses the logical file "secrets"
// and the nested path "google.token" inside it. The same key maps to the
// environment variable SECRETS_GOOGLE_TOKEN.
package keys

import "strings"

const (
	// Delimiter separates the segments of a lookup key.
	Delimiter = "."

	// EnvDelimiter joins key segments into an environment variable name.
	EnvDelimiter = "_"
)

// ParseEntryPath splits key into the logical file name (first segment) and
// the remaining path. The path is empty when key has a single segment, and
// both parts are empty for an empty key.
//
//	ParseEntryPath("secrets.google.token") // "secrets", "google.token"
func ParseEntryPath(key string) (file, path string) {
	file, path, _ = strings.Cut(key, Delimiter)
	return file, path
}

// ParseEntryVariable converts key into its environment variable form.
//
//	ParseEntryVariable("secrets.google.token") // "SECRETS_GOOGLE_TOKEN"
func ParseEntryVariable(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, Delimiter, EnvDelimiter))
}
