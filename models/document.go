// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the plain data types shared by the loader, the
// format parsers and the resolver.
package models

// Document is a parsed configuration file: a tree of nested objects.
//
// It is an alias rather than a defined type so that nested objects produced
// by the decoders (map[string]interface{}) are the same type as the root and
// can be merged and navigated uniformly.
type Document = map[string]any

// IsObject reports whether v is a nested object inside a [Document].
// Arrays and scalars are atomic values.
func IsObject(v any) bool {
	_, ok := v.(Document)
	return ok
}
