// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package merge combines configuration documents.
package merge

import "github.com/minond/acm/models"

// Merge returns the deep union of base and overlay.
//
// base has precedence: when both documents define a key, the value from
// base is kept, unless both values are objects, in which case they are
// merged recursively with the same rule. overlay only fills the gaps left
// by base. Arrays are atomic and are never concatenated.
//
// Neither argument is modified. Nested objects present on one side only are
// shared with the result, not copied.
//
//	Merge(Document{"a": 1}, Document{"a": 2, "b": 3}) // {"a": 1, "b": 3}
func Merge(base, overlay models.Document) models.Document {
	merged := make(models.Document, len(base)+len(overlay))

	for key, value := range base {
		merged[key] = value
	}

	for key, value := range overlay {
		current, defined := merged[key]
		if !defined {
			merged[key] = value
			continue
		}

		if models.IsObject(current) && models.IsObject(value) {
			merged[key] = Merge(current.(models.Document), value.(models.Document))
		}
	}

	return merged
}
