// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package formats

import (
	"bytes"
	"fmt"

	"github.com/minond/acm/models"
)

// toDocument checks that a decoded top level value is an object and
// normalizes it.
func toDocument(decoded any) (models.Document, error) {
	if decoded == nil {
		return models.Document{}, nil
	}

	doc, ok := normalize(decoded).(models.Document)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotDocument, decoded)
	}

	return doc, nil
}

// normalize rewrites decoder-specific container types into the two the rest
// of the module understands: models.Document for objects and []any for
// arrays.
func normalize(v any) any {
	switch node := v.(type) {
	case map[string]any:
		for key, value := range node {
			node[key] = normalize(value)
		}
		return node
	case map[any]any:
		doc := make(models.Document, len(node))
		for key, value := range node {
			doc[fmt.Sprint(key)] = normalize(value)
		}
		return doc
	case []map[string]any:
		list := make([]any, len(node))
		for i, value := range node {
			list[i] = normalize(value)
		}
		return list
	case []any:
		for i, value := range node {
			node[i] = normalize(value)
		}
		return node
	default:
		return v
	}
}

func isBlank(raw []byte) bool {
	return len(bytes.TrimSpace(raw)) == 0
}
