// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keys

import (
	"strconv"
	"strings"
)

// Dig walks root along the dotted path and returns the value found there.
//
// Objects are navigated by key, arrays by decimal index. An empty path
// returns root itself. ok is false as soon as a segment is missing or a
// scalar is reached before the path is exhausted.
func Dig(root any, path string) (value any, ok bool) {
	if path == "" {
		return root, true
	}

	current := root
	for _, segment := range strings.Split(path, Delimiter) {
		switch node := current.(type) {
		case map[string]any:
			current, ok = node[segment]
			if !ok {
				return nil, false
			}
		case map[string]string:
			current, ok = node[segment]
			if !ok {
				return nil, false
			}
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}

	return current, true
}
