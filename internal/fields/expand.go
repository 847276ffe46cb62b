// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fields

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/minond/acm/internal/keys"
)

var (
	openPlaceholder    = []byte("${")
	escapedPlaceholder = []byte("$${")
)

// Expand replaces every ${path} placeholder in raw with the value found at
// path in fields.
//
// A "${" not closed by "}" before a character that cannot appear in a path,
// such as a quote, a brace or a line break, is copied as is. Values are
// rendered with fmt.Sprint; nil renders as an empty string.
func Expand(raw []byte, fields map[string]any) ([]byte, error) {
	if !bytes.Contains(raw, openPlaceholder) {
		return raw, nil
	}

	var out bytes.Buffer
	out.Grow(len(raw))

	for i := 0; i < len(raw); {
		rest := raw[i:]

		switch {
		case bytes.HasPrefix(rest, escapedPlaceholder):
			out.Write(openPlaceholder)
			i += len(escapedPlaceholder)
			continue
		case !bytes.HasPrefix(rest, openPlaceholder):
			out.WriteByte(raw[i])
			i++
			continue
		}

		end := placeholderEnd(rest)
		if end < 0 {
			out.Write(openPlaceholder)
			i += len(openPlaceholder)
			continue
		}

		path := strings.TrimSpace(string(rest[len(openPlaceholder):end]))
		value, err := lookup(fields, path)
		if err != nil {
			return nil, err
		}

		out.WriteString(value)
		i += end + 1
	}

	return out.Bytes(), nil
}

// placeholderEnd returns the index of the "}" closing the placeholder that
// starts rest, or -1 when the placeholder is unterminated.
func placeholderEnd(rest []byte) int {
	for i := len(openPlaceholder); i < len(rest); i++ {
		switch c := rest[i]; {
		case c == '}':
			return i
		case !isPathByte(c):
			return -1
		}
	}

	return -1
}

// isPathByte reports whether c may appear between "${" and "}".
func isPathByte(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}

	return c == '.' || c == '_' || c == '-' || c == ' ' || c == '\t'
}

func lookup(fields map[string]any, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty placeholder", ErrUnresolvedField)
	}

	value, ok := keys.Dig(fields, path)
	if !ok {
		return "", fmt.Errorf("%w: ${%s}", ErrUnresolvedField, path)
	}

	if value == nil {
		return "", nil
	}

	return fmt.Sprint(value), nil
}
