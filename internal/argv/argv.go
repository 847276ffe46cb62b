// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package argv parses command-line arguments into a nested map without
// requiring flags to be declared up front.
//
//	confget --db.host=localhost --db.port 5432 -v --no-color run
//
// produces
//
//	{"db": {"host": "localhost", "port": 5432}, "v": true, "color": false, "_": ["run"]}
//
// Rules:
//   - --key=value and --key value set key; dotted keys nest;
//   - --key with no value, or followed by another flag, is true;
//   - --no-key is false;
//   - -abc sets a, b and c to true; the last short flag takes the next
//     argument as its value; -n5 sets n to 5;
//   - numeric values become float64, "true" and "false" become bools;
//   - repeating a key collects its values into an array;
//   - positional arguments are collected under "_"; everything after "--"
//     is positional and kept verbatim.
package argv

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/minond/acm/internal/keys"
)

// Positional is the key holding non-flag arguments.
const Positional = "_"

var numberPattern = regexp.MustCompile(`^[-+]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][-+]?\d+)?$`)

// Parse parses args, which should not include the program name.
func Parse(args []string) map[string]any {
	out := map[string]any{Positional: []any{}}
	positional := make([]any, 0)

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--":
			for _, rest := range args[i+1:] {
				positional = append(positional, rest)
			}
			i = len(args)

		case strings.HasPrefix(arg, "--") && strings.Contains(arg, "="):
			key, value, _ := strings.Cut(arg[2:], "=")
			set(out, key, coerce(value))

		case strings.HasPrefix(arg, "--no-"):
			set(out, arg[len("--no-"):], false)

		case strings.HasPrefix(arg, "--"):
			key := arg[2:]
			if i+1 < len(args) && isValue(args[i+1]) {
				set(out, key, coerce(args[i+1]))
				i++
				continue
			}
			set(out, key, true)

		case isShortFlags(arg):
			if consumed := parseShort(out, arg[1:], args[i+1:]); consumed {
				i++
			}

		default:
			positional = append(positional, coerce(arg))
		}
	}

	out[Positional] = positional
	return out
}

// parseShort handles a cluster of short flags. It reports whether the
// following argument was used as the value of the last flag.
func parseShort(out map[string]any, letters string, rest []string) bool {
	for j := 0; j < len(letters); j++ {
		letter := letters[j : j+1]
		tail := letters[j+1:]

		switch {
		case strings.HasPrefix(tail, "="):
			set(out, letter, coerce(tail[1:]))
			return false
		case tail != "" && numberPattern.MatchString(tail):
			set(out, letter, coerce(tail))
			return false
		case tail == "":
			if len(rest) > 0 && isValue(rest[0]) {
				set(out, letter, coerce(rest[0]))
				return true
			}
			set(out, letter, true)
		default:
			set(out, letter, true)
		}
	}

	return false
}

// set stores value at the dotted key, turning repeated keys into arrays.
func set(out map[string]any, key string, value any) {
	segments := strings.Split(key, keys.Delimiter)
	node := out

	for _, segment := range segments[:len(segments)-1] {
		next, ok := node[segment].(map[string]any)
		if !ok {
			next = make(map[string]any)
			node[segment] = next
		}
		node = next
	}

	last := segments[len(segments)-1]
	switch existing := node[last].(type) {
	case nil:
		node[last] = value
	case []any:
		node[last] = append(existing, value)
	default:
		node[last] = []any{existing, value}
	}
}

func coerce(value string) any {
	switch value {
	case "true":
		return true
	case "false":
		return false
	}

	if numberPattern.MatchString(value) {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}

	return value
}

func isShortFlags(arg string) bool {
	return len(arg) > 1 && arg[0] == '-' && arg[1] != '-' && !numberPattern.MatchString(arg)
}

// isValue reports whether arg can be consumed as the value of a flag.
func isValue(arg string) bool {
	return !strings.HasPrefix(arg, "-") || arg == "-" || numberPattern.MatchString(arg)
}
