// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package formats

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/minond/acm/models"
)

const iniArraySuffix = "[]"

// iniParser decodes ini files into nested documents:
//   - keys outside any section live at the top level;
//   - a section named "a.b" becomes the object at path a.b;
//   - "key[]" entries, possibly repeated, collect into an array under "key";
//   - a bare key with no value is true;
//   - the literal values true, false and null decode to bool and nil.
type iniParser struct {
	options ini.LoadOptions
}

func newINIParser() Parser {
	return iniParser{
		options: ini.LoadOptions{
			AllowBooleanKeys:         true,
			AllowShadows:             true,
			SpaceBeforeInlineComment: true,
		},
	}
}

func (p iniParser) Parse(raw []byte) (models.Document, error) {
	file, err := ini.LoadSources(p.options, raw)
	if err != nil {
		return nil, fmt.Errorf("error decoding ini: %w", err)
	}

	doc := make(models.Document)
	for _, section := range file.Sections() {
		target := doc
		if name := section.Name(); name != ini.DefaultSection {
			target = iniSection(doc, name)
		}

		for _, key := range section.Keys() {
			name := key.Name()
			if strings.HasSuffix(name, iniArraySuffix) {
				values := key.ValueWithShadows()
				list := make([]any, 0, len(values))
				for _, value := range values {
					list = append(list, iniValue(value))
				}
				target[strings.TrimSuffix(name, iniArraySuffix)] = list
				continue
			}

			target[name] = iniValue(key.Value())
		}
	}

	return doc, nil
}

// iniSection returns the object at the dotted section path, creating it and
// any missing parent objects. A scalar in the way is replaced.
func iniSection(doc models.Document, name string) models.Document {
	current := doc
	for _, segment := range strings.Split(name, ".") {
		next, ok := current[segment].(models.Document)
		if !ok {
			next = make(models.Document)
			current[segment] = next
		}
		current = next
	}

	return current
}

func iniValue(value string) any {
	switch value {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	default:
		return value
	}
}
