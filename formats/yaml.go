// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/minond/acm/models"
)

type yamlParser struct{}

func newYAMLParser() Parser {
	return yamlParser{}
}

func (yamlParser) Parse(raw []byte) (models.Document, error) {
	var decoded any
	if err := yaml.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("error decoding yaml: %w", err)
	}

	return toDocument(decoded)
}
