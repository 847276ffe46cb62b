// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package formats

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/minond/acm/models"
)

type tomlParser struct{}

func newTOMLParser() Parser {
	return tomlParser{}
}

func (tomlParser) Parse(raw []byte) (models.Document, error) {
	decoded := make(map[string]any)
	if err := toml.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("error decoding toml: %w", err)
	}

	return toDocument(decoded)
}
