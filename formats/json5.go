// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package formats

import (
	"fmt"

	"github.com/titanous/json5"

	"github.com/minond/acm/models"
)

type json5Parser struct{}

func newJSON5Parser() Parser {
	return json5Parser{}
}

func (json5Parser) Parse(raw []byte) (models.Document, error) {
	if isBlank(raw) {
		return models.Document{}, nil
	}

	var decoded any
	if err := json5.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("error decoding json5: %w", err)
	}

	return toDocument(decoded)
}
