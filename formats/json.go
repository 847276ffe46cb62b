// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package formats

import (
	"encoding/json"
	"fmt"

	"github.com/minond/acm/models"
)

type jsonParser struct{}

func newJSONParser() Parser {
	return jsonParser{}
}

func (jsonParser) Parse(raw []byte) (models.Document, error) {
	if isBlank(raw) {
		return models.Document{}, nil
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("error decoding json: %w", err)
	}

	return toDocument(decoded)
}
