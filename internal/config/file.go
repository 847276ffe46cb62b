// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/minond/acm/formats"
	"github.com/minond/acm/internal/loader"
)

// parseFile reads a settings file with the parser registered for its
// extension. ${env.NAME} placeholders are filled from environ.
func parseFile(path string, environ map[string]string) (*Settings, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return nil, fmt.Errorf("%w: %s", loader.ErrNoExtension, path)
	}

	l := loader.New(formats.NewRegistry(), nil)
	l.Fields["env"] = environ

	doc, err := l.ReadFile(path, ext)
	if err != nil {
		return nil, fmt.Errorf("error reading settings file: %w", err)
	}

	// Round-trip through JSON to apply the json tags on Settings.
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("error encoding settings document: %w", err)
	}

	var s Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("error decoding settings file %s: %w", path, err)
	}

	return &s, nil
}
