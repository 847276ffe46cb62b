// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
)

// validate checks the merged [Settings] before they are used.
func (s *Settings) validate() error {
	if s.LogLevel != "" {
		if _, err := zerolog.ParseLevel(s.LogLevel); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidLogLevel, s.LogLevel)
		}
	}

	for name, path := range s.Links {
		if name == "" || path == "" {
			return fmt.Errorf("%w: %q=%q", ErrInvalidLink, name, path)
		}
		if filepath.Ext(path) == "" {
			return fmt.Errorf("%w: %s has no extension", ErrInvalidLink, path)
		}
	}

	return nil
}
