// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates s from environ using the caarlos0/env library. Only
// variables starting with [EnvPrefix] are considered.
func parseEnv(s *Settings, environ map[string]string) error {
	err := env.ParseWithOptions(s, env.Options{
		Environment: environ,
		Prefix:      EnvPrefix,
	})
	if err != nil {
		return fmt.Errorf("error getting env settings: %w", err)
	}

	return nil
}
