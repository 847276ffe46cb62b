// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"maps"
	"slices"

	"github.com/rs/zerolog"

	"github.com/minond/acm/configuration"
)

// EnvPrefix is prepended to every environment variable read by [Load].
const EnvPrefix = "ACM_"

// Settings holds the tool's own configuration.
//
// Struct tags:
//   - env: environment variable name, relative to [EnvPrefix] (caarlos0/env).
//   - json: key in the settings file.
type Settings struct {
	// Paths lists the configuration search directories in precedence order.
	// When empty the resolver searches ./config.
	// Env: ACM_PATHS (comma separated)
	Paths []string `env:"PATHS" envSeparator:"," json:"paths,omitempty"`

	// PackageRoot appends PackageRoot/config to the search path.
	// Env: ACM_PACKAGE_ROOT
	PackageRoot string `env:"PACKAGE_ROOT" json:"package_root,omitempty"`

	// PackageConfig appends an explicit directory to the search path.
	// Ignored when PackageRoot is set.
	// Env: ACM_PACKAGE_CONFIG
	PackageConfig string `env:"PACKAGE_CONFIG" json:"package_config,omitempty"`

	// Links maps logical file names to explicit files.
	// Env: ACM_LINKS (e.g. "secrets=/run/secrets.json,db=/etc/db.yml")
	Links map[string]string `env:"LINKS" envSeparator:"," envKeyValSeparator:"=" json:"links,omitempty"`

	// LogLevel is a zerolog level name. Empty means info.
	// Env: ACM_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" json:"log_level,omitempty"`

	// SettingsFile is the optional path to a settings file. It is read
	// after flags and environment, filling only fields they left empty.
	// Env: ACM_SETTINGS
	SettingsFile string `env:"SETTINGS" json:"-"`
}

// Options converts s into resolver options. args becomes the argv source
// and environ the env source; a nil environ reads the process environment
// at lookup time.
func (s *Settings) Options(args map[string]any, environ map[string]string, log *zerolog.Logger) configuration.Options {
	opts := configuration.Options{
		Argv:          args,
		Env:           environ,
		PackageRoot:   s.PackageRoot,
		PackageConfig: s.PackageConfig,
		FileLinks:     maps.Clone(s.Links),
		Logger:        log,
	}

	if len(s.Paths) > 0 {
		opts.Paths = slices.Clone(s.Paths)
	}

	return opts
}
