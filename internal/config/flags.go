// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers the settings flags on fs and returns the Settings
// they fill once fs is parsed.
//
// Flags:
//
//	-p, --path            configuration search directory (repeatable)
//	--package-root        package root; its config directory is searched last
//	--package-config      explicit package configuration directory
//	--link name=path      link a logical file name to a file (repeatable)
//	--log-level           zerolog level (debug, info, warn, ...)
//	--settings            settings file path
func BindFlags(fs *pflag.FlagSet) *Settings {
	s := &Settings{}

	fs.StringArrayVarP(&s.Paths, "path", "p", nil, "Configuration search directory, highest precedence first")
	fs.StringVar(&s.PackageRoot, "package-root", "", "Package root directory")
	fs.StringVar(&s.PackageConfig, "package-config", "", "Package configuration directory")
	fs.StringToStringVar(&s.Links, "link", nil, "Link a logical file name to a file (name=path)")
	fs.StringVar(&s.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&s.SettingsFile, "settings", "", "Settings file path")

	return s
}
