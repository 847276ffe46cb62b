// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configuration

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog"
)

// DefaultConfigDir is the directory, relative to the working directory,
// searched when no paths are given.
const DefaultConfigDir = "config"

// Options configure a [Configuration]. Every field is optional.
type Options struct {
	// Argv is the parsed command-line argument tree.
	// Defaults to the parsed os.Args[1:].
	Argv map[string]any

	// Env holds environment variables. When nil, variables are read from
	// the process environment at lookup time.
	Env map[string]string

	// Paths lists the directories searched for configuration files, in
	// precedence order. Defaults to ./config. A non-nil empty slice
	// disables the default.
	Paths []string

	// PackageRoot appends PackageRoot/config to Paths. It takes precedence
	// over PackageConfig.
	PackageRoot string

	// PackageConfig appends an explicit directory to Paths.
	PackageConfig string

	// FileLinks maps a logical file name to an explicit file, which is
	// merged after every file found on the search path. The map is used by
	// reference.
	FileLinks map[string]string

	// Logger receives debug output about file discovery. Defaults to a
	// no-op logger.
	Logger *zerolog.Logger
}

// searchPaths returns the configured search directories with the package
// directory appended.
func (o Options) searchPaths() []string {
	paths := slices.Clone(o.Paths)
	if o.Paths == nil {
		paths = []string{defaultConfigDir()}
	}

	packageConfig := o.PackageConfig
	if o.PackageRoot != "" {
		packageConfig = filepath.Join(o.PackageRoot, DefaultConfigDir)
	}
	if packageConfig != "" {
		paths = append(paths, packageConfig)
	}

	return paths
}

func defaultConfigDir() string {
	cwd, err := os.Getwd()
	if err != nil {
		return DefaultConfigDir
	}

	return filepath.Join(cwd, DefaultConfigDir)
}
