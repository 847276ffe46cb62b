// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type settingsBuilder struct {
	settings []*Settings
	err      error
}

func newSettingsBuilder() *settingsBuilder {
	return &settingsBuilder{
		settings: make([]*Settings, 0, 3),
	}
}

// build merges the collected settings so that the first source to set a
// field wins, then validates the result.
func (b *settingsBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building settings: %w", b.err)
	}

	settings := new(Settings)
	for _, s := range b.settings {
		if err := mergo.Merge(settings, s); err != nil {
			return nil, fmt.Errorf("error merging settings: %w", err)
		}
	}

	if err := settings.validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

func (b *settingsBuilder) withFlags(flags *Settings) *settingsBuilder {
	if flags != nil {
		b.settings = append(b.settings, flags)
	}

	return b
}

func (b *settingsBuilder) withEnv(environ map[string]string) *settingsBuilder {
	envSettings := &Settings{}
	if err := parseEnv(envSettings, environ); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.settings = append(b.settings, envSettings)
	return b
}

// withFile reads the settings file named by the first source that set
// SettingsFile, if any.
func (b *settingsBuilder) withFile(environ map[string]string) *settingsBuilder {
	var path string
	for _, s := range b.settings {
		if s.SettingsFile != "" {
			path = s.SettingsFile
			break
		}
	}

	if path == "" {
		return b
	}

	fileSettings, err := parseFile(path, environ)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.settings = append(b.settings, fileSettings)
	return b
}

// Load assembles settings from flags, the environment and the optional
// settings file, in that priority order. flags may be nil.
//
// environ is the environment to read ACM_* variables from, typically
// env.ToMap(os.Environ()). It also supplies ${env.NAME} placeholders in the
// settings file.
func Load(flags *Settings, environ map[string]string) (*Settings, error) {
	return newSettingsBuilder().
		withFlags(flags).
		withEnv(environ).
		withFile(environ).
		build()
}
