// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configuration

import "sync"

var (
	defaultOnce   sync.Once
	defaultConfig *Configuration
)

// Default returns the process-wide configuration, built on first use from the
// process arguments, the process environment and ./config.
func Default() *Configuration {
	defaultOnce.Do(func() {
		defaultConfig = New(Options{})
	})

	return defaultConfig
}

// Get calls [Configuration.Get] on the [Default] configuration.
func Get(key string) (any, error) {
	return Default().Get(key)
}

// Lookup calls [Configuration.Lookup] on the [Default] configuration.
func Lookup(key string) (any, bool, error) {
	return Default().Lookup(key)
}

// Set calls [Configuration.Set] on the [Default] configuration.
func Set(key string, value any) *Configuration {
	return Default().Set(key, value)
}
