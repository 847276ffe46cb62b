// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config assembles the settings of the confget tool.
//
// Settings come from three sources, highest priority first:
//  1. Command-line flags
//  2. ACM_* environment variables
//  3. An optional settings file, named by --settings or ACM_SETTINGS, in
//     any format the configuration package can parse
//
// A field set by a higher-priority source is never replaced by a lower one.
// The main entry point is [Load]; [Settings.Options] turns the result into
// resolver options.
package config
