// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package configuration resolves dotted keys against four sources, in
// priority order:
//
//  1. values set at runtime with [Configuration.Set];
//  2. command-line arguments (--db.host=localhost);
//  3. environment variables (DB_HOST);
//  4. configuration files found on the search path (db.yml, db.json, ...).
//
// The first segment of a key names a logical file, the rest is a path inside
// it: "db.host" reads the "host" entry of every db.<ext> file found in the
// search directories, merged into one document. Earlier directories, and
// earlier extensions within a directory, take precedence.
//
// File contents may reference ${env.NAME} and ${process.cwd} placeholders,
// which are substituted before parsing.
//
// Most programs use the package-level [Get], [Lookup] and [Set] functions,
// which operate on a process-wide [Default] configuration. Tests and
// libraries should build their own with [New].
package configuration
