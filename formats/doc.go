// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package formats maps configuration file extensions to parsers.
//
// A [Registry] is pre-populated with parsers for ini, json5, json, yaml, yml
// and toml. The iteration order of the registry is significant: when several
// files with the same base name exist in one directory, they are merged in
// registry order and the earlier extension takes precedence.
//
// Every parser satisfies the same contract: raw text in, a models.Document
// out. Parser implementations are built lazily on first use.
package formats
