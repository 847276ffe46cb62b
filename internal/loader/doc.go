// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package loader finds, reads and merges configuration files.
//
// A logical name such as "database" is resolved by scanning every search
// directory for database.<ext>, for every extension registered in the
// format registry. All matches are merged into one document: directories
// are visited in search order, extensions in registry order, and the first
// match to define a key wins. An explicit file link for the name is merged
// last.
//
// Results are cached for the lifetime of the [Loader]. Loading the same name
// again returns the very same document, so callers observe each other's
// mutations.
package loader
