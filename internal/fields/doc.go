// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fields substitutes placeholders into the raw text of configuration
// files before they are parsed.
//
// A placeholder has the form ${path}, where path is a dotted path into a
// field map, typically ${env.HOME} or ${process.cwd}. Writing $${ produces a
// literal "${". A placeholder that cannot be resolved is an error.
package fields
