// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fields

import "errors"

// ErrUnresolvedField is returned when a placeholder refers to a field that
// does not exist.
var ErrUnresolvedField = errors.New("unresolved template field")
