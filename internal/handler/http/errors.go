// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidLimit is returned when the "limit" query parameter is not a
// non-negative integer.
var ErrInvalidLimit = errors.New("invalid `limit` query parameter")
