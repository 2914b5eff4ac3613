// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks synchronization requests before they are sent
// to the bridge.
//
// The bridge itself accepts any request and narrows 32-bit wire ids to the
// 16-bit attribute width. The control CLI validates first, so an operator
// gets an error instead of a silently truncated attribute.
//
// Validate may be restricted to specific named fields; with no fields every
// rule of the value's type is applied.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
