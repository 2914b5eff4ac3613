// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Optional holds a value together with an explicit presence flag.
//
// It mirrors the "has_*" flags carried by wire messages: a zero Value with
// Set == true is a real value, while Set == false means the field was never
// provided, whatever Value happens to contain.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// None returns an unset Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it was set.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// ValueOr returns the value when set and fallback otherwise.
func (o Optional[T]) ValueOr(fallback T) T {
	if !o.Set {
		return fallback
	}
	return o.Value
}
