// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the status
// API handlers and the control CLI.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. Keeping them in one place keeps the wording consistent
// between the server and the CLI that prints them.
package app

const (
	// MsgInvalidNodeID is returned when a node id path parameter is neither
	// a decimal nor a 0x-prefixed hexadecimal 64-bit number.
	MsgInvalidNodeID = "invalid node id"

	// MsgInvalidLimit is returned when the "limit" query parameter is not a
	// non-negative integer.
	MsgInvalidLimit = "invalid limit"

	// MsgDeviceNotFound is returned when no bridged device is registered
	// under the requested node id.
	MsgDeviceNotFound = "bridged device not found"

	// MsgJournalUnavailable is returned when the sync-event journal could not
	// be read.
	MsgJournalUnavailable = "sync event journal unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
