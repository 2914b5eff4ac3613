// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncEventKind names a lifecycle event applied to a bridged device.
type SyncEventKind string

const (
	SyncEventAdded         SyncEventKind = "added"
	SyncEventRemoved       SyncEventKind = "removed"
	SyncEventActiveChanged SyncEventKind = "active_changed"
)

// SyncEvent is one journal entry describing a successful synchronization
// request.
type SyncEvent struct {
	// ID is a time-ordered UUID (v7) assigned when the event is recorded.
	ID string `json:"id"`

	Kind   SyncEventKind `json:"kind"`
	NodeID uint64        `json:"node_id"`

	// EndpointID is set for added events only.
	EndpointID uint16 `json:"endpoint_id,omitempty"`

	// PromisedActiveDurationMs is set for active_changed events only.
	PromisedActiveDurationMs uint32 `json:"promised_active_duration_ms,omitempty"`

	// TraceID links the event to the RPC request that produced it.
	TraceID string `json:"trace_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
