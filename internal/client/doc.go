// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the bridge control CLI.
//
// The CLI plays the fabric-admin side of the synchronization protocol: it
// announces, removes and keeps alive synchronized devices over the
// FabricBridge RPC service, and reads the bridge state back from the status
// HTTP API.
package client
