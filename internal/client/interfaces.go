// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract of the control CLI.
type Client interface {
	// Run executes the subcommand named by args[0] with the remaining
	// arguments as its flags.
	Run(ctx context.Context, args []string) error

	// Close releases the RPC connection.
	Close() error
}
