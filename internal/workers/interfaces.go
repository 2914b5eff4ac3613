// Package workers runs the bridge's background workers.
//
// It defines the Worker interface and a Workers aggregate that runs several
// workers side by side until their context is cancelled.
package workers

import "context"

// Worker is a background task. Run blocks until ctx is cancelled or the
// worker fails; cancellation is a clean stop and returns nil.
type Worker interface {
	Run(ctx context.Context) error
}
