package store

import (
	"context"

	"github.com/MKhiriev/fabric-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SyncEventRepository persists the journal of successful synchronization
// requests.
type SyncEventRepository interface {
	// Save appends one event. ID and CreatedAt must already be set.
	Save(ctx context.Context, event models.SyncEvent) error

	// ListByNode returns up to limit most recent events of nodeID, newest
	// first. A zero limit means no limit.
	ListByNode(ctx context.Context, nodeID uint64, limit uint64) ([]models.SyncEvent, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
