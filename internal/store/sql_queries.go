package store

import (
	"fmt"

	"github.com/MKhiriev/fabric-bridge/models"
	sq "github.com/Masterminds/squirrel"
)

const syncEventsTable = "sync_events"

var syncEventColumns = []string{
	"id",
	"kind",
	"node_id",
	"endpoint_id",
	"promised_active_duration_ms",
	"trace_id",
	"created_at",
}

// Node ids are stored bit-cast to a signed BIGINT: database/sql drivers
// reject uint64 values with the high bit set.
func nodeIDToColumn(nodeID uint64) int64 {
	return int64(nodeID)
}

func nodeIDFromColumn(v int64) uint64 {
	return uint64(v)
}

func buildInsertSyncEventQuery(b sq.StatementBuilderType, event models.SyncEvent) (string, []any, error) {
	query, args, err := b.
		Insert(syncEventsTable).
		Columns(syncEventColumns...).
		Values(
			event.ID,
			string(event.Kind),
			nodeIDToColumn(event.NodeID),
			int64(event.EndpointID),
			int64(event.PromisedActiveDurationMs),
			event.TraceID,
			event.CreatedAt.UTC(),
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectSyncEventsByNodeQuery(b sq.StatementBuilderType, nodeID uint64, limit uint64) (string, []any, error) {
	builder := b.
		Select(syncEventColumns...).
		From(syncEventsTable).
		Where(sq.Eq{"node_id": nodeIDToColumn(nodeID)}).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
