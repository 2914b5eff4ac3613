package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fabric-bridge/internal/logger"
	"github.com/MKhiriev/fabric-bridge/models"
)

// syncEventRepository is the SQL-backed implementation of
// [SyncEventRepository]. It works with both supported drivers; only the
// placeholder format differs.
type syncEventRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSyncEventRepository constructs a [SyncEventRepository] backed by db.
func NewSyncEventRepository(db *DB, logger *logger.Logger) SyncEventRepository {
	logger.Debug().Str("driver", db.driver).Msg("creating sync event repository")
	return &syncEventRepository{
		db:     db,
		logger: logger,
	}
}

// Save implements [SyncEventRepository].
func (r *syncEventRepository) Save(ctx context.Context, event models.SyncEvent) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSyncEventQuery(r.db.statementBuilder(), event)
	if err != nil {
		log.Err(err).Str("func", "*syncEventRepository.Save").Msg("error building query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*syncEventRepository.Save").
			Stringer("classification", r.db.classify(err)).
			Msg("error inserting sync event")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSyncEventNotSaved
	}

	return nil
}

// ListByNode implements [SyncEventRepository].
func (r *syncEventRepository) ListByNode(ctx context.Context, nodeID uint64, limit uint64) ([]models.SyncEvent, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSyncEventsByNodeQuery(r.db.statementBuilder(), nodeID, limit)
	if err != nil {
		log.Err(err).Str("func", "*syncEventRepository.ListByNode").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*syncEventRepository.ListByNode").
			Stringer("classification", r.db.classify(err)).
			Msg("error selecting sync events")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	events := make([]models.SyncEvent, 0)
	for rows.Next() {
		var (
			event      models.SyncEvent
			kind       string
			node       int64
			endpointID int64
			durationMs int64
		)
		if err = rows.Scan(&event.ID, &kind, &node, &endpointID, &durationMs, &event.TraceID, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		event.Kind = models.SyncEventKind(kind)
		event.NodeID = nodeIDFromColumn(node)
		event.EndpointID = uint16(endpointID)
		event.PromisedActiveDurationMs = uint32(durationMs)
		events = append(events, event)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return events, nil
}

// nopSyncEventRepository is used when no journal database is configured.
type nopSyncEventRepository struct{}

// NewNopSyncEventRepository returns a [SyncEventRepository] that drops every
// event and lists none.
func NewNopSyncEventRepository() SyncEventRepository {
	return nopSyncEventRepository{}
}

func (nopSyncEventRepository) Save(context.Context, models.SyncEvent) error {
	return nil
}

func (nopSyncEventRepository) ListByNode(context.Context, uint64, uint64) ([]models.SyncEvent, error) {
	return []models.SyncEvent{}, nil
}
