package service

import (
	"context"
	"time"

	"github.com/MKhiriev/fabric-bridge/internal/logger"
	"github.com/MKhiriev/fabric-bridge/internal/store"
	"github.com/MKhiriev/fabric-bridge/internal/utils"
	"github.com/MKhiriev/fabric-bridge/models"
)

// FabricBridgeJournalService records every successful request of the
// wrapped service as a [models.SyncEvent]. Journal failures are logged and
// never change the result returned to the caller.
type FabricBridgeJournalService struct {
	inner      FabricBridgeService
	repository store.SyncEventRepository
	ids        *utils.UUIDGenerator
	now        func() time.Time
}

// NewFabricBridgeJournalService creates the journaling wrapper.
func NewFabricBridgeJournalService(repository store.SyncEventRepository) FabricBridgeServiceWrapper {
	return &FabricBridgeJournalService{
		repository: repository,
		ids:        utils.NewUUIDGenerator(),
		now:        time.Now,
	}
}

func (j *FabricBridgeJournalService) Wrap(inner FabricBridgeService) FabricBridgeService {
	j.inner = inner
	return j
}

func (j *FabricBridgeJournalService) AddSynchronizedDevice(ctx context.Context, device models.SynchronizedDevice) (uint16, error) {
	endpointID, err := j.inner.AddSynchronizedDevice(ctx, device)
	if err != nil {
		return endpointID, err
	}

	event := j.newEvent(ctx, models.SyncEventAdded, device.NodeID)
	event.EndpointID = endpointID
	j.record(ctx, event)

	return endpointID, nil
}

func (j *FabricBridgeJournalService) RemoveSynchronizedDevice(ctx context.Context, nodeID uint64) error {
	if err := j.inner.RemoveSynchronizedDevice(ctx, nodeID); err != nil {
		return err
	}

	j.record(ctx, j.newEvent(ctx, models.SyncEventRemoved, nodeID))
	return nil
}

func (j *FabricBridgeJournalService) ActiveChanged(ctx context.Context, change models.KeepActiveChanged) error {
	if err := j.inner.ActiveChanged(ctx, change); err != nil {
		return err
	}

	event := j.newEvent(ctx, models.SyncEventActiveChanged, change.NodeID)
	event.PromisedActiveDurationMs = change.PromisedActiveDurationMs
	j.record(ctx, event)

	return nil
}

func (j *FabricBridgeJournalService) newEvent(ctx context.Context, kind models.SyncEventKind, nodeID uint64) models.SyncEvent {
	traceID, _ := utils.GetTraceIDFromContext(ctx)
	return models.SyncEvent{
		ID:        j.ids.Generate(),
		Kind:      kind,
		NodeID:    nodeID,
		TraceID:   traceID,
		CreatedAt: j.now().UTC(),
	}
}

func (j *FabricBridgeJournalService) record(ctx context.Context, event models.SyncEvent) {
	if err := j.repository.Save(ctx, event); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*FabricBridgeJournalService.record").
			Str("node_id", logger.FormatNodeID(event.NodeID)).
			Str("kind", string(event.Kind)).
			Msg("failed to journal sync event")
	}
}
