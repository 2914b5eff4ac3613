package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/MKhiriev/fabric-bridge/internal/adapter"
	"github.com/MKhiriev/fabric-bridge/internal/config"
	"github.com/MKhiriev/fabric-bridge/internal/logger"
	"github.com/MKhiriev/fabric-bridge/internal/metrics"
	"github.com/MKhiriev/fabric-bridge/internal/rpc/fabricbridge"
	"github.com/MKhiriev/fabric-bridge/internal/service"
	"github.com/MKhiriev/fabric-bridge/internal/store"
	"github.com/MKhiriev/fabric-bridge/internal/utils"
	"github.com/MKhiriev/fabric-bridge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type bridgeFixture struct {
	client    fabricbridge.FabricBridgeClient
	registry  *adapter.BridgedDeviceManager
	ecosystem *adapter.EcosystemInformationServer
	collector *metrics.Collector
}

// startBridge serves a real registry and service over an in-memory
// listener.
func startBridge(t *testing.T) *bridgeFixture {
	t.Helper()
	log := logger.Nop()

	registry := adapter.NewBridgedDeviceManager(16, 3, log)
	ecosystem := adapter.NewEcosystemInformationServer(16, log)
	registry.OnRemove(ecosystem.OnDeviceRemoved)

	fabricBridge := service.NewFabricBridgeService(registry, ecosystem, config.Bridge{ParentEndpointID: 1}, log)
	journal := service.NewFabricBridgeJournalService(store.NewNopSyncEventRepository())
	handler := NewHandler(&service.Services{FabricBridgeService: journal.Wrap(fabricBridge)}, log)
	collector := metrics.NewCollector()

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		TraceIDInterceptor(log, utils.NewUUIDGenerator()),
		LoggingInterceptor(),
		MetricsInterceptor(collector),
		RecoveryInterceptor(),
	))
	fabricbridge.RegisterFabricBridgeServer(srv, handler)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &bridgeFixture{
		client:    fabricbridge.NewFabricBridgeClient(conn),
		registry:  registry,
		ecosystem: ecosystem,
		collector: collector,
	}
}

func TestBridge_AddThenFind(t *testing.T) {
	f := startBridge(t)

	_, err := f.client.AddSynchronizedDevice(context.Background(), &fabricbridge.SynchronizedDevice{
		NodeID:     0x1001,
		VendorName: fabricbridge.Ptr("Acme"),
	})
	require.NoError(t, err)

	device, ok := f.registry.FindDeviceByKey(0x1001)
	require.True(t, ok)

	info := device.Snapshot()
	assert.True(t, info.Reachable)
	assert.False(t, info.ICD)
	assert.Equal(t, uint16(1), info.ParentEndpointID)
	assert.Equal(t, models.BridgedAttributes{VendorName: "Acme"}, info.Attributes)
	assert.True(t, f.ecosystem.HasCapability(info.EndpointID))
}

func TestBridge_AddRemoveRemove(t *testing.T) {
	f := startBridge(t)
	ctx := context.Background()

	_, err := f.client.AddSynchronizedDevice(ctx, &fabricbridge.SynchronizedDevice{NodeID: 0x2002})
	require.NoError(t, err)

	_, err = f.client.RemoveSynchronizedDevice(ctx, &fabricbridge.SynchronizedDevice{NodeID: 0x2002})
	require.NoError(t, err)

	_, err = f.client.RemoveSynchronizedDevice(ctx, &fabricbridge.SynchronizedDevice{NodeID: 0x2002})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, ok := f.registry.FindDeviceByKey(0x2002)
	assert.False(t, ok)
}

func TestBridge_ActiveChangedUnknownDevice(t *testing.T) {
	f := startBridge(t)

	_, err := f.client.ActiveChanged(context.Background(), &fabricbridge.KeepActiveChanged{
		NodeID:                   0x3003,
		PromisedActiveDurationMs: 5000,
	})

	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestBridge_DuplicateAddIsUnknown(t *testing.T) {
	f := startBridge(t)
	ctx := context.Background()

	_, err := f.client.AddSynchronizedDevice(ctx, &fabricbridge.SynchronizedDevice{NodeID: 0x4004})
	require.NoError(t, err)

	_, err = f.client.AddSynchronizedDevice(ctx, &fabricbridge.SynchronizedDevice{NodeID: 0x4004})
	assert.Equal(t, codes.Unknown, status.Code(err))
	assert.Equal(t, 1, f.registry.Len())
}

func TestBridge_ActiveChangedRecordsTelemetry(t *testing.T) {
	f := startBridge(t)
	ctx := context.Background()

	_, err := f.client.AddSynchronizedDevice(ctx, &fabricbridge.SynchronizedDevice{NodeID: 0x5005, IsICD: fabricbridge.Ptr(true)})
	require.NoError(t, err)

	_, err = f.client.ActiveChanged(ctx, &fabricbridge.KeepActiveChanged{NodeID: 0x5005, PromisedActiveDurationMs: 1500})
	require.NoError(t, err)

	device, ok := f.registry.FindDeviceByKey(0x5005)
	require.True(t, ok)
	assert.True(t, device.IsICD())
	assert.Equal(t, uint64(1), device.Telemetry().ActiveChangeCount)
	assert.Equal(t, uint32(1500), device.Telemetry().LastPromisedActiveDurationMs)
}

func TestBridge_TraceIDEchoed(t *testing.T) {
	f := startBridge(t)

	ctx := metadata.AppendToOutgoingContext(context.Background(), TraceIDMetadataKey, "trace-123")
	var header metadata.MD
	_, err := f.client.AddSynchronizedDevice(ctx, &fabricbridge.SynchronizedDevice{NodeID: 0x6006}, grpc.Header(&header))
	require.NoError(t, err)

	assert.Equal(t, []string{"trace-123"}, header.Get(TraceIDMetadataKey))
}

func TestBridge_MetricsObserved(t *testing.T) {
	f := startBridge(t)

	_, _ = f.client.ActiveChanged(context.Background(), &fabricbridge.KeepActiveChanged{NodeID: 1})

	families, err := f.collector.Registry().Gather()
	require.NoError(t, err)

	var found bool
	for _, family := range families {
		if family.GetName() != "fabric_bridge_rpc_requests_total" {
			continue
		}
		for _, m := range family.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			if labels["method"] == "ActiveChanged" && labels["code"] == "NotFound" {
				found = true
				assert.Equal(t, float64(1), m.GetCounter().GetValue())
			}
		}
	}
	assert.True(t, found)
}
