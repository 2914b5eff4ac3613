// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/fabric-bridge/internal/adapter"
	"github.com/MKhiriev/fabric-bridge/internal/config"
	"github.com/MKhiriev/fabric-bridge/internal/logger"
	"github.com/MKhiriev/fabric-bridge/internal/mock"
	"github.com/MKhiriev/fabric-bridge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func mustAdd(t *testing.T, svc FabricBridgeService, device models.SynchronizedDevice) uint16 {
	t.Helper()
	endpointID, err := svc.AddSynchronizedDevice(context.Background(), device)
	require.NoError(t, err)
	return endpointID
}

// ── gomock-backed tests ──────────────────────────────────────────────────────

func newMockedService(t *testing.T) (FabricBridgeService, *mock.MockDeviceRegistry, *mock.MockCapabilityAttacher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	registry := mock.NewMockDeviceRegistry(ctrl)
	capabilities := mock.NewMockCapabilityAttacher(ctrl)

	svc := NewFabricBridgeService(registry, capabilities, config.Bridge{ParentEndpointID: 1}, logger.Nop())
	return svc, registry, capabilities
}

func TestAddSynchronizedDevice_Success(t *testing.T) {
	svc, registry, capabilities := newMockedService(t)
	ctx := context.Background()

	var stored *models.BridgedDevice
	registry.EXPECT().
		AddDevice(gomock.Any(), uint16(1)).
		DoAndReturn(func(d *models.BridgedDevice, parent uint16) (uint16, error) {
			stored = d
			d.SetEndpoint(3, parent)
			return 3, nil
		})
	registry.EXPECT().
		FindDeviceByKey(uint64(0x1001)).
		DoAndReturn(func(uint64) (*models.BridgedDevice, bool) { return stored, true })
	capabilities.EXPECT().AttachCapability(uint16(3)).Return(nil)

	endpointID, err := svc.AddSynchronizedDevice(ctx, models.SynchronizedDevice{
		NodeID:     0x1001,
		UniqueID:   models.Some("U1"),
		VendorName: models.Some("Acme"),
		IsICD:      models.Some(true),
	})

	require.NoError(t, err)
	assert.Equal(t, uint16(3), endpointID)
	require.NotNil(t, stored)
	assert.Equal(t, uint64(0x1001), stored.NodeID())
	assert.True(t, stored.IsReachable())
	assert.True(t, stored.IsICD())
	assert.Equal(t, models.BridgedAttributes{UniqueID: "U1", VendorName: "Acme"}, stored.BridgedAttributes())
}

func TestAddSynchronizedDevice_ICDFlagRequiresPresence(t *testing.T) {
	tests := []struct {
		name  string
		isICD models.Optional[bool]
		want  bool
	}{
		{name: "unset", isICD: models.None[bool](), want: false},
		{name: "unset with stray value", isICD: models.Optional[bool]{Value: true}, want: false},
		{name: "set false", isICD: models.Some(false), want: false},
		{name: "set true", isICD: models.Some(true), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, registry, capabilities := newMockedService(t)

			var stored *models.BridgedDevice
			registry.EXPECT().AddDevice(gomock.Any(), gomock.Any()).
				DoAndReturn(func(d *models.BridgedDevice, _ uint16) (uint16, error) {
					stored = d
					return 3, nil
				})
			registry.EXPECT().FindDeviceByKey(gomock.Any()).
				DoAndReturn(func(uint64) (*models.BridgedDevice, bool) { return stored, true })
			capabilities.EXPECT().AttachCapability(gomock.Any()).Return(nil)

			mustAdd(t, svc, models.SynchronizedDevice{NodeID: 5, IsICD: tt.isICD})
			assert.Equal(t, tt.want, stored.IsICD())
		})
	}
}

func TestAddSynchronizedDevice_UsesConfiguredParentEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mock.NewMockDeviceRegistry(ctrl)
	capabilities := mock.NewMockCapabilityAttacher(ctrl)
	svc := NewFabricBridgeService(registry, capabilities, config.Bridge{ParentEndpointID: 2}, logger.Nop())

	registry.EXPECT().AddDevice(gomock.Any(), uint16(2)).Return(uint16(7), nil)
	registry.EXPECT().FindDeviceByKey(uint64(1)).Return(models.NewBridgedDevice(1), true)
	capabilities.EXPECT().AttachCapability(uint16(7)).Return(nil)

	mustAdd(t, svc, models.SynchronizedDevice{NodeID: 1})
}

func TestAddSynchronizedDevice_RegistryRejects(t *testing.T) {
	svc, registry, _ := newMockedService(t)

	registry.EXPECT().AddDevice(gomock.Any(), gomock.Any()).Return(uint16(0), adapter.ErrDeviceAlreadyExists)

	_, err := svc.AddSynchronizedDevice(context.Background(), models.SynchronizedDevice{NodeID: 1})

	assert.ErrorIs(t, err, ErrAddDeviceFailed)
	assert.ErrorIs(t, err, adapter.ErrDeviceAlreadyExists)
	assert.False(t, IsUnrecoverable(err))
}

func TestAddSynchronizedDevice_MissingAfterAddIsUnrecoverable(t *testing.T) {
	svc, registry, _ := newMockedService(t)

	registry.EXPECT().AddDevice(gomock.Any(), gomock.Any()).Return(uint16(3), nil)
	registry.EXPECT().FindDeviceByKey(uint64(0x42)).Return(nil, false)

	_, err := svc.AddSynchronizedDevice(context.Background(), models.SynchronizedDevice{NodeID: 0x42})

	var unrecoverable *UnrecoverableError
	require.ErrorAs(t, err, &unrecoverable)
	assert.Equal(t, uint64(0x42), unrecoverable.NodeID)
	assert.NotErrorIs(t, err, ErrAddDeviceFailed)
}

func TestAddSynchronizedDevice_CapabilityFailureIsUnrecoverable(t *testing.T) {
	svc, registry, capabilities := newMockedService(t)

	registry.EXPECT().AddDevice(gomock.Any(), gomock.Any()).Return(uint16(3), nil)
	registry.EXPECT().FindDeviceByKey(uint64(1)).Return(models.NewBridgedDevice(1), true)
	capabilities.EXPECT().AttachCapability(uint16(3)).Return(adapter.ErrCapabilityTableFull)

	_, err := svc.AddSynchronizedDevice(context.Background(), models.SynchronizedDevice{NodeID: 1})

	assert.True(t, IsUnrecoverable(err))
	assert.ErrorIs(t, err, adapter.ErrCapabilityTableFull)
}

func TestRemoveSynchronizedDevice_Success(t *testing.T) {
	svc, registry, _ := newMockedService(t)

	registry.EXPECT().RemoveDeviceByKey(uint64(0x2002)).Return(1, nil)

	assert.NoError(t, svc.RemoveSynchronizedDevice(context.Background(), 0x2002))
}

func TestRemoveSynchronizedDevice_NotFound(t *testing.T) {
	svc, registry, _ := newMockedService(t)

	registry.EXPECT().RemoveDeviceByKey(uint64(0xDEAD)).Return(0, adapter.ErrDeviceNotFound)

	err := svc.RemoveSynchronizedDevice(context.Background(), 0xDEAD)

	assert.ErrorIs(t, err, ErrDeviceNotFound)
}

func TestRemoveSynchronizedDevice_OtherError(t *testing.T) {
	svc, registry, _ := newMockedService(t)
	boom := errors.New("boom")

	registry.EXPECT().RemoveDeviceByKey(uint64(1)).Return(0, boom)

	err := svc.RemoveSynchronizedDevice(context.Background(), 1)

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrDeviceNotFound)
}

func TestActiveChanged_Success(t *testing.T) {
	svc, registry, _ := newMockedService(t)
	device := models.NewBridgedDevice(0x1001)

	registry.EXPECT().FindDeviceByKey(uint64(0x1001)).Return(device, true)

	require.NoError(t, svc.ActiveChanged(context.Background(), models.KeepActiveChanged{NodeID: 0x1001, PromisedActiveDurationMs: 5000}))

	telemetry := device.Telemetry()
	assert.Equal(t, uint64(1), telemetry.ActiveChangeCount)
	assert.Equal(t, uint32(5000), telemetry.LastPromisedActiveDurationMs)
}

func TestActiveChanged_NotFound(t *testing.T) {
	svc, registry, _ := newMockedService(t)

	registry.EXPECT().FindDeviceByKey(uint64(0xDEAD)).Return(nil, false)

	err := svc.ActiveChanged(context.Background(), models.KeepActiveChanged{NodeID: 0xDEAD, PromisedActiveDurationMs: 1})

	assert.ErrorIs(t, err, ErrDeviceNotFound)
}

// ── in-process registry ──────────────────────────────────────────────────────

func newRealService(t *testing.T, maxDevices int) (FabricBridgeService, *adapter.BridgedDeviceManager) {
	t.Helper()
	registry := adapter.NewBridgedDeviceManager(maxDevices, 3, logger.Nop())
	capabilities := adapter.NewEcosystemInformationServer(maxDevices, logger.Nop())
	registry.OnRemove(capabilities.OnDeviceRemoved)

	return NewFabricBridgeService(registry, capabilities, config.Bridge{ParentEndpointID: 1}, logger.Nop()), registry
}

func TestFabricBridgeService_AddThenFind(t *testing.T) {
	svc, registry := newRealService(t, 4)
	device := models.SynchronizedDevice{
		NodeID:      0x1001,
		ProductName: models.Some("Lamp"),
		VendorID:    models.Some[uint16](0xFFF1),
	}

	endpointID := mustAdd(t, svc, device)

	found, ok := registry.FindDeviceByKey(0x1001)
	require.True(t, ok)
	assert.Equal(t, found.EndpointID(), endpointID)
	assert.Equal(t, TranslateAttributes(device), found.BridgedAttributes())
	assert.Equal(t, uint16(1), found.ParentEndpointID())
	assert.True(t, found.IsReachable())
}

func TestFabricBridgeService_DuplicateAddKeepsFirst(t *testing.T) {
	svc, registry := newRealService(t, 4)
	ctx := context.Background()

	mustAdd(t, svc, models.SynchronizedDevice{NodeID: 1, NodeLabel: models.Some("first")})
	_, err := svc.AddSynchronizedDevice(ctx, models.SynchronizedDevice{NodeID: 1, NodeLabel: models.Some("second")})

	assert.ErrorIs(t, err, ErrAddDeviceFailed)
	found, _ := registry.FindDeviceByKey(1)
	assert.Equal(t, "first", found.BridgedAttributes().NodeLabel)
	assert.Equal(t, 1, registry.Len())
}

func TestFabricBridgeService_RemoveUnknownLeavesRegistry(t *testing.T) {
	svc, registry := newRealService(t, 4)
	ctx := context.Background()
	mustAdd(t, svc, models.SynchronizedDevice{NodeID: 1})

	err := svc.RemoveSynchronizedDevice(ctx, 2)

	assert.ErrorIs(t, err, ErrDeviceNotFound)
	assert.Equal(t, 1, registry.Len())
}

func TestFabricBridgeService_DoubleRemove(t *testing.T) {
	svc, _ := newRealService(t, 4)
	ctx := context.Background()
	mustAdd(t, svc, models.SynchronizedDevice{NodeID: 0x2002})

	require.NoError(t, svc.RemoveSynchronizedDevice(ctx, 0x2002))
	assert.ErrorIs(t, svc.RemoveSynchronizedDevice(ctx, 0x2002), ErrDeviceNotFound)
}

func TestFabricBridgeService_ActiveChangedUnknownTouchesNothing(t *testing.T) {
	svc, registry := newRealService(t, 4)
	ctx := context.Background()
	mustAdd(t, svc, models.SynchronizedDevice{NodeID: 1})

	err := svc.ActiveChanged(ctx, models.KeepActiveChanged{NodeID: 2, PromisedActiveDurationMs: 10})

	assert.ErrorIs(t, err, ErrDeviceNotFound)
	found, _ := registry.FindDeviceByKey(1)
	assert.Zero(t, found.Telemetry().ActiveChangeCount)
}

func TestFabricBridgeService_ActiveChangedTargetsOneDevice(t *testing.T) {
	svc, registry := newRealService(t, 4)
	ctx := context.Background()
	mustAdd(t, svc, models.SynchronizedDevice{NodeID: 1})
	mustAdd(t, svc, models.SynchronizedDevice{NodeID: 2})

	require.NoError(t, svc.ActiveChanged(ctx, models.KeepActiveChanged{NodeID: 2, PromisedActiveDurationMs: 4321}))

	first, _ := registry.FindDeviceByKey(1)
	second, _ := registry.FindDeviceByKey(2)
	assert.Zero(t, first.Telemetry().ActiveChangeCount)
	assert.Equal(t, uint64(1), second.Telemetry().ActiveChangeCount)
	assert.Equal(t, uint32(4321), second.Telemetry().LastPromisedActiveDurationMs)
}

// Re-adding after removal reuses nothing stale: the new endpoint gets its
// own ecosystem information.
func TestFabricBridgeService_ReAddAfterRemove(t *testing.T) {
	svc, registry := newRealService(t, 1)
	ctx := context.Background()

	mustAdd(t, svc, models.SynchronizedDevice{NodeID: 1})
	require.NoError(t, svc.RemoveSynchronizedDevice(ctx, 1))
	mustAdd(t, svc, models.SynchronizedDevice{NodeID: 1})

	_, ok := registry.FindDeviceByKey(1)
	assert.True(t, ok)
}

func TestFabricBridgeService_RegistryFull(t *testing.T) {
	svc, _ := newRealService(t, 1)
	ctx := context.Background()
	mustAdd(t, svc, models.SynchronizedDevice{NodeID: 1})

	_, err := svc.AddSynchronizedDevice(ctx, models.SynchronizedDevice{NodeID: 2})

	assert.ErrorIs(t, err, ErrAddDeviceFailed)
	assert.ErrorIs(t, err, adapter.ErrRegistryFull)
}

// Running out of dynamic endpoint ids is an ordinary add failure, not an
// unrecoverable one.
func TestFabricBridgeService_EndpointRangeExhausted(t *testing.T) {
	registry := adapter.NewBridgedDeviceManager(3, 0xFFFD, logger.Nop())
	capabilities := adapter.NewEcosystemInformationServer(3, logger.Nop())
	svc := NewFabricBridgeService(registry, capabilities, config.Bridge{ParentEndpointID: 1}, logger.Nop())

	assert.Equal(t, uint16(0xFFFD), mustAdd(t, svc, models.SynchronizedDevice{NodeID: 1}))
	assert.Equal(t, uint16(0xFFFE), mustAdd(t, svc, models.SynchronizedDevice{NodeID: 2}))

	_, err := svc.AddSynchronizedDevice(context.Background(), models.SynchronizedDevice{NodeID: 3})

	assert.ErrorIs(t, err, ErrAddDeviceFailed)
	assert.ErrorIs(t, err, adapter.ErrRegistryFull)
	assert.False(t, IsUnrecoverable(err))
	assert.Equal(t, 2, registry.Len())
}

func TestUnrecoverableError_Message(t *testing.T) {
	err := &UnrecoverableError{NodeID: 0x1001, Reason: "broken", Err: errors.New("cause")}

	assert.Equal(t, "unrecoverable: node 0x0000000000001001: broken: cause", err.Error())
	assert.Equal(t, "unrecoverable: node 0x0000000000001001: broken", (&UnrecoverableError{NodeID: 0x1001, Reason: "broken"}).Error())
}
