package adapter

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/fabric-bridge/internal/logger"
	"github.com/MKhiriev/fabric-bridge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(maxDevices int) *BridgedDeviceManager {
	return NewBridgedDeviceManager(maxDevices, 3, logger.Nop())
}

func TestBridgedDeviceManager_AddAndFind(t *testing.T) {
	m := newTestManager(4)
	d := models.NewBridgedDevice(0x1001)

	endpoint, err := m.AddDevice(d, 1)

	require.NoError(t, err)
	assert.Equal(t, uint16(3), endpoint)
	assert.Equal(t, uint16(3), d.EndpointID())
	assert.Equal(t, uint16(1), d.ParentEndpointID())

	found, ok := m.FindDeviceByKey(0x1001)
	require.True(t, ok)
	assert.Same(t, d, found)
	assert.Equal(t, 1, m.Len())
}

func TestBridgedDeviceManager_AddDuplicateRejected(t *testing.T) {
	m := newTestManager(4)
	first := models.NewBridgedDevice(0x1001)
	first.SetBridgedAttributes(models.BridgedAttributes{VendorName: "first"})
	_, err := m.AddDevice(first, 1)
	require.NoError(t, err)

	second := models.NewBridgedDevice(0x1001)
	second.SetBridgedAttributes(models.BridgedAttributes{VendorName: "second"})
	_, err = m.AddDevice(second, 1)

	assert.ErrorIs(t, err, ErrDeviceAlreadyExists)
	found, _ := m.FindDeviceByKey(0x1001)
	assert.Equal(t, "first", found.BridgedAttributes().VendorName)
	assert.Equal(t, 1, m.Len())
}

func TestBridgedDeviceManager_AddNil(t *testing.T) {
	_, err := newTestManager(1).AddDevice(nil, 1)
	assert.ErrorIs(t, err, ErrNilDevice)
}

func TestBridgedDeviceManager_Full(t *testing.T) {
	m := newTestManager(2)
	for i := uint64(1); i <= 2; i++ {
		_, err := m.AddDevice(models.NewBridgedDevice(i), 1)
		require.NoError(t, err)
	}

	_, err := m.AddDevice(models.NewBridgedDevice(3), 1)

	assert.ErrorIs(t, err, ErrRegistryFull)
	_, ok := m.FindDeviceByKey(3)
	assert.False(t, ok)
}

func TestBridgedDeviceManager_RemoveByKey(t *testing.T) {
	m := newTestManager(4)
	_, err := m.AddDevice(models.NewBridgedDevice(0x2002), 1)
	require.NoError(t, err)

	idx, err := m.RemoveDeviceByKey(0x2002)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	_, ok := m.FindDeviceByKey(0x2002)
	assert.False(t, ok)

	_, err = m.RemoveDeviceByKey(0x2002)
	assert.ErrorIs(t, err, ErrDeviceNotFound)
	assert.Zero(t, m.Len())
}

func TestBridgedDeviceManager_RemoveUnknownLeavesSize(t *testing.T) {
	m := newTestManager(4)
	_, err := m.AddDevice(models.NewBridgedDevice(1), 1)
	require.NoError(t, err)

	_, err = m.RemoveDeviceByKey(99)

	assert.ErrorIs(t, err, ErrDeviceNotFound)
	assert.Equal(t, 1, m.Len())
}

// TestBridgedDeviceManager_EndpointsNotReusedImmediately verifies that the
// endpoint of a removed device is not handed to the next device.
func TestBridgedDeviceManager_EndpointsNotReusedImmediately(t *testing.T) {
	m := newTestManager(2)
	ep1, err := m.AddDevice(models.NewBridgedDevice(1), 1)
	require.NoError(t, err)
	_, err = m.RemoveDeviceByKey(1)
	require.NoError(t, err)

	ep2, err := m.AddDevice(models.NewBridgedDevice(2), 1)
	require.NoError(t, err)

	assert.Equal(t, uint16(3), ep1)
	assert.Equal(t, uint16(4), ep2)
}

func TestBridgedDeviceManager_EndpointWrapAroundSkipsUsed(t *testing.T) {
	m := newTestManager(2)
	_, err := m.AddDevice(models.NewBridgedDevice(1), 1) // endpoint 3
	require.NoError(t, err)

	m.nextEndpoint = invalidEndpointID - 1
	ep, err := m.AddDevice(models.NewBridgedDevice(2), 1)
	require.NoError(t, err)
	assert.Equal(t, invalidEndpointID-1, ep)

	_, err = m.RemoveDeviceByKey(2)
	require.NoError(t, err)

	// counter wrapped to 3, which is still taken by node 1
	ep, err = m.AddDevice(models.NewBridgedDevice(3), 1)
	require.NoError(t, err)
	assert.Equal(t, uint16(4), ep)
}

func TestBridgedDeviceManager_EndpointRangeExhausted(t *testing.T) {
	m := NewBridgedDeviceManager(3, invalidEndpointID-2, logger.Nop())

	ep, err := m.AddDevice(models.NewBridgedDevice(1), 1)
	require.NoError(t, err)
	assert.Equal(t, invalidEndpointID-2, ep)

	ep, err = m.AddDevice(models.NewBridgedDevice(2), 1)
	require.NoError(t, err)
	assert.Equal(t, invalidEndpointID-1, ep)

	done := make(chan error, 1)
	go func() {
		_, err := m.AddDevice(models.NewBridgedDevice(3), 1)
		done <- err
	}()

	select {
	case err = <-done:
		assert.ErrorIs(t, err, ErrRegistryFull)
	case <-time.After(2 * time.Second):
		t.Fatal("AddDevice did not return with the endpoint range exhausted")
	}

	// the registry lock is released
	assert.Equal(t, 2, m.Len())
	_, ok := m.FindDeviceByKey(3)
	assert.False(t, ok)
}

func TestBridgedDeviceManager_InvalidFirstEndpointNeverHandedOut(t *testing.T) {
	m := NewBridgedDeviceManager(1, invalidEndpointID, logger.Nop())

	_, err := m.AddDevice(models.NewBridgedDevice(1), 1)

	assert.ErrorIs(t, err, ErrRegistryFull)
	assert.Zero(t, m.Len())
}

func TestBridgedDeviceManager_DevicesSnapshots(t *testing.T) {
	m := newTestManager(4)
	d := models.NewBridgedDevice(0x1001)
	d.SetReachable(true)
	_, err := m.AddDevice(d, 1)
	require.NoError(t, err)
	_, err = m.AddDevice(models.NewBridgedDevice(0x2002), 1)
	require.NoError(t, err)

	devices := m.Devices()

	require.Len(t, devices, 2)
	assert.Equal(t, uint64(0x1001), devices[0].NodeID)
	assert.True(t, devices[0].Reachable)
	assert.Equal(t, uint64(0x2002), devices[1].NodeID)
}

func TestBridgedDeviceManager_OnRemoveListener(t *testing.T) {
	m := newTestManager(4)
	var removed []models.BridgedDeviceInfo
	m.OnRemove(func(info models.BridgedDeviceInfo) { removed = append(removed, info) })

	_, err := m.AddDevice(models.NewBridgedDevice(7), 1)
	require.NoError(t, err)
	_, err = m.RemoveDeviceByKey(7)
	require.NoError(t, err)
	_, _ = m.RemoveDeviceByKey(7)

	require.Len(t, removed, 1)
	assert.Equal(t, uint64(7), removed[0].NodeID)
	assert.Equal(t, uint16(3), removed[0].EndpointID)
}

func TestBridgedDeviceManager_ConcurrentAccess(t *testing.T) {
	m := newTestManager(64)

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(nodeID uint64) {
			defer wg.Done()
			_, err := m.AddDevice(models.NewBridgedDevice(nodeID), 1)
			assert.NoError(t, err, fmt.Sprintf("node %d", nodeID))
			if d, ok := m.FindDeviceByKey(nodeID); ok {
				d.LogActiveChangeEvent(10)
			}
			_ = m.Devices()
		}(uint64(i + 1))
	}
	wg.Wait()

	assert.Equal(t, 64, m.Len())

	seen := make(map[uint16]bool)
	for _, d := range m.Devices() {
		assert.False(t, seen[d.EndpointID], "endpoint %d allocated twice", d.EndpointID)
		seen[d.EndpointID] = true
	}
}
