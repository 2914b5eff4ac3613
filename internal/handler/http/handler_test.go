package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/fabric-bridge/internal/app"
	"github.com/MKhiriev/fabric-bridge/internal/logger"
	"github.com/MKhiriev/fabric-bridge/internal/metrics"
	"github.com/MKhiriev/fabric-bridge/internal/mock"
	"github.com/MKhiriev/fabric-bridge/internal/service"
	"github.com/MKhiriev/fabric-bridge/internal/store"
	"github.com/MKhiriev/fabric-bridge/internal/utils"
	"github.com/MKhiriev/fabric-bridge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testRouter struct {
	router  http.Handler
	status  *mock.MockStatusService
	appInfo *mock.MockAppInfoService
}

func newTestRouter(t *testing.T) *testRouter {
	t.Helper()
	ctrl := gomock.NewController(t)
	status := mock.NewMockStatusService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)

	h := NewHandler(&service.Services{
		StatusService:  status,
		AppInfoService: appInfo,
	}, metrics.NewCollector(), logger.Nop())

	return &testRouter{router: h.Init(), status: status, appInfo: appInfo}
}

func (tr *testRouter) do(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	tr.router.ServeHTTP(rec, req)
	return rec
}

func TestListDevices(t *testing.T) {
	tr := newTestRouter(t)
	devices := []models.BridgedDeviceInfo{
		{NodeID: 0x1001, EndpointID: 3, ParentEndpointID: 1, Reachable: true},
		{NodeID: 0x2002, EndpointID: 4, ParentEndpointID: 1, Reachable: true, ICD: true},
	}
	tr.status.EXPECT().ListDevices(gomock.Any()).Return(devices)

	rec := tr.do(http.MethodGet, "/api/devices")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []models.BridgedDeviceInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, devices, got)
}

func TestGetDevice(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		setup       func(status *mock.MockStatusService)
		wantStatus  int
		wantMessage string
	}{
		{
			name:   "hex node id",
			target: "/api/devices/0x1001",
			setup: func(status *mock.MockStatusService) {
				status.EXPECT().GetDevice(gomock.Any(), uint64(0x1001)).
					Return(models.BridgedDeviceInfo{NodeID: 0x1001}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "decimal node id",
			target: "/api/devices/4097",
			setup: func(status *mock.MockStatusService) {
				status.EXPECT().GetDevice(gomock.Any(), uint64(4097)).
					Return(models.BridgedDeviceInfo{NodeID: 4097}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "unknown node",
			target: "/api/devices/0x2002",
			setup: func(status *mock.MockStatusService) {
				status.EXPECT().GetDevice(gomock.Any(), uint64(0x2002)).
					Return(models.BridgedDeviceInfo{}, service.ErrDeviceNotFound)
			},
			wantStatus:  http.StatusNotFound,
			wantMessage: app.MsgDeviceNotFound,
		},
		{
			name:        "malformed node id",
			target:      "/api/devices/zzz",
			setup:       func(*mock.MockStatusService) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidNodeID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestRouter(t)
			tt.setup(tr.status)

			rec := tr.do(http.MethodGet, tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				var body utils.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantMessage, body.Error)
			}
		})
	}
}

func TestListDeviceEvents(t *testing.T) {
	tr := newTestRouter(t)
	events := []models.SyncEvent{{ID: "e1", Kind: models.SyncEventRemoved, NodeID: 0x1001}}
	tr.status.EXPECT().ListEvents(gomock.Any(), uint64(0x1001), uint64(10)).Return(events, nil)

	rec := tr.do(http.MethodGet, "/api/devices/0x1001/events?limit=10")

	require.Equal(t, http.StatusOK, rec.Code)
	var got []models.SyncEvent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "e1", got[0].ID)
}

func TestListDeviceEvents_Errors(t *testing.T) {
	t.Run("invalid limit", func(t *testing.T) {
		tr := newTestRouter(t)
		rec := tr.do(http.MethodGet, "/api/devices/1/events?limit=-1")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("journal failure", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.status.EXPECT().ListEvents(gomock.Any(), uint64(1), uint64(0)).
			Return(nil, errors.Join(store.ErrExecutingQuery, errors.New("db down")))

		rec := tr.do(http.MethodGet, "/api/devices/1/events")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestGetServerVersion(t *testing.T) {
	tr := newTestRouter(t)
	tr.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := tr.do(http.MethodGet, "/api/version")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestMetricsEndpoint(t *testing.T) {
	tr := newTestRouter(t)

	rec := tr.do(http.MethodGet, "/metrics")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fabric_bridge_bridged_devices")
}

func TestMetricsEndpoint_NoCollector(t *testing.T) {
	h := NewHandler(&service.Services{}, nil, logger.Nop())
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnsupportedMethodIsNotFound(t *testing.T) {
	tr := newTestRouter(t)

	assert.Equal(t, http.StatusNotFound, tr.do(http.MethodPost, "/api/devices").Code)
	assert.Equal(t, http.StatusNotFound, tr.do(http.MethodDelete, "/api/devices/0x1001").Code)
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFromError(utils.ErrInvalidNodeID))
	assert.Equal(t, http.StatusBadRequest, statusFromError(ErrInvalidLimit))
	assert.Equal(t, http.StatusNotFound, statusFromError(service.ErrDeviceNotFound))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(store.ErrScanningRows))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(errors.New("other")))
}
