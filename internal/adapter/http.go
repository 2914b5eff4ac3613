package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/fabric-bridge/internal/logger"
	"github.com/MKhiriev/fabric-bridge/internal/utils"
	"github.com/MKhiriev/fabric-bridge/models"
)

type httpStatusAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPStatusAdapter constructs an HTTP implementation of [StatusAdapter]
// targeting the bridge status API at address ("host:port" or a full URL).
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPStatusAdapter(address string, timeout time.Duration, logger *logger.Logger) (StatusAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid status api address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, timeout)

	return &httpStatusAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListDevices implements [StatusAdapter]. It GETs /api/devices.
func (h *httpStatusAdapter) ListDevices(ctx context.Context) ([]models.BridgedDeviceInfo, error) {
	var devices []models.BridgedDeviceInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(&devices).
		Get("/api/devices")
	if err != nil {
		return nil, fmt.Errorf("list devices request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	h.logger.Debug().Int("count", len(devices)).Msg("devices listed")
	return devices, nil
}

// GetDevice implements [StatusAdapter]. It GETs /api/devices/{nodeID}.
func (h *httpStatusAdapter) GetDevice(ctx context.Context, nodeID uint64) (models.BridgedDeviceInfo, error) {
	var device models.BridgedDeviceInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetPathParam("nodeID", strconv.FormatUint(nodeID, 10)).
		SetResult(&device).
		Get("/api/devices/{nodeID}")
	if err != nil {
		return models.BridgedDeviceInfo{}, fmt.Errorf("get device request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BridgedDeviceInfo{}, err
	}

	return device, nil
}
